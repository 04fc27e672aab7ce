// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/grove/backend/internal/domain/entity"
)

// RecordRepository stores the entire UserData record as one opaque JSON blob
// under a single key. Load returns found=false both when nothing is stored
// and when the stored blob cannot be decoded; callers treat absence as "use
// defaults". Save is best-effort: the in-memory record stays the source of
// truth and a failed write is logged, not surfaced.
type RecordRepository interface {
	Load(ctx context.Context) (data *entity.UserData, found bool, err error)
	Save(ctx context.Context, data *entity.UserData) error
	Clear(ctx context.Context) error
}
