// Package persistence implements repository interfaces for storage operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/domain/entity"
	"github.com/grove/backend/internal/integration/persistence/model"
)

// recordRepository implements adapter.RecordRepository on a GORM database,
// storing the whole record as one JSON blob row. A mutex serializes writes so
// the blob is replaced atomically even though the app has a single logical
// writer.
type recordRepository struct {
	db  *gorm.DB
	key string
	mu  sync.Mutex
}

// NewRecordRepository creates a new record repository instance bound to the
// given storage key.
func NewRecordRepository(db *gorm.DB, key string) adapter.RecordRepository {
	return &recordRepository{
		db:  db,
		key: key,
	}
}

// Load reads and decodes the stored record. Absence and decode failures both
// report found=false; a corrupt blob is logged and treated as "no stored
// data" so startup falls back to defaults instead of failing.
func (r *recordRepository) Load(ctx context.Context) (*entity.UserData, bool, error) {
	var row model.UserRecordModel
	result := r.db.WithContext(ctx).Where("key = ?", r.key).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, result.Error
	}

	var data entity.UserData
	if err := json.Unmarshal(row.Data, &data); err != nil {
		slog.Error("Stored user record is unreadable, treating as absent", "error", err)
		return nil, false, nil
	}
	return &data, true, nil
}

// Save serializes and upserts the record under the repository's key.
func (r *recordRepository) Save(ctx context.Context, data *entity.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	row := model.UserRecordModel{Key: r.key, Data: raw}
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row)
	return result.Error
}

// Clear removes the stored record.
func (r *recordRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := r.db.WithContext(ctx).Delete(&model.UserRecordModel{}, "key = ?", r.key)
	return result.Error
}
