// Package bootstrap contains the startup and reset use cases, plus the shared
// load-and-migrate path every mutating use case goes through.
package bootstrap

import (
	"context"
	"log/slog"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/domain/entity"
)

// LoadState returns the current in-memory state: the stored record when one
// exists (upgraded through the goals migration), or first-launch defaults when
// nothing is stored or the stored blob is unreadable. A read failure is not
// fatal; it degrades to defaults per the storage-failure contract.
func LoadState(ctx context.Context, repo adapter.RecordRepository, clock adapter.Clock) *entity.UserData {
	data, found, err := repo.Load(ctx)
	if err != nil {
		slog.Error("Failed to load user record, falling back to defaults", "error", err)
	}
	if !found || data == nil {
		return entity.NewUserData(clock.Now())
	}
	return entity.MigrateToGoals(data, clock.Now())
}

// SaveState persists the record best-effort. Write failures are logged and
// swallowed: the in-memory record remains the source of truth and the lost
// write is an accepted data-loss window, not a user-visible failure.
func SaveState(ctx context.Context, repo adapter.RecordRepository, data *entity.UserData) {
	if err := repo.Save(ctx, data); err != nil {
		slog.Error("Failed to save user record", "error", err)
	}
}
