package bootstrap

import (
	"context"
	"log/slog"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/domain/entity"
)

// ResetUserDataOutput represents the output of a user-initiated reset.
type ResetUserDataOutput struct {
	Data *entity.UserData
}

// ResetUserDataUseCase clears the stored record and returns first-launch
// defaults, the only path that destroys user data.
type ResetUserDataUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewResetUserDataUseCase creates a new ResetUserDataUseCase instance.
func NewResetUserDataUseCase(repo adapter.RecordRepository, clock adapter.Clock) *ResetUserDataUseCase {
	return &ResetUserDataUseCase{repo: repo, clock: clock}
}

// Execute performs the reset.
func (uc *ResetUserDataUseCase) Execute(ctx context.Context) (*ResetUserDataOutput, error) {
	if err := uc.repo.Clear(ctx); err != nil {
		slog.Error("Failed to clear user record", "error", err)
	}
	return &ResetUserDataOutput{Data: entity.NewUserData(uc.clock.Now())}, nil
}
