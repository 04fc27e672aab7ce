package bootstrap

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/domain/entity"
)

// LoadUserDataOutput represents the output of the startup load.
type LoadUserDataOutput struct {
	Data *entity.UserData
}

// LoadUserDataUseCase runs the app-start path: load the stored record, apply
// the one-time goals migration, and write the upgraded record back so the
// migration is logically a no-op on every later load.
type LoadUserDataUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewLoadUserDataUseCase creates a new LoadUserDataUseCase instance.
func NewLoadUserDataUseCase(repo adapter.RecordRepository, clock adapter.Clock) *LoadUserDataUseCase {
	return &LoadUserDataUseCase{repo: repo, clock: clock}
}

// Execute performs the load.
func (uc *LoadUserDataUseCase) Execute(ctx context.Context) (*LoadUserDataOutput, error) {
	data := LoadState(ctx, uc.repo, uc.clock)
	SaveState(ctx, uc.repo, data)
	return &LoadUserDataOutput{Data: data}, nil
}
