package goal

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// ListGoalsOutput represents the output of listing goals.
type ListGoalsOutput struct {
	Goals entity.GoalList
}

// ListGoalsUseCase returns all goals in creation order.
type ListGoalsUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewListGoalsUseCase creates a new ListGoalsUseCase instance.
func NewListGoalsUseCase(repo adapter.RecordRepository, clock adapter.Clock) *ListGoalsUseCase {
	return &ListGoalsUseCase{repo: repo, clock: clock}
}

// Execute performs the listing.
func (uc *ListGoalsUseCase) Execute(ctx context.Context) (*ListGoalsOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	return &ListGoalsOutput{Goals: data.Goals}, nil
}
