package goal

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

// GetGoalInput represents the input for fetching a single goal.
type GetGoalInput struct {
	GoalID string
}

// GetGoalOutput represents the output of fetching a single goal.
type GetGoalOutput struct {
	Goal entity.Goal
}

// GetGoalUseCase returns one goal by ID. Reads are the one place an unknown
// ID is an error rather than a silent no-op: there is no record to return
// unchanged.
type GetGoalUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewGetGoalUseCase creates a new GetGoalUseCase instance.
func NewGetGoalUseCase(repo adapter.RecordRepository, clock adapter.Clock) *GetGoalUseCase {
	return &GetGoalUseCase{repo: repo, clock: clock}
}

// Execute performs the fetch.
func (uc *GetGoalUseCase) Execute(ctx context.Context, input GetGoalInput) (*GetGoalOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	g := data.Goals.ByID(input.GoalID)
	if g == nil {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeGoalNotFound,
			"goal not found",
			domainerror.ErrGoalNotFound,
		)
	}
	return &GetGoalOutput{Goal: g}, nil
}
