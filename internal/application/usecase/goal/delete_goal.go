package goal

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// DeleteGoalInput represents the input for goal deletion.
type DeleteGoalInput struct {
	GoalID string
}

// DeleteGoalOutput represents the output of goal deletion.
type DeleteGoalOutput struct {
	Data *entity.UserData
}

// DeleteGoalUseCase removes a goal from the record. Deleting an ID that no
// longer exists is a no-op, not an error.
type DeleteGoalUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewDeleteGoalUseCase creates a new DeleteGoalUseCase instance.
func NewDeleteGoalUseCase(repo adapter.RecordRepository, clock adapter.Clock) *DeleteGoalUseCase {
	return &DeleteGoalUseCase{repo: repo, clock: clock}
}

// Execute performs the deletion.
func (uc *DeleteGoalUseCase) Execute(ctx context.Context, input DeleteGoalInput) (*DeleteGoalOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	data = data.RemoveGoal(input.GoalID)
	bootstrap.SaveState(ctx, uc.repo, data)
	return &DeleteGoalOutput{Data: data}, nil
}
