// Package checkin contains the daily check-in and logging use cases.
package checkin

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// CheckInNoSpendInput represents the input for a positive check-in. An empty
// GoalID targets the legacy root-level streak.
type CheckInNoSpendInput struct {
	GoalID string
}

// CheckInNoSpendOutput represents the output of a positive check-in.
type CheckInNoSpendOutput struct {
	Data *entity.UserData
}

// CheckInNoSpendUseCase records a "no spend today" answer.
type CheckInNoSpendUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewCheckInNoSpendUseCase creates a new CheckInNoSpendUseCase instance.
func NewCheckInNoSpendUseCase(repo adapter.RecordRepository, clock adapter.Clock) *CheckInNoSpendUseCase {
	return &CheckInNoSpendUseCase{repo: repo, clock: clock}
}

// Execute performs the check-in. Unknown goal IDs leave the record unchanged.
func (uc *CheckInNoSpendUseCase) Execute(ctx context.Context, input CheckInNoSpendInput) (*CheckInNoSpendOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	today := entity.Today(uc.clock.Now())

	if input.GoalID == "" {
		data = data.CheckInNoSpend(today)
	} else {
		data = data.CheckInNoSpendForGoal(input.GoalID, today)
	}

	bootstrap.SaveState(ctx, uc.repo, data)
	return &CheckInNoSpendOutput{Data: data}, nil
}
