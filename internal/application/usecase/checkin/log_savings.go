package checkin

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

// LogSavingsInput represents the input for logging a savings contribution.
type LogSavingsInput struct {
	GoalID string
	Amount decimal.Decimal
}

// LogSavingsOutput represents the output of logging a savings contribution.
type LogSavingsOutput struct {
	Data *entity.UserData
}

// LogSavingsUseCase appends a savings entry to a save-by-date goal.
type LogSavingsUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewLogSavingsUseCase creates a new LogSavingsUseCase instance.
func NewLogSavingsUseCase(repo adapter.RecordRepository, clock adapter.Clock) *LogSavingsUseCase {
	return &LogSavingsUseCase{repo: repo, clock: clock}
}

// Execute performs the savings log. Unknown goal IDs and goals of any other
// type leave the record unchanged.
func (uc *LogSavingsUseCase) Execute(ctx context.Context, input LogSavingsInput) (*LogSavingsOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidEntryAmount,
			"savings amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	today := entity.Today(uc.clock.Now())
	data = data.LogSavingsForGoal(input.GoalID, today, input.Amount)

	bootstrap.SaveState(ctx, uc.repo, data)
	return &LogSavingsOutput{Data: data}, nil
}
