package checkin

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

// LogPurchaseInput represents the input for logging a purchase. An empty
// GoalID targets the legacy root-level purchase list.
type LogPurchaseInput struct {
	GoalID   string
	Amount   decimal.Decimal
	Category string
}

// LogPurchaseOutput represents the output of logging a purchase.
type LogPurchaseOutput struct {
	Data *entity.UserData
}

// LogPurchaseUseCase appends a purchase entry, resetting the streak on
// no-spend goals and leaving budget-cap streakless accumulation untouched.
type LogPurchaseUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewLogPurchaseUseCase creates a new LogPurchaseUseCase instance.
func NewLogPurchaseUseCase(repo adapter.RecordRepository, clock adapter.Clock) *LogPurchaseUseCase {
	return &LogPurchaseUseCase{repo: repo, clock: clock}
}

// Execute performs the purchase log. Amounts are validated here at the
// boundary; the transitions themselves assume pre-validated input. Unknown
// goal IDs and save-by-date goals leave the record unchanged.
func (uc *LogPurchaseUseCase) Execute(ctx context.Context, input LogPurchaseInput) (*LogPurchaseOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidEntryAmount,
			"purchase amount must be greater than zero",
			domainerror.ErrInvalidEntryAmount,
		)
	}

	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	today := entity.Today(uc.clock.Now())

	if input.GoalID == "" {
		data = data.LogPurchase(today, input.Amount, input.Category)
	} else {
		data = data.LogPurchaseForGoal(input.GoalID, today, input.Amount, input.Category)
	}

	bootstrap.SaveState(ctx, uc.repo, data)
	return &LogPurchaseOutput{Data: data}, nil
}
