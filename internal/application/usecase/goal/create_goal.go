// Package goal contains goal-related use cases.
package goal

import (
	"strings"

	"context"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

// CreateGoalInput represents the input for goal creation. The type selects
// which of the remaining fields apply.
type CreateGoalInput struct {
	Type          entity.GoalType
	Name          string
	CategoryLabel string              // no_spend only, optional
	TargetAmount  decimal.Decimal     // save_by_date only
	EndDate       entity.LocalDate    // save_by_date only; defaults to today
	LimitAmount   decimal.Decimal     // budget_cap only
	Period        entity.BudgetPeriod // budget_cap only
}

// CreateGoalOutput represents the output of goal creation.
type CreateGoalOutput struct {
	Goal entity.Goal
	Data *entity.UserData
}

// CreateGoalUseCase handles goal creation logic.
type CreateGoalUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewCreateGoalUseCase creates a new CreateGoalUseCase instance.
func NewCreateGoalUseCase(repo adapter.RecordRepository, clock adapter.Clock) *CreateGoalUseCase {
	return &CreateGoalUseCase{repo: repo, clock: clock}
}

// Execute performs the goal creation.
func (uc *CreateGoalUseCase) Execute(ctx context.Context, input CreateGoalInput) (*CreateGoalOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalName,
			"goal name must not be empty",
			domainerror.ErrInvalidGoalName,
		)
	}

	now := uc.clock.Now()

	var created entity.Goal
	switch input.Type {
	case entity.GoalTypeNoSpend:
		created = entity.NewNoSpendGoal(name, strings.TrimSpace(input.CategoryLabel), now)

	case entity.GoalTypeSaveByDate:
		if !input.TargetAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidTargetAmount,
				"target amount must be greater than zero",
				domainerror.ErrInvalidTargetAmount,
			)
		}
		endDate := input.EndDate
		if endDate.IsZero() {
			endDate = entity.Today(now)
		}
		created = entity.NewSaveByDateGoal(name, input.TargetAmount, endDate, now)

	case entity.GoalTypeBudgetCap:
		if !input.LimitAmount.IsPositive() {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidLimitAmount,
				"limit amount must be greater than zero",
				domainerror.ErrInvalidLimitAmount,
			)
		}
		if !entity.IsValidBudgetPeriod(input.Period) {
			return nil, domainerror.NewGoalError(
				domainerror.ErrCodeInvalidBudgetPeriod,
				"period must be 'week' or 'month'",
				domainerror.ErrInvalidBudgetPeriod,
			)
		}
		created = entity.NewBudgetCapGoal(name, input.LimitAmount, input.Period, now)

	default:
		return nil, domainerror.NewGoalError(
			domainerror.ErrCodeInvalidGoalType,
			"goal type must be 'no_spend', 'save_by_date' or 'budget_cap'",
			domainerror.ErrInvalidGoalType,
		)
	}

	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	data = data.AppendGoal(created)
	bootstrap.SaveState(ctx, uc.repo, data)

	return &CreateGoalOutput{Goal: created, Data: data}, nil
}
