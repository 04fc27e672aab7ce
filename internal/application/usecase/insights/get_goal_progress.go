package insights

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// NoSpendProgress is the derived view of a no-spend goal.
type NoSpendProgress struct {
	CurrentStreak    int
	BestStreak       int
	CheckedInToday   bool
	Milestone        entity.Milestone
	MilestoneMessage string
}

// SaveByDateProgress is the derived view of a save-by-date goal. Completion
// is computed from the savings list, never stored.
type SaveByDateProgress struct {
	TargetAmount decimal.Decimal
	TotalSaved   decimal.Decimal
	EndDate      entity.LocalDate
	Completed    bool
}

// BudgetCapProgress is the derived view of a budget-cap goal for the period
// containing "now". PeriodEnd is exclusive.
type BudgetCapProgress struct {
	LimitAmount decimal.Decimal
	Spent       decimal.Decimal
	Period      entity.BudgetPeriod
	PeriodStart time.Time
	PeriodEnd   time.Time
	OverLimit   bool
}

// GoalProgress is the per-goal derived view; exactly one of the variant
// fields is set, matching the goal's type.
type GoalProgress struct {
	GoalID     string
	Name       string
	Type       entity.GoalType
	NoSpend    *NoSpendProgress
	SaveByDate *SaveByDateProgress
	BudgetCap  *BudgetCapProgress
}

// GetGoalProgressOutput represents the derived views of all goals.
type GetGoalProgressOutput struct {
	Goals []GoalProgress
}

// GetGoalProgressUseCase derives display progress for every goal.
type GetGoalProgressUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewGetGoalProgressUseCase creates a new GetGoalProgressUseCase instance.
func NewGetGoalProgressUseCase(repo adapter.RecordRepository, clock adapter.Clock) *GetGoalProgressUseCase {
	return &GetGoalProgressUseCase{repo: repo, clock: clock}
}

// Execute derives progress for each goal in creation order.
func (uc *GetGoalProgressUseCase) Execute(ctx context.Context) (*GetGoalProgressOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	now := uc.clock.Now()
	today := entity.Today(now)

	out := make([]GoalProgress, 0, len(data.Goals))
	for _, g := range data.Goals {
		progress := GoalProgress{
			GoalID: g.GoalID(),
			Name:   g.GoalName(),
			Type:   g.Type(),
		}
		switch goal := g.(type) {
		case *entity.NoSpendGoal:
			milestone := entity.MilestoneForStreak(goal.CurrentStreak)
			progress.NoSpend = &NoSpendProgress{
				CurrentStreak:    goal.CurrentStreak,
				BestStreak:       goal.BestStreak,
				CheckedInToday:   goal.LastCheckInDate == today,
				Milestone:        milestone,
				MilestoneMessage: milestone.Message(),
			}
		case *entity.SaveByDateGoal:
			progress.SaveByDate = &SaveByDateProgress{
				TargetAmount: goal.TargetAmount,
				TotalSaved:   goal.TotalSaved(),
				EndDate:      goal.EndDate,
				Completed:    goal.Completed(),
			}
		case *entity.BudgetCapGoal:
			start, end := goal.CurrentPeriodBounds(now)
			spent := goal.SpentInCurrentPeriod(now)
			progress.BudgetCap = &BudgetCapProgress{
				LimitAmount: goal.LimitAmount,
				Spent:       spent,
				Period:      goal.Period,
				PeriodStart: start,
				PeriodEnd:   end,
				OverLimit:   spent.GreaterThan(goal.LimitAmount),
			}
		}
		out = append(out, progress)
	}
	return &GetGoalProgressOutput{Goals: out}, nil
}
