// Package insights contains the derived read-side views: spending windows,
// budget progress and streak milestones. Nothing here mutates the record.
package insights

import (
	"context"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/application/usecase/bootstrap"
	"github.com/grove/backend/internal/domain/entity"
)

// GetSpendingSummaryOutput represents the home-screen spending totals. The
// week windows roll back 7 and 14 days from "now"; the month windows anchor
// to calendar month boundaries. Callers should not assume both conventions
// match.
type GetSpendingSummaryOutput struct {
	Summary          entity.SpendingSummary
	CheckedInToday   bool
	CurrentStreak    int
	BestStreak       int
	MonthlyNoSpend   int
	Milestone        entity.Milestone
	MilestoneMessage string
}

// GetSpendingSummaryUseCase derives the legacy root-level dashboard view.
type GetSpendingSummaryUseCase struct {
	repo  adapter.RecordRepository
	clock adapter.Clock
}

// NewGetSpendingSummaryUseCase creates a new GetSpendingSummaryUseCase instance.
func NewGetSpendingSummaryUseCase(repo adapter.RecordRepository, clock adapter.Clock) *GetSpendingSummaryUseCase {
	return &GetSpendingSummaryUseCase{repo: repo, clock: clock}
}

// Execute derives the summary.
func (uc *GetSpendingSummaryUseCase) Execute(ctx context.Context) (*GetSpendingSummaryOutput, error) {
	data := bootstrap.LoadState(ctx, uc.repo, uc.clock)
	now := uc.clock.Now()

	milestone := entity.MilestoneForStreak(data.CurrentStreak)
	return &GetSpendingSummaryOutput{
		Summary:          entity.SummarizeSpending(data.Purchases, now),
		CheckedInToday:   data.LastCheckInDate == entity.Today(now),
		CurrentStreak:    data.CurrentStreak,
		BestStreak:       data.BestStreak,
		MonthlyNoSpend:   data.MonthlyNoSpendDays,
		Milestone:        milestone,
		MilestoneMessage: milestone.Message(),
	}, nil
}
