package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/application/usecase/insights"
)

// SpendingSummaryResponse represents the home-screen totals. The week
// windows roll back 7/14 days from now; the month windows anchor to calendar
// months — the two conventions intentionally differ.
type SpendingSummaryResponse struct {
	ThisWeek           decimal.Decimal `json:"this_week"`
	LastWeek           decimal.Decimal `json:"last_week"`
	ThisMonth          decimal.Decimal `json:"this_month"`
	LastMonth          decimal.Decimal `json:"last_month"`
	CheckedInToday     bool            `json:"checked_in_today"`
	CurrentStreak      int             `json:"current_streak"`
	BestStreak         int             `json:"best_streak"`
	MonthlyNoSpendDays int             `json:"monthly_no_spend_days"`
	Milestone          string          `json:"milestone"`
	MilestoneMessage   string          `json:"milestone_message"`
}

// ToSpendingSummaryResponse converts the use case output to its API shape.
func ToSpendingSummaryResponse(out *insights.GetSpendingSummaryOutput) SpendingSummaryResponse {
	return SpendingSummaryResponse{
		ThisWeek:           out.Summary.ThisWeek,
		LastWeek:           out.Summary.LastWeek,
		ThisMonth:          out.Summary.ThisMonth,
		LastMonth:          out.Summary.LastMonth,
		CheckedInToday:     out.CheckedInToday,
		CurrentStreak:      out.CurrentStreak,
		BestStreak:         out.BestStreak,
		MonthlyNoSpendDays: out.MonthlyNoSpend,
		Milestone:          string(out.Milestone),
		MilestoneMessage:   out.MilestoneMessage,
	}
}

// NoSpendProgressResponse is the derived view of a no-spend goal.
type NoSpendProgressResponse struct {
	CurrentStreak    int    `json:"current_streak"`
	BestStreak       int    `json:"best_streak"`
	CheckedInToday   bool   `json:"checked_in_today"`
	Milestone        string `json:"milestone"`
	MilestoneMessage string `json:"milestone_message"`
}

// SaveByDateProgressResponse is the derived view of a save-by-date goal.
type SaveByDateProgressResponse struct {
	TargetAmount decimal.Decimal `json:"target_amount"`
	TotalSaved   decimal.Decimal `json:"total_saved"`
	EndDate      string          `json:"end_date"`
	Completed    bool            `json:"completed"`
}

// BudgetCapProgressResponse is the derived view of a budget-cap goal for the
// period containing now. period_end is exclusive.
type BudgetCapProgressResponse struct {
	LimitAmount decimal.Decimal `json:"limit_amount"`
	Spent       decimal.Decimal `json:"spent"`
	Period      string          `json:"period"`
	PeriodStart time.Time       `json:"period_start"`
	PeriodEnd   time.Time       `json:"period_end"`
	OverLimit   bool            `json:"over_limit"`
}

// GoalProgressResponse represents the derived view of one goal.
type GoalProgressResponse struct {
	GoalID     string                      `json:"goal_id"`
	Name       string                      `json:"name"`
	Type       string                      `json:"type"`
	NoSpend    *NoSpendProgressResponse    `json:"no_spend,omitempty"`
	SaveByDate *SaveByDateProgressResponse `json:"save_by_date,omitempty"`
	BudgetCap  *BudgetCapProgressResponse  `json:"budget_cap,omitempty"`
}

// GoalProgressListResponse represents progress for all goals.
type GoalProgressListResponse struct {
	Goals []GoalProgressResponse `json:"goals"`
}

// ToGoalProgressListResponse converts the use case output to its API shape.
func ToGoalProgressListResponse(out *insights.GetGoalProgressOutput) GoalProgressListResponse {
	goals := make([]GoalProgressResponse, len(out.Goals))
	for i, p := range out.Goals {
		resp := GoalProgressResponse{
			GoalID: p.GoalID,
			Name:   p.Name,
			Type:   string(p.Type),
		}
		if p.NoSpend != nil {
			resp.NoSpend = &NoSpendProgressResponse{
				CurrentStreak:    p.NoSpend.CurrentStreak,
				BestStreak:       p.NoSpend.BestStreak,
				CheckedInToday:   p.NoSpend.CheckedInToday,
				Milestone:        string(p.NoSpend.Milestone),
				MilestoneMessage: p.NoSpend.MilestoneMessage,
			}
		}
		if p.SaveByDate != nil {
			resp.SaveByDate = &SaveByDateProgressResponse{
				TargetAmount: p.SaveByDate.TargetAmount,
				TotalSaved:   p.SaveByDate.TotalSaved,
				EndDate:      string(p.SaveByDate.EndDate),
				Completed:    p.SaveByDate.Completed,
			}
		}
		if p.BudgetCap != nil {
			resp.BudgetCap = &BudgetCapProgressResponse{
				LimitAmount: p.BudgetCap.LimitAmount,
				Spent:       p.BudgetCap.Spent,
				Period:      string(p.BudgetCap.Period),
				PeriodStart: p.BudgetCap.PeriodStart,
				PeriodEnd:   p.BudgetCap.PeriodEnd,
				OverLimit:   p.BudgetCap.OverLimit,
			}
		}
		goals[i] = resp
	}
	return GoalProgressListResponse{Goals: goals}
}
