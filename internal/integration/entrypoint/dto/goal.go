package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/domain/entity"
)

// CreateGoalRequest represents the request body for goal creation. The type
// selects which optional fields are consulted.
type CreateGoalRequest struct {
	Type          string   `json:"type" binding:"required,oneof=no_spend save_by_date budget_cap"`
	Name          string   `json:"name" binding:"required"`
	CategoryLabel string   `json:"category_label,omitempty"`
	TargetAmount  *float64 `json:"target_amount,omitempty" binding:"omitempty,gt=0"`
	EndDate       string   `json:"end_date,omitempty" binding:"omitempty,datetime=2006-01-02"`
	LimitAmount   *float64 `json:"limit_amount,omitempty" binding:"omitempty,gt=0"`
	Period        string   `json:"period,omitempty" binding:"omitempty,oneof=week month"`
}

// GoalResponse represents a single goal in API responses. Variant fields are
// populated according to the goal's type.
type GoalResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"created_at"`

	// no_spend
	CategoryLabel   string                  `json:"category_label,omitempty"`
	CurrentStreak   *int                    `json:"current_streak,omitempty"`
	BestStreak      *int                    `json:"best_streak,omitempty"`
	LastCheckInDate *string                 `json:"last_check_in_date,omitempty"`
	Purchases       []PurchaseEntryResponse `json:"purchases,omitempty"`

	// save_by_date
	TargetAmount *decimal.Decimal      `json:"target_amount,omitempty"`
	EndDate      string                `json:"end_date,omitempty"`
	Savings      []SavingEntryResponse `json:"savings,omitempty"`

	// budget_cap
	LimitAmount     *decimal.Decimal `json:"limit_amount,omitempty"`
	Period          string           `json:"period,omitempty"`
	PeriodStartDate string           `json:"period_start_date,omitempty"`
}

// GoalListResponse represents the response for listing goals.
type GoalListResponse struct {
	Goals []GoalResponse `json:"goals"`
}

// ToGoalResponse converts a domain goal to a GoalResponse DTO.
func ToGoalResponse(g entity.Goal) GoalResponse {
	response := GoalResponse{
		ID:        g.GoalID(),
		Name:      g.GoalName(),
		Type:      string(g.Type()),
		CreatedAt: g.Created(),
	}

	switch goal := g.(type) {
	case *entity.NoSpendGoal:
		response.CategoryLabel = goal.CategoryLabel
		response.CurrentStreak = &goal.CurrentStreak
		response.BestStreak = &goal.BestStreak
		response.LastCheckInDate = toDatePtr(goal.LastCheckInDate)
		response.Purchases = toPurchaseResponses(goal.Purchases)
	case *entity.SaveByDateGoal:
		response.TargetAmount = &goal.TargetAmount
		response.EndDate = string(goal.EndDate)
		response.Savings = toSavingResponses(goal.Savings)
	case *entity.BudgetCapGoal:
		response.LimitAmount = &goal.LimitAmount
		response.Period = string(goal.Period)
		response.PeriodStartDate = string(goal.PeriodStartDate)
		response.Purchases = toPurchaseResponses(goal.Purchases)
	}

	return response
}

// ToGoalResponses converts a goal list to its API shape.
func ToGoalResponses(goals entity.GoalList) []GoalResponse {
	out := make([]GoalResponse, len(goals))
	for i, g := range goals {
		out[i] = ToGoalResponse(g)
	}
	return out
}
