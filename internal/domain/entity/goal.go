package entity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType discriminates the goal union on the wire.
type GoalType string

const (
	GoalTypeNoSpend    GoalType = "no_spend"
	GoalTypeSaveByDate GoalType = "save_by_date"
	GoalTypeBudgetCap  GoalType = "budget_cap"
)

// BudgetPeriod is the recurring accounting window of a budget-cap goal.
type BudgetPeriod string

const (
	BudgetPeriodWeek  BudgetPeriod = "week"
	BudgetPeriodMonth BudgetPeriod = "month"
)

// IsValidBudgetPeriod validates the budget period.
func IsValidBudgetPeriod(p BudgetPeriod) bool {
	return p == BudgetPeriodWeek || p == BudgetPeriodMonth
}

// NewGoalID generates a goal identifier unique across the device's lifetime.
func NewGoalID() string {
	return uuid.NewString()
}

// Goal is the tagged union over the three tracked-objective variants.
// Concrete types are *NoSpendGoal, *SaveByDateGoal and *BudgetCapGoal.
type Goal interface {
	GoalID() string
	GoalName() string
	Type() GoalType
	Created() time.Time
	// Clone returns a deep copy; transitions operate on copies so a returned
	// record never aliases the input.
	Clone() Goal
}

// NoSpendGoal tracks a streak of consecutive "no spend" check-ins for one
// category of avoidance. BestStreak is a monotonically non-decreasing running
// max of CurrentStreak.
type NoSpendGoal struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	GoalType        GoalType        `json:"type"`
	CreatedAt       time.Time       `json:"createdAt"`
	CategoryLabel   string          `json:"categoryLabel,omitempty"`
	CurrentStreak   int             `json:"currentStreak"`
	BestStreak      int             `json:"bestStreak"`
	LastCheckInDate LocalDate       `json:"lastCheckInDate"`
	Purchases       []PurchaseEntry `json:"purchases"`
}

// NewNoSpendGoal creates a no-spend goal with a fresh ID and zeroed streaks.
func NewNoSpendGoal(name, categoryLabel string, now time.Time) *NoSpendGoal {
	return &NoSpendGoal{
		ID:            NewGoalID(),
		Name:          name,
		GoalType:      GoalTypeNoSpend,
		CreatedAt:     now,
		CategoryLabel: categoryLabel,
		Purchases:     []PurchaseEntry{},
	}
}

func (g *NoSpendGoal) GoalID() string     { return g.ID }
func (g *NoSpendGoal) GoalName() string   { return g.Name }
func (g *NoSpendGoal) Type() GoalType     { return GoalTypeNoSpend }
func (g *NoSpendGoal) Created() time.Time { return g.CreatedAt }

// Clone implements Goal.
func (g *NoSpendGoal) Clone() Goal {
	c := *g
	c.Purchases = append([]PurchaseEntry(nil), g.Purchases...)
	return &c
}

// SaveByDateGoal tracks progress toward a savings target by a deadline.
// Completion is derived from TotalSaved, never stored.
type SaveByDateGoal struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	GoalType     GoalType        `json:"type"`
	CreatedAt    time.Time       `json:"createdAt"`
	TargetAmount decimal.Decimal `json:"targetAmount"`
	EndDate      LocalDate       `json:"endDate"`
	Savings      []SavingEntry   `json:"savings"`
}

// NewSaveByDateGoal creates a save-by-date goal with a fresh ID.
func NewSaveByDateGoal(name string, target decimal.Decimal, endDate LocalDate, now time.Time) *SaveByDateGoal {
	return &SaveByDateGoal{
		ID:           NewGoalID(),
		Name:         name,
		GoalType:     GoalTypeSaveByDate,
		CreatedAt:    now,
		TargetAmount: target,
		EndDate:      endDate,
		Savings:      []SavingEntry{},
	}
}

func (g *SaveByDateGoal) GoalID() string     { return g.ID }
func (g *SaveByDateGoal) GoalName() string   { return g.Name }
func (g *SaveByDateGoal) Type() GoalType     { return GoalTypeSaveByDate }
func (g *SaveByDateGoal) Created() time.Time { return g.CreatedAt }

// Clone implements Goal.
func (g *SaveByDateGoal) Clone() Goal {
	c := *g
	c.Savings = append([]SavingEntry(nil), g.Savings...)
	return &c
}

// TotalSaved sums all savings contributions.
func (g *SaveByDateGoal) TotalSaved() decimal.Decimal {
	total := decimal.Zero
	for _, s := range g.Savings {
		total = total.Add(s.Amount)
	}
	return total
}

// Completed reports whether the savings target has been reached.
func (g *SaveByDateGoal) Completed() bool {
	return g.TotalSaved().GreaterThanOrEqual(g.TargetAmount)
}

// BudgetCapGoal tracks spending against a recurring cap. PeriodStartDate is
// informational only; the active period is always recomputed from "now".
type BudgetCapGoal struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	GoalType        GoalType        `json:"type"`
	CreatedAt       time.Time       `json:"createdAt"`
	LimitAmount     decimal.Decimal `json:"limitAmount"`
	Period          BudgetPeriod    `json:"period"`
	PeriodStartDate LocalDate       `json:"periodStartDate"`
	Purchases       []PurchaseEntry `json:"purchases"`
}

// NewBudgetCapGoal creates a budget-cap goal with a fresh ID. The stored
// period start is seeded from the period containing "now".
func NewBudgetCapGoal(name string, limit decimal.Decimal, period BudgetPeriod, now time.Time) *BudgetCapGoal {
	g := &BudgetCapGoal{
		ID:          NewGoalID(),
		Name:        name,
		GoalType:    GoalTypeBudgetCap,
		CreatedAt:   now,
		LimitAmount: limit,
		Period:      period,
		Purchases:   []PurchaseEntry{},
	}
	start, _ := g.CurrentPeriodBounds(now)
	g.PeriodStartDate = Today(start)
	return g
}

func (g *BudgetCapGoal) GoalID() string     { return g.ID }
func (g *BudgetCapGoal) GoalName() string   { return g.Name }
func (g *BudgetCapGoal) Type() GoalType     { return GoalTypeBudgetCap }
func (g *BudgetCapGoal) Created() time.Time { return g.CreatedAt }

// Clone implements Goal.
func (g *BudgetCapGoal) Clone() Goal {
	c := *g
	c.Purchases = append([]PurchaseEntry(nil), g.Purchases...)
	return &c
}

// GoalList is a slice of goals that round-trips the tagged JSON encoding.
type GoalList []Goal

// Clone deep-copies the list.
func (l GoalList) Clone() GoalList {
	if l == nil {
		return nil
	}
	out := make(GoalList, len(l))
	for i, g := range l {
		out[i] = g.Clone()
	}
	return out
}

// ByID returns the goal with the given ID, or nil when absent.
func (l GoalList) ByID(id string) Goal {
	for _, g := range l {
		if g.GoalID() == id {
			return g
		}
	}
	return nil
}

// UnmarshalJSON decodes each element into the concrete type named by its
// "type" tag. An unrecognized tag means a corrupt record, since the stored
// record is the only writer of this format.
func (l *GoalList) UnmarshalJSON(data []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	out := make(GoalList, 0, len(raw))
	for _, item := range raw {
		var tag struct {
			Type GoalType `json:"type"`
		}
		if err := json.Unmarshal(item, &tag); err != nil {
			return err
		}
		var g Goal
		switch tag.Type {
		case GoalTypeNoSpend:
			g = &NoSpendGoal{}
		case GoalTypeSaveByDate:
			g = &SaveByDateGoal{}
		case GoalTypeBudgetCap:
			g = &BudgetCapGoal{}
		default:
			return fmt.Errorf("unknown goal type %q", tag.Type)
		}
		if err := json.Unmarshal(item, g); err != nil {
			return err
		}
		out = append(out, g)
	}
	*l = out
	return nil
}
