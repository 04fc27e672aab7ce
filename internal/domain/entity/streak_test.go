package entity

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func newTestNoSpendGoal(id string) *NoSpendGoal {
	return &NoSpendGoal{
		ID:        id,
		Name:      "No takeout",
		GoalType:  GoalTypeNoSpend,
		CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.Local),
		Purchases: []PurchaseEntry{},
	}
}

func TestCheckInNoSpendForGoal(t *testing.T) {
	today := LocalDate("2024-03-15")

	t.Run("grows the streak and stamps the date", func(t *testing.T) {
		data := NewUserData(time.Now())
		data.Goals = GoalList{newTestNoSpendGoal("g1")}

		result := data.CheckInNoSpendForGoal("g1", today)

		goal := result.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 1 {
			t.Errorf("expected streak 1, got %d", goal.CurrentStreak)
		}
		if goal.BestStreak != 1 {
			t.Errorf("expected best streak 1, got %d", goal.BestStreak)
		}
		if goal.LastCheckInDate != today {
			t.Errorf("expected check-in date %s, got %s", today, goal.LastCheckInDate)
		}
	})

	t.Run("second check-in on the same day is a no-op", func(t *testing.T) {
		g := newTestNoSpendGoal("g1")
		g.CurrentStreak = 5
		g.BestStreak = 5
		g.LastCheckInDate = today
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.CheckInNoSpendForGoal("g1", today)

		goal := result.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 5 {
			t.Errorf("expected streak to stay 5, got %d", goal.CurrentStreak)
		}
	})

	t.Run("best streak trails as a running max", func(t *testing.T) {
		g := newTestNoSpendGoal("g1")
		g.CurrentStreak = 2
		g.BestStreak = 9
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.CheckInNoSpendForGoal("g1", today)

		goal := result.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 3 {
			t.Errorf("expected streak 3, got %d", goal.CurrentStreak)
		}
		if goal.BestStreak != 9 {
			t.Errorf("expected best streak to stay 9, got %d", goal.BestStreak)
		}
	})

	t.Run("unknown goal ID is a no-op", func(t *testing.T) {
		data := NewUserData(time.Now())
		data.Goals = GoalList{newTestNoSpendGoal("g1")}

		result := data.CheckInNoSpendForGoal("missing", today)

		goal := result.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 0 {
			t.Errorf("expected streak to stay 0, got %d", goal.CurrentStreak)
		}
	})

	t.Run("input record is never mutated", func(t *testing.T) {
		data := NewUserData(time.Now())
		data.Goals = GoalList{newTestNoSpendGoal("g1")}

		_ = data.CheckInNoSpendForGoal("g1", today)

		goal := data.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 0 {
			t.Errorf("input goal mutated: streak %d", goal.CurrentStreak)
		}
		if !goal.LastCheckInDate.IsZero() {
			t.Errorf("input goal mutated: check-in date %s", goal.LastCheckInDate)
		}
	})
}

func TestLogPurchaseForGoal(t *testing.T) {
	today := LocalDate("2024-03-15")
	amount := decimal.NewFromFloat(25.5)

	t.Run("resets a no-spend streak but keeps the best streak", func(t *testing.T) {
		g := newTestNoSpendGoal("g1")
		g.CurrentStreak = 4
		g.BestStreak = 6
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.LogPurchaseForGoal("g1", today, amount, "coffee")

		goal := result.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 0 {
			t.Errorf("expected streak 0, got %d", goal.CurrentStreak)
		}
		if goal.BestStreak != 6 {
			t.Errorf("expected best streak 6, got %d", goal.BestStreak)
		}
		if len(goal.Purchases) != 1 {
			t.Fatalf("expected 1 purchase, got %d", len(goal.Purchases))
		}
		if !goal.Purchases[0].Amount.Equal(amount) {
			t.Errorf("expected amount %s, got %s", amount, goal.Purchases[0].Amount)
		}
		if goal.LastCheckInDate != today {
			t.Errorf("expected check-in date %s, got %s", today, goal.LastCheckInDate)
		}
	})

	t.Run("budget-cap goal accumulates without streak bookkeeping", func(t *testing.T) {
		g := NewBudgetCapGoal("Groceries", decimal.NewFromInt(120), BudgetPeriodWeek, time.Now())
		g.ID = "g1"
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.LogPurchaseForGoal("g1", today, amount, "")

		goal := result.Goals.ByID("g1").(*BudgetCapGoal)
		if len(goal.Purchases) != 1 {
			t.Fatalf("expected 1 purchase, got %d", len(goal.Purchases))
		}
	})

	t.Run("save-by-date goal ignores purchases", func(t *testing.T) {
		g := NewSaveByDateGoal("Vacation", decimal.NewFromInt(500), LocalDate("2024-06-01"), time.Now())
		g.ID = "g1"
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.LogPurchaseForGoal("g1", today, amount, "")

		goal := result.Goals.ByID("g1").(*SaveByDateGoal)
		if len(goal.Savings) != 0 {
			t.Errorf("expected no savings, got %d", len(goal.Savings))
		}
	})

	t.Run("other goals are untouched", func(t *testing.T) {
		g1 := newTestNoSpendGoal("g1")
		g1.CurrentStreak = 4
		g2 := newTestNoSpendGoal("g2")
		g2.CurrentStreak = 7
		data := NewUserData(time.Now())
		data.Goals = GoalList{g1, g2}

		result := data.LogPurchaseForGoal("g1", today, amount, "")

		other := result.Goals.ByID("g2").(*NoSpendGoal)
		if other.CurrentStreak != 7 {
			t.Errorf("expected untouched streak 7, got %d", other.CurrentStreak)
		}
	})
}

func TestLogSavingsForGoal(t *testing.T) {
	today := LocalDate("2024-03-15")

	t.Run("appends a contribution", func(t *testing.T) {
		g := NewSaveByDateGoal("Vacation", decimal.NewFromInt(500), LocalDate("2024-06-01"), time.Now())
		g.ID = "g1"
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.LogSavingsForGoal("g1", today, decimal.NewFromInt(200))

		goal := result.Goals.ByID("g1").(*SaveByDateGoal)
		if len(goal.Savings) != 1 {
			t.Fatalf("expected 1 saving, got %d", len(goal.Savings))
		}
		if !goal.TotalSaved().Equal(decimal.NewFromInt(200)) {
			t.Errorf("expected total 200, got %s", goal.TotalSaved())
		}
		if goal.Completed() {
			t.Error("expected goal not completed at 200 of 500")
		}
	})

	t.Run("reaching the target completes the goal", func(t *testing.T) {
		g := NewSaveByDateGoal("Vacation", decimal.NewFromInt(500), LocalDate("2024-06-01"), time.Now())
		g.ID = "g1"
		g.Savings = []SavingEntry{{Date: LocalDate("2024-03-01"), Amount: decimal.NewFromInt(400)}}
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.LogSavingsForGoal("g1", today, decimal.NewFromInt(100))

		goal := result.Goals.ByID("g1").(*SaveByDateGoal)
		if !goal.Completed() {
			t.Error("expected goal completed at 500 of 500")
		}
	})

	t.Run("type mismatch is a no-op", func(t *testing.T) {
		g := newTestNoSpendGoal("g1")
		data := NewUserData(time.Now())
		data.Goals = GoalList{g}

		result := data.LogSavingsForGoal("g1", today, decimal.NewFromInt(100))

		goal := result.Goals.ByID("g1").(*NoSpendGoal)
		if goal.CurrentStreak != 0 || len(goal.Purchases) != 0 {
			t.Error("expected no-spend goal untouched by savings log")
		}
	})
}

func TestCheckInNoSpendRoot(t *testing.T) {
	t.Run("first check-in starts the monthly counter", func(t *testing.T) {
		data := NewUserData(time.Now())

		result := data.CheckInNoSpend(LocalDate("2024-03-15"))

		if result.CurrentStreak != 1 {
			t.Errorf("expected streak 1, got %d", result.CurrentStreak)
		}
		if result.MonthlyNoSpendDays != 1 {
			t.Errorf("expected monthly days 1, got %d", result.MonthlyNoSpendDays)
		}
	})

	t.Run("same month increments the monthly counter", func(t *testing.T) {
		data := NewUserData(time.Now())
		data.CurrentStreak = 2
		data.BestStreak = 4
		data.MonthlyNoSpendDays = 5
		data.LastCheckInDate = LocalDate("2024-03-14")

		result := data.CheckInNoSpend(LocalDate("2024-03-15"))

		if result.MonthlyNoSpendDays != 6 {
			t.Errorf("expected monthly days 6, got %d", result.MonthlyNoSpendDays)
		}
	})

	t.Run("month change resets the monthly counter to one", func(t *testing.T) {
		data := NewUserData(time.Now())
		data.MonthlyNoSpendDays = 10
		data.LastCheckInDate = LocalDate("2024-02-28")

		result := data.CheckInNoSpend(LocalDate("2024-03-01"))

		if result.MonthlyNoSpendDays != 1 {
			t.Errorf("expected monthly days 1, got %d", result.MonthlyNoSpendDays)
		}
	})

	t.Run("same month of a different year resets too", func(t *testing.T) {
		data := NewUserData(time.Now())
		data.MonthlyNoSpendDays = 10
		data.LastCheckInDate = LocalDate("2023-03-31")

		result := data.CheckInNoSpend(LocalDate("2024-03-01"))

		if result.MonthlyNoSpendDays != 1 {
			t.Errorf("expected monthly days 1, got %d", result.MonthlyNoSpendDays)
		}
	})

	t.Run("guarded to one increment per day", func(t *testing.T) {
		data := NewUserData(time.Now())

		once := data.CheckInNoSpend(LocalDate("2024-03-15"))
		twice := once.CheckInNoSpend(LocalDate("2024-03-15"))

		if twice.CurrentStreak != 1 {
			t.Errorf("expected streak 1 after double check-in, got %d", twice.CurrentStreak)
		}
		if twice.MonthlyNoSpendDays != 1 {
			t.Errorf("expected monthly days 1 after double check-in, got %d", twice.MonthlyNoSpendDays)
		}
	})
}

func TestAcknowledgeSpend(t *testing.T) {
	data := NewUserData(time.Now())
	data.CurrentStreak = 3
	data.BestStreak = 5

	result := data.AcknowledgeSpend(LocalDate("2024-03-15"))

	if result.CurrentStreak != 3 {
		t.Errorf("expected streak 3, got %d", result.CurrentStreak)
	}
	if result.LastCheckInDate != LocalDate("2024-03-15") {
		t.Errorf("expected date stamped, got %s", result.LastCheckInDate)
	}
}

func TestLogPurchaseRoot(t *testing.T) {
	data := NewUserData(time.Now())
	data.CurrentStreak = 4
	data.BestStreak = 6

	result := data.LogPurchase(LocalDate("2024-03-15"), decimal.NewFromInt(40), "takeout")

	if result.CurrentStreak != 0 {
		t.Errorf("expected streak 0, got %d", result.CurrentStreak)
	}
	if result.BestStreak != 6 {
		t.Errorf("expected best streak 6, got %d", result.BestStreak)
	}
	if len(result.Purchases) != 1 {
		t.Fatalf("expected 1 purchase, got %d", len(result.Purchases))
	}
	if len(data.Purchases) != 0 {
		t.Error("input record mutated by purchase log")
	}
}
