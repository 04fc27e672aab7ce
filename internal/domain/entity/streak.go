package entity

import "github.com/shopspring/decimal"

// State transitions. Every function returns a new record; the input is never
// mutated. Unknown goal IDs and goal-type mismatches degrade to a no-op copy,
// never an error: referenced goals can legitimately have been removed.

// CheckInNoSpendForGoal applies a positive "no spend today" check-in to the
// no-spend goal with the given ID: the streak grows by one, the best streak
// follows as a running max, and the check-in date is stamped. The transition
// is guarded to at most one increment per calendar day; a second call on the
// same day is a no-op.
func (u *UserData) CheckInNoSpendForGoal(goalID string, today LocalDate) *UserData {
	return u.ReplaceGoal(goalID, func(g Goal) Goal {
		ns, ok := g.(*NoSpendGoal)
		if !ok || ns.LastCheckInDate == today {
			return g
		}
		c := ns.Clone().(*NoSpendGoal)
		c.CurrentStreak++
		if c.CurrentStreak > c.BestStreak {
			c.BestStreak = c.CurrentStreak
		}
		c.LastCheckInDate = today
		return c
	})
}

// AcknowledgeSpendForGoal records that the user answered "yes, I spent"
// without logging an amount yet: only the check-in date moves. The actual
// purchase, if any, follows as an explicit LogPurchaseForGoal.
func (u *UserData) AcknowledgeSpendForGoal(goalID string, today LocalDate) *UserData {
	return u.ReplaceGoal(goalID, func(g Goal) Goal {
		ns, ok := g.(*NoSpendGoal)
		if !ok {
			return g
		}
		c := ns.Clone().(*NoSpendGoal)
		c.LastCheckInDate = today
		return c
	})
}

// LogPurchaseForGoal appends a purchase to the goal with the given ID,
// dispatching on goal type: a no-spend goal loses its current streak (the
// best streak is a historical high-water mark and survives), a budget-cap
// goal just accumulates the entry, and a save-by-date goal does not track
// purchases at all.
func (u *UserData) LogPurchaseForGoal(goalID string, today LocalDate, amount decimal.Decimal, category string) *UserData {
	entry := PurchaseEntry{Date: today, Amount: amount, Category: category}
	return u.ReplaceGoal(goalID, func(g Goal) Goal {
		switch goal := g.(type) {
		case *NoSpendGoal:
			c := goal.Clone().(*NoSpendGoal)
			c.Purchases = append(c.Purchases, entry)
			c.CurrentStreak = 0
			c.LastCheckInDate = today
			return c
		case *BudgetCapGoal:
			c := goal.Clone().(*BudgetCapGoal)
			c.Purchases = append(c.Purchases, entry)
			return c
		default:
			return g
		}
	})
}

// LogSavingsForGoal appends a savings contribution to the save-by-date goal
// with the given ID.
func (u *UserData) LogSavingsForGoal(goalID string, today LocalDate, amount decimal.Decimal) *UserData {
	return u.ReplaceGoal(goalID, func(g Goal) Goal {
		sg, ok := g.(*SaveByDateGoal)
		if !ok {
			return g
		}
		c := sg.Clone().(*SaveByDateGoal)
		c.Savings = append(c.Savings, SavingEntry{Date: today, Amount: amount})
		return c
	})
}

// CheckInNoSpend applies a positive check-in to the legacy root-level streak.
// Besides the streak bookkeeping it maintains MonthlyNoSpendDays: the counter
// resets to 1 when the previous check-in fell in a different month or year,
// and otherwise increments. Guarded to one increment per calendar day, like
// the goal-level transition.
func (u *UserData) CheckInNoSpend(today LocalDate) *UserData {
	if u.LastCheckInDate == today {
		return u.Clone()
	}
	c := u.Clone()
	c.CurrentStreak++
	if c.CurrentStreak > c.BestStreak {
		c.BestStreak = c.CurrentStreak
	}
	if !c.LastCheckInDate.IsZero() && !c.LastCheckInDate.SameMonth(today) {
		c.MonthlyNoSpendDays = 1
	} else {
		c.MonthlyNoSpendDays++
	}
	c.LastCheckInDate = today
	return c
}

// AcknowledgeSpend stamps the root-level check-in date without touching the
// streak, deferring the purchase log.
func (u *UserData) AcknowledgeSpend(today LocalDate) *UserData {
	c := u.Clone()
	c.LastCheckInDate = today
	return c
}

// LogPurchase appends a purchase to the legacy root-level list and resets the
// root streak.
func (u *UserData) LogPurchase(today LocalDate, amount decimal.Decimal, category string) *UserData {
	c := u.Clone()
	c.Purchases = append(c.Purchases, PurchaseEntry{Date: today, Amount: amount, Category: category})
	c.CurrentStreak = 0
	c.LastCheckInDate = today
	return c
}
