package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Time-window aggregation. Weekly windows are rolling 7-day instants measured
// back from "now"; monthly windows anchor to calendar month boundaries. The
// two conventions differ deliberately: "week" has no canonical calendar
// anchor in this app while "month" does. Entry dates compare as local
// midnight instants.

// SpendingSummary holds the home-screen spending totals.
type SpendingSummary struct {
	ThisWeek  decimal.Decimal
	LastWeek  decimal.Decimal
	ThisMonth decimal.Decimal
	LastMonth decimal.Decimal
}

// SummarizeSpending derives the four display windows from a purchase list.
func SummarizeSpending(entries []PurchaseEntry, now time.Time) SpendingSummary {
	weekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)
	firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	firstOfLastMonth := firstOfMonth.AddDate(0, -1, 0)

	return SpendingSummary{
		ThisWeek:  sumBetween(entries, weekAgo, time.Time{}),
		LastWeek:  sumBetween(entries, twoWeeksAgo, weekAgo),
		ThisMonth: sumBetween(entries, firstOfMonth, time.Time{}),
		LastMonth: sumBetween(entries, firstOfLastMonth, firstOfMonth),
	}
}

// sumBetween totals entries with start <= date, and date < end when end is
// set. Entries with unparseable dates fall outside every window.
func sumBetween(entries []PurchaseEntry, start, end time.Time) decimal.Decimal {
	total := decimal.Zero
	for _, e := range entries {
		d := e.Date.Time()
		if d.IsZero() || d.Before(start) {
			continue
		}
		if !end.IsZero() && !d.Before(end) {
			continue
		}
		total = total.Add(e.Amount)
	}
	return total
}

// CurrentPeriodBounds returns the active accounting period containing "now",
// recomputed at read time rather than taken from the stored PeriodStartDate.
// Weekly periods start on the most recent Monday (Sunday maps six days back);
// monthly periods start on the first of the current month. The end bound is
// exclusive.
func (g *BudgetCapGoal) CurrentPeriodBounds(now time.Time) (start, end time.Time) {
	loc := now.Location()
	if g.Period == BudgetPeriodWeek {
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7
		}
		start = time.Date(now.Year(), now.Month(), now.Day()-(weekday-1), 0, 0, 0, 0, loc)
		end = start.AddDate(0, 0, 7)
		return start, end
	}
	start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	end = start.AddDate(0, 1, 0)
	return start, end
}

// SpentInCurrentPeriod sums the purchases falling inside the active period.
func (g *BudgetCapGoal) SpentInCurrentPeriod(now time.Time) decimal.Decimal {
	start, end := g.CurrentPeriodBounds(now)
	return sumBetween(g.Purchases, start, end)
}
