package insights

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/grove/backend/internal/domain/entity"
)

type fakeRepo struct {
	data *entity.UserData
}

func (f *fakeRepo) Load(ctx context.Context) (*entity.UserData, bool, error) {
	if f.data == nil {
		return nil, false, nil
	}
	return f.data.Clone(), true, nil
}

func (f *fakeRepo) Save(ctx context.Context, data *entity.UserData) error {
	f.data = data.Clone()
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.data = nil
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local) // Friday

func purchase(date string, amount int64) entity.PurchaseEntry {
	return entity.PurchaseEntry{Date: entity.LocalDate(date), Amount: decimal.NewFromInt(amount)}
}

func TestGetSpendingSummaryUseCase(t *testing.T) {
	t.Run("derives windows, streaks and milestone from the root record", func(t *testing.T) {
		data := entity.NewUserData(testNow)
		data.CurrentStreak = 4
		data.BestStreak = 9
		data.MonthlyNoSpendDays = 2
		data.LastCheckInDate = entity.LocalDate("2024-03-15")
		data.Purchases = []entity.PurchaseEntry{
			purchase("2024-03-14", 10),
			purchase("2024-03-08", 20),
			purchase("2024-02-20", 40),
		}
		uc := NewGetSpendingSummaryUseCase(&fakeRepo{data: data}, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Summary.ThisWeek.Equal(decimal.NewFromInt(10)) {
			t.Errorf("this week: expected 10, got %s", out.Summary.ThisWeek)
		}
		if !out.Summary.LastWeek.Equal(decimal.NewFromInt(20)) {
			t.Errorf("last week: expected 20, got %s", out.Summary.LastWeek)
		}
		if !out.CheckedInToday {
			t.Error("expected checked-in today")
		}
		if out.Milestone != entity.MilestoneSapling || out.MilestoneMessage != "Sapling!" {
			t.Errorf("expected sapling milestone, got %s %q", out.Milestone, out.MilestoneMessage)
		}
	})

	t.Run("empty storage summarizes the defaults", func(t *testing.T) {
		uc := NewGetSpendingSummaryUseCase(&fakeRepo{}, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.CheckedInToday {
			t.Error("expected no check-in on defaults")
		}
		if out.Milestone != entity.MilestoneReadyToGrow {
			t.Errorf("expected ready_to_grow, got %s", out.Milestone)
		}
	})
}

func TestGetGoalProgressUseCase(t *testing.T) {
	t.Run("each goal type yields its own variant", func(t *testing.T) {
		ns := entity.NewNoSpendGoal("No takeout", "takeout", testNow)
		ns.CurrentStreak = 14
		ns.BestStreak = 20
		ns.LastCheckInDate = entity.LocalDate("2024-03-15")

		sd := entity.NewSaveByDateGoal("Vacation", decimal.NewFromInt(100), entity.LocalDate("2024-06-01"), testNow)
		sd.Savings = []entity.SavingEntry{
			{Date: entity.LocalDate("2024-03-05"), Amount: decimal.NewFromInt(60)},
			{Date: entity.LocalDate("2024-03-10"), Amount: decimal.NewFromInt(40)},
		}

		bc := entity.NewBudgetCapGoal("Groceries", decimal.NewFromInt(50), entity.BudgetPeriodWeek, testNow)
		bc.Purchases = []entity.PurchaseEntry{
			purchase("2024-03-12", 60), // inside the 03-11 week
			purchase("2024-03-09", 10), // previous week
		}

		data := entity.NewUserData(testNow)
		data.Goals = entity.GoalList{ns, sd, bc}
		uc := NewGetGoalProgressUseCase(&fakeRepo{data: data}, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Goals) != 3 {
			t.Fatalf("expected 3 progress entries, got %d", len(out.Goals))
		}

		nsp := out.Goals[0].NoSpend
		if nsp == nil {
			t.Fatal("expected no-spend progress")
		}
		if !nsp.CheckedInToday || nsp.Milestone != entity.MilestoneFlourishing {
			t.Errorf("unexpected no-spend progress: %+v", nsp)
		}

		sdp := out.Goals[1].SaveByDate
		if sdp == nil {
			t.Fatal("expected save-by-date progress")
		}
		if !sdp.TotalSaved.Equal(decimal.NewFromInt(100)) || !sdp.Completed {
			t.Errorf("unexpected save-by-date progress: %+v", sdp)
		}

		bcp := out.Goals[2].BudgetCap
		if bcp == nil {
			t.Fatal("expected budget-cap progress")
		}
		if !bcp.Spent.Equal(decimal.NewFromInt(60)) {
			t.Errorf("spent: expected 60, got %s", bcp.Spent)
		}
		if !bcp.OverLimit {
			t.Error("expected over limit at 60 of 50")
		}
		wantStart := time.Date(2024, 3, 11, 0, 0, 0, 0, time.Local)
		if !bcp.PeriodStart.Equal(wantStart) {
			t.Errorf("period start: expected %s, got %s", wantStart, bcp.PeriodStart)
		}
	})

	t.Run("spending at exactly the limit is not over", func(t *testing.T) {
		bc := entity.NewBudgetCapGoal("Groceries", decimal.NewFromInt(50), entity.BudgetPeriodWeek, testNow)
		bc.Purchases = []entity.PurchaseEntry{purchase("2024-03-12", 50)}
		data := entity.NewUserData(testNow)
		data.Goals = entity.GoalList{bc}
		uc := NewGetGoalProgressUseCase(&fakeRepo{data: data}, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Goals[0].BudgetCap.OverLimit {
			t.Error("expected spend equal to the limit to stay within it")
		}
	})

	t.Run("no goals yields an empty list", func(t *testing.T) {
		uc := NewGetGoalProgressUseCase(&fakeRepo{}, fixedClock{testNow})
		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Goals) != 0 {
			t.Errorf("expected no progress entries, got %d", len(out.Goals))
		}
	})
}
