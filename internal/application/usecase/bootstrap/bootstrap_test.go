package bootstrap

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grove/backend/internal/domain/entity"
)

type fakeRepo struct {
	data    *entity.UserData
	loadErr error
	saveErr error
	saves   int
	clears  int
}

func (f *fakeRepo) Load(ctx context.Context) (*entity.UserData, bool, error) {
	if f.loadErr != nil {
		return nil, false, f.loadErr
	}
	if f.data == nil {
		return nil, false, nil
	}
	return f.data.Clone(), true, nil
}

func (f *fakeRepo) Save(ctx context.Context, data *entity.UserData) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data = data.Clone()
	f.saves++
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.clears++
	f.data = nil
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

func TestLoadState(t *testing.T) {
	t.Run("absence yields first-launch defaults", func(t *testing.T) {
		data := LoadState(context.Background(), &fakeRepo{}, fixedClock{testNow})

		if data.UserName != "Friend" {
			t.Errorf("expected default name, got %q", data.UserName)
		}
		if !data.CheckInTimes.Evening || data.CheckInTimes.Morning {
			t.Errorf("expected evening-only defaults, got %+v", data.CheckInTimes)
		}
		if !data.StartDate.Equal(testNow) {
			t.Errorf("expected start date now, got %s", data.StartDate)
		}
	})

	t.Run("read failure degrades to defaults", func(t *testing.T) {
		repo := &fakeRepo{loadErr: errors.New("disk on fire")}

		data := LoadState(context.Background(), repo, fixedClock{testNow})

		if data.UserName != "Friend" {
			t.Errorf("expected defaults on read failure, got %q", data.UserName)
		}
	})

	t.Run("stored records pass through the goals migration", func(t *testing.T) {
		legacy := &entity.UserData{
			UserName:      "Sam",
			CurrentStreak: 3,
			BestStreak:    6,
			StartDate:     testNow.AddDate(0, -1, 0),
		}
		repo := &fakeRepo{data: legacy}

		data := LoadState(context.Background(), repo, fixedClock{testNow})

		if len(data.Goals) != 1 {
			t.Fatalf("expected 1 synthesized goal, got %d", len(data.Goals))
		}
		if data.Goals[0].Type() != entity.GoalTypeNoSpend {
			t.Errorf("expected a no-spend goal, got %s", data.Goals[0].Type())
		}
	})
}

func TestSaveStateSwallowsWriteFailures(t *testing.T) {
	repo := &fakeRepo{saveErr: errors.New("disk full")}
	SaveState(context.Background(), repo, entity.NewUserData(testNow))
	// No panic, no error surfaced. The in-memory record remains authoritative.
}

func TestLoadUserDataUseCase(t *testing.T) {
	t.Run("writes the migrated record back", func(t *testing.T) {
		legacy := &entity.UserData{UserName: "Sam", CurrentStreak: 2, StartDate: testNow}
		repo := &fakeRepo{data: legacy}
		uc := NewLoadUserDataUseCase(repo, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.saves != 1 {
			t.Errorf("expected one write-back, got %d", repo.saves)
		}
		if len(out.Data.Goals) != 1 {
			t.Errorf("expected the migrated goals list, got %d goals", len(out.Data.Goals))
		}
	})

	t.Run("first launch persists the defaults", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewLoadUserDataUseCase(repo, fixedClock{testNow})

		if _, err := uc.Execute(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if repo.data == nil {
			t.Error("expected the defaults persisted")
		}
	})
}

func TestResetUserDataUseCase(t *testing.T) {
	seeded := entity.NewUserData(testNow)
	seeded.UserName = "Sam"
	seeded.CurrentStreak = 9
	repo := &fakeRepo{data: seeded}
	uc := NewResetUserDataUseCase(repo, fixedClock{testNow})

	out, err := uc.Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.clears != 1 {
		t.Errorf("expected one clear, got %d", repo.clears)
	}
	if repo.data != nil {
		t.Error("expected storage emptied")
	}
	if out.Data.UserName != "Friend" || out.Data.CurrentStreak != 0 {
		t.Errorf("expected first-launch defaults, got %q streak %d", out.Data.UserName, out.Data.CurrentStreak)
	}
}
