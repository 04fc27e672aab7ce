package settings

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/grove/backend/internal/domain/entity"
	domainerror "github.com/grove/backend/internal/domain/error"
)

type fakeRepo struct {
	data  *entity.UserData
	saves int
}

func (f *fakeRepo) Load(ctx context.Context) (*entity.UserData, bool, error) {
	if f.data == nil {
		return nil, false, nil
	}
	return f.data.Clone(), true, nil
}

func (f *fakeRepo) Save(ctx context.Context, data *entity.UserData) error {
	f.data = data.Clone()
	f.saves++
	return nil
}

func (f *fakeRepo) Clear(ctx context.Context) error {
	f.data = nil
	return nil
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

var testNow = time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

func strptr(s string) *string { return &s }

func appearancePtr(a entity.Appearance) *entity.Appearance { return &a }

func assertRecordCode(t *testing.T, err error, want domainerror.RecordErrorCode) {
	t.Helper()
	var recordErr *domainerror.RecordError
	if !errors.As(err, &recordErr) {
		t.Fatalf("expected a record error, got %v", err)
	}
	if recordErr.Code != want {
		t.Errorf("expected code %s, got %s", want, recordErr.Code)
	}
}

func TestUpdateProfileUseCase(t *testing.T) {
	t.Run("updates name and appearance together", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewUpdateProfileUseCase(repo, fixedClock{testNow})

		out, err := uc.Execute(context.Background(), UpdateProfileInput{
			UserName:   strptr("  Sam  "),
			Appearance: appearancePtr(entity.AppearanceDark),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Data.UserName != "Sam" {
			t.Errorf("expected trimmed name, got %q", out.Data.UserName)
		}
		if repo.data.Appearance != entity.AppearanceDark {
			t.Errorf("expected dark persisted, got %q", repo.data.Appearance)
		}
	})

	t.Run("nil fields leave the record untouched", func(t *testing.T) {
		existing := entity.NewUserData(testNow)
		existing.UserName = "Sam"
		existing.Appearance = entity.AppearanceLight
		repo := &fakeRepo{data: existing}
		uc := NewUpdateProfileUseCase(repo, fixedClock{testNow})

		out, err := uc.Execute(context.Background(), UpdateProfileInput{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Data.UserName != "Sam" || out.Data.Appearance != entity.AppearanceLight {
			t.Errorf("expected record unchanged, got %q %q", out.Data.UserName, out.Data.Appearance)
		}
	})

	t.Run("rejects a blank name", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := NewUpdateProfileUseCase(repo, fixedClock{testNow})

		_, err := uc.Execute(context.Background(), UpdateProfileInput{UserName: strptr("   ")})
		assertRecordCode(t, err, domainerror.ErrCodeInvalidUserName)
		if repo.saves != 0 {
			t.Error("expected nothing persisted")
		}
	})

	t.Run("rejects an unknown appearance", func(t *testing.T) {
		uc := NewUpdateProfileUseCase(&fakeRepo{}, fixedClock{testNow})

		_, err := uc.Execute(context.Background(), UpdateProfileInput{
			Appearance: appearancePtr(entity.Appearance("neon")),
		})
		assertRecordCode(t, err, domainerror.ErrCodeInvalidAppearance)
	})
}

func TestExportDataUseCase(t *testing.T) {
	t.Run("renders the stored record as indented JSON", func(t *testing.T) {
		data := entity.NewUserData(testNow)
		data.UserName = "Sam"
		data.CurrentStreak = 4
		uc := NewExportDataUseCase(&fakeRepo{data: data}, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded map[string]any
		if err := json.Unmarshal(out.JSON, &decoded); err != nil {
			t.Fatalf("export is not valid JSON: %v", err)
		}
		if decoded["userName"] != "Sam" {
			t.Errorf("expected camelCase userName, got %v", decoded["userName"])
		}
		if decoded["currentStreak"] != float64(4) {
			t.Errorf("expected currentStreak 4, got %v", decoded["currentStreak"])
		}
		if !strings.Contains(string(out.JSON), "\n  ") {
			t.Error("expected indented output")
		}
	})

	t.Run("empty storage exports the defaults", func(t *testing.T) {
		uc := NewExportDataUseCase(&fakeRepo{}, fixedClock{testNow})

		out, err := uc.Execute(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		var decoded map[string]any
		if err := json.Unmarshal(out.JSON, &decoded); err != nil {
			t.Fatalf("export is not valid JSON: %v", err)
		}
		if decoded["userName"] != "Friend" {
			t.Errorf("expected default name, got %v", decoded["userName"])
		}
	})
}
