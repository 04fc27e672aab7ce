package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/grove/backend/internal/domain/entity"
	"github.com/grove/backend/internal/integration/persistence/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open in-memory database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := db.AutoMigrate(&model.UserRecordModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestRecordRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	t.Run("save then load round trips the record", func(t *testing.T) {
		repo := NewRecordRepository(openTestDB(t), "grove_user_data")

		data := entity.NewUserData(now)
		data.UserName = "Sam"
		data.CurrentStreak = 4
		data.Goals = entity.GoalList{entity.NewNoSpendGoal("No takeout", "takeout", now)}
		if err := repo.Save(ctx, data); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		loaded, found, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if !found {
			t.Fatal("expected the record to be found")
		}
		if loaded.UserName != "Sam" || loaded.CurrentStreak != 4 {
			t.Errorf("unexpected record: %q streak %d", loaded.UserName, loaded.CurrentStreak)
		}
		if len(loaded.Goals) != 1 || loaded.Goals[0].Type() != entity.GoalTypeNoSpend {
			t.Errorf("expected the goal list to survive, got %+v", loaded.Goals)
		}
	})

	t.Run("empty table reports absent without error", func(t *testing.T) {
		repo := NewRecordRepository(openTestDB(t), "grove_user_data")

		loaded, found, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if found || loaded != nil {
			t.Error("expected no record")
		}
	})

	t.Run("saving twice overwrites the single row", func(t *testing.T) {
		db := openTestDB(t)
		repo := NewRecordRepository(db, "grove_user_data")

		first := entity.NewUserData(now)
		first.UserName = "First"
		second := entity.NewUserData(now)
		second.UserName = "Second"
		if err := repo.Save(ctx, first); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := repo.Save(ctx, second); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		var count int64
		if err := db.Model(&model.UserRecordModel{}).Count(&count).Error; err != nil {
			t.Fatalf("count failed: %v", err)
		}
		if count != 1 {
			t.Errorf("expected a single row, got %d", count)
		}

		loaded, _, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if loaded.UserName != "Second" {
			t.Errorf("expected the later save to win, got %q", loaded.UserName)
		}
	})

	t.Run("corrupt blob is treated as absent", func(t *testing.T) {
		db := openTestDB(t)
		row := model.UserRecordModel{Key: "grove_user_data", Data: []byte("{not json"), UpdatedAt: now}
		if err := db.Create(&row).Error; err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		repo := NewRecordRepository(db, "grove_user_data")

		_, found, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if found {
			t.Error("expected a corrupt record to read as absent")
		}
	})

	t.Run("clear removes the record", func(t *testing.T) {
		repo := NewRecordRepository(openTestDB(t), "grove_user_data")

		if err := repo.Save(ctx, entity.NewUserData(now)); err != nil {
			t.Fatalf("save failed: %v", err)
		}
		if err := repo.Clear(ctx); err != nil {
			t.Fatalf("clear failed: %v", err)
		}
		_, found, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if found {
			t.Error("expected the record gone after clear")
		}
	})

	t.Run("keys are isolated", func(t *testing.T) {
		db := openTestDB(t)
		repoA := NewRecordRepository(db, "key_a")
		repoB := NewRecordRepository(db, "key_b")

		data := entity.NewUserData(now)
		data.UserName = "Sam"
		if err := repoA.Save(ctx, data); err != nil {
			t.Fatalf("save failed: %v", err)
		}

		_, found, err := repoB.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if found {
			t.Error("expected no record under the other key")
		}
	})
}
