package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/grove/backend/internal/domain/entity"
)

func openTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	srv := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: srv.Addr()})
}

func TestRedisRecordRepository(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local)

	t.Run("save then load round trips the record", func(t *testing.T) {
		repo := NewRedisRecordRepository(openTestRedis(t), "grove_user_data")

		data := entity.NewUserData(now)
		data.UserName = "Sam"
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
		if loaded.UserName != "Sam" || len(loaded.Goals) != 1 {
			t.Errorf("unexpected record: %q with %d goals", loaded.UserName, len(loaded.Goals))
		}
	})

	t.Run("missing key reports absent without error", func(t *testing.T) {
		repo := NewRedisRecordRepository(openTestRedis(t), "grove_user_data")

		loaded, found, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if found || loaded != nil {
			t.Error("expected no record")
		}
	})

	t.Run("corrupt blob is treated as absent", func(t *testing.T) {
		srv := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
		if err := srv.Set("grove_user_data", "{not json"); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
		repo := NewRedisRecordRepository(client, "grove_user_data")

		_, found, err := repo.Load(ctx)
		if err != nil {
			t.Fatalf("load failed: %v", err)
		}
		if found {
			t.Error("expected a corrupt record to read as absent")
		}
	})

	t.Run("clear removes the key", func(t *testing.T) {
		repo := NewRedisRecordRepository(openTestRedis(t), "grove_user_data")

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
}
