package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/grove/backend/internal/application/adapter"
	"github.com/grove/backend/internal/domain/entity"
)

// redisRecordRepository implements adapter.RecordRepository on a Redis
// key-value store, the closest server-side analogue of the original
// platform's key-value storage. Records never expire.
type redisRecordRepository struct {
	client *redis.Client
	key    string
}

// NewRedisRecordRepository creates a new Redis-backed record repository bound
// to the given storage key.
func NewRedisRecordRepository(client *redis.Client, key string) adapter.RecordRepository {
	return &redisRecordRepository{
		client: client,
		key:    key,
	}
}

// Load reads and decodes the stored record, treating corrupt blobs as absent.
func (r *redisRecordRepository) Load(ctx context.Context) (*entity.UserData, bool, error) {
	raw, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var data entity.UserData
	if err := json.Unmarshal(raw, &data); err != nil {
		slog.Error("Stored user record is unreadable, treating as absent", "error", err)
		return nil, false, nil
	}
	return &data, true, nil
}

// Save serializes and stores the record under the repository's key.
func (r *redisRecordRepository) Save(ctx context.Context, data *entity.UserData) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, r.key, raw, 0).Err()
}

// Clear removes the stored record.
func (r *redisRecordRepository) Clear(ctx context.Context) error {
	return r.client.Del(ctx, r.key).Err()
}
