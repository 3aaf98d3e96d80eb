package repositories

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/fabula-app/fabula/internal/logger"
	"github.com/fabula-app/fabula/internal/models"
)

// BookStatsCacheRepository caches derived book statistics in Redis.
// Cache failures are reported to the caller, which logs and falls back to
// the database; the cache is never authoritative.
type BookStatsCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewBookStatsCacheRepository creates a cache repository with the given TTL.
func NewBookStatsCacheRepository(client *redis.Client, expiration time.Duration) *BookStatsCacheRepository {
	return &BookStatsCacheRepository{client: client, exp: expiration}
}

func statsKey(bookID uuid.UUID) string {
	return "book_stats:" + bookID.String()
}

// Get returns the cached stats for a book, or nil on a cache miss.
func (r *BookStatsCacheRepository) Get(ctx context.Context, bookID uuid.UUID) (*models.BookStats, error) {
	key := statsKey(bookID)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		logger.Log.Infow("stats cache read failed", "key", key, "error", err)
		return nil, err
	}

	var stats models.BookStats
	if err := json.Unmarshal([]byte(val), &stats); err != nil {
		logger.Log.Infow("stats cache decode failed", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Infow("stats cache hit", "key", key)
	return &stats, nil
}

// Set stores the stats for a book with the configured TTL.
func (r *BookStatsCacheRepository) Set(ctx context.Context, bookID uuid.UUID, stats *models.BookStats) error {
	key := statsKey(bookID)

	data, err := json.Marshal(stats)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow("stats cache write",
		"key", key,
		"error", err,
	)

	return err
}

// Invalidate drops the cached stats for a book after a chapter mutation.
func (r *BookStatsCacheRepository) Invalidate(ctx context.Context, bookID uuid.UUID) error {
	key := statsKey(bookID)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("stats cache invalidate",
		"key", key,
		"error", err,
	)

	return err
}
