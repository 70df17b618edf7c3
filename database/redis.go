package database

import (
	"context"
	"errors"
	"fmt"
	"kucukaslan/timeapp/config"
	"kucukaslan/timeapp/domain"
	"log"

	"github.com/redis/go-redis/v9"
)

var redisClient *redis.Client

// VisitsTotalKey holds the site-wide visit counter
const VisitsTotalKey = "visits:total"

var _ domain.VisitCounterCache = RedisCache{}

// RedisCache is the Redis-backed visit counter. The zero value is a
// disconnected cache.
type RedisCache struct {
	*redis.Client
}

func (r RedisCache) Connected() bool {
	return r.Client != nil
}

func (r RedisCache) IncrVisits(ctx context.Context) (int64, error) {
	if r.Client == nil {
		return 0, fmt.Errorf("Redis connection is not initialized")
	}
	return r.Incr(ctx, VisitsTotalKey).Result()
}

func (r RedisCache) GetVisits(ctx context.Context) (int64, bool, error) {
	if r.Client == nil {
		return 0, false, fmt.Errorf("Redis connection is not initialized")
	}
	total, err := r.Get(ctx, VisitsTotalKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return total, true, nil
}

// HealthCheck verifies that the Redis connection is alive
func (r RedisCache) HealthCheck(ctx context.Context) error {
	if r.Client == nil {
		return fmt.Errorf("Redis connection is not initialized")
	}
	return r.Ping(ctx).Err()
}

// InitRedis initializes the Redis client connection. An empty URL leaves
// Redis disabled and is not an error.
func InitRedis(ctx context.Context, cfg *config.RedisConfig) error {
	if cfg.URL == "" {
		log.Println("REDIS_URL not set, visit counter falls back to memory")
		return nil
	}

	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return fmt.Errorf("invalid REDIS_URL: %w", err)
	}

	client := redis.NewClient(opts)

	// Test the connection
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}

	redisClient = client
	log.Println("Redis connection established successfully")
	return nil
}

// CloseRedis closes the Redis client connection
func CloseRedis() error {
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			return fmt.Errorf("failed to close Redis connection: %w", err)
		}
		redisClient = nil
		log.Println("Redis connection closed")
	}
	return nil
}

func GetRedisCache() RedisCache {
	return RedisCache{redisClient}
}
