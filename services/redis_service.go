package services

import (
	"context"
	"time"

	"github.com/Jahid-Hassan-Noor/food-now/config"

	json "github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

// GetFromRedis loads a JSON value into target. A cache miss leaves
// target untouched and returns nil.
func GetFromRedis(ctx context.Context, rdb *redis.Client, key string, target interface{}) error {
	cachedData, err := rdb.Get(ctx, key).Result()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(cachedData), target); err != nil {
		return err
	}
	return nil
}

// SetToRedis stores value as JSON with a TTL.
func SetToRedis(ctx context.Context, rdb *redis.Client, key string, value interface{}, ttl time.Duration) error {
	dataJSON, err := json.Marshal(value)
	if err != nil {
		return err
	}

	if err := rdb.Set(ctx, key, dataJSON, ttl).Err(); err != nil {
		return err
	}
	return nil
}

// DeleteFromRedis removes a key.
func DeleteFromRedis(ctx context.Context, rdb *redis.Client, key string) error {
	if err := rdb.Del(ctx, key).Err(); err != nil {
		return err
	}
	return nil
}

const blacklistPrefix = "token:blacklist:"

// BlacklistToken marks a token revoked until it would have expired.
func BlacklistToken(tokenString string, ttl time.Duration) error {
	if config.RedisClient == nil {
		return nil
	}
	return config.RedisClient.Set(config.Ctx, blacklistPrefix+tokenString, "1", ttl).Err()
}

// IsTokenBlacklisted reports whether the token was revoked by logout.
func IsTokenBlacklisted(tokenString string) bool {
	if config.RedisClient == nil {
		return false
	}
	res, err := config.RedisClient.Exists(config.Ctx, blacklistPrefix+tokenString).Result()
	return err == nil && res > 0
}
