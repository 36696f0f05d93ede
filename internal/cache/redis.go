// Package cache holds decoded vehicle details in Redis so repeat
// lookups of the same VIN skip the upstream APIs.
package cache

import (
	"context"
	"time"

	"github.com/bytedance/sonic"
	"github.com/redis/go-redis/v9"

	"github.com/openvin/vin-decoder/internal/models"
)

const keyPrefix = "vin:"

type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(addr, password string, db int, ttl time.Duration) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &RedisCache{
		client: rdb,
		ttl:    ttl,
	}
}

func (r *RedisCache) Get(ctx context.Context, vin string) (*models.VehicleDetails, bool, error) {
	val, err := r.client.Get(ctx, keyPrefix+vin).Result()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var details models.VehicleDetails
	if err := sonic.UnmarshalString(val, &details); err != nil {
		return nil, false, err
	}
	return &details, true, nil
}

func (r *RedisCache) Set(ctx context.Context, vin string, details models.VehicleDetails) error {
	val, err := sonic.MarshalString(details)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, keyPrefix+vin, val, r.ttl).Err()
}
