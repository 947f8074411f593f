package rediskv

import (
	"context"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/redis/go-redis/v9"
)

const settingKeyPrefix = "setting:"

// SettingsRepo хранит только значение настройки, временные метки в Redis не ведутся.
type SettingsRepo struct {
	rdb redis.Cmdable
}

func NewSettingsRepo(rdb redis.Cmdable) *SettingsRepo {
	return &SettingsRepo{rdb: rdb}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	value, err := r.rdb.Get(ctx, settingKeyPrefix+key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, convertErrorType(err))
	}
	return &models.Setting{Key: key, Value: value}, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, key, value string) error {
	if err := r.rdb.Set(ctx, settingKeyPrefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, convertErrorType(err))
	}
	return nil
}
