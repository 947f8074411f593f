package rediskv

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
)

const (
	shortURLKeyPrefix = "short_url:"
	shortURLSeqKey    = "short_url_seq"
)

type ShortURLRepo struct {
	rdb redis.Cmdable
}

func NewShortURLRepo(rdb redis.Cmdable) *ShortURLRepo {
	return &ShortURLRepo{rdb: rdb}
}

func (u *ShortURLRepo) Create(ctx context.Context, sURL *models.ShortURL) error {
	id, err := u.rdb.Incr(ctx, shortURLSeqKey).Result()
	if err != nil {
		return fmt.Errorf("failed to allocate id: %w", convertErrorType(err))
	}

	record := *sURL
	record.ID = uint(id)
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	created, err := u.rdb.SetNX(ctx, shortURLKeyPrefix+record.ShortCode, payload, 0).Result()
	if err != nil {
		return fmt.Errorf("failed to create record with code %s: %w", record.ShortCode, convertErrorType(err))
	}
	if !created {
		return fmt.Errorf("failed to create record with code %s: %w", record.ShortCode, repositories.ErrDuplicateKey)
	}
	*sURL = record
	return nil
}

func (u *ShortURLRepo) GetByShortCode(ctx context.Context, code string) (*models.ShortURL, error) {
	payload, err := u.rdb.Get(ctx, shortURLKeyPrefix+code).Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, convertErrorType(err))
	}
	var sURL models.ShortURL
	if err := json.Unmarshal(payload, &sURL); err != nil {
		return nil, fmt.Errorf("failed to unmarshal record %s: %w", code, err)
	}
	return &sURL, nil
}
