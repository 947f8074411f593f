package memstore

import (
	"context"
	"fmt"
	"time"

	"github.com/fsdevblog/shortcode/internal/db/memory"
	"github.com/fsdevblog/shortcode/internal/models"
)

// SettingsRepo репозиторий именованных настроек в памяти.
type SettingsRepo struct {
	s *memory.MStorage
}

func NewSettingsRepo(store *memory.MStorage) *SettingsRepo {
	return &SettingsRepo{s: store}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	setting, err := memory.Get[models.Setting](ctx, key, r.s)
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, convertErrorType(err))
	}
	return setting, nil
}

// Upsert перезаписывает значение настройки, побеждает последняя запись.
func (r *SettingsRepo) Upsert(ctx context.Context, key, value string) error {
	now := time.Now().UTC()
	setting := models.Setting{Key: key, Value: value, CreatedAt: now, UpdatedAt: now}
	if existing, err := memory.Get[models.Setting](ctx, key, r.s); err == nil {
		setting.CreatedAt = existing.CreatedAt
	}

	if err := memory.Set[models.Setting](ctx, key, &setting, r.s, memory.WithOverwrite()); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, convertErrorType(err))
	}
	return nil
}
