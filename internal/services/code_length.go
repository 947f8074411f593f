package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"go.uber.org/zap"
)

// CodeLengthStore читает и пишет текущую длину коротких кодов. Значение общее для всех реплик
// сервиса, поэтому кешировать его нельзя: каждый раунд аллокации читает заново.
type CodeLengthStore struct {
	settings SettingsRepository
	logger   *zap.Logger
}

func NewCodeLengthStore(settings SettingsRepository, logger *zap.Logger) *CodeLengthStore {
	return &CodeLengthStore{
		settings: settings,
		logger:   logger.With(zap.String("module", "services/code_length")),
	}
}

// Read возвращает сохраненную длину или models.DefaultShortCodeLength, если настройки нет
// либо она испорчена.
func (c *CodeLengthStore) Read(ctx context.Context) (int, error) {
	setting, err := c.settings.Get(ctx, models.ShortCodeLengthKey)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return models.DefaultShortCodeLength, nil
		}
		return 0, fmt.Errorf("read short code length: %w", err)
	}

	length, parseErr := strconv.Atoi(setting.Value)
	if parseErr != nil || length < 1 {
		c.logger.Warn("invalid short code length setting, using default",
			zap.String("value", setting.Value),
			zap.Int("default", models.DefaultShortCodeLength),
		)
		return models.DefaultShortCodeLength, nil
	}
	return length, nil
}

// Write сохраняет длину. Конкурентные записи не сериализуются, побеждает последняя.
func (c *CodeLengthStore) Write(ctx context.Context, length int) error {
	if length < 1 {
		return fmt.Errorf("short code length must be positive, got %d", length)
	}
	if err := c.settings.Upsert(ctx, models.ShortCodeLengthKey, strconv.Itoa(length)); err != nil {
		return fmt.Errorf("write short code length: %w", err)
	}
	return nil
}
