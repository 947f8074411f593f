package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"go.uber.org/zap"
)

// Resolver находит исходный URL по короткому коду. Только чтение, без побочных эффектов.
type Resolver struct {
	urls   ShortURLRepository
	logger *zap.Logger
}

func NewResolver(urls ShortURLRepository, logger *zap.Logger) *Resolver {
	return &Resolver{
		urls:   urls,
		logger: logger.With(zap.String("module", "services/resolver")),
	}
}

func (r *Resolver) Resolve(ctx context.Context, code string) (*models.ShortURL, error) {
	sURL, err := r.urls.GetByShortCode(ctx, code)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, fmt.Errorf("%w: code %s", ErrRecordNotFound, code)
		}
		r.logger.Error("failed to resolve short code", zap.String("short_code", code), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return sURL, nil
}
