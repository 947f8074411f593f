package services

import (
	"context"

	"github.com/fsdevblog/shortcode/internal/models"
	"go.uber.org/zap"
)

// URLService сервис коротких ссылок: регистрация через Allocator, разрешение через Resolver.
type URLService struct {
	allocator *Allocator
	resolver  *Resolver
}

func NewURLService(
	urls ShortURLRepository,
	settings SettingsRepository,
	logger *zap.Logger,
	opts ...func(*AllocatorOptions),
) *URLService {
	lengths := NewCodeLengthStore(settings, logger)
	return &URLService{
		allocator: NewAllocator(urls, lengths, logger, opts...),
		resolver:  NewResolver(urls, logger),
	}
}

// Register выдает новый короткий код для rawURL.
func (s *URLService) Register(ctx context.Context, rawURL string) (*models.ShortURL, error) {
	return s.allocator.Allocate(ctx, rawURL)
}

// Resolve возвращает запись по коду либо ErrRecordNotFound.
func (s *URLService) Resolve(ctx context.Context, code string) (*models.ShortURL, error) {
	return s.resolver.Resolve(ctx, code)
}
