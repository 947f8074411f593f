package controllers

import (
	"context"

	"github.com/fsdevblog/shortcode/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocksctrl/store.go -package=mocksctrl

type ConnectionChecker interface {
	CheckConnection(ctx context.Context) error
}

type ShortURLStore interface {
	// Register выдает новый короткий код для rawURL.
	Register(ctx context.Context, rawURL string) (*models.ShortURL, error)
	// Resolve находит запись по короткому коду.
	Resolve(ctx context.Context, code string) (*models.ShortURL, error)
}
