package pg

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"go.uber.org/zap"
)

const (
	insertShortURLSQL = `INSERT INTO short_urls (short_code, original_url) VALUES ($1, $2) RETURNING id, created_at`
	selectShortURLSQL = `SELECT id, created_at, short_code, original_url FROM short_urls WHERE short_code = $1`
)

type ShortURLRepo struct {
	conn   DBTX
	logger *zap.Logger
}

func NewShortURLRepo(conn DBTX, logger *zap.Logger) *ShortURLRepo {
	return &ShortURLRepo{
		conn:   conn,
		logger: logger.With(zap.String("module", "repository/pg/short_url")),
	}
}

// Create вставляет запись одним INSERT. Конкурентные вставки одного кода разрешает
// уникальный индекс idx_short_urls_short_code.
func (u *ShortURLRepo) Create(ctx context.Context, sURL *models.ShortURL) error {
	row := u.conn.QueryRow(ctx, insertShortURLSQL, sURL.ShortCode, sURL.OriginalURL)
	if err := row.Scan(&sURL.ID, &sURL.CreatedAt); err != nil {
		converted := convertErrorType(err)
		if !errors.Is(converted, repositories.ErrDuplicateKey) {
			u.logger.Error("failed to create record",
				zap.String("short_code", sURL.ShortCode), zap.Error(err))
		}
		return fmt.Errorf("failed to create record with code %s: %w", sURL.ShortCode, converted)
	}
	return nil
}

func (u *ShortURLRepo) GetByShortCode(ctx context.Context, code string) (*models.ShortURL, error) {
	var sURL models.ShortURL
	err := u.conn.QueryRow(ctx, selectShortURLSQL, code).
		Scan(&sURL.ID, &sURL.CreatedAt, &sURL.ShortCode, &sURL.OriginalURL)
	if err != nil {
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, convertErrorType(err))
	}
	return &sURL, nil
}
