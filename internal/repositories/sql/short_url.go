package sql

import (
	"context"
	"errors"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
	"github.com/fsdevblog/shortcode/internal/repositories"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ShortURLRepo struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewShortURLRepo(db *gorm.DB, logger *zap.Logger) *ShortURLRepo {
	return &ShortURLRepo{
		db:     db,
		logger: logger.With(zap.String("module", "repository/sql/short_url")),
	}
}

// Create вставляет запись. Уникальность кода обеспечивает индекс short_code, проверки
// существования до вставки нет.
func (u *ShortURLRepo) Create(ctx context.Context, sURL *models.ShortURL) error {
	if err := u.db.WithContext(ctx).Create(sURL).Error; err != nil {
		converted := ConvertErrorType(err)
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
	if err := u.db.WithContext(ctx).Where("short_code = ?", code).First(&sURL).Error; err != nil {
		return nil, fmt.Errorf("failed to get record by short code %s: %w", code, ConvertErrorType(err))
	}
	return &sURL, nil
}
