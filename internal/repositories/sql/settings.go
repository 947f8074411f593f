package sql

import (
	"context"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepo struct {
	db *gorm.DB
}

func NewSettingsRepo(db *gorm.DB) *SettingsRepo {
	return &SettingsRepo{db: db}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	var setting models.Setting
	if err := r.db.WithContext(ctx).Where("key = ?", key).First(&setting).Error; err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, ConvertErrorType(err))
	}
	return &setting, nil
}

// Upsert INSERT ... ON CONFLICT (key) DO UPDATE, последняя запись побеждает.
func (r *SettingsRepo) Upsert(ctx context.Context, key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
	if err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, ConvertErrorType(err))
	}
	return nil
}
