package pg

import (
	"context"
	"fmt"

	"github.com/fsdevblog/shortcode/internal/models"
)

const (
	selectSettingSQL = `SELECT key, value, created_at, updated_at FROM settings WHERE key = $1`
	upsertSettingSQL = `INSERT INTO settings (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = now()`
)

type SettingsRepo struct {
	conn DBTX
}

func NewSettingsRepo(conn DBTX) *SettingsRepo {
	return &SettingsRepo{conn: conn}
}

func (r *SettingsRepo) Get(ctx context.Context, key string) (*models.Setting, error) {
	var s models.Setting
	err := r.conn.QueryRow(ctx, selectSettingSQL, key).Scan(&s.Key, &s.Value, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get setting %s: %w", key, convertErrorType(err))
	}
	return &s, nil
}

func (r *SettingsRepo) Upsert(ctx context.Context, key, value string) error {
	if _, err := r.conn.Exec(ctx, upsertSettingSQL, key, value); err != nil {
		return fmt.Errorf("failed to upsert setting %s: %w", key, convertErrorType(err))
	}
	return nil
}
