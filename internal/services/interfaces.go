package services

import (
	"context"

	"github.com/fsdevblog/shortcode/internal/models"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock.go -package=mocks

// ShortURLRepository описывает реестр коротких ссылок.
type ShortURLRepository interface {
	// Create атомарно сохраняет запись, если код свободен. Занятый код -> repositories.ErrDuplicateKey.
	// Проверка и вставка выполняются хранилищем одной операцией.
	Create(ctx context.Context, sURL *models.ShortURL) error
	// GetByShortCode находит запись по коду. Нет записи -> repositories.ErrNotFound.
	GetByShortCode(ctx context.Context, code string) (*models.ShortURL, error)
}

// SettingsRepository описывает хранилище именованных настроек.
type SettingsRepository interface {
	// Get возвращает настройку. Нет настройки -> repositories.ErrNotFound.
	Get(ctx context.Context, key string) (*models.Setting, error)
	// Upsert создает или перезаписывает настройку.
	Upsert(ctx context.Context, key, value string) error
}

// CodeGenerator генерирует кандидата в короткие коды заданной длины.
type CodeGenerator interface {
	Generate(length int) string
}
