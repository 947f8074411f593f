package memstore

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fsdevblog/shortcode/internal/db/memory"
	"github.com/fsdevblog/shortcode/internal/models"
)

// ShortURLRepo репозиторий коротких ссылок в памяти. Ключ хранилища - короткий код.
type ShortURLRepo struct {
	s   *memory.MStorage
	seq atomic.Uint64
}

// NewShortURLRepo создает новый экземпляр репозитория.
//
// Параметры:
//   - store: хранилище в памяти, выделенное под ссылки
//
// Возвращает:
//   - *ShortURLRepo: инициализированный репозиторий
func NewShortURLRepo(store *memory.MStorage) *ShortURLRepo {
	return &ShortURLRepo{
		s: store,
	}
}

// Create атомарно сохраняет запись, если код еще не занят.
//
// Параметры:
//   - ctx: контекст выполнения
//   - sURL: запись для создания. ID и CreatedAt заполняются репозиторием
//
// Возвращает:
//   - error: repositories.ErrDuplicateKey если код занят, либо иная ошибка (преобразованная через convertErrorType)
func (u *ShortURLRepo) Create(ctx context.Context, sURL *models.ShortURL) error {
	record := *sURL
	record.ID = uint(u.seq.Add(1))
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if err := memory.Set[models.ShortURL](ctx, record.ShortCode, &record, u.s); err != nil {
		return fmt.Errorf("failed to create record with code %s: %w", record.ShortCode, convertErrorType(err))
	}
	*sURL = record
	return nil
}

// GetByShortCode получает запись по короткому коду.
//
// Параметры:
//   - ctx: контекст выполнения
//   - code: короткий код
//
// Возвращает:
//   - *models.ShortURL: найденная запись
//   - error: ошибка поиска (преобразованная через convertErrorType)
func (u *ShortURLRepo) GetByShortCode(ctx context.Context, code string) (*models.ShortURL, error) {
	sURL, err := memory.Get[models.ShortURL](ctx, code, u.s)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to get record by short code %s: %w",
			code, convertErrorType(err),
		)
	}
	return sURL, nil
}
