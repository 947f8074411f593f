package db

import (
	"context"

	"github.com/fsdevblog/shortcode/internal/db/memory"
)

// MemoryStorage хранилище в памяти: отдельные пространства для ссылок и для настроек.
type MemoryStorage struct {
	URLs     *memory.MStorage
	Settings *memory.MStorage
}

func NewMemStorage() *MemoryStorage {
	return &MemoryStorage{
		URLs:     memory.NewMemStorage(),
		Settings: memory.NewMemStorage(),
	}
}

func (m *MemoryStorage) Ping(ctx context.Context) error {
	return m.URLs.Ping(ctx) //nolint:wrapcheck
}
