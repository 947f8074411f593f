package models

import "time"

// DefaultShortCodeLength длина короткого кода, если в настройках ничего не сохранено.
const DefaultShortCodeLength = 4

// ShortURL структура модели хранения короткой ссылки.
type ShortURL struct {
	ID          uint      `json:"ID"`
	CreatedAt   time.Time `json:"createdAt"`
	ShortCode   string    `json:"shortCode"   gorm:"uniqueIndex;not null"`
	OriginalURL string    `json:"originalURL" gorm:"not null"`
}
