package models

import "time"

// ShortCodeLengthKey ключ настройки с текущей длиной генерируемых кодов.
const ShortCodeLengthKey = "short_code_length"

// Setting именованное скалярное значение, общее для всех экземпляров сервиса.
type Setting struct {
	Key       string    `json:"key"       gorm:"primaryKey"`
	Value     string    `json:"value"     gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
