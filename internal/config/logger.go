package config

import (
	"github.com/fsdevblog/shortcode/internal/logs"
)

// LoggerOptions переносит настройки логирования из конфига в logs.New.
// Пустой LogLevel оставляет уровень по умолчанию для окружения.
func (c *Config) LoggerOptions() func(*logs.LoggerOptions) {
	return func(o *logs.LoggerOptions) {
		if c.LogLevel != "" {
			o.Level = logs.LevelType(c.LogLevel)
		}
		o.InitialFields = map[string]any{"service": "shortener"}
	}
}
