package config

import (
	"flag"
	"net/url"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/pkg/errors"
)

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL (Scheme://Host)
	BaseURL string `env:"BASE_URL"`
	// DSN PostgreSQL. Если задан - хранилище postgres
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к файлу SQLite
	SQLitePath string `env:"SQLITE_PATH"`
	// Адрес Redis
	RedisAddr string `env:"REDIS_ADDR"`
	// Уровень логирования
	LogLevel string `env:"LOG_LEVEL"`
}

// LoadConfig читает конфигурацию из ENV и флагов командной строки. ENV имеет приоритет.
func LoadConfig() (*Config, error) {
	return loadConfig(os.Args[1:])
}

// MustLoadConfig как LoadConfig, но паникует при ошибке.
func MustLoadConfig() *Config {
	conf, err := LoadConfig()
	if err != nil {
		panic(err)
	}
	return conf
}

func loadConfig(args []string) (*Config, error) {
	var envConfig Config
	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrap(err, "parse ENV config error")
	}

	flagsConfig, err := loadFlags(args)
	if err != nil {
		return nil, errors.Wrap(err, "parse flags error")
	}

	conf := mergeConfig(&envConfig, flagsConfig)

	if conf.BaseURL != "" {
		baseURL, baseErr := normalizeBaseURL(conf.BaseURL)
		if baseErr != nil {
			return nil, baseErr
		}
		conf.BaseURL = baseURL
	}
	return conf, nil
}

// loadFlags парсит флаги командной строки.
func loadFlags(args []string) (*Config, error) {
	var flagsConfig Config
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)

	fs.StringVar(&flagsConfig.ServerAddress, "a", "localhost:3000", "Адрес сервера")
	fs.StringVar(&flagsConfig.BaseURL, "b", "",
		"Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запроса)")
	fs.StringVar(&flagsConfig.DatabaseDSN, "d", "", "DSN PostgreSQL")
	fs.StringVar(&flagsConfig.SQLitePath, "s", "", "Путь к файлу SQLite")
	fs.StringVar(&flagsConfig.RedisAddr, "r", "", "Адрес Redis (host:port)")
	fs.StringVar(&flagsConfig.LogLevel, "l", "", "Уровень логирования (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &flagsConfig, nil
}

// normalizeBaseURL отсекает Path и Query, если они заданы в базовом урле.
func normalizeBaseURL(rawURL string) (string, error) {
	parsedURL, err := url.ParseRequestURI(rawURL)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse base url")
	}
	return (&url.URL{Scheme: parsedURL.Scheme, Host: parsedURL.Host}).String(), nil
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress: defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:       defaultIfBlank(envConfig.BaseURL, flagsConfig.BaseURL),
		DatabaseDSN:   defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLitePath:    defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath),
		RedisAddr:     defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		LogLevel:      defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
	}
}

func defaultIfBlank(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
