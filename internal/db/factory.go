package db

import (
	"context"
	"errors"
	"fmt"
)

type StorageType string

const (
	StorageTypePostgres StorageType = "postgres"
	StorageTypeSQLite   StorageType = "sqlite"
	StorageTypeRedis    StorageType = "redis"
	StorageTypeInMemory StorageType = "inMemory"
)

type FactoryConfig struct {
	StorageType StorageType
	PostgresDSN *string
	SQLitePath  *string
	RedisAddr   *string
}

// NewConnectionFactory создает подключение к хранилищу заданного типа.
// Тип возвращаемого значения зависит от StorageType:
//   - StorageTypePostgres: *pgxpool.Pool (схема мигрирована)
//   - StorageTypeSQLite: *gorm.DB (схема мигрирована)
//   - StorageTypeRedis: *redis.Client
//   - StorageTypeInMemory: *MemoryStorage
func NewConnectionFactory(ctx context.Context, config FactoryConfig) (any, error) {
	switch config.StorageType {
	case StorageTypePostgres:
		if config.PostgresDSN == nil || *config.PostgresDSN == "" {
			return nil, errors.New("postgres dsn is empty")
		}
		pool, err := NewPostgresConnection(ctx, *config.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("failed to create postgres connection: %w", err)
		}
		if migrateErr := MigratePostgres(ctx, pool); migrateErr != nil {
			pool.Close()
			return nil, fmt.Errorf("failed to migrate schema: %w", migrateErr)
		}
		return pool, nil
	case StorageTypeSQLite:
		if config.SQLitePath == nil || *config.SQLitePath == "" {
			return nil, errors.New("sqlite path is empty")
		}
		conn, err := NewSQLite(*config.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create sqlite connection: %w", err)
		}
		return conn, nil
	case StorageTypeRedis:
		if config.RedisAddr == nil || *config.RedisAddr == "" {
			return nil, errors.New("redis address is empty")
		}
		client, err := NewRedis(ctx, *config.RedisAddr)
		if err != nil {
			return nil, fmt.Errorf("failed to create redis connection: %w", err)
		}
		return client, nil
	case StorageTypeInMemory:
		return NewMemStorage(), nil
	default:
		return nil, fmt.Errorf("unknown storage type: %s", config.StorageType)
	}
}
