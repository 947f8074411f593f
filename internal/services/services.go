package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortcode/internal/db"
	"github.com/fsdevblog/shortcode/internal/repositories/memstore"
	"github.com/fsdevblog/shortcode/internal/repositories/pg"
	"github.com/fsdevblog/shortcode/internal/repositories/rediskv"
	"github.com/fsdevblog/shortcode/internal/repositories/sql"
)

type ServiceType string

const (
	ServiceTypePostgres ServiceType = "postgres"
	ServiceTypeSQLite   ServiceType = "sqlite"
	ServiceTypeRedis    ServiceType = "redis"
	ServiceTypeInMemory ServiceType = "inMemory"
)

type Services struct {
	URLService  *URLService
	PingService *PingService
}

// Factory собирает сервисный слой поверх подключения, созданного db.NewConnectionFactory.
func Factory(conn any, sType ServiceType, logger *zap.Logger) (*Services, error) {
	switch sType {
	case ServiceTypePostgres:
		pool, ok := conn.(*pgxpool.Pool)
		if !ok {
			return nil, errors.New("invalid connection type. expected *pgxpool.Pool")
		}
		return newServices(pg.NewShortURLRepo(pool, logger), pg.NewSettingsRepo(pool), pool, logger), nil
	case ServiceTypeSQLite:
		gormDB, ok := conn.(*gorm.DB)
		if !ok {
			return nil, errors.New("invalid connection type. expected *gorm.DB")
		}
		return newServices(
			sql.NewShortURLRepo(gormDB, logger),
			sql.NewSettingsRepo(gormDB),
			gormPinger{db: gormDB},
			logger,
		), nil
	case ServiceTypeRedis:
		client, ok := conn.(*redis.Client)
		if !ok {
			return nil, errors.New("invalid connection type. expected *redis.Client")
		}
		return newServices(
			rediskv.NewShortURLRepo(client),
			rediskv.NewSettingsRepo(client),
			redisPinger{rdb: client},
			logger,
		), nil
	case ServiceTypeInMemory:
		store, ok := conn.(*db.MemoryStorage)
		if !ok {
			return nil, errors.New("invalid connection type. expected *db.MemoryStorage")
		}
		return newServices(
			memstore.NewShortURLRepo(store.URLs),
			memstore.NewSettingsRepo(store.Settings),
			store,
			logger,
		), nil
	default:
		return nil, fmt.Errorf("unknown service type: %s", sType)
	}
}

func newServices(urls ShortURLRepository, settings SettingsRepository, pinger Pinger, logger *zap.Logger) *Services {
	return &Services{
		URLService:  NewURLService(urls, settings, logger),
		PingService: NewPingService(pinger),
	}
}

type gormPinger struct {
	db *gorm.DB
}

func (p gormPinger) Ping(ctx context.Context) error {
	sqlDB, err := p.db.DB()
	if err != nil {
		return fmt.Errorf("get sql db: %w", err)
	}
	return sqlDB.PingContext(ctx) //nolint:wrapcheck
}

type redisPinger struct {
	rdb *redis.Client
}

func (p redisPinger) Ping(ctx context.Context) error {
	return p.rdb.Ping(ctx).Err() //nolint:wrapcheck
}
