package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/fsdevblog/shortcode/internal/config"
	"github.com/fsdevblog/shortcode/internal/controllers"
	"github.com/fsdevblog/shortcode/internal/db"
	"github.com/fsdevblog/shortcode/internal/logs"
	"github.com/fsdevblog/shortcode/internal/services"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	config     config.Config
	dbServices *services.Services
	closeConn  func() error
	Logger     *zap.Logger
}

func New(appConf config.Config) (*App, error) {
	logger, logErr := logs.New(appConf.LoggerOptions())
	if logErr != nil {
		return nil, fmt.Errorf("init logger: %w", logErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	storageType := whatIsDBStorageType(&appConf)
	conn, connErr := db.NewConnectionFactory(ctx, db.FactoryConfig{
		StorageType: storageType,
		PostgresDSN: &appConf.DatabaseDSN,
		SQLitePath:  &appConf.SQLitePath,
		RedisAddr:   &appConf.RedisAddr,
	})
	if connErr != nil {
		return nil, fmt.Errorf("init storage: %w", connErr)
	}
	logger.Info("storage connected", zap.String("type", string(storageType)))

	dbServices, servErr := services.Factory(conn, services.ServiceType(storageType), logger)
	if servErr != nil {
		return nil, fmt.Errorf("init services: %w", servErr)
	}

	return &App{
		config:     appConf,
		dbServices: dbServices,
		closeConn:  connCloser(conn),
		Logger:     logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер и блокируется до SIGINT/SIGTERM или ошибки сервера.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr: a.config.ServerAddress,
		Handler: controllers.SetupRouter(controllers.RouterParams{
			URLService:  a.dbServices.URLService,
			PingService: a.dbServices.PingService,
			AppConf:     a.config,
			Logger:      a.Logger,
		}),
		ReadHeaderTimeout: controllers.DefaultRequestTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errChan <- err
		}
	}()
	a.Logger.Info("URL shortener is listening", zap.String("address", a.config.ServerAddress))

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.Error("server error", zap.Error(serverErr))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		a.Logger.Error("server shutdown error", zap.Error(err))
	}
	if err := a.closeConn(); err != nil {
		a.Logger.Error("close storage error", zap.Error(err))
	}
	_ = a.Logger.Sync()

	return serverErr
}

func whatIsDBStorageType(appConf *config.Config) db.StorageType {
	switch {
	case appConf.DatabaseDSN != "":
		return db.StorageTypePostgres
	case appConf.SQLitePath != "":
		return db.StorageTypeSQLite
	case appConf.RedisAddr != "":
		return db.StorageTypeRedis
	default:
		return db.StorageTypeInMemory
	}
}

// connCloser возвращает функцию освобождения подключения, созданного db.NewConnectionFactory.
func connCloser(conn any) func() error {
	switch c := conn.(type) {
	case *pgxpool.Pool:
		return func() error {
			c.Close()
			return nil
		}
	case *gorm.DB:
		return func() error {
			sqlDB, err := c.DB()
			if err != nil {
				return fmt.Errorf("get sql db: %w", err)
			}
			return sqlDB.Close() //nolint:wrapcheck
		}
	case io.Closer:
		return c.Close
	default:
		return func() error { return nil }
	}
}
