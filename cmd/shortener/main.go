package main

import (
	"go.uber.org/zap"

	"github.com/fsdevblog/shortcode/internal/app"
	"github.com/fsdevblog/shortcode/internal/bmeta"
	"github.com/fsdevblog/shortcode/internal/config"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ...".
//
//nolint:gochecknoglobals
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))
	a.Logger.Info("Starting short code service", bmeta.New(buildVersion, buildDate, buildCommit).Fields()...)
	a.Logger.Debug("Config loaded", zap.Any("config", appConf))

	if err := a.Run(); err != nil {
		a.Logger.Fatal("server stopped with error", zap.Error(err))
	}
}
