package controllers

import (
	"github.com/fsdevblog/shortcode/internal/config"
	"github.com/fsdevblog/shortcode/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RouterParams struct {
	URLService  ShortURLStore
	PingService ConnectionChecker
	AppConf     config.Config
	Logger      *zap.Logger
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.GzipMiddleware())

	shortURLController := NewShortURLController(params.URLService, params.AppConf.BaseURL)
	pingController := NewPingController(params.PingService)

	r.GET("/ping", pingController.Ping)
	r.POST("/shorten", shortURLController.Shorten)
	r.GET("/lookup", shortURLController.Lookup)
	r.GET("/:shortCode", shortURLController.Redirect)
	return r
}
