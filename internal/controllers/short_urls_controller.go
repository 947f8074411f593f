package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ShortURLController struct {
	urlService ShortURLStore
	baseURL    string
}

func NewShortURLController(urlService ShortURLStore, baseURL string) *ShortURLController {
	return &ShortURLController{
		urlService: urlService,
		baseURL:    baseURL,
	}
}

type shortenRequest struct {
	OriginalURL string `json:"original_url" binding:"required"`
}

type shortenResponse struct {
	ShortCode string `json:"short_code"`
	ShortURL  string `json:"short_url"`
}

// Shorten обрабатывает POST /shorten с телом {"original_url": "..."}.
//
// Ответы:
//   - 201 {"short_code": "...", "short_url": "..."}
//   - 400 тело не JSON или нет original_url
//   - 503 исчерпан запас коротких кодов
//   - 500 прочая ошибка
func (s *ShortURLController) Shorten(ctx *gin.Context) {
	var req shortenRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		_ = ctx.Error(err)
		ctx.String(http.StatusBadRequest, "original_url is required")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, err := s.urlService.Register(reqCtx, req.OriginalURL)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, shortenResponse{
		ShortCode: sURL.ShortCode,
		ShortURL:  shortURL(ctx.Request, s.baseURL, sURL.ShortCode),
	})
}

// Lookup обрабатывает GET /lookup?short_code=... и отдает исходный URL текстом.
func (s *ShortURLController) Lookup(ctx *gin.Context) {
	code := ctx.Query("short_code")
	if code == "" {
		ctx.String(http.StatusBadRequest, "short_code is required")
		return
	}

	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, err := s.urlService.Resolve(reqCtx, code)
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.String(http.StatusOK, sURL.OriginalURL)
}

// Redirect обрабатывает GET /:shortCode временным редиректом на исходный URL.
func (s *ShortURLController) Redirect(ctx *gin.Context) {
	reqCtx, cancel := context.WithTimeout(ctx, DefaultRequestTimeout)
	defer cancel()

	sURL, err := s.urlService.Resolve(reqCtx, ctx.Param("shortCode"))
	if err != nil {
		writeServiceError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusTemporaryRedirect, sURL.OriginalURL)
}
