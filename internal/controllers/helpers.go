package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fsdevblog/shortcode/internal/services"
	"github.com/gin-gonic/gin"
)

const (
	DefaultRequestTimeout = 3 * time.Second
)

// writeServiceError переводит ошибку сервиса в HTTP ответ. Детали уходят в ctx.Error для лога,
// клиент видит только обобщенное сообщение.
func writeServiceError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)
	switch {
	case errors.Is(err, services.ErrRecordNotFound):
		ctx.String(http.StatusNotFound, ErrRecordNotFound.Error())
	case errors.Is(err, services.ErrCapacityExhausted):
		ctx.String(http.StatusServiceUnavailable, ErrUnavailable.Error())
	default:
		ctx.String(http.StatusInternalServerError, ErrInternal.Error())
	}
}

// shortURL собирает короткую ссылку: baseURL/code, либо scheme://host запроса/code.
func shortURL(r *http.Request, baseURL, code string) string {
	if baseURL != "" {
		return fmt.Sprintf("%s/%s", baseURL, code)
	}
	var scheme = "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, r.Host, code)
}
