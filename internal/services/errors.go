package services

import "errors"

var (
	// ErrRecordNotFound для кода нет записи. Отдается клиенту как есть.
	ErrRecordNotFound = errors.New("[service]: record not found")
	// ErrInternal оборачивает отказ хранилища. Сервис его не повторяет, решение за вызывающим.
	ErrInternal = errors.New("[service]: internal error")
	// ErrCapacityExhausted исчерпан лимит раундов роста длины кода.
	ErrCapacityExhausted = errors.New("[service]: short code capacity exhausted")
)
