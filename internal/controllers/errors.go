package controllers

import "errors"

// Ошибки, которые видит клиент.
var (
	ErrRecordNotFound = errors.New("short url not found")    // Запись не найдена
	ErrInternal       = errors.New("internal error")         // Прочая ошибка
	ErrUnavailable    = errors.New("short codes unavailable") // Исчерпан запас кодов
)
