// Package repositories общие ошибки реестра. Адаптеры хранилищ (memstore, sql, pg, rediskv)
// приводят к ним свои родные ошибки, сохраняя исходную через %w.
package repositories

import "errors"

var (
	// ErrNotFound нет записи с таким ключом.
	ErrNotFound = errors.New("[repository]: record not found")
	// ErrDuplicateKey ключ уже занят. Для коротких кодов это штатная коллизия, а не сбой.
	ErrDuplicateKey = errors.New("[repository]: duplicate key")
	// ErrUnknown любая другая ошибка хранилища.
	ErrUnknown = errors.New("[repository]: unknown error")
)
