package memory

import "errors"

var (
	// ErrNotFound ключ отсутствует в хранилище.
	ErrNotFound = errors.New("[memory]: record not found")
	// ErrDuplicateKey Set без WithOverwrite для уже занятого ключа.
	ErrDuplicateKey = errors.New("[memory]: duplicate key")
)
