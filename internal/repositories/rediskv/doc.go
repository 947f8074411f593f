// Package rediskv предоставляет реализацию репозиториев коротких ссылок и настроек для Redis.
//
// Запись ссылки выполняется через SETNX, поэтому занятость кода проверяет сам Redis
// атомарно с вставкой. Ошибки go-redis преобразуются в ошибки уровня репозитория:
//   - SETNX вернул false -> repositories.ErrDuplicateKey
//   - redis.Nil -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package rediskv
