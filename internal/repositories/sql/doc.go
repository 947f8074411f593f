// Package sql предоставляет реализацию репозиториев коротких ссылок и настроек поверх GORM (SQLite).
//
// Соединение должно быть открыто с gorm.Config{TranslateError: true}, иначе нарушение уникальности
// не отличить от прочих ошибок. Ошибки GORM преобразуются в ошибки уровня репозитория
// с помощью ConvertErrorType:
//   - gorm.ErrDuplicatedKey -> repositories.ErrDuplicateKey
//   - gorm.ErrRecordNotFound -> repositories.ErrNotFound
//   - другие ошибки -> repositories.ErrUnknown
package sql
