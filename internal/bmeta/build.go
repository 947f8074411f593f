// Package bmeta хранит метаданные сборки, подставляемые через -ldflags.
package bmeta

import "go.uber.org/zap"

const defaultBuildMeta = "N/A"

// Info версия, дата и коммит сборки.
type Info struct {
	Version string
	Date    string
	Commit  string
}

// New возвращает Info, заменяя пустые значения на "N/A".
func New(version, date, commit string) Info {
	return Info{
		Version: orDefault(version),
		Date:    orDefault(date),
		Commit:  orDefault(commit),
	}
}

// Fields поля для структурированного лога при старте.
func (i Info) Fields() []zap.Field {
	return []zap.Field{
		zap.String("build_version", i.Version),
		zap.String("build_date", i.Date),
		zap.String("build_commit", i.Commit),
	}
}

func orDefault(v string) string {
	if v == "" {
		return defaultBuildMeta
	}
	return v
}
