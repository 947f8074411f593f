package logs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("writes json to file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "app.log")
		log, err := New(func(o *LoggerOptions) {
			o.Level = LevelTypeInfo
			o.Encoding = EncodingTypeJSON
			o.OutputPaths = []string{path}
			o.InitialFields = map[string]any{"service": "shortcode"}
		})
		require.NoError(t, err)

		log.Debug("hidden")
		log.Info("visible")
		_ = log.Sync()

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"visible"`)
		assert.Contains(t, string(data), `"service":"shortcode"`)
		assert.NotContains(t, string(data), "hidden")
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := New(func(o *LoggerOptions) { o.Level = "loud" })
		assert.Error(t, err)
	})

	t.Run("must panics", func(t *testing.T) {
		assert.Panics(t, func() {
			MustNew(func(o *LoggerOptions) { o.Level = "loud" })
		})
	})
}
