package bmeta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	info := New("v1.2.0", "", "abc123")
	assert.Equal(t, Info{Version: "v1.2.0", Date: defaultBuildMeta, Commit: "abc123"}, info)
}

func TestInfo_Fields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	zap.New(core).Info("build", New("", "", "").Fields()...)

	entries := logs.All()
	if assert.Len(t, entries, 1) {
		ctx := entries[0].ContextMap()
		assert.Equal(t, defaultBuildMeta, ctx["build_version"])
		assert.Equal(t, defaultBuildMeta, ctx["build_date"])
		assert.Equal(t, defaultBuildMeta, ctx["build_commit"])
	}
}
