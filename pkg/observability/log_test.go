package observability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeLog(t *testing.T) {
	t.Cleanup(func() {
		RawLog.Sync()
	})

	require.NoError(t, InitializeLog("debug"))
	assert.NotNil(t, Log)
	assert.True(t, RawLog.Core().Enabled(zapcore.DebugLevel))
}

func TestInitializeLog_InvalidLevel(t *testing.T) {
	before := Log

	assert.Error(t, InitializeLog("loud"))
	assert.Same(t, before, Log)
}
