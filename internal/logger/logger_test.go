// internal/logger/logger_test.go
//
// Unit-tests for the zap/lumberjack bootstrap.
//
// Notes
// -----
// • Tests write under t.TempDir(); the daily file name uses today's date.

package logger

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesDailyJSONFile(t *testing.T) {
	root := t.TempDir()
	prev := zap.L()
	t.Cleanup(func() { zap.ReplaceGlobals(prev) })

	log, err := New(root, false)
	require.NoError(t, err)
	log.Infow("contact form bound", "selector", ".contact-form")
	require.NoError(t, log.Sync())

	path := filepath.Join(root, "logs", time.Now().Format("2006-01-02")+".log")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"msg":"contact form bound"`)
	assert.Contains(t, string(raw), `"level":"info"`)
}

func TestLevel_FromEnv(t *testing.T) {
	t.Setenv(levelEnvKey, "debug")
	assert.Equal(t, zapcore.DebugLevel, level())

	t.Setenv(levelEnvKey, "loud")
	assert.Equal(t, zapcore.InfoLevel, level())
}

func TestConsole_NotNil(t *testing.T) {
	assert.NotNil(t, Console())
}
