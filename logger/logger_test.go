package logger

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInitializeJSON(t *testing.T) {
	err := Initialize(true)
	require.NoError(t, err)
	assert.True(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestInitializeConsole(t *testing.T) {
	err := Initialize(false)
	require.NoError(t, err)
	assert.False(t, JSONOutput)
	assert.NotNil(t, Logger)
}

func TestVerbosityToLevel(t *testing.T) {
	tests := []struct {
		verbosity int
		want      zapcore.Level
	}{
		{0, zapcore.WarnLevel},
		{1, zapcore.InfoLevel},
		{2, zapcore.DebugLevel},
		{3, zapcore.DebugLevel},
		{7, zapcore.DebugLevel},
		{-1, zapcore.WarnLevel},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, VerbosityToLevel(tt.verbosity), "verbosity %d", tt.verbosity)
	}
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "store", abbreviateName("store"))
	assert.Equal(t, "p.store", abbreviateName("pattern.store"))
	assert.Equal(t, "p.store.cache", abbreviateName("pattern.store.cache"))
}

func TestMinimalEncoderEntry(t *testing.T) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Date(2026, 3, 1, 13, 4, 35, 0, time.UTC),
		LoggerName: "pattern.store",
		Message:    "Built pattern cache",
	}
	fields := []zapcore.Field{
		{Key: FieldLanguage, Type: zapcore.StringType, String: "ja"},
		{Key: FieldCount, Type: zapcore.Int64Type, Integer: 42},
	}

	buf, err := enc.EncodeEntry(entry, fields)
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "13:04:35")
	assert.Contains(t, out, "p.store")
	assert.Contains(t, out, "Built pattern cache")
	assert.Contains(t, out, "ja")
	assert.Contains(t, out, "42")
	// INFO level stays unlabelled
	assert.NotContains(t, out, "INFO")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestMinimalEncoderWarnLabel(t *testing.T) {
	enc := newMinimalEncoder()
	entry := zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "Schema lint issues found",
	}
	buf, err := enc.EncodeEntry(entry, nil)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "WARN")
}
