//go:build unit

package zaplogger_test

import (
	"errors"
	"testing"

	"github.com/hugolhafner/go-serializer/logger"
	"github.com/hugolhafner/go-serializer/plugins/zaplogger"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_Log(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	l := zaplogger.New(zap.New(core))

	l.Debug("derived codec", "type", "main.Point", "fields", 2)
	l.Error("deserialize failed", "error", errors.New("boom"))

	entries := logs.All()
	require.Len(t, entries, 2)

	require.Equal(t, zapcore.DebugLevel, entries[0].Level)
	require.Equal(t, "derived codec", entries[0].Message)
	require.Equal(t, "main.Point", entries[0].ContextMap()["type"])
	require.EqualValues(t, 2, entries[0].ContextMap()["fields"])

	require.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	require.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLogger_DropsMalformedPairs(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.DebugLevel)
	l := zaplogger.New(zap.New(core))

	l.Info("odd", 42, "ignored", "type", "x", "dangling")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, map[string]any{"type": "x"}, entries[0].ContextMap())
}

func TestZapLogger_Level(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		level zapcore.Level
		want  logger.LogLevel
	}{
		{"debug", zapcore.DebugLevel, logger.DebugLevel},
		{"info", zapcore.InfoLevel, logger.InfoLevel},
		{"warn", zapcore.WarnLevel, logger.WarnLevel},
		{"error", zapcore.ErrorLevel, logger.ErrorLevel},
		{"fatal", zapcore.FatalLevel, logger.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				core, _ := observer.New(tt.level)
				require.Equal(t, tt.want, zaplogger.New(zap.New(core)).Level())
			},
		)
	}
}

func TestZapLogger_FiltersBelowLevel(t *testing.T) {
	t.Parallel()
	core, logs := observer.New(zapcore.WarnLevel)
	l := zaplogger.New(zap.New(core))

	l.Debug("hidden")
	l.Warn("shown")

	require.Equal(t, 1, logs.Len())
	require.Equal(t, "shown", logs.All()[0].Message)
}
