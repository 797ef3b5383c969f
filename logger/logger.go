// Package logger is the leveled, key-value logging interface used across the
// serializer. Plug a concrete backend in with plugins/zaplogger.
package logger

type LogLevel int

const (
	DebugLevel LogLevel = iota
	InfoLevel
	WarnLevel
	ErrorLevel
)

func (l LogLevel) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return "unknown"
	}
}

// Base is the minimum a backend implements.
type Base interface {
	Level() LogLevel
	Log(level LogLevel, msg string, kv ...any)
}

type Logger interface {
	Base
	Debug(msg string, kv ...any)
	Info(msg string, kv ...any)
	Warn(msg string, kv ...any)
	Error(msg string, kv ...any)
}

// LevelWrapper turns a Base into a Logger, dropping entries below the
// backend's level before any key-value work is done.
type LevelWrapper struct {
	Base
}

func WrapLogger(l Base) Logger {
	if lg, ok := l.(Logger); ok {
		return lg
	}
	return &LevelWrapper{l}
}

func (w *LevelWrapper) Log(level LogLevel, msg string, kv ...any) {
	if level < w.Level() {
		return
	}
	w.Base.Log(level, msg, kv...)
}

func (w *LevelWrapper) Debug(msg string, kv ...any) {
	w.Log(DebugLevel, msg, kv...)
}

func (w *LevelWrapper) Info(msg string, kv ...any) {
	w.Log(InfoLevel, msg, kv...)
}

func (w *LevelWrapper) Warn(msg string, kv ...any) {
	w.Log(WarnLevel, msg, kv...)
}

func (w *LevelWrapper) Error(msg string, kv ...any) {
	w.Log(ErrorLevel, msg, kv...)
}

type NoopLogger struct{}

func (n *NoopLogger) Log(level LogLevel, msg string, kv ...any) {
	// no operation
}

func (n *NoopLogger) Level() LogLevel {
	return ErrorLevel + 1
}

func NewNoopLogger() Logger {
	return WrapLogger(&NoopLogger{})
}
