package kgoserde

import (
	"github.com/hugolhafner/go-serializer/logger"
	"github.com/twmb/franz-go/pkg/kgo"
)

var _ kgo.Logger = (*kgoLogger)(nil)

type kgoLogger struct {
	l logger.Logger
}

// Logger lets a kgo client log through l, so the client and the codecs
// share one sink. Pass it with kgo.WithLogger.
func Logger(l logger.Logger) kgo.Logger {
	return &kgoLogger{l: l}
}

func (kl *kgoLogger) Level() kgo.LogLevel {
	switch kl.l.Level() {
	case logger.DebugLevel:
		return kgo.LogLevelDebug
	case logger.InfoLevel:
		return kgo.LogLevelInfo
	case logger.WarnLevel:
		return kgo.LogLevelWarn
	case logger.ErrorLevel:
		return kgo.LogLevelError
	default:
		return kgo.LogLevelNone
	}
}

func (kl *kgoLogger) Log(level kgo.LogLevel, msg string, kv ...any) {
	switch level {
	case kgo.LogLevelDebug:
		kl.l.Log(logger.DebugLevel, msg, kv...)
	case kgo.LogLevelInfo:
		kl.l.Log(logger.InfoLevel, msg, kv...)
	case kgo.LogLevelWarn:
		kl.l.Log(logger.WarnLevel, msg, kv...)
	case kgo.LogLevelError:
		kl.l.Log(logger.ErrorLevel, msg, kv...)
	}
}
