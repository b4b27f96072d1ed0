package logging

import (
	"context"
	"fmt"
	"log/slog"

	"go.uber.org/zap"
)

// NewZap returns a Logger backed by a zap.Logger. Passing nil yields a no-op
// logger.
func NewZap(logger *zap.Logger) Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &zapLogger{logger: logger}
}

type zapLogger struct {
	logger *zap.Logger
}

func (l *zapLogger) Debug(_ context.Context, msg string, args ...any) {
	l.logger.Debug(msg, fields(args)...)
}

func (l *zapLogger) Info(_ context.Context, msg string, args ...any) {
	l.logger.Info(msg, fields(args)...)
}

func (l *zapLogger) Warn(_ context.Context, msg string, args ...any) {
	l.logger.Warn(msg, fields(args)...)
}

func (l *zapLogger) Error(_ context.Context, msg string, args ...any) {
	l.logger.Error(msg, fields(args)...)
}

func (l *zapLogger) With(args ...any) Logger {
	return &zapLogger{logger: l.logger.With(fields(args)...)}
}

// fields converts slog-style arguments (alternating key/value pairs, or
// slog.Attr values) into zap fields.
func fields(args []any) []zap.Field {
	out := make([]zap.Field, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case slog.Attr:
			out = append(out, zap.Any(v.Key, v.Value.Resolve().Any()))
		case zap.Field:
			out = append(out, v)
		case string:
			if i+1 >= len(args) {
				out = append(out, zap.Any("!BADKEY", v))
				continue
			}
			out = append(out, zap.Any(v, args[i+1]))
			i++
		default:
			out = append(out, zap.Any("!BADKEY", fmt.Sprint(v)))
		}
	}
	return out
}
