package logging

import (
	"context"
	"log/slog"
)

const redactedPlaceholder = "[redacted]"

// SecretKeys are the attribute keys Redacting scrubs when no keys are given.
var SecretKeys = []string{"passphrase", "private_key", "plaintext", "payload"}

// Redacted marks an attribute whose value was intentionally left out.
func Redacted(key string) slog.Attr {
	return slog.String(key, redactedPlaceholder)
}

// Placeholder returns the canonical string that represents a redacted value.
func Placeholder() string {
	return redactedPlaceholder
}

// Redacting wraps next so that any value logged under one of keys is replaced
// by Placeholder before it reaches the backend. Without keys, SecretKeys is
// used.
func Redacting(next Logger, keys ...string) Logger {
	if next == nil {
		next = New(nil)
	}
	if r, ok := next.(*redactingLogger); ok && len(keys) == 0 {
		return r
	}
	if len(keys) == 0 {
		keys = SecretKeys
	}
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &redactingLogger{next: next, keys: set}
}

type redactingLogger struct {
	next Logger
	keys map[string]struct{}
}

func (l *redactingLogger) Debug(ctx context.Context, msg string, args ...any) {
	l.next.Debug(ctx, msg, l.scrub(args)...)
}

func (l *redactingLogger) Info(ctx context.Context, msg string, args ...any) {
	l.next.Info(ctx, msg, l.scrub(args)...)
}

func (l *redactingLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.next.Warn(ctx, msg, l.scrub(args)...)
}

func (l *redactingLogger) Error(ctx context.Context, msg string, args ...any) {
	l.next.Error(ctx, msg, l.scrub(args)...)
}

func (l *redactingLogger) With(args ...any) Logger {
	return &redactingLogger{next: l.next.With(l.scrub(args)...), keys: l.keys}
}

// scrub returns args with secret values swapped for the placeholder. args is
// never modified in place.
func (l *redactingLogger) scrub(args []any) []any {
	var out []any
	set := func(i int, v any) {
		if out == nil {
			out = append([]any(nil), args...)
		}
		out[i] = v
	}
	for i := 0; i < len(args); i++ {
		switch v := args[i].(type) {
		case slog.Attr:
			if _, secret := l.keys[v.Key]; secret {
				set(i, Redacted(v.Key))
			}
		case string:
			if i+1 >= len(args) {
				continue
			}
			if _, secret := l.keys[v]; secret {
				set(i+1, Placeholder())
			}
			i++
		}
	}
	if out == nil {
		return args
	}
	return out
}
