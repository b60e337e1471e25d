package i18n

import (
	"context"
	"log/slog"
)

// cultureContextKey is the key for storing the request culture in context.
type cultureContextKey struct{}

// WithCulture stores the culture in the context.
func WithCulture(ctx context.Context, c Culture) context.Context {
	return context.WithValue(ctx, cultureContextKey{}, c)
}

// FromContext returns the culture stored in ctx.
// Invariant is returned when none is set.
func FromContext(ctx context.Context) Culture {
	if ctx == nil {
		return Invariant
	}
	c, _ := ctx.Value(cultureContextKey{}).(Culture)
	return c
}

// HasCulture reports whether a culture was explicitly stored in ctx.
func HasCulture(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	_, ok := ctx.Value(cultureContextKey{}).(Culture)
	return ok
}

// LoggerExtractor adds the request culture to every log record written with ctx.
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if !HasCulture(ctx) {
			return slog.Attr{}, false
		}
		return slog.String("culture", FromContext(ctx).String()), true
	}
}
