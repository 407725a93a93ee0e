package middleware

import (
	"context"

	"ai-nadsenci-web/internal/platform/logger"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	loggerKey    ctxKey = "logger"
)

func GetRequestID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(requestIDKey).(string)
	return v, ok && v != ""
}

// WithLogger guarda en ctx el logger del request (ya con request_id).
func WithLogger(ctx context.Context, l logger.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// LoggerFrom devuelve el logger del request o fallback si no hay.
func LoggerFrom(ctx context.Context, fallback logger.Logger) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	if fallback == nil {
		return logger.Nop()
	}
	return fallback
}
