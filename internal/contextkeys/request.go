package contextkeys

import (
	"context"
	"listing-portal/internal/core/port"
)

type ctxKey int

const (
	loggerKey ctxKey = iota
	traceIDKey
)

// WithRequestScope кладет в контекст логгер запроса и его trace_id одним вызовом.
func WithRequestScope(ctx context.Context, logger port.LoggerPort, traceID string) context.Context {
	return ContextWithTraceID(ContextWithLogger(ctx, logger), traceID)
}

func ContextWithLogger(ctx context.Context, logger port.LoggerPort) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext никогда не возвращает nil: вне запроса логи молча отбрасываются.
func LoggerFromContext(ctx context.Context) port.LoggerPort {
	if logger, ok := ctx.Value(loggerKey).(port.LoggerPort); ok && logger != nil {
		return logger
	}
	return port.NopLogger{}
}

func ContextWithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKey, traceID)
}

// TraceIDFromContext - "" если запрос пришел не через LoggerMiddleware.
func TraceIDFromContext(ctx context.Context) string {
	traceID, _ := ctx.Value(traceIDKey).(string)
	return traceID
}
