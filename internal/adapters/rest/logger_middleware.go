package rest

import (
	"listing-portal/internal/contextkeys"
	"listing-portal/internal/core/port"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

const traceHeader = "X-Trace-ID"

// LoggerMiddleware выдает каждому запросу trace_id (берет из X-Trace-ID, если он валидный uuid)
// и логгер с этим trace_id. Тот же trace_id уходит в backend и возвращается клиенту.
func LoggerMiddleware(logger port.LoggerPort) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			traceID := r.Header.Get(traceHeader)
			if _, err := uuid.Parse(traceID); err != nil {
				traceID = uuid.New().String()
			}
			reqLogger := logger.WithFields(port.Fields{"trace_id": traceID})

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			ww.Header().Set(traceHeader, traceID)
			started := time.Now()

			next.ServeHTTP(ww, r.WithContext(contextkeys.WithRequestScope(r.Context(), reqLogger, traceID)))

			logRequest(reqLogger, r, ww.Status(), ww.BytesWritten(), time.Since(started))
		})
	}
}

// logRequest: 5xx - Error, 4xx - Warn, healthcheck - Debug, остальное - Info.
func logRequest(logger port.LoggerPort, r *http.Request, status, written int, elapsed time.Duration) {
	if status == 0 {
		status = http.StatusOK
	}
	fields := port.Fields{
		"http_method":   r.Method,
		"http_path":     r.URL.Path,
		"remote_addr":   r.RemoteAddr,
		"status_code":   status,
		"bytes_written": written,
		"duration_ms":   elapsed.Milliseconds(),
	}

	switch {
	case status >= http.StatusInternalServerError:
		logger.Error("Request failed", nil, fields)
	case status >= http.StatusBadRequest:
		logger.Warn("Request rejected", fields)
	case r.URL.Path == "/healthz":
		logger.Debug("Healthcheck", fields)
	default:
		logger.Info("Request finished", fields)
	}
}
