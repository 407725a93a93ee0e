package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"

	"ai-nadsenci-web/internal/platform/logger"
)

// AccessLog deja en ctx un logger con request_id y escribe una línea por
// request al terminar. Va después de RequestID.
func AccessLog(log logger.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = logger.Nop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLog := log
			if id, ok := GetRequestID(r.Context()); ok {
				reqLog = log.With(map[string]any{"request_id": id})
			}
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r.WithContext(WithLogger(r.Context(), reqLog)))

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			fields := map[string]any{
				"method":      r.Method,
				"path":        r.URL.Path,
				"status":      status,
				"bytes":       ww.BytesWritten(),
				"duration_ms": time.Since(start).Milliseconds(),
			}
			if status >= http.StatusInternalServerError {
				reqLog.Warn("request", fields)
				return
			}
			reqLog.Debug("request", fields)
		})
	}
}
