package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"ai-nadsenci-web/internal/platform/logger"
)

// Recover reemplaza a chi/middleware.Recoverer para loguear el panic con
// nuestro logger (y el request_id) en vez de stderr.
func Recover(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				// http.ErrAbortHandler es la forma estándar de cortar una respuesta.
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				LoggerFrom(r.Context(), log).Error("panic", map[string]any{
					"panic": fmt.Sprint(rec),
					"stack": string(debug.Stack()),
				})
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
