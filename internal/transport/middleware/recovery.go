package middleware

import (
	"encoding/json"
	"net/http"
	"runtime/debug"

	"github.com/dcastaneda/security-admin/pkg/logger"
)

// Recovery converts panics into a 500 response instead of tearing down the
// connection, logging the stack for diagnosis.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.From(r.Context()).Error("panic recovered",
					"panic", rec,
					"method", r.Method,
					"path", r.URL.Path,
					"stack", string(debug.Stack()),
				)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]any{
					"error":   "INTERNAL_ERROR",
					"message": "internal server error",
				})
			}
		}()

		next.ServeHTTP(w, r)
	})
}
