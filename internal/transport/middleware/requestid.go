package middleware

import (
	"net/http"

	"github.com/dcastaneda/security-admin/pkg/logger"

	"github.com/google/uuid"
)

// TraceID propagates an incoming X-Trace-ID or mints one, and scopes the
// request logger to it.
func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get("X-Trace-ID")
		if traceID == "" {
			traceID = uuid.NewString()
		}

		ctx := logger.With(r.Context(), "traceID", traceID)
		w.Header().Set("X-Trace-ID", traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
