package auth

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/access"
)

// GraphAPI is the slice of the permission graph the route guard needs.
type GraphAPI interface {
	EffectiveAccessByCode(rolIDs []int64, formCode string) (access.Capabilities, error)
}

// Middleware authenticates requests and enforces form-level access.
type Middleware struct {
	service ServiceAPI
	graph   GraphAPI
	logger  *slog.Logger
}

func NewMiddleware(service ServiceAPI, graph GraphAPI, logger *slog.Logger) *Middleware {
	return &Middleware{
		service: service,
		graph:   graph,
		logger:  logger,
	}
}

// Authenticate validates the bearer token and stores the resolved identity,
// rol assignments included, in the request context.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		claims, err := m.service.ValidateAccessToken(token)
		if err != nil {
			m.logger.Warn("token rejected", "error", err)
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}

		user, err := m.service.AccessUser(claims)
		if err != nil {
			m.logger.Error("identity resolution failed", "login_id", claims.LoginID, "error", err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)
			return
		}

		next.ServeHTTP(w, r.WithContext(internal.ContextWithUser(r.Context(), user)))
	})
}

// Require guards a route with one capability on one form code. Effective
// access ORs across every rol the user holds.
func (m *Middleware) Require(formCode, operation string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := internal.UserFromContext(r.Context())
			if !ok || user == nil {
				m.logger.Warn("authorization check failed: user not found in context")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			caps, err := m.graph.EffectiveAccessByCode(user.RolIDs, formCode)
			if err != nil {
				m.logger.Error("authorization check failed", "error", err,
					"login_id", user.LoginID, "form_code", formCode)
				http.Error(w, "Internal server error", http.StatusInternalServerError)
				return
			}

			if !caps.Has(operation) {
				m.logger.Warn("access denied: insufficient permissions",
					"login_id", user.LoginID,
					"form_code", formCode,
					"operation", operation)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}
