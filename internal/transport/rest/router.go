package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/dcastaneda/security-admin/internal/access"
	"github.com/dcastaneda/security-admin/internal/auth"
	"github.com/dcastaneda/security-admin/internal/form"
	"github.com/dcastaneda/security-admin/internal/formmodule"
	"github.com/dcastaneda/security-admin/internal/module"
	"github.com/dcastaneda/security-admin/internal/permission"
	"github.com/dcastaneda/security-admin/internal/rol"
	"github.com/dcastaneda/security-admin/internal/transport/middleware"
	"github.com/dcastaneda/security-admin/internal/transport/swagger"
	"github.com/dcastaneda/security-admin/internal/user"
	"github.com/dcastaneda/security-admin/internal/worker"

	"github.com/dcastaneda/security-admin/internal/core/entity"

	"github.com/go-chi/chi"
)

// Handlers carries every HTTP handler the router mounts.
type Handlers struct {
	Auth              *auth.Handler
	User              *entity.Handler[user.DTO]
	Worker            *entity.Handler[worker.DTO]
	WorkerLogin       *entity.Handler[worker.LoginDTO]
	Rol               *entity.Handler[rol.DTO]
	Form              *entity.Handler[form.DTO]
	Module            *entity.Handler[module.DTO]
	Permission        *entity.Handler[permission.DTO]
	FormModule        *entity.Handler[formmodule.DTO]
	RolUser           *entity.Handler[access.RolUserDTO]
	RolFormPermission *entity.Handler[access.RolFormPermissionDTO]
	Graph             *access.GraphHandler
}

// RegisterAllRoutes wires global middleware, the health and swagger routes,
// and the versioned API. Everything under /api/v1 except auth requires a
// valid access token; entity routes additionally require the caller's rols
// to grant the matching capability on the entity's form.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, authmw *auth.Middleware, allowedOrigins []string, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.TraceID)
	router.Use(middleware.RequestLogger)
	router.Use(middleware.Recovery)

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(authmw.Authenticate)

			mountEntity(pr, "/users", access.FormUsers, h.User, authmw)
			mountEntity(pr, "/workers", access.FormWorkers, h.Worker, authmw)
			mountEntity(pr, "/worker-logins", access.FormWorkerLogins, h.WorkerLogin, authmw)
			mountEntity(pr, "/rols", access.FormRols, h.Rol, authmw)
			mountEntity(pr, "/forms", access.FormForms, h.Form, authmw)
			mountEntity(pr, "/modules", access.FormModules, h.Module, authmw)
			mountEntity(pr, "/permissions", access.FormPermissions, h.Permission, authmw)
			mountEntity(pr, "/form-modules", access.FormFormModules, h.FormModule, authmw)
			mountEntity(pr, "/rol-users", access.FormRolUsers, h.RolUser, authmw)
			mountEntity(pr, "/rol-form-permissions", access.FormRolFormPermissions, h.RolFormPermission, authmw)

			pr.Get("/rols/{rolID}/permissions", h.Graph.PermissionsByRol)
			pr.Get("/rols/{rolID}/menu", h.Graph.MenuByRol)
			pr.Get("/modules/{moduleID}/forms", h.Graph.FormsForModule)
			pr.Get("/forms/{formID}/modules", h.Graph.ModulesForForm)
			pr.Get("/menu", h.Graph.MenuForCaller)
		})
	})
}

func mountEntity[D entity.Identifiable](r chi.Router, path, formCode string, handler *entity.Handler[D], authmw *auth.Middleware) {
	r.Route(path, func(er chi.Router) {
		handler.MountGuarded(er, func(operation string) func(http.Handler) http.Handler {
			return authmw.Require(formCode, operation)
		})
	})
}
