package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dcastaneda/security-admin/internal"
	"github.com/dcastaneda/security-admin/internal/access"
	accesspg "github.com/dcastaneda/security-admin/internal/access/postgres"
	"github.com/dcastaneda/security-admin/internal/auth"
	authpg "github.com/dcastaneda/security-admin/internal/auth/postgres"
	"github.com/dcastaneda/security-admin/internal/core/datamodel"
	"github.com/dcastaneda/security-admin/internal/core/entity/gormstore"
	"github.com/dcastaneda/security-admin/internal/form"
	"github.com/dcastaneda/security-admin/internal/formmodule"
	formmodulepg "github.com/dcastaneda/security-admin/internal/formmodule/postgres"
	"github.com/dcastaneda/security-admin/internal/module"
	"github.com/dcastaneda/security-admin/internal/permission"
	"github.com/dcastaneda/security-admin/internal/rol"
	"github.com/dcastaneda/security-admin/internal/transport/rest"
	"github.com/dcastaneda/security-admin/internal/user"
	userpg "github.com/dcastaneda/security-admin/internal/user/postgres"
	"github.com/dcastaneda/security-admin/internal/worker"
	workerpg "github.com/dcastaneda/security-admin/internal/worker/postgres"
	"github.com/dcastaneda/security-admin/pkg/logger"

	"github.com/go-chi/chi"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	Run: func(cmd *cobra.Command, args []string) {
		startHTTPServer()
	},
}

type Dependencies struct {
	Config *internal.Config
	DB     *sqlx.DB
	GormDB *gorm.DB
	Router *chi.Mux
	Logger *slog.Logger
}

func startHTTPServer() {
	deps, err := initializeDependencies()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize dependencies: %v\n", err)
		os.Exit(1)
	}

	setupRoutes(deps)

	addr := fmt.Sprintf(":%d", deps.Config.Server.Port)
	deps.Logger.Info("starting HTTP server", "address", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           deps.Router,
		ReadHeaderTimeout: deps.Config.Server.ReadHeaderTimeout,
		ReadTimeout:       deps.Config.Server.ReadTimeout,
		WriteTimeout:      deps.Config.Server.WriteTimeout,
		IdleTimeout:       deps.Config.Server.IdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		deps.Logger.Info("received signal, shutting down", "signal", sig.String())
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			deps.Logger.Error("server shutdown error", "error", err)
		}
		if err := deps.DB.Close(); err != nil {
			deps.Logger.Error("database close error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && err != http.ErrServerClosed {
			deps.Logger.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}

	deps.Logger.Info("server stopped")
}

func setupRoutes(deps *Dependencies) {
	gdb := deps.GormDB
	log := deps.Logger

	userStore := userpg.NewUserStore(gdb)
	workerStore := workerpg.NewWorkerStore(gdb)
	loginStore := workerpg.NewLoginStore(gdb)
	rolStore := gormstore.New[datamodel.Rol](gdb)
	formStore := gormstore.New[datamodel.Form](gdb)
	moduleStore := gormstore.New[datamodel.Module](gdb)
	permissionStore := gormstore.New[datamodel.Permission](gdb)
	formModuleStore := formmodulepg.NewFormModuleStore(gdb)
	rolUserStore := accesspg.NewRolUserStore(gdb)
	grantStore := accesspg.NewRolFormPermissionStore(gdb)
	formModuleQuery := accesspg.NewFormModuleQuery(gdb)

	graph := access.NewPermissionGraph(grantStore, formModuleQuery, rolUserStore, log)

	security := deps.Config.Security
	tokens := auth.NewJWTTokenGenerator(
		security.AccessTokenSecret,
		security.RefreshTokenSecret,
		security.AccessTokenDuration,
		security.RefreshTokenDuration,
	)
	authService := auth.NewService(authpg.NewRepository(gdb), tokens, log)
	authMiddleware := auth.NewMiddleware(authService, graph, log)

	handlers := rest.Handlers{
		Auth:              auth.NewHandler(authService),
		User:              user.NewHandler(user.NewService(userStore, log)),
		Worker:            worker.NewHandler(worker.NewService(workerStore, log)),
		WorkerLogin:       worker.NewLoginHandler(worker.NewLoginService(loginStore, log)),
		Rol:               rol.NewHandler(rol.NewService(rolStore, log)),
		Form:              form.NewHandler(form.NewService(formStore, log)),
		Module:            module.NewHandler(module.NewService(moduleStore, log)),
		Permission:        permission.NewHandler(permission.NewService(permissionStore, log)),
		FormModule:        formmodule.NewHandler(formmodule.NewService(formModuleStore, log)),
		RolUser:           access.NewRolUserHandler(access.NewRolUserService(rolUserStore, log)),
		RolFormPermission: access.NewRolFormPermissionHandler(access.NewRolFormPermissionService(grantStore, log)),
		Graph:             access.NewGraphHandler(graph),
	}

	rest.RegisterAllRoutes(deps.Router, deps.DB.DB, handlers, authMiddleware, deps.Config.Server.Origins(), log)
}

func initializeDependencies() (*Dependencies, error) {
	config, err := loadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(config.Logging.Format, config.Logging.Level)

	db, err := initDB(config.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	gdb, err := initGorm(db)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize orm: %w", err)
	}

	return &Dependencies{
		Config: config,
		Logger: logger.Default(),
		DB:     db,
		GormDB: gdb,
		Router: chi.NewRouter(),
	}, nil
}

func initDB(cfg internal.DatabaseConfig) (*sqlx.DB, error) {
	const driver = "pgx"

	dbConn, err := sqlx.Connect(driver, cfg.Source)
	if err != nil {
		return nil, fmt.Errorf("failed to open db connection: %w", err)
	}

	dbConn.SetMaxIdleConns(cfg.MaxIdleConns)
	dbConn.SetMaxOpenConns(cfg.MaxOpenConns)

	if err := dbConn.Ping(); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return dbConn, nil
}

// initGorm layers the ORM over the existing connection pool. TranslateError
// is required so unique constraint violations surface as
// gorm.ErrDuplicatedKey for the stores to map onto conflict errors.
func initGorm(db *sqlx.DB) (*gorm.DB, error) {
	return gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: db.DB}), &gorm.Config{
		TranslateError: true,
	})
}
