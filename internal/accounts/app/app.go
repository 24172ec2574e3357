package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/dotes/internal/accounts/http"
	"github.com/aussiebroadwan/dotes/internal/accounts/metrics"
	"github.com/aussiebroadwan/dotes/internal/accounts/service"
	"github.com/aussiebroadwan/dotes/internal/accounts/store"
	"github.com/aussiebroadwan/dotes/internal/accounts/store/drivers/postgres"
	"github.com/aussiebroadwan/dotes/internal/accounts/store/drivers/sqlite"
	"github.com/aussiebroadwan/dotes/pkg/cryptox"
	"github.com/aussiebroadwan/dotes/pkg/jwtx"
	"github.com/aussiebroadwan/dotes/pkg/slogx"
)

// BuildVersion is reported by /readyz and the logs. Release builds set it
// with -ldflags "-X github.com/aussiebroadwan/dotes/internal/accounts/app.BuildVersion=...".
var BuildVersion = "v0.1.0"

// Application encapsulates the account service with all its dependencies
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db      store.Store
	codec   *jwtx.HS256Codec
	hasher  *cryptox.PasswordHasher
	metrics *metrics.Metrics // nil when METRICS_ENABLED=false

	// Services
	accountService  *service.AccountService
	identityService *service.IdentityService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "accounts-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if err := app.initCrypto(); err != nil {
		return nil, err
	}
	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if cfg.MetricsEnabled {
		app.metrics = metrics.NewMetrics(nil)
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the fully wired router, mainly for tests.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.logger.Info("accounts service starting",
		slog.Int("port", app.cfg.Port),
		slog.String("version", BuildVersion),
		slog.String("driver", app.cfg.DatabaseDriver),
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	// Setup signal handling for graceful shutdown
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a shutdown signal or server error
	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", slog.String("signal", sig.String()))

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down accounts service...")

	// Give outstanding requests a deadline for completion
	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", slog.Any("err", err))
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", slog.Any("err", err))
		}
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", slog.Any("err", err))
		return err
	}

	app.logger.Info("accounts service stopped")
	return nil
}

// initCrypto loads the pepper and builds the token codec. Without a
// SECRET_KEY in dev an ephemeral secret is generated, so tokens do not
// survive a restart.
func (app *Application) initCrypto() error {
	pepper, err := cryptox.LoadPepper(app.cfg.PepperFile)
	if err != nil {
		return fmt.Errorf("failed to load pepper: %w", err)
	}
	app.hasher = cryptox.NewPasswordHasher(pepper)

	secret := app.cfg.SecretKey
	if secret == "" {
		if !app.cfg.IsDev() {
			return errors.New("SECRET_KEY is required outside dev")
		}
		secret, err = cryptox.GenerateToken(cryptox.TokenSize256)
		if err != nil {
			return fmt.Errorf("failed to generate ephemeral secret: %w", err)
		}
		app.logger.Warn("SECRET_KEY not set, using an ephemeral signing secret")
	}

	codec, err := jwtx.NewHS256Codec([]byte(secret), app.cfg.Issuer)
	if err != nil {
		return fmt.Errorf("failed to initialize token codec: %w", err)
	}
	app.codec = codec
	return nil
}

// initDatabase opens the configured driver and applies migrations
func (app *Application) initDatabase() error {
	var (
		db  store.Store
		err error
	)

	switch app.cfg.DatabaseDriver {
	case DriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		db, err = postgres.Open(ctx, app.cfg.DatabaseURL)
	default:
		db, err = sqlite.NewStore(app.cfg.DatabaseURL)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", slog.String("driver", app.cfg.DatabaseDriver))
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	var observer service.Observer
	if app.metrics != nil {
		observer = app.metrics
	}

	app.accountService = &service.AccountService{
		Store:    app.db,
		Hasher:   app.hasher,
		Tokens:   app.codec,
		Observer: observer,
	}
	app.identityService = &service.IdentityService{
		Store:    app.db,
		Verifier: app.codec,
		Observer: observer,
	}
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		BuildVersion,
		app.db,
		app.cfg.RateLimits(),
		app.logger,
	)

	// Wire services to router
	router.AccountService = app.accountService
	router.IdentityService = app.identityService
	router.Metrics = app.metrics // nil disables /metrics
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
