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

	httpapi "github.com/docstash/docstash/internal/archive/http"
	"github.com/docstash/docstash/internal/archive/mail"
	"github.com/docstash/docstash/internal/archive/service"
	"github.com/docstash/docstash/internal/archive/store"
	"github.com/docstash/docstash/internal/archive/store/drivers/sqlite"
	"github.com/docstash/docstash/pkg/cryptox"
	"github.com/docstash/docstash/pkg/jwtx"
	"github.com/docstash/docstash/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags. Later problem
	BuildVersion = "v0.1.0"
)

// Application wires the archive service together: store, token signer, mail
// dispatcher, services and the HTTP server.
type Application struct {
	cfg    Config
	logger *slog.Logger

	db     store.Store
	hs256  *jwtx.HS256
	mailer *mail.Dispatcher

	authService         *service.AuthService
	passwordService     *service.PasswordService
	uploadService       *service.UploadService
	archiveService      *service.ArchiveService
	workspaceService    *service.WorkspaceService
	housekeepingService *service.HousekeepingService

	server *http.Server
	router *httpapi.Router
}

// New creates an Application with all dependencies initialized.
func New(cfg Config) (*Application, error) {
	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "archive-service",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("AUTH_JWT_SECRET is required")
	}

	hs, err := jwtx.NewHS256([]byte(cfg.JWTSecret))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize token signer: %w", err)
	}
	app.hs256 = hs

	// Set pepper path for password hashing
	cryptox.SetPepperPath(cfg.PepperFile)

	if err := os.MkdirAll(cfg.UploadsDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create uploads dir: %w", err)
	}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	app.initMail()
	app.initServices()
	app.initHTTP()

	return app, nil
}

// Run starts the application and blocks until shutdown is requested.
func (app *Application) Run() error {
	app.mailer.Start()
	app.housekeepingService.Start()

	app.logger.Info("archive service starting", "port", app.cfg.Port, "version", BuildVersion)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully stops the HTTP server, background workers and store.
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down archive service...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()
	app.mailer.Stop()

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("archive service stopped")
	return nil
}

// initDatabase opens the store and applies migrations.
func (app *Application) initDatabase() error {
	host := fmt.Sprintf("file:%s?_busy_timeout=5000&_journal_mode=WAL", app.cfg.DatabaseFile)
	db, err := sqlite.NewStore(host)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully")
	return nil
}

func (app *Application) initMail() {
	mailer := mail.NewSMTPMailer(mail.SMTPConfig{
		Host:     app.cfg.SMTPHost,
		Port:     app.cfg.SMTPPort,
		Username: app.cfg.SMTPUsername,
		Password: app.cfg.SMTPPassword,
		From:     app.cfg.MailFrom,
	})
	app.mailer = mail.NewDispatcher(mailer, app.logger)
}

// initServices initializes all business logic services.
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:        app.db,
		Signer:       app.hs256,
		Verifier:     app.hs256,
		Issuer:       app.cfg.Issuer,
		TokenTTL:     app.cfg.TokenTTL,
		InitialRoles: app.cfg.InitialRoles,
	}

	app.passwordService = &service.PasswordService{
		Store:        app.db,
		Mail:         app.mailer,
		ResetBaseURL: app.cfg.ResetBaseURL,
	}

	app.uploadService = &service.UploadService{
		Dir:    app.cfg.UploadsDir,
		Logger: app.logger,
	}

	app.archiveService = &service.ArchiveService{Store: app.db}
	app.workspaceService = &service.WorkspaceService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server.
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.hs256,
		BuildVersion,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.PasswordService = app.passwordService
	router.UploadService = app.uploadService
	router.ArchiveService = app.archiveService
	router.WorkspaceService = app.workspaceService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
