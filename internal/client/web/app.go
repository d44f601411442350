package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/client/api"
	"github.com/dmitrijs2005/formsclient/internal/client/config"
	"github.com/dmitrijs2005/formsclient/internal/client/router"
	"github.com/dmitrijs2005/formsclient/internal/filex"
	"github.com/dmitrijs2005/formsclient/internal/logging"
	"github.com/etitcombe/logifymw"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type App struct {
	config    *config.Config
	logger    *logging.SlogLogger
	api       *api.Client
	sessions  *BoltSessions
	templates map[string]*template.Template
	submits   *submitGuard
	handler   http.Handler
	now       func() time.Time
}

// NewApp wires the frontend from configuration: JSON logs on stdout, the
// backend facade and the bolt session file.
func NewApp(cfg *config.Config) (*App, error) {
	logger := logging.New(os.Stdout, cfg.LogLevel, "json")

	client, err := api.NewClient(cfg.BackendURL, cfg.RequestTimeout, logger.With("module", "api"))
	if err != nil {
		return nil, err
	}

	if _, err := filex.EnsureParentDir(cfg.SessionDB); err != nil {
		return nil, err
	}
	sessions, err := OpenBoltSessions(cfg.SessionDB, cfg.SessionKey)
	if err != nil {
		return nil, err
	}

	app, err := New(cfg, logger, client, sessions)
	if err != nil {
		_ = sessions.Close()
		return nil, err
	}
	return app, nil
}

// New assembles an App from already built parts.
func New(cfg *config.Config, logger *logging.SlogLogger, client *api.Client, sessions *BoltSessions) (*App, error) {
	tpls, err := parseTemplates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	app := &App{
		config:    cfg,
		logger:    logger,
		api:       client,
		sessions:  sessions,
		templates: tpls,
		submits:   newSubmitGuard(),
		now:       time.Now,
	}
	app.registerRoutes()
	return app, nil
}

func (app *App) registerRoutes() {
	mux := chi.NewRouter()
	mux.Use(middleware.StripSlashes)
	mux.Post("/logout", app.handleLogout)

	router.Register(mux, map[router.View]http.Handler{
		router.ViewLogin:        http.HandlerFunc(app.handleLogin),
		router.ViewRegistration: http.HandlerFunc(app.handleRegistration),
		router.ViewUsers:        http.HandlerFunc(app.handleUsers),
		router.ViewTemplates:    http.HandlerFunc(app.handleTemplates),
		router.ViewTemplate:     http.HandlerFunc(app.handleTemplate),
	})

	app.handler = app.recoverPanicMw(logifymw.LogIt2(app.logger.StdLogger(), app.sessionMw(mux)))
}

func (app *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.handler.ServeHTTP(w, r)
}

func (app *App) Close() error {
	return app.sessions.Close()
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run purges expired sessions and serves until ctx is cancelled or a signal
// arrives.
func (app *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.initSignalHandler(cancelFunc)

	if n, err := app.sessions.Purge(app.now()); err != nil {
		app.logger.Warn(ctx, "purge sessions", "error", err)
	} else if n > 0 {
		app.logger.Info(ctx, "purged expired sessions", "count", n)
	}

	srv := &http.Server{
		Addr:              app.config.ListenAddr,
		Handler:           app,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		app.logger.Info(ctx, "Stopping web server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting web server", "address", app.config.ListenAddr, "backend", app.api.BaseURL())

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
