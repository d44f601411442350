package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/formsclient/internal/client/api"
	"github.com/dmitrijs2005/formsclient/internal/client/config"
	"github.com/dmitrijs2005/formsclient/internal/client/localdb"
	"github.com/dmitrijs2005/formsclient/internal/client/router"
	"github.com/dmitrijs2005/formsclient/internal/client/session"
	"github.com/dmitrijs2005/formsclient/internal/filex"
	"github.com/dmitrijs2005/formsclient/internal/logging"
)

type App struct {
	config *config.Config
	api    *api.Client
	store  session.Store
	db     *sql.DB
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	view   string
	now    func() time.Time
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(os.Stderr, c.LogLevel, "text")

	if _, err := filex.EnsureParentDir(c.MetadataDB); err != nil {
		return nil, err
	}
	db, err := localdb.Open(ctx, c.MetadataDB)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	store, err := session.NewMetadataStore(ctx, db, c.SessionKey)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	client, err := api.NewClient(c.BackendURL, c.RequestTimeout, logger.With("module", "api"))
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := newApp(client, store, logger, os.Stdin, os.Stdout)
	app.config = c
	app.db = db
	return app, nil
}

func newApp(client *api.Client, store session.Store, logger logging.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		api:    client,
		store:  store,
		logger: logger,
		reader: bufio.NewReader(in),
		out:    out,
		view:   router.PathLogin,
		now:    time.Now,
	}
}

// Run starts the REPL and blocks until the user exits or input ends. The
// session is cleared on the way out.
func (a *App) Run(ctx context.Context) error {
	defer a.close(ctx)

	fmt.Fprintln(a.out, "Welcome to the forms CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func (a *App) close(ctx context.Context) {
	if err := a.store.Clear(ctx); err != nil {
		a.logger.Error(ctx, "clear session on exit", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error(ctx, "close database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	id, err := a.store.Load(context.Background())
	return err == nil && !id.IsZero()
}

func (a *App) getStatus() string {
	return a.view
}

// navigate is the CLI's navigation side effect: it moves the prompt to the
// view path resolves to.
func (a *App) navigate(ctx context.Context, path string) error {
	if res := router.Resolve(path); res.Redirect != "" {
		path = res.Redirect
	}
	a.view = path
	a.logger.Debug(ctx, "navigated", "view", path)
	return nil
}
