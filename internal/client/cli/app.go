package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/bookapp/internal/client/api"
	"github.com/dmitrijs2005/bookapp/internal/client/config"
	"github.com/dmitrijs2005/bookapp/internal/client/repositories/tokens"
	"github.com/dmitrijs2005/bookapp/internal/client/router"
	"github.com/dmitrijs2005/bookapp/internal/client/session"
	"github.com/dmitrijs2005/bookapp/internal/client/storage"
	"github.com/dmitrijs2005/bookapp/internal/client/transport"
	"github.com/dmitrijs2005/bookapp/internal/logging"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	sess   *session.Session
	api    api.Client
	router *router.Router
	reader *bufio.Reader
	out    io.Writer

	navMu       sync.Mutex
	nav         router.NavState
	unsubscribe func()
}

// NewApp wires storage, session, transport and the API gateway for c.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	baseURL := c.BaseURL()
	if baseURL == "" {
		return nil, fmt.Errorf("no backend URL configured for env %q", c.Env)
	}

	logger, err := logging.New(os.Stderr, c.LogLevel)
	if err != nil {
		return nil, err
	}

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	sess := session.New(tokens.NewSQLiteRepository(db))
	a := newApp(c, logger, sess, nil, os.Stdin, os.Stdout)
	a.db = db

	refresher := api.NewRefresher(baseURL, nil, c.RequestTimeout)
	hc := transport.New(
		transport.WithTimeout(c.RequestTimeout),
		transport.WithLogger(logger),
		transport.WithRefresh(sess, refresher, a.onSessionExpired),
	)
	sess.Subscribe(hc.SessionListener())
	if access, ok, err := sess.AccessToken(ctx); err == nil && ok {
		hc.SetBearer(access)
	}

	a.api = api.NewGateway(baseURL, hc.HTTPClient(), sess, logger)
	return a, nil
}

// newApp builds an App around already constructed dependencies.
func newApp(c *config.Config, logger logging.Logger, sess *session.Session, client api.Client, in io.Reader, out io.Writer) *App {
	a := &App{
		config: c,
		logger: logger,
		sess:   sess,
		api:    client,
		router: router.New(sess),
		reader: bufio.NewReader(in),
		out:    out,
	}
	a.unsubscribe = sess.Subscribe(a.onSessionEvent)
	a.setNav(router.DeriveNav(sess.IsAuthenticated(context.Background()), router.PathHome))
	return a
}

// Run shows the banner and home screen, then serves commands until exit.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.printBanner()
	a.println("Welcome to BookApp CLI (type 'help' for commands)")
	_ = a.Go(ctx, router.PathHome)

	runREPL(ctx, a, a.getStatus, a.reader)
}

// Close releases the database. Safe to call more than once.
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
		a.unsubscribe = nil
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error(context.Background(), "closing database", "error", err)
		}
		a.db = nil
	}
}

func (a *App) isLoggedIn() bool {
	return a.navState().LoggedIn
}

// onSessionEvent re-derives navigation whenever the session changes.
func (a *App) onSessionEvent(_ context.Context, ev session.Event) {
	a.setNav(router.DeriveNav(ev.Kind != session.EventLoggedOut, a.router.Current().Path))
}

// onSessionExpired runs inside the transport after a failed refresh. The
// session is already ended; only the location changes here.
func (a *App) onSessionExpired(ctx context.Context) {
	a.println("Your session has expired. Please log in again.")
	a.redirect(ctx, router.PathLogin)
}

func (a *App) navState() router.NavState {
	a.navMu.Lock()
	defer a.navMu.Unlock()
	return a.nav
}

func (a *App) setNav(st router.NavState) {
	a.navMu.Lock()
	a.nav = st
	a.navMu.Unlock()
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
