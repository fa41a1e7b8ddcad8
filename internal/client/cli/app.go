package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dmitrijs2005/authflow/internal/client/config"
	"github.com/dmitrijs2005/authflow/internal/client/directory"
	"github.com/dmitrijs2005/authflow/internal/client/services"
	"github.com/dmitrijs2005/authflow/internal/client/session"
	"github.com/dmitrijs2005/authflow/internal/client/storage"
	"github.com/dmitrijs2005/authflow/internal/logging"
)

// sessionInspector exposes the raw persisted session for the storage view.
type sessionInspector interface {
	StoredSession(ctx context.Context) (string, bool, error)
	StoredToken(ctx context.Context) (string, bool, error)
	TokenSubject(ctx context.Context) (string, error)
}

type App struct {
	config    *config.Config
	provider  *session.Provider
	inspector sessionInspector
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
	closers   []func() error
	now       func() time.Time
}

// NewApp opens the configured storage and directory, seeds the demo
// accounts when enabled and builds the session provider.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	log := logging.New(os.Stderr, level)

	store, closeStore, err := storage.Open(ctx, c.StorageOptions())
	if err != nil {
		log.Error(ctx, "error initializing storage", "backend", c.StorageBackend, "error", err)
		return nil, fmt.Errorf("open storage: %w", err)
	}

	dir, closeDir, err := directory.Open(ctx, c.DirectoryDSN)
	if err != nil {
		_ = closeStore()
		return nil, fmt.Errorf("open directory: %w", err)
	}

	if c.SeedDemoUsers {
		n, err := directory.Seed(ctx, dir, directory.DemoRecords(time.Now())...)
		if err != nil {
			_ = closeDir()
			_ = closeStore()
			return nil, err
		}
		log.Debug(ctx, "directory seeded", "added", n)
	}

	svc := services.NewAuthService(dir, store,
		services.WithLogger(log.With("component", "auth")),
		services.WithTokenIssuer(services.NewTokenIssuer(c.TokenSecret)),
		services.WithDelays(c.NetworkDelay, c.LogoutDelay),
	)
	p := session.NewProvider(svc, log.With("component", "session"))

	return newApp(c, p, svc, log, os.Stdin, os.Stdout, closeDir, closeStore), nil
}

func newApp(c *config.Config, p *session.Provider, insp sessionInspector, log logging.Logger,
	in io.Reader, out io.Writer, closers ...func() error) *App {
	return &App{
		config:    c,
		provider:  p,
		inspector: insp,
		log:       log,
		reader:    bufio.NewReader(in),
		out:       out,
		closers:   closers,
		now:       time.Now,
	}
}

// Run restores the previous session and starts the REPL. Resources are
// released when it returns.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	ctx = session.WithProvider(ctx, a.provider)
	st := a.provider.Mount(ctx)

	fmt.Fprintln(a.out, "Welcome to authflow (type 'help' for commands)")
	if st.User != nil {
		fmt.Fprintf(a.out, "Signed in as %s\n", st.User.Email)
	}

	runREPL(ctx, a, func() string { return status(ctx) }, a.reader, a.out)
	return nil
}

// Close releases storage and directory handles.
func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return session.Use(ctx).IsAuthenticated()
}

func status(ctx context.Context) string {
	if u := session.Use(ctx).User(); u != nil {
		return u.Email
	}
	return "guest"
}
