package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/blogcli/internal/client/api"
	"github.com/dmitrijs2005/blogcli/internal/client/config"
	"github.com/dmitrijs2005/blogcli/internal/client/router"
	"github.com/dmitrijs2005/blogcli/internal/client/session"
	"github.com/dmitrijs2005/blogcli/internal/client/tokens"
	"github.com/dmitrijs2005/blogcli/internal/client/transport"
	"github.com/dmitrijs2005/blogcli/internal/logging"
)

type App struct {
	config  *config.Config
	session *session.Store
	router  *router.Router
	api     *api.API
	client  *transport.Client
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
	closers []func() error
}

// NewApp opens the token storage named by c and wires the session store,
// router, HTTP pipeline and API modules on top of it.
func NewApp(ctx context.Context, c *config.Config, in io.Reader, out io.Writer) (*App, error) {
	logger, logCloser, err := openLogger(c)
	if err != nil {
		return nil, err
	}

	storage, storageCloser, err := openTokenStorage(ctx, c)
	if err != nil {
		_ = logCloser()
		logger.Error(ctx, "error opening token storage", "error", err)
		return nil, err
	}

	app, err := newApp(ctx, c, storage, logger, in, out)
	if err != nil {
		_ = storageCloser()
		_ = logCloser()
		return nil, err
	}
	app.closers = append(app.closers, storageCloser, logCloser)
	return app, nil
}

// newApp wires everything above the token storage. Tests call it directly
// with their own storage.
func newApp(ctx context.Context, c *config.Config, storage tokens.Storage, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	baseURL, err := c.ResolveBaseURL()
	if err != nil {
		return nil, err
	}

	sess, err := session.NewStore(ctx, storage, logger.With("component", "session"))
	if err != nil {
		return nil, err
	}

	rt, err := router.New(sess, router.DefaultRoutes(), logger.With("component", "router"))
	if err != nil {
		return nil, err
	}

	client, err := transport.NewClient(baseURL, c.Timeout, sess, rt, newNotifier(out),
		transport.WithLogger(logger.With("component", "transport")))
	if err != nil {
		return nil, err
	}

	a := api.New(client)
	sess.SetAuthenticator(a.Auth)

	return &App{
		config:  c,
		session: sess,
		router:  rt,
		api:     a,
		client:  client,
		log:     logger,
		reader:  bufio.NewReader(in),
		out:     out,
	}, nil
}

// Run restores the profile of a persisted session and runs the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintf(a.out, "Blog CLI connected to %s (type 'help' for commands)\n", a.client.BaseURL())
	if a.session.IsLoggedIn() {
		if err := a.session.FetchProfile(ctx); err != nil {
			a.log.Warn(ctx, "could not restore profile", "error", err)
		}
	}
	runREPL(ctx, a, a.status, a.reader, a.out)
}

// Close releases the token storage and the log file.
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

// reportLocal prints errors that never reached the pipeline. Pipeline
// errors were already shown by the notifier.
func (a *App) reportLocal(err error) {
	var apiErr *transport.APIError
	var trErr *transport.TransportError
	if errors.As(err, &apiErr) || errors.As(err, &trErr) {
		return
	}
	fmt.Fprintln(a.out, "Error:", err)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

// status is shown in the prompt: user name and current location.
func (a *App) status() string {
	s := a.router.Current().FullPath()
	if u := a.session.User(); u != nil {
		return u.Username + " " + s
	}
	if a.session.IsLoggedIn() {
		return "* " + s
	}
	return s
}

func openLogger(c *config.Config) (logging.Logger, func() error, error) {
	if c.LogFile == "" || c.LogFile == "-" {
		return logging.New(os.Stderr, c.LogLevel, c.LogFormat), func() error { return nil }, nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return logging.New(f, c.LogLevel, c.LogFormat), f.Close, nil
}
