package client

import (
	"context"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/resolver"
	"github.com/MKhiriev/go-column-client/internal/session"
	"github.com/MKhiriev/go-column-client/internal/utils"
)

type App struct {
	cfg      *config.ClientConfig
	console  Console
	resolver resolver.Resolver
	out      io.Writer

	logger *logger.Logger
}

// NewApp wires the client. Replies and send notices are written to out, which
// is normally the same terminal the console prompts on.
func NewApp(cfg *config.ClientConfig, console Console, resolver resolver.Resolver, out io.Writer, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if console == nil {
		return nil, ErrNilConsole
	}
	if resolver == nil {
		return nil, ErrNilResolver
	}
	if out == nil {
		out = io.Discard
	}
	if log == nil {
		log = logger.Nop()
	}

	return &App{
		cfg:      cfg,
		console:  console,
		resolver: resolver,
		out:      out,
		logger:   log,
	}, nil
}

// Run prompts for the endpoint, connects and runs one session. It returns nil
// when the operator quit and the fatal error otherwise; the error has already
// been shown to the operator.
func (a *App) Run() error {
	ctx := context.Background()

	endpoint, err := a.console.Endpoint()
	if err != nil {
		err = fmt.Errorf("error reading endpoint: %w", err)
		a.console.Diagnostic(err)
		return err
	}

	conn, err := a.resolver.Connect(ctx, endpoint)
	if err != nil {
		a.console.Diagnostic(err)
		return err
	}
	defer a.closeConn(conn)

	l := a.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("session_id", utils.NewID()).Str("endpoint", endpoint.String())
	})

	engine, err := session.NewEngine(conn, a.console, a.out, a.cfg.ReplyCapacity, l)
	if err != nil {
		a.console.Diagnostic(err)
		return err
	}

	if err := engine.Run(); err != nil {
		a.console.Diagnostic(err)
		return err
	}

	return nil
}

func (a *App) closeConn(conn net.Conn) {
	if err := conn.Close(); err != nil {
		a.logger.Err(err).Msg("error closing connection")
	}
}
