package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/handler"
	"github.com/MKhiriev/go-column-client/internal/logger"
)

type server struct {
	tcpServer  *tcpServer
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer binds the listeners of every configured transport. Listen errors
// are returned immediately so a misconfigured address fails at startup.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	return newServer(handlers, cfg, logger)
}

func newServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (*server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{logger: logger}

	if cfg.TCPAddress != "" && handlers.TCP != nil {
		tcpSrv, err := newTCPServer(handlers.TCP, cfg.TCPAddress, logger)
		if err != nil {
			return nil, err
		}
		servers.tcpServer = tcpSrv
	}
	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg.HTTPAddress, cfg.ShutdownTimeout, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg.GRPCAddress, logger)
		if err != nil {
			servers.Shutdown()
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.tcpServer == nil {
		return nil, errNoColumnListener
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) ColumnAddr() net.Addr {
	return s.tcpServer.Addr()
}

func (s *server) Shutdown() {
	// finish TCP server
	if s.tcpServer != nil {
		s.tcpServer.Shutdown()
	}

	// finish HTTP server
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}

	// finish gRPC server
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run launches every transport and blocks until ctx is done, then shuts them
// down.
func (s *server) run(ctx context.Context) error {
	if s.tcpServer == nil {
		return fmt.Errorf("no servers to run: %w", errNoColumnListener)
	}

	idleConnectionsClosed := make(chan struct{})

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	// launch all created servers
	s.logger.Info().Msg("Launching TCP server")
	go s.tcpServer.RunServer()
	if s.httpServer != nil {
		s.logger.Info().Msg("Launching HTTP server")
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		s.logger.Info().Msg("Launching GRPC server")
		go s.gRPCServer.RunServer()
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
