package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/MKhiriev/go-column-client/internal/handler/tcp"
	"github.com/MKhiriev/go-column-client/internal/logger"
)

const (
	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

// tcpServer accepts column protocol connections and serves each one in its
// own goroutine.
type tcpServer struct {
	handler  *tcp.Handler
	listener net.Listener

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	closing bool
	conns   sync.WaitGroup

	logger *logger.Logger
}

func newTCPServer(handler *tcp.Handler, address string, logger *logger.Logger) (*tcpServer, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, fmt.Errorf("error listening on %s: %w", address, err)
	}

	return newTCPServerWithListener(handler, listener, logger), nil
}

func newTCPServerWithListener(handler *tcp.Handler, listener net.Listener, logger *logger.Logger) *tcpServer {
	ctx, cancel := context.WithCancel(context.Background())
	return &tcpServer{
		handler:  handler,
		listener: listener,
		ctx:      ctx,
		cancel:   cancel,
		logger:   logger,
	}
}

func (t *tcpServer) Addr() net.Addr {
	return t.listener.Addr()
}

// RunServer accepts until the listener is closed. Failing Accept calls are
// retried after a delay that doubles up to maxAcceptDelay.
func (t *tcpServer) RunServer() {
	t.logger.Info().Str("address", t.listener.Addr().String()).Msg("TCP server listening")

	var delay time.Duration
	for {
		conn, err := t.listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return
			}

			if delay == 0 {
				delay = minAcceptDelay
			} else {
				delay = min(2*delay, maxAcceptDelay)
			}
			t.logger.Err(err).Dur("retry_in", delay).Msg("TCP server Accept")

			select {
			case <-t.ctx.Done():
				return
			case <-time.After(delay):
			}
			continue
		}
		delay = 0

		if !t.track() {
			_ = conn.Close()
			return
		}

		go func() {
			defer t.conns.Done()
			if err := t.handler.ServeConn(t.ctx, conn); err != nil {
				t.logger.Warn().Err(err).Msg("connection closed with error")
			}
		}()
	}
}

// track registers a new connection goroutine. It reports false once Shutdown
// has started, so no goroutine is added after Shutdown began waiting.
func (t *tcpServer) track() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closing {
		return false
	}
	t.conns.Add(1)
	return true
}

// Shutdown stops accepting, closes open connections and waits for their
// goroutines to finish.
func (t *tcpServer) Shutdown() {
	t.logger.Info().Msg("TCP server Shutdown")

	t.mu.Lock()
	t.closing = true
	t.mu.Unlock()

	if err := t.listener.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
		t.logger.Err(err).Msg("TCP server listener close")
	}
	t.cancel()
	t.conns.Wait()
}
