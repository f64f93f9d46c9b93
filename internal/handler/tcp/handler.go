// Package tcp serves the column protocol over raw TCP connections.
//
// A connection carries a sequence of NUL-terminated request tokens. Every
// column or whole-file token gets exactly one NUL-terminated reply no larger
// than the reply capacity; the quit token ends the connection without a reply.
package tcp

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-column-client/internal/app"
	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/internal/service"
	"github.com/MKhiriev/go-column-client/internal/utils"
)

type Handler struct {
	services      *service.Services
	replyCapacity int

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Protocol, logger *logger.Logger) *Handler {
	logger.Info().Int("reply_capacity", cfg.ReplyCapacity).Msg("tcp handler created")
	return &Handler{
		services:      services,
		replyCapacity: cfg.ReplyCapacity,
		logger:        logger,
	}
}

// ServeConn answers requests on conn until the client quits, disconnects or
// ctx is cancelled. conn is always closed on return.
func (h *Handler) ServeConn(ctx context.Context, conn net.Conn) error {
	defer conn.Close()
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	l := h.logger.GetChildLogger()
	l.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("conn_id", utils.NewID()).
			Str("remote", conn.RemoteAddr().String()).
			Str("transport", "tcp")
	})
	ctx = l.WithContext(ctx)
	l.Info().Msg("client connected")

	reader := bufio.NewReader(conn)
	for {
		token, err := protocol.ReadToken(reader)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				l.Info().Msg("client disconnected")
				return nil
			}
			l.Err(err).Str("func", "*Handler.ServeConn").Msg("error reading request token")
			return fmt.Errorf("error reading request token: %w", err)
		}

		reply, quit := h.handleToken(ctx, token)
		if quit {
			l.Info().Msg("client quit")
			return nil
		}

		if _, err := conn.Write(reply); err != nil {
			l.Err(err).Str("func", "*Handler.ServeConn").Msg("error writing reply")
			return fmt.Errorf("error writing reply: %w", err)
		}
	}
}

// handleToken returns the framed reply to token, or quit=true for the quit
// token.
func (h *Handler) handleToken(ctx context.Context, token protocol.WireToken) (reply []byte, quit bool) {
	log := logger.FromContext(ctx)

	cmd, err := protocol.Decode(token)
	if err != nil {
		log.Warn().Err(err).Str("token", token.Text()).Msg("bad request token")
		if errors.Is(err, protocol.ErrColumnOutOfRange) {
			return h.frame(app.MsgColumnOutOfRange), false
		}
		return h.frame(app.MsgUnknownCommand), false
	}

	if cmd.Kind() == protocol.KindQuit {
		return nil, true
	}

	log.Debug().Str("command", cmd.String()).Msg("request received")

	reply, err = h.services.ColumnService.Reply(ctx, cmd)
	if err != nil {
		log.Err(err).Str("func", "*Handler.handleToken").Str("command", cmd.String()).Msg("error building reply")
		return h.frame(app.MsgInternalServerError), false
	}

	return reply, false
}

func (h *Handler) frame(msg string) []byte {
	framed, err := protocol.FrameReply([]byte(msg), h.replyCapacity)
	if err != nil {
		return []byte{0}
	}

	return framed
}
