package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-column-client/internal/app"
	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/internal/store"
	"github.com/MKhiriev/go-column-client/models"
)

type columnService struct {
	repository    store.ColumnRepository
	replyCapacity int

	logger *logger.Logger
}

func NewColumnService(repository store.ColumnRepository, cfg config.Protocol, logger *logger.Logger) (ColumnService, error) {
	if repository == nil {
		return nil, ErrNilColumnRepository
	}

	if cfg.ReplyCapacity <= 0 {
		return nil, fmt.Errorf("%w: %d", protocol.ErrInvalidCapacity, cfg.ReplyCapacity)
	}

	return &columnService{
		repository:    repository,
		replyCapacity: cfg.ReplyCapacity,
		logger:        logger,
	}, nil
}

func (s *columnService) Reply(ctx context.Context, cmd protocol.Command) ([]byte, error) {
	log := logger.FromContext(ctx)

	var payload string
	switch cmd.Kind() {
	case protocol.KindGetColumn:
		values, err := s.Column(ctx, cmd.Column())
		if err != nil {
			return s.errorReply(ctx, err)
		}
		payload = strings.Join(values, "\n")
	case protocol.KindGetWholeFile:
		rows, err := s.File(ctx)
		if err != nil {
			return s.errorReply(ctx, err)
		}
		payload = renderRows(rows)
	case protocol.KindQuit:
		return nil, ErrQuitHasNoReply
	default:
		payload = app.MsgUnknownCommand
	}

	if len(payload) > s.replyCapacity-1 {
		log.Warn().Str("command", cmd.String()).
			Int("payload_len", len(payload)).
			Int("reply_capacity", s.replyCapacity).
			Msg("reply truncated to capacity")
	}

	return protocol.FrameReply([]byte(payload), s.replyCapacity)
}

func (s *columnService) Column(ctx context.Context, n int) ([]string, error) {
	return s.repository.Column(ctx, n)
}

func (s *columnService) File(ctx context.Context) ([]models.Row, error) {
	return s.repository.Rows(ctx)
}

// errorReply renders well-known request errors as reply text and returns any
// other error unchanged.
func (s *columnService) errorReply(ctx context.Context, err error) ([]byte, error) {
	switch {
	case errors.Is(err, store.ErrColumnOutOfRange):
		return protocol.FrameReply([]byte(app.MsgColumnOutOfRange), s.replyCapacity)
	case errors.Is(err, store.ErrNoColumnData):
		return protocol.FrameReply([]byte(app.MsgNoColumnData), s.replyCapacity)
	case errors.Is(err, store.ErrStorageUnavailable):
		logger.FromContext(ctx).Warn().Err(err).Msg("column storage unavailable")
		return protocol.FrameReply([]byte(app.MsgStorageUnavailable), s.replyCapacity)
	}

	logger.FromContext(ctx).Err(err).Str("func", "*columnService.Reply").Msg("failed to load column data")
	return nil, err
}

func renderRows(rows []models.Row) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.Line())
	}

	return strings.Join(lines, "\n")
}
