package tcp

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-column-client/internal/app"
	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/mock"
	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/internal/service"
)

type session struct {
	client  net.Conn
	columns *mock.MockColumnService
	done    chan error
	cancel  context.CancelFunc
}

func startSession(t *testing.T) *session {
	t.Helper()
	ctrl := gomock.NewController(t)
	columns := mock.NewMockColumnService(ctrl)

	h := NewHandler(&service.Services{ColumnService: columns}, config.Protocol{ReplyCapacity: 32}, logger.Nop())

	serverConn, clientConn := net.Pipe()
	ctx, cancel := context.WithCancel(context.Background())

	s := &session{client: clientConn, columns: columns, done: make(chan error, 1), cancel: cancel}
	go func() { s.done <- h.ServeConn(ctx, serverConn) }()

	t.Cleanup(func() {
		cancel()
		clientConn.Close()
	})
	return s
}

func (s *session) exchange(t *testing.T, token string) string {
	t.Helper()
	require.NoError(t, s.client.SetDeadline(time.Now().Add(2*time.Second)))

	_, err := s.client.Write([]byte(token))
	require.NoError(t, err)

	buf := make([]byte, 64)
	n, err := s.client.Read(buf)
	require.NoError(t, err)
	return string(buf[:n])
}

func (s *session) wait(t *testing.T) error {
	t.Helper()
	select {
	case err := <-s.done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("ServeConn did not return")
		return nil
	}
}

func TestServeConn_ColumnThenQuit(t *testing.T) {
	s := startSession(t)
	cmd, err := protocol.NewColumnCommand(3)
	require.NoError(t, err)
	s.columns.EXPECT().Reply(gomock.Any(), cmd).Return([]byte("Column 3 data\x00"), nil)

	assert.Equal(t, "Column 3 data\x00", s.exchange(t, "3\x00"))

	_, err = s.client.Write([]byte("q\x00"))
	require.NoError(t, err)
	assert.NoError(t, s.wait(t))

	// nothing is written for quit and the server side is closed
	buf := make([]byte, 1)
	_, err = s.client.Read(buf)
	assert.Error(t, err)
}

func TestServeConn_WholeFile(t *testing.T) {
	s := startSession(t)
	s.columns.EXPECT().Reply(gomock.Any(), protocol.WholeFile()).Return([]byte("a b c d\x00"), nil)

	assert.Equal(t, "a b c d\x00", s.exchange(t, "w\x00"))
}

func TestServeConn_BadTokens(t *testing.T) {
	s := startSession(t)

	assert.Equal(t, app.MsgUnknownCommand+"\x00", s.exchange(t, "x\x00"))
	assert.Equal(t, app.MsgColumnOutOfRange+"\x00", s.exchange(t, "7\x00"))
}

func TestServeConn_ServiceError(t *testing.T) {
	s := startSession(t)
	s.columns.EXPECT().Reply(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

	assert.Equal(t, app.MsgInternalServerError+"\x00", s.exchange(t, "1\x00"))
}

func TestServeConn_ClientDisconnects(t *testing.T) {
	s := startSession(t)

	require.NoError(t, s.client.Close())
	assert.NoError(t, s.wait(t))
}

func TestServeConn_ContextCancelled(t *testing.T) {
	s := startSession(t)

	s.cancel()
	assert.NoError(t, s.wait(t))
}

func TestServeConn_TruncatedToken(t *testing.T) {
	s := startSession(t)

	_, err := s.client.Write([]byte("12"))
	require.NoError(t, err)
	require.NoError(t, s.client.Close())

	assert.Error(t, s.wait(t))
}

func TestHandler_FrameFitsCapacity(t *testing.T) {
	h := &Handler{replyCapacity: 8, logger: logger.Nop()}

	framed := h.frame(app.MsgInternalServerError)
	assert.Len(t, framed, 8)
	assert.Equal(t, byte(0), framed[7])
}
