package client

import (
	"bufio"
	"bytes"
	"context"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-column-client/internal/config"
	"github.com/MKhiriev/go-column-client/internal/console"
	"github.com/MKhiriev/go-column-client/internal/handler/tcp"
	"github.com/MKhiriev/go-column-client/internal/logger"
	"github.com/MKhiriev/go-column-client/internal/mock"
	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/internal/resolver"
	"github.com/MKhiriev/go-column-client/internal/service"
	"github.com/MKhiriev/go-column-client/internal/store"
	"github.com/MKhiriev/go-column-client/models"
)

var testConfig = &config.ClientConfig{DefaultHost: "localhost", ReplyCapacity: 256}

// scriptedServer accepts one connection, answers every non-quit token with the
// next scripted reply and records the tokens it received.
func scriptedServer(t *testing.T, replies ...string) (port int, tokens <-chan []string) {
	t.Helper()

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { ln.Close() })

	out := make(chan []string, 1)
	go func() {
		var received []string
		defer func() { out <- received }()

		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.SetDeadline(time.Now().Add(5 * time.Second))

		r := bufio.NewReader(conn)
		for {
			token, err := protocol.ReadToken(r)
			if err != nil {
				return
			}
			received = append(received, string(token))
			if token.Text() == string(protocol.QuitMarker) || len(replies) == 0 {
				continue
			}
			if _, err := conn.Write([]byte(replies[0])); err != nil {
				return
			}
			replies = replies[1:]
		}
	}()

	return ln.Addr().(*net.TCPAddr).Port, out
}

func newTestApp(t *testing.T, input string, res resolver.Resolver) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer

	c := console.New(strings.NewReader(input), &out, &errOut, testConfig.DefaultHost)
	app, err := NewApp(testConfig, c, res, &out, logger.Nop())
	require.NoError(t, err)
	return app, &out, &errOut
}

func TestApp_Run_EndToEnd(t *testing.T) {
	port, tokens := scriptedServer(t, "Column 3 data\x00")

	// blank machine name selects localhost
	input := "\n" + strconv.Itoa(port) + "\n1\n3\n0\n"
	app, out, errOut := newTestApp(t, input, resolver.NewResolver(logger.Nop()))

	require.NoError(t, app.Run())

	assert.Equal(t, []string{"3\x00", "q\x00"}, <-tokens)
	assert.Contains(t, out.String(), "Machine name [localhost]? ")
	assert.Contains(t, out.String(), `Sending "3"`)
	assert.Contains(t, out.String(), "Column 3 data\n")
	assert.Contains(t, out.String(), `Sending "q"`)
	assert.Empty(t, errOut.String())
}

func TestApp_Run_AgainstColumnServer(t *testing.T) {
	repo := store.NewFileColumnRepository([]models.Row{
		models.NewRow(1, []string{"alpha", "1", "x", "one"}),
		models.NewRow(2, []string{"beta", "2", "y", "two"}),
	})
	columns, err := service.NewColumnService(repo, config.Protocol{ReplyCapacity: 256}, logger.Nop())
	require.NoError(t, err)
	h := tcp.NewHandler(&service.Services{ColumnService: columns}, config.Protocol{ReplyCapacity: 256}, logger.Nop())

	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	served := make(chan error, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			served <- err
			return
		}
		served <- h.ServeConn(ctx, conn)
	}()

	port := ln.Addr().(*net.TCPAddr).Port
	input := "127.0.0.1\n" + strconv.Itoa(port) + "\n2\n1\n4\n0\n"
	app, out, _ := newTestApp(t, input, resolver.NewResolver(logger.Nop()))

	require.NoError(t, app.Run())
	require.NoError(t, <-served)

	assert.Contains(t, out.String(), "alpha 1 x one\nbeta 2 y two\n")
	assert.Contains(t, out.String(), "one\ntwo\n")
}

func TestApp_Run_ConnectFailure(t *testing.T) {
	ln, err := net.Listen("tcp4", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	app, out, errOut := newTestApp(t, "localhost\n"+strconv.Itoa(port)+"\n", resolver.NewResolver(logger.Nop()))

	err = app.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, resolver.ErrConnect)
	assert.Contains(t, errOut.String(), "could not connect to")
	assert.NotContains(t, out.String(), "What would you like to do")
}

func TestApp_Run_EndpointInputClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mock.NewMockResolver(ctrl)

	app, _, _ := newTestApp(t, "", res)

	err := app.Run()
	assert.ErrorIs(t, err, io.EOF)
}

// countingConn is an in-memory connection that counts Close calls.
type countingConn struct {
	net.Conn

	mu      sync.Mutex
	replies *bytes.Reader
	written bytes.Buffer
	closed  int
}

func (c *countingConn) Read(p []byte) (int, error) { return c.replies.Read(p) }

func (c *countingConn) Write(p []byte) (int, error) { return c.written.Write(p) }

func (c *countingConn) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed++
	return nil
}

func TestApp_Run_ClosesConnectionOnce(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		replies     string
		wantErr     error
		wantWritten string
	}{
		{
			name:        "quit after whole file",
			input:       "host\n9000\n2\n0\n",
			replies:     "whole file\x00",
			wantWritten: "w\x00q\x00",
		},
		{
			name:        "quit on closed input",
			input:       "host\n9000\n",
			wantWritten: "q\x00",
		},
		{
			name:        "peer closed before reply",
			input:       "host\n9000\n1\n2\n",
			wantErr:     protocol.ErrPeerClosed,
			wantWritten: "2\x00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			res := mock.NewMockResolver(ctrl)
			conn := &countingConn{replies: bytes.NewReader([]byte(tt.replies))}
			res.EXPECT().
				Connect(gomock.Any(), models.Endpoint{Host: "host", Port: 9000}).
				Return(conn, nil)

			app, _, errOut := newTestApp(t, tt.input, res)

			err := app.Run()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotEmpty(t, errOut.String())
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, 1, conn.closed)
			assert.Equal(t, tt.wantWritten, conn.written.String())
		})
	}
}

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mock.NewMockResolver(ctrl)
	c := console.New(strings.NewReader(""), io.Discard, io.Discard, "")

	_, err := NewApp(nil, c, res, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilConfig)

	_, err = NewApp(testConfig, nil, res, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilConsole)

	_, err = NewApp(testConfig, c, nil, nil, logger.Nop())
	assert.ErrorIs(t, err, ErrNilResolver)

	_, err = NewApp(testConfig, c, res, nil, logger.Nop())
	assert.NoError(t, err)
}

func TestApp_Run_NilLogger(t *testing.T) {
	ctrl := gomock.NewController(t)
	res := mock.NewMockResolver(ctrl)
	conn := &countingConn{replies: bytes.NewReader([]byte("a\nb\x00"))}
	res.EXPECT().Connect(gomock.Any(), models.Endpoint{Host: "host", Port: 9000}).Return(conn, nil)

	var out bytes.Buffer
	c := console.New(strings.NewReader("host\n9000\n1\n1\n0\n"), &out, io.Discard, "")
	app, err := NewApp(testConfig, c, res, &out, nil)
	require.NoError(t, err)

	require.NotPanics(t, func() { err = app.Run() })
	assert.NoError(t, err)
	assert.Equal(t, "1\x00q\x00", conn.written.String())
	assert.Equal(t, 1, conn.closed)
}
