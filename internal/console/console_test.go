package console

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/MKhiriev/go-column-client/internal/protocol"
	"github.com/MKhiriev/go-column-client/internal/resolver"
	"github.com/MKhiriev/go-column-client/internal/session"
	"github.com/MKhiriev/go-column-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(input string) (*Console, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return New(strings.NewReader(input), &out, &errOut, ""), &out, &errOut
}

// ── Endpoint ─────────────────────────────────────────────────────────────────

func TestEndpoint_BlankHostUsesDefault(t *testing.T) {
	c, out, _ := newTestConsole("\n9000\n")

	endpoint, err := c.Endpoint()
	require.NoError(t, err)

	assert.Equal(t, models.Endpoint{Host: "localhost", Port: 9000}, endpoint)
	assert.Equal(t, "Machine name [localhost]? Port number? ", out.String())
}

func TestEndpoint_ConfiguredDefaultHost(t *testing.T) {
	var out bytes.Buffer
	c := New(strings.NewReader("\n80\n"), &out, io.Discard, "columns.local")

	endpoint, err := c.Endpoint()
	require.NoError(t, err)

	assert.Equal(t, "columns.local", endpoint.Host)
	assert.True(t, strings.HasPrefix(out.String(), "Machine name [columns.local]? "))
}

func TestEndpoint_TypedHostAndBadPort(t *testing.T) {
	c, _, _ := newTestConsole("example.com\r\nnot-a-port\n")

	endpoint, err := c.Endpoint()
	require.NoError(t, err)
	assert.Equal(t, models.Endpoint{Host: "example.com", Port: 0}, endpoint)
}

func TestEndpoint_InputEnded(t *testing.T) {
	c, _, _ := newTestConsole("")

	_, err := c.Endpoint()
	assert.ErrorIs(t, err, io.EOF)
}

func TestPort_LastLineWithoutNewline(t *testing.T) {
	c, _, _ := newTestConsole("9000")

	port, err := c.Port()
	require.NoError(t, err)
	assert.Equal(t, 9000, port)
}

// ── MenuChoice ───────────────────────────────────────────────────────────────

func TestMenuChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    session.MenuChoice
		prompts int
	}{
		{name: "quit", input: "0\n", want: session.ChoiceQuit, prompts: 1},
		{name: "column", input: "1\n", want: session.ChoiceColumn, prompts: 1},
		{name: "whole file", input: " 2 \n", want: session.ChoiceWholeFile, prompts: 1},
		{name: "out of range then valid", input: "3\n-1\n2\n", want: session.ChoiceWholeFile, prompts: 3},
		{name: "not a number is asked again", input: "abc\n\n1\n", want: session.ChoiceColumn, prompts: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := newTestConsole(tt.input)

			got, err := c.MenuChoice()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompts, strings.Count(out.String(), choicePrompt))
			assert.Contains(t, out.String(), menuTitle)
			assert.Contains(t, out.String(), "(1) Get one column\n(2) Get whole file\n(0) Quit\n")
		})
	}
}

func TestMenuChoice_EOF(t *testing.T) {
	c, _, _ := newTestConsole("7\n")

	_, err := c.MenuChoice()
	assert.ErrorIs(t, err, io.EOF)
}

// ── ColumnChoice ─────────────────────────────────────────────────────────────

func TestColumnChoice(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    int
		prompts int
	}{
		{name: "cancel", input: "0\n", want: 0, prompts: 1},
		{name: "first column", input: "1\n", want: 1, prompts: 1},
		{name: "last column", input: "4\n", want: 4, prompts: 1},
		{name: "re-prompt until in range", input: "5\n-2\nx\n3\n", want: 3, prompts: 4},
		{name: "trailing garbage is asked again", input: "3x\n2\n", want: 2, prompts: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, _ := newTestConsole(tt.input)

			got, err := c.ColumnChoice()
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.prompts, strings.Count(out.String(), columnPrompt))
		})
	}
}

func TestColumnChoice_EOF(t *testing.T) {
	c, _, _ := newTestConsole("")

	_, err := c.ColumnChoice()
	assert.ErrorIs(t, err, io.EOF)
}

// ── Diagnostic ───────────────────────────────────────────────────────────────

func TestDiagnostic(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "connect failure",
			err:  fmt.Errorf("%w %s: %w", resolver.ErrConnect, "localhost:9000", errors.New("connection refused")),
			want: "could not connect to localhost:9000: connection refused",
		},
		{
			name: "resolution failure",
			err:  fmt.Errorf("%w: %w", resolver.ErrResolve, errors.New("lookup nowhere: no such host")),
			want: "no such host",
		},
		{
			name: "peer closed",
			err:  protocol.ErrPeerClosed,
			want: "Server closed the connection",
		},
		{
			name: "write failure",
			err:  fmt.Errorf("%w: %w", session.ErrWrite, errors.New("broken pipe")),
			want: "Could not send the command: broken pipe",
		},
		{
			name: "read failure",
			err:  fmt.Errorf("%w: %w", session.ErrRead, errors.New("connection reset by peer")),
			want: "Could not receive the reply: connection reset by peer",
		},
		{
			name: "anything else",
			err:  errors.New("unexpected"),
			want: "unexpected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, out, errOut := newTestConsole("")

			c.Diagnostic(tt.err)
			assert.Contains(t, errOut.String(), tt.want)
			assert.Empty(t, out.String())
		})
	}
}

func TestDiagnostic_Nil(t *testing.T) {
	c, _, errOut := newTestConsole("")

	c.Diagnostic(nil)
	assert.Empty(t, errOut.String())
}
