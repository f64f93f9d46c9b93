package protocol

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns its chunks one Read at a time, like a socket that
// delivered several segments.
type chunkReader struct {
	chunks [][]byte
	err    error
}

func (c *chunkReader) Read(p []byte) (int, error) {
	if len(c.chunks) == 0 {
		if c.err != nil {
			return 0, c.err
		}
		return 0, io.EOF
	}

	n := copy(p, c.chunks[0])
	c.chunks[0] = c.chunks[0][n:]
	if len(c.chunks[0]) == 0 {
		c.chunks = c.chunks[1:]
	}

	return n, nil
}

func TestNewReply_InvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		_, err := NewReply(c)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestReply_ShortReply(t *testing.T) {
	payload := []byte("Column 3 data\x00")

	reply, err := ReadReply(bytes.NewReader(payload), DefaultReplyCapacity)
	require.NoError(t, err)

	assert.Equal(t, len(payload), reply.Len())
	assert.Equal(t, payload, reply.Bytes())
	assert.Equal(t, "Column 3 data", reply.Text())
	assert.Equal(t, byte(0), reply.buf[reply.Len()])
}

func TestReply_ExactCapacity(t *testing.T) {
	payload := []byte("abcdefgh")

	reply, err := ReadReply(bytes.NewReader(payload), len(payload))
	require.NoError(t, err)

	assert.Equal(t, len(payload), reply.Len())
	assert.Equal(t, "abcdefgh", reply.Text())
	assert.Equal(t, byte(0), reply.buf[len(payload)])
}

func TestReply_LongReplyIsTruncated(t *testing.T) {
	src := strings.NewReader("0123456789")

	reply, err := ReadReply(src, 4)
	require.NoError(t, err)

	assert.Equal(t, 4, reply.Len())
	assert.Equal(t, "0123", reply.Text())
	assert.Len(t, reply.buf, 5)
	assert.Equal(t, byte(0), reply.buf[4])

	rest, err := io.ReadAll(src)
	require.NoError(t, err)
	assert.Equal(t, "456789", string(rest), "bytes beyond the capacity must stay in the stream")
}

func TestReply_SingleReadOnly(t *testing.T) {
	src := &chunkReader{chunks: [][]byte{[]byte("first"), []byte("second")}}

	reply, err := ReadReply(src, DefaultReplyCapacity)
	require.NoError(t, err)
	assert.Equal(t, "first", reply.Text())
	require.Len(t, src.chunks, 1)
	assert.Equal(t, "second", string(src.chunks[0]))
}

func TestReply_TextStopsAtFirstNul(t *testing.T) {
	reply, err := ReadReply(strings.NewReader("one\x00two\x00"), DefaultReplyCapacity)
	require.NoError(t, err)
	assert.Equal(t, "one", reply.Text())
	assert.Equal(t, 8, reply.Len())
}

func TestReply_PeerClosed(t *testing.T) {
	_, err := ReadReply(strings.NewReader(""), DefaultReplyCapacity)
	assert.ErrorIs(t, err, ErrPeerClosed)
}

func TestReply_ReadError(t *testing.T) {
	boom := errors.New("connection reset")

	_, err := ReadReply(&chunkReader{err: boom}, DefaultReplyCapacity)
	assert.ErrorIs(t, err, boom)
}

func TestReply_ReuseResetsLength(t *testing.T) {
	reply, err := NewReply(8)
	require.NoError(t, err)

	_, err = reply.ReadFrom(strings.NewReader("abc"))
	require.NoError(t, err)
	assert.Equal(t, 3, reply.Len())

	_, err = reply.ReadFrom(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrPeerClosed)
	assert.Equal(t, 0, reply.Len())
	assert.Equal(t, "", reply.Text())
}

func TestFrameReply(t *testing.T) {
	tests := []struct {
		name     string
		payload  string
		capacity int
		want     string
	}{
		{name: "fits", payload: "abc", capacity: 8, want: "abc\x00"},
		{name: "exactly fits with nul", payload: "abc", capacity: 4, want: "abc\x00"},
		{name: "truncated", payload: "abcdef", capacity: 4, want: "abc\x00"},
		{name: "empty payload", payload: "", capacity: 4, want: "\x00"},
		{name: "capacity one", payload: "abc", capacity: 1, want: "\x00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FrameReply([]byte(tt.payload), tt.capacity)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
			assert.LessOrEqual(t, len(got), tt.capacity)
		})
	}

	_, err := FrameReply([]byte("x"), 0)
	assert.ErrorIs(t, err, ErrInvalidCapacity)
}
