package askpass

import (
	"errors"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadLine(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		capacity int
		want     string
		err      error
	}{
		{name: "line", input: "secret\n", capacity: 16, want: "secret"},
		{name: "empty line", input: "\n", capacity: 16, want: ""},
		{name: "no newline", input: "secret", capacity: 16, want: "secret"},
		{name: "second line ignored", input: "one\ntwo\n", capacity: 16, want: "one"},
		{name: "exact fit keeps newline out", input: "1234567\n", capacity: 8, want: "1234567"},
		{name: "truncated", input: "123456789\n", capacity: 4, want: "123"},
		{name: "carriage return kept", input: "secret\r\n", capacity: 16, want: "secret\r"},
		{name: "no output", input: "", capacity: 16, err: ErrNoOutput},
		{name: "room for terminator only", input: "x\n", capacity: 1, want: ""},
		{name: "room for terminator only, no output", input: "", capacity: 1, err: ErrNoOutput},
		{name: "no room at all", input: "x\n", capacity: 0, err: ErrNoCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := make([]byte, tt.capacity)
			n, err := readLine(iotest.OneByteReader(strings.NewReader(tt.input)), dst)

			if tt.err != nil {
				require.True(t, errors.Is(err, tt.err), "got %v", err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, len(tt.want), n)
			assert.Equal(t, tt.want, string(dst[:n]))
			assert.Equal(t, byte(0), dst[n])
		})
	}
}

func TestReadLineReadError(t *testing.T) {
	failure := errors.New("pipe broke")

	dst := make([]byte, 16)
	_, err := readLine(iotest.ErrReader(failure), dst)

	require.True(t, errors.Is(err, failure))
}

func TestReadLineErrorAfterData(t *testing.T) {
	failure := errors.New("pipe broke")

	dst := make([]byte, 16)
	_, err := readLine(iotest.TimeoutReader(strings.NewReader("abc")), dst)
	require.Error(t, err)

	_, err = readLine(&failingReader{data: "ab", err: failure}, dst)
	require.True(t, errors.Is(err, failure))
}

type failingReader struct {
	data string
	err  error
}

func (r *failingReader) Read(p []byte) (int, error) {
	if len(r.data) == 0 {
		return 0, r.err
	}
	n := copy(p, r.data)
	r.data = r.data[n:]
	return n, nil
}
