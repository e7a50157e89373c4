package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	askpass "github.com/hgschmie/askpass/lib"
)

func TestWriteAnswer(t *testing.T) {
	p := askpass.NewPrompt("Password: ", 8)
	copy(p.Result, "hunter2")

	var out bytes.Buffer
	require.NoError(t, writeAnswer(&out, p))
	require.NoError(t, writeAnswer(&out, askpass.NewPrompt("empty", 4)))

	assert.Equal(t, "hunter2\n\n", out.String())
	assert.Equal(t, "hunter2", p.Value(), "writing must not touch the buffer")
}
