package askpass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPrompt(t *testing.T) {
	p := NewPrompt("Password: ", 8)
	assert.Len(t, p.Result, 8)
	assert.Equal(t, "", p.Value())

	assert.Len(t, NewPrompt("x", -3).Result, 0)
}

func TestPromptFill(t *testing.T) {
	p := NewPrompt("Password: ", 5)

	assert.Equal(t, 4, p.fill([]byte("hunter2")))
	assert.Equal(t, "hunt", p.Value())
	assert.Equal(t, byte(0), p.Result[4])

	assert.Equal(t, 2, p.fill([]byte("ok")))
	assert.Equal(t, []byte{'o', 'k', 0, 0, 0}, p.Result)

	empty := NewPrompt("nothing", 0)
	assert.Equal(t, 0, empty.fill([]byte("abc")))
}

func TestPromptBytesStopsAtNul(t *testing.T) {
	p := &Prompt{Result: []byte{'a', 'b', 0, 'c'}}
	assert.Equal(t, []byte("ab"), p.Bytes())

	full := &Prompt{Result: []byte("abc")}
	assert.Equal(t, "abc", full.Value())
}

func TestPromptSetWipe(t *testing.T) {
	set := &PromptSet{Prompts: []*Prompt{NewPrompt("a", 4), NewPrompt("b", 4)}}
	set.Prompts[0].fill([]byte("one"))
	set.Prompts[1].fill([]byte("two"))

	set.Wipe()

	for _, p := range set.Prompts {
		assert.Equal(t, make([]byte, 4), p.Result)
	}
}
