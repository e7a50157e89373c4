package askpass

import (
	"bytes"
)

//
// Prompt is a single request for one line of text. Result is owned by the caller,
// its length is the capacity available for the answer including the terminating NUL.
//
type Prompt struct {
	Label  string
	Result []byte
}

//
// PromptSet is the ordered group of prompts for one credential round, plus the
// shared title and instruction text that is shown in front of every prompt.
//
type PromptSet struct {
	Name         *string
	Instruction  *string
	NameRequired bool
	Prompts      []*Prompt
}

// NewPrompt allocates a prompt with a zeroed result buffer of the given capacity.
func NewPrompt(label string, capacity int) *Prompt {
	if capacity < 0 {
		capacity = 0
	}
	return &Prompt{Label: label, Result: make([]byte, capacity)}
}

// Bytes returns the answer up to the first NUL. The slice aliases the result buffer.
func (p *Prompt) Bytes() []byte {
	if i := bytes.IndexByte(p.Result, 0); i >= 0 {
		return p.Result[:i]
	}
	return p.Result
}

func (p *Prompt) Value() string {
	return string(p.Bytes())
}

// Wipe zeroes the whole result buffer.
func (p *Prompt) Wipe() {
	for i := range p.Result {
		p.Result[i] = 0
	}
}

// fill copies value into the result buffer, truncated to leave room for the NUL.
func (p *Prompt) fill(value []byte) int {
	p.Wipe()
	if len(p.Result) == 0 {
		return 0
	}
	return copy(p.Result[:len(p.Result)-1], value)
}

// Wipe zeroes every result buffer in the set.
func (s *PromptSet) Wipe() {
	for _, p := range s.Prompts {
		p.Wipe()
	}
}
