package askpass

import (
	"errors"
	"fmt"
)

type Outcome int

const (
	// OutcomeUnavailable means no helper is configured, the caller should try another way.
	OutcomeUnavailable Outcome = iota
	OutcomeSuccess
	OutcomeFatal
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUnavailable:
		return "unavailable"
	case OutcomeSuccess:
		return "success"
	case OutcomeFatal:
		return "fatal"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

type PromptOp string

const (
	PromptOpCall PromptOp = "call"
	PromptOpRead PromptOp = "read"
)

var (
	ErrNoOutput   = errors.New("helper produced no output")
	ErrNoCapacity = errors.New("prompt has no result buffer")
)

//
// PromptError reports the prompt whose helper invocation aborted the whole set.
//
type PromptError struct {
	Op    PromptOp
	Label string
	Err   error
}

func (e *PromptError) Error() string {
	if e.Op == PromptOpCall {
		return fmt.Sprintf("Failed to call askpass helper for prompt: %s", e.Label)
	}
	return fmt.Sprintf("Error reading askpass helper output for prompt: %s", e.Label)
}

func (e *PromptError) Unwrap() error {
	return e.Err
}
