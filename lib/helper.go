package askpass

import (
	"context"
	"io"
	"os/exec"
	"time"

	log "github.com/sirupsen/logrus"
)

// how long Wait gives a killed helper's children to release its output pipes.
const helperWaitDelay = time.Second

type commandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

//
// runHelper starts the helper with argument as its only parameter and reads one line of its
// output into the result buffer of the prompt. The helper is never run through a shell, so
// nothing in the argument can change what gets executed.
//
func runHelper(ctx context.Context, command commandFunc, helper string, argument string, stderr io.Writer, p *Prompt) error {
	cmd := command(ctx, helper, argument)
	cmd.Stdin = nil // null device
	cmd.Stderr = stderr
	cmd.WaitDelay = helperWaitDelay

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return &PromptError{Op: PromptOpCall, Label: p.Label, Err: err}
	}

	if err := cmd.Start(); err != nil {
		return &PromptError{Op: PromptOpCall, Label: p.Label, Err: err}
	}

	// killing the helper does not close the pipe while one of its own children still
	// holds it, so the read is cut short when the context is done.
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			_ = stdout.Close()
		case <-done:
		}
	}()

	_, readErr := readLine(stdout, p.Result)
	close(done)

	if readErr != nil && ctx.Err() != nil {
		readErr = ctx.Err()
	}

	// anything past the first line is of no interest. Closing the pipe lets a chatty
	// helper die on a broken pipe instead of blocking on a full one.
	_ = stdout.Close()
	if err := cmd.Wait(); err != nil {
		log.Debugf("askpass helper for prompt '%s' exited: %v", p.Label, err)
	}

	if readErr != nil {
		return &PromptError{Op: PromptOpRead, Label: p.Label, Err: readErr}
	}

	return nil
}

//
// readLine reads up to and including the first newline, but never more than len(dst)-1 bytes,
// straight into dst and NUL-terminates it. A trailing newline is removed. Bytes are read one
// at a time so that no copy of the answer is left in an intermediate buffer.
//
func readLine(r io.Reader, dst []byte) (int, error) {
	if len(dst) == 0 {
		return 0, ErrNoCapacity
	}

	limit := len(dst) - 1
	n := 0
	eof := false

	for n < limit && !eof {
		m, err := r.Read(dst[n : n+1])
		n += m
		if m > 0 && dst[n-1] == '\n' {
			dst[n-1] = 0
			return n - 1, nil
		}
		if err == io.EOF {
			eof = true
		} else if err != nil {
			return n, err
		}
	}

	if n == 0 && !eof {
		// no room for any text, but the helper still has to answer.
		var first [1]byte
		m, err := io.ReadFull(r, first[:])
		first[0] = 0
		if m == 0 {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				return 0, ErrNoOutput
			}
			return 0, err
		}
	} else if n == 0 {
		return 0, ErrNoOutput
	}

	dst[n] = 0
	return n, nil
}
