package askpass

import (
	"context"
	"io"
	"os"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

//
// Resolver answers prompt sets by running the configured askpass helper once per prompt.
// It keeps no state between calls, the environment is read again every time.
//
type Resolver struct {
	Settings ResolverSettings

	// Getenv looks up the helper path and display variables.
	Getenv func(string) string

	// Stderr receives the helper's error output.
	Stderr io.Writer

	command commandFunc
}

func NewResolver(settings ResolverSettings) *Resolver {
	return &Resolver{
		Settings: settings.withDefaults(),
		Getenv:   os.Getenv,
		Stderr:   os.Stderr,
		command:  exec.CommandContext,
	}
}

//
// Helper returns the helper program path, if both the helper and a display are configured.
//
func (r *Resolver) Helper() (string, bool) {
	helper := r.Getenv(r.Settings.AskpassEnv)
	display := r.Getenv(r.Settings.DisplayEnv)

	if len(helper) == 0 || len(display) == 0 {
		return "", false
	}
	return helper, true
}

//
// Resolve fills the result buffer of every prompt in set with one line read from the helper.
//
// It returns OutcomeUnavailable without touching the set if no helper is configured. Any
// failure to run the helper or to read an answer stops at the failing prompt, wipes all
// result buffers and returns OutcomeFatal with a *PromptError.
//
func (r *Resolver) Resolve(ctx context.Context, set *PromptSet) (Outcome, error) {
	helper, ok := r.Helper()
	if !ok {
		log.Debugf("askpass helper not available (%s, %s unset)", r.Settings.AskpassEnv, r.Settings.DisplayEnv)
		return OutcomeUnavailable, nil
	}

	// zero all the results, in case this aborts half-way through.
	set.Wipe()

	for _, p := range set.Prompts {
		if len(p.Result) == 0 {
			return OutcomeFatal, &PromptError{Op: PromptOpRead, Label: p.Label, Err: ErrNoCapacity}
		}
	}

	preamble, truncated := buildPreamble(set, r.Settings.MaxPreamble)
	if truncated {
		log.Debugf("askpass preamble truncated to %d bytes", len(preamble))
	}

	for _, p := range set.Prompts {
		if err := r.resolvePrompt(ctx, helper, preamble, p); err != nil {
			set.Wipe()
			return OutcomeFatal, err
		}
	}

	return OutcomeSuccess, nil
}

func (r *Resolver) resolvePrompt(ctx context.Context, helper string, preamble string, p *Prompt) error {
	argument, truncated := buildArgument(preamble, p.Label, r.Settings.MaxArgument)
	if truncated {
		log.Debugf("askpass argument for prompt '%s' truncated to %d bytes", p.Label, len(argument))
	}

	if r.Settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Settings.Timeout)
		defer cancel()
	}

	return runHelper(ctx, r.command, helper, argument, r.Stderr, p)
}

// Display reports whether a helper would be used right now.
func (r *Resolver) Display() {
	helper, ok := r.Helper()
	if ok {
		logStringSetting(labelHelper, &helper)
	} else {
		Information("%s <unavailable> (%s or %s unset)", padLabel(labelHelper), r.Settings.AskpassEnv, r.Settings.DisplayEnv)
	}
}
