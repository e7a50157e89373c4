package askpass

import (
	"fmt"
	"os"

	"github.com/manifoldco/promptui"
	log "github.com/sirupsen/logrus"
)

//
// PromptTerminal answers a prompt set on the controlling terminal. It is the fallback
// for callers whose resolver reported OutcomeUnavailable.
//
func PromptTerminal(set *PromptSet) error {
	set.Wipe()

	if !*globalInteractive {
		return fmt.Errorf("Input required but not interactive")
	}

	preamble, _ := buildPreamble(set, defaultMaxPreamble)
	if len(preamble) > 0 {
		fmt.Fprint(os.Stderr, preamble)
	}

	for _, p := range set.Prompts {
		value, err := textInput(p.Label, nil, true, nil)
		if err != nil {
			set.Wipe()
			return err
		}
		p.fill([]byte(*value))
	}

	return nil
}

func textInput(label string, defaultValue *string, hidden bool, validate promptui.ValidateFunc) (*string, error) {

	if !*globalInteractive {
		if defaultValue != nil {
			return defaultValue, nil
		}

		return nil, fmt.Errorf("Input required but not interactive")
	}

	prompt := promptui.Prompt{
		Label:    label,
		Validate: validate,
		Stdout:   &bellSkipper{},
	}

	if hidden {
		prompt.Mask = '*'
	}

	if defaultValue != nil {
		prompt.Default = *defaultValue
	}

	value, err := prompt.Run()

	if err != nil {
		checkForKeyboard(err)
		return nil, err
	}

	return &value, nil
}

func checkForKeyboard(err error) {
	if err == promptui.ErrInterrupt {
		log.Fatal("Terminated by ^C")
	} else if err == promptui.ErrEOF {
		log.Fatal("Terminated by ^D")
	}
}

// bellSkipper implements an io.WriteCloser that skips the terminal bell
// character (ASCII code 7), and writes the rest to os.Stderr. It is used to
// replace readline.Stdout, that is the package used by promptui to display the
// prompts.
//
// This is a workaround for the bell issue documented in
// https://github.com/manifoldco/promptui/issues/49.
type bellSkipper struct{}

// Write implements an io.WriterCloser over os.Stderr, but it skips the terminal
// bell character.
func (bs *bellSkipper) Write(b []byte) (int, error) {
	const charBell = 7 // c.f. readline.CharBell
	if len(b) == 1 && b[0] == charBell {
		return 0, nil
	}
	return os.Stderr.Write(b)
}

// Close implements an io.WriterCloser over os.Stderr.
func (bs *bellSkipper) Close() error {
	return os.Stderr.Close()
}
