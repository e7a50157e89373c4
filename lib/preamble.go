package askpass

import (
	"strings"
	"unicode/utf8"
)

const (
	defaultMaxPreamble = 2048
	defaultMaxArgument = 4096
)

//
// boundedText is a string builder that never grows past max bytes. Text that does not
// fit is cut on a rune boundary and the builder remembers that it truncated.
//
type boundedText struct {
	b         strings.Builder
	max       int
	truncated bool
}

func newBoundedText(max int) *boundedText {
	return &boundedText{max: max}
}

func (t *boundedText) available() int {
	return t.max - t.b.Len()
}

func (t *boundedText) write(s string) {
	s = cutAtNul(s)
	if n := t.available(); len(s) > n {
		s = truncateRunes(s, n)
		t.truncated = true
	}
	t.b.WriteString(s)
}

// writeLine appends s and ensures the result ends in a newline. A line that is too
// long loses text from its end, never its newline.
func (t *boundedText) writeLine(s string) {
	s = cutAtNul(s)
	if !strings.HasSuffix(s, "\n") {
		s += "\n"
	}
	n := t.available()
	if n <= 0 {
		t.truncated = true
		return
	}
	if len(s) > n {
		s = truncateRunes(s, n-1) + "\n"
		t.truncated = true
	}
	t.b.WriteString(s)
}

func (t *boundedText) String() string {
	return t.b.String()
}

func truncateRunes(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s) <= n {
		return s
	}
	// a rune is at most UTFMax bytes, anything else is not UTF-8 and gets a plain byte cut.
	for i := n; i > 0 && i > n-utf8.UTFMax; i-- {
		if utf8.RuneStart(s[i]) {
			return s[:i]
		}
	}
	return s[:n]
}

// cutAtNul drops everything from the first NUL on, no process argument can carry one.
func cutAtNul(s string) string {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return s[:i]
	}
	return s
}

// buildPreamble renders the title and instruction shown in front of every prompt of the set.
func buildPreamble(set *PromptSet, max int) (string, bool) {
	t := newBoundedText(max)

	// the name is only shown when it has to be...
	if set.NameRequired && set.Name != nil && len(*set.Name) > 0 {
		t.writeLine(*set.Name)
	}

	// ...but any instruction always is.
	if set.Instruction != nil && len(*set.Instruction) > 0 {
		t.writeLine(*set.Instruction)
	}

	return t.String(), t.truncated
}

// buildArgument is the single argument handed to the helper for one prompt.
func buildArgument(preamble string, label string, max int) (string, bool) {
	t := newBoundedText(max)
	t.write(preamble)
	t.write(label)
	return t.String(), t.truncated
}
