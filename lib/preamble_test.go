package askpass

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestBuildPreamble(t *testing.T) {
	tests := []struct {
		name string
		set  PromptSet
		want string
	}{
		{
			name: "name and instruction",
			set:  PromptSet{Name: toSP("SSH login"), Instruction: toSP("Use your token"), NameRequired: true},
			want: "SSH login\nUse your token\n",
		},
		{
			name: "name not required",
			set:  PromptSet{Name: toSP("SSH login"), Instruction: toSP("Use your token")},
			want: "Use your token\n",
		},
		{
			name: "newlines are not doubled",
			set:  PromptSet{Name: toSP("SSH login\n"), Instruction: toSP("two\nlines\n"), NameRequired: true},
			want: "SSH login\ntwo\nlines\n",
		},
		{
			name: "empty name",
			set:  PromptSet{Name: toSP(""), Instruction: toSP("Use your token"), NameRequired: true},
			want: "Use your token\n",
		},
		{
			name: "empty instruction",
			set:  PromptSet{Instruction: toSP("")},
			want: "",
		},
		{
			name: "nothing",
			set:  PromptSet{NameRequired: true},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := buildPreamble(&tt.set, defaultMaxPreamble)
			assert.Equal(t, tt.want, got)
			assert.False(t, truncated)
		})
	}
}

func TestBuildPreambleHidesName(t *testing.T) {
	set := &PromptSet{Name: toSP("top secret host"), Instruction: toSP("hello")}

	got, _ := buildPreamble(set, defaultMaxPreamble)
	assert.NotContains(t, got, "top secret host")
}

func TestBuildPreambleTruncatesLongName(t *testing.T) {
	set := &PromptSet{
		Name:         toSP(strings.Repeat("n", 3000)),
		Instruction:  toSP("never seen"),
		NameRequired: true,
	}

	got, truncated := buildPreamble(set, defaultMaxPreamble)

	assert.True(t, truncated)
	assert.Len(t, got, defaultMaxPreamble)
	assert.True(t, strings.HasSuffix(got, "n\n"))
	assert.NotContains(t, got, "never seen")
}

func TestBuildPreambleTruncatesOnRuneBoundary(t *testing.T) {
	set := &PromptSet{Instruction: toSP(strings.Repeat("é", 10))}

	// 20 bytes of text plus a newline do not fit into 8.
	got, truncated := buildPreamble(set, 8)

	assert.True(t, truncated)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, "ééé\n", got)
}

func TestBuildPreambleKeepsInstructionNewline(t *testing.T) {
	set := &PromptSet{Name: toSP("abc"), Instruction: toSP("defgh"), NameRequired: true}

	got, truncated := buildPreamble(set, 7)

	assert.True(t, truncated)
	assert.Equal(t, "abc\nde\n", got)
}

func TestBuildArgument(t *testing.T) {
	got, truncated := buildArgument("title\n", "Password: ", defaultMaxArgument)
	assert.False(t, truncated)
	assert.Equal(t, "title\nPassword: ", got)

	got, truncated = buildArgument("title\n", strings.Repeat("p", 100), 16)
	assert.True(t, truncated)
	assert.Equal(t, "title\npppppppppp", got)

	got, truncated = buildArgument(strings.Repeat("t", 20), "Password: ", 16)
	assert.True(t, truncated)
	assert.Equal(t, strings.Repeat("t", 16), got)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "", truncateRunes("abc", 0))
	assert.Equal(t, "", truncateRunes("abc", -1))
	assert.Equal(t, "abc", truncateRunes("abc", 5))
	assert.Equal(t, "ab", truncateRunes("abc", 2))
	assert.Equal(t, "a", truncateRunes("aé", 2))
	assert.Equal(t, "ab", truncateRunes("ab😀", 4))
}

func TestTruncateRunesInvalidUTF8(t *testing.T) {
	invalid := strings.Repeat("\x80", 100) + "Password: "

	got, truncated := buildArgument("", invalid, 16)

	assert.True(t, truncated)
	assert.Equal(t, strings.Repeat("\x80", 16), got)
}

func TestNulEndsText(t *testing.T) {
	got, truncated := buildArgument("title\n", "Pass\x00word: ", defaultMaxArgument)
	assert.False(t, truncated)
	assert.Equal(t, "title\nPass", got)

	set := &PromptSet{Name: toSP("host\x00junk"), Instruction: toSP("hello"), NameRequired: true}
	preamble, _ := buildPreamble(set, defaultMaxPreamble)
	assert.Equal(t, "host\nhello\n", preamble)
}
