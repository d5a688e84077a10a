package errors

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormat_Nil(t *testing.T) {
	assert.Empty(t, Format(nil, DefaultFormatterConfig()))
}

func TestFormat_SimpleError(t *testing.T) {
	err := errors.New("instant precedes the alp epoch")

	formatted := Format(err, FormatterConfig{Color: "never", MaxLineLength: DefaultMaxLineLength})

	assert.Contains(t, formatted, "Error:")
	assert.Contains(t, formatted, "instant precedes the alp epoch")
	assert.NotContains(t, formatted, "hint:")
}

func TestFormat_Hints(t *testing.T) {
	err := Build(ErrUnknownUnit).
		WithHint("Check the template for typos").
		WithHint("Run `alp units`").
		Err()

	formatted := Format(err, FormatterConfig{Color: "never", MaxLineLength: DefaultMaxLineLength})

	assert.Contains(t, formatted, "hint: Check the template for typos")
	assert.Contains(t, formatted, "hint: Run `alp units`")
}

func TestFormat_WrapsLongMessages(t *testing.T) {
	err := errors.New(strings.Repeat("word ", 40))

	formatted := Format(err, FormatterConfig{Color: "never", MaxLineLength: 20})

	for _, line := range strings.Split(formatted, "\n")[1:] {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestFormat_VerboseIncludesContext(t *testing.T) {
	err := Build(ErrUnknownUnit).WithContext("unit", "foo").Err()

	formatted := Format(err, FormatterConfig{Verbose: true, Color: "never", MaxLineLength: DefaultMaxLineLength})

	assert.Contains(t, formatted, "unit: foo")
}

func TestWrapText(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width int
		want  string
	}{
		{name: "fits", text: "short text", width: 80, want: "short text"},
		{name: "wraps", text: "aaa bbb ccc", width: 7, want: "aaa bbb\nccc"},
		{name: "default width", text: "a b", width: 0, want: "a b"},
		{name: "long word", text: "abcdefghij", width: 4, want: "abcdefghij"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wrapText(tt.text, tt.width))
		})
	}
}
