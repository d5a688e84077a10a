package errors

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
	"golang.org/x/term"
)

const (
	// DefaultMaxLineLength is the default maximum line length before wrapping.
	DefaultMaxLineLength = 80

	newline      = "\n"
	hintIndent   = "    "
	defaultTitle = "Error"

	colorRed  = "#FF0000"
	colorGray = "#808080"
	colorCyan = "#00FFFF"
)

// FormatterConfig controls error formatting behavior.
type FormatterConfig struct {
	// Verbose enables context and the full error chain.
	Verbose bool

	// Color controls color output: "auto", "always", or "never".
	Color string

	// MaxLineLength is the maximum length before wrapping (default: 80).
	MaxLineLength int
}

// DefaultFormatterConfig returns default formatting configuration.
func DefaultFormatterConfig() FormatterConfig {
	return FormatterConfig{
		Verbose:       false,
		Color:         "auto",
		MaxLineLength: DefaultMaxLineLength,
	}
}

// Format formats an error for display on the terminal.
func Format(err error, config FormatterConfig) string {
	if err == nil {
		return ""
	}

	useColor := shouldUseColor(config.Color)

	titleStyle := lipgloss.NewStyle().Bold(true)
	errorStyle := lipgloss.NewStyle()
	hintStyle := lipgloss.NewStyle()
	if useColor {
		titleStyle = titleStyle.Foreground(lipgloss.Color(colorRed))
		errorStyle = errorStyle.Foreground(lipgloss.Color(colorRed))
		hintStyle = hintStyle.Foreground(lipgloss.Color(colorCyan))
	}

	title := defaultTitle
	var hints []string
	for _, hint := range errors.GetAllHints(err) {
		if strings.HasPrefix(hint, titleHintPrefix) {
			title = strings.TrimPrefix(hint, titleHintPrefix)
			continue
		}
		hints = append(hints, hint)
	}

	var output strings.Builder
	output.WriteString(titleStyle.Render(title + ":"))
	output.WriteString(" ")

	mainMsg := err.Error()
	if len(mainMsg) > config.MaxLineLength && !config.Verbose {
		output.WriteString(errorStyle.Render(wrapText(mainMsg, config.MaxLineLength)))
	} else {
		output.WriteString(errorStyle.Render(mainMsg))
	}

	for _, hint := range hints {
		output.WriteString(newline)
		output.WriteString(hintIndent + hintStyle.Render("hint: "+hint))
	}

	if config.Verbose {
		if details := formatContext(err); details != "" {
			output.WriteString(newline + newline)
			output.WriteString(details)
		}
		output.WriteString(newline + newline)
		output.WriteString(formatStackTrace(err, useColor))
	}

	return output.String()
}

// formatContext renders the safe details attached by ErrorBuilder.WithContext
// as "key: value" lines.
func formatContext(err error) string {
	var lines []string
	for _, payload := range errors.GetAllSafeDetails(err) {
		for _, detail := range payload.SafeDetails {
			lines = append(lines, contextLines(detail)...)
		}
	}
	return strings.Join(lines, newline)
}

// contextLines parses "unit=alp format=dec" into indented lines.
func contextLines(detail string) []string {
	var lines []string
	for _, pair := range strings.Split(detail, " ") {
		if parts := strings.SplitN(pair, "=", 2); len(parts) == 2 {
			lines = append(lines, hintIndent+parts[0]+": "+parts[1])
		}
	}
	return lines
}

// shouldUseColor determines if color output should be used.
func shouldUseColor(colorMode string) bool {
	switch colorMode {
	case "always":
		return true
	case "never":
		return false
	default:
		return term.IsTerminal(int(os.Stderr.Fd()))
	}
}

// wrapText wraps text to the specified width.
func wrapText(text string, width int) string {
	if width <= 0 {
		width = DefaultMaxLineLength
	}

	var lines []string
	var currentLine strings.Builder

	for _, word := range strings.Fields(text) {
		if currentLine.Len() > 0 && currentLine.Len()+1+len(word) > width {
			lines = append(lines, currentLine.String())
			currentLine.Reset()
		}
		if currentLine.Len() > 0 {
			currentLine.WriteString(" ")
		}
		currentLine.WriteString(word)
	}

	if currentLine.Len() > 0 {
		lines = append(lines, currentLine.String())
	}

	return strings.Join(lines, newline)
}

// formatStackTrace formats the full error chain with stack traces.
func formatStackTrace(err error, useColor bool) string {
	style := lipgloss.NewStyle()
	if useColor {
		style = style.Foreground(lipgloss.Color(colorGray))
	}
	return style.Render(fmt.Sprintf("%+v", err))
}
