package logger

import (
	"github.com/charmbracelet/lipgloss"
	charm "github.com/charmbracelet/log"
)

const (
	colorGray   = "#808080"
	colorBlue   = "#5F87FF"
	colorGreen  = "#00D787"
	colorYellow = "#FFD700"
	colorRed    = "#FF5F5F"
)

// getLogStyles returns the level badges used by every AlpLogger.
func getLogStyles() *charm.Styles {
	styles := charm.DefaultStyles()

	badge := func(label, color string) lipgloss.Style {
		return lipgloss.NewStyle().
			SetString(label).
			Bold(true).
			Foreground(lipgloss.Color(color))
	}

	styles.Levels[TraceLevel] = badge("TRCE", colorGray)
	styles.Levels[charm.DebugLevel] = badge("DEBU", colorBlue)
	styles.Levels[charm.InfoLevel] = badge("INFO", colorGreen)
	styles.Levels[charm.WarnLevel] = badge("WARN", colorYellow)
	styles.Levels[charm.ErrorLevel] = badge("ERRO", colorRed)
	styles.Levels[charm.FatalLevel] = badge("FATA", colorRed)
	styles.Key = lipgloss.NewStyle().Foreground(lipgloss.Color(colorGray))

	return styles
}
