package terminal

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	tmpl "github.com/cloudposse/alp/pkg/template"
)

// sgrControls are the !(name) controls expressed as SGR parameters.
var sgrControls = map[string]string{
	"reset":     termenv.ResetSeq,
	"normal":    termenv.ResetSeq,
	"bold":      termenv.BoldSeq,
	"dim":       termenv.FaintSeq,
	"faint":     termenv.FaintSeq,
	"italic":    termenv.ItalicSeq,
	"underline": termenv.UnderlineSeq,
	"blink":     termenv.BlinkSeq,
	"reverse":   termenv.ReverseSeq,
	"crossout":  termenv.CrossOutSeq,
}

// screenControls are the !(name) controls that move the cursor or clear the screen.
var screenControls = map[string]string{
	"clear":       termenv.CSI + fmt.Sprintf(termenv.EraseDisplaySeq, 2),
	"home":        termenv.CSI + fmt.Sprintf(termenv.CursorPositionSeq, 1, 1),
	"clear_line":  termenv.CSI + termenv.EraseEntireLineSeq,
	"clear_eol":   termenv.CSI + termenv.EraseLineRightSeq,
	"hide_cursor": termenv.CSI + termenv.HideCursorSeq,
	"show_cursor": termenv.CSI + termenv.ShowCursorSeq,
}

// namedColors maps $(name) and #(name) color names onto the 16 ANSI colors.
var namedColors = map[string]termenv.ANSIColor{
	"black":          termenv.ANSIBlack,
	"red":            termenv.ANSIRed,
	"green":          termenv.ANSIGreen,
	"yellow":         termenv.ANSIYellow,
	"blue":           termenv.ANSIBlue,
	"magenta":        termenv.ANSIMagenta,
	"cyan":           termenv.ANSICyan,
	"white":          termenv.ANSIWhite,
	"grey":           termenv.ANSIBrightBlack,
	"gray":           termenv.ANSIBrightBlack,
	"bright_black":   termenv.ANSIBrightBlack,
	"bright_red":     termenv.ANSIBrightRed,
	"bright_green":   termenv.ANSIBrightGreen,
	"bright_yellow":  termenv.ANSIBrightYellow,
	"bright_blue":    termenv.ANSIBrightBlue,
	"bright_magenta": termenv.ANSIBrightMagenta,
	"bright_cyan":    termenv.ANSIBrightCyan,
	"bright_white":   termenv.ANSIBrightWhite,
}

// NewStyles returns the StyleProvider for a color profile: ANSIStyles for
// any color-capable profile and NoStyles otherwise.
func NewStyles(profile ColorProfile) tmpl.StyleProvider {
	if profile == ColorNone {
		return NoStyles{}
	}
	return NewANSIStyles(profile)
}

// ANSIStyles resolves style names into escape sequences, downsampling colors
// to what the terminal supports.
type ANSIStyles struct {
	profile termenv.Profile
}

// NewANSIStyles returns an ANSIStyles for the given color profile.
func NewANSIStyles(profile ColorProfile) *ANSIStyles {
	return &ANSIStyles{profile: toTermenvProfile(profile)}
}

func (s *ANSIStyles) Control(name string) string {
	key := normalizeName(name)
	if seq, ok := sgrControls[key]; ok {
		return sgr(seq)
	}
	return screenControls[key]
}

func (s *ANSIStyles) Foreground(name string) string {
	return s.color(name, false)
}

func (s *ANSIStyles) Background(name string) string {
	return s.color(name, true)
}

// color accepts a named ANSI color, an ANSI/256 index ("9", "208") or a
// hex value ("#ff8800").
func (s *ANSIStyles) color(name string, background bool) string {
	var c termenv.Color
	if named, ok := namedColors[normalizeName(name)]; ok {
		c = named
	} else {
		c = s.profile.Color(strings.TrimSpace(name))
	}
	if c == nil {
		return ""
	}

	seq := s.profile.Convert(c).Sequence(background)
	if seq == "" {
		return ""
	}
	return sgr(seq)
}

// NoStyles resolves every name to the empty string. It backs --no-format
// and output to non-terminals.
type NoStyles struct{}

func (NoStyles) Control(string) string    { return "" }
func (NoStyles) Foreground(string) string { return "" }
func (NoStyles) Background(string) string { return "" }

func sgr(seq string) string {
	return termenv.CSI + seq + "m"
}

func normalizeName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
}

func toTermenvProfile(profile ColorProfile) termenv.Profile {
	switch profile {
	case ColorTrue:
		return termenv.TrueColor
	case Color256:
		return termenv.ANSI256
	case Color16:
		return termenv.ANSI
	default:
		return termenv.Ascii
	}
}
