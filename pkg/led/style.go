package led

import (
	"strings"
)

// Layout is the panel grid. Letters are LED positions; everything else is
// copied verbatim.
const Layout = "   a  b  c  d\n" +
	"e  g  h  i  j\n" +
	"f  k  l  m  n\n" +
	"o  p  q  r  s"

const (
	litGlyph   = "●"
	unlitGlyph = "·"
)

// Appearance is how one LED is drawn in one state.
type Appearance struct {
	Glyph      string
	Foreground string
	Background string
	// Controls are style names such as "bold" or "dim".
	Controls []string
}

// Row holds the unlit and lit appearance of an LED.
type Row struct {
	Unlit Appearance
	Lit   Appearance
}

// StyleTable maps every LED to its Row.
type StyleTable map[ID]Row

// DefaultStyleTable colors the hexalp and qvalp lamps green, the salp and
// talp lamps red and the seconds ring yellow.
func DefaultStyleTable() StyleTable {
	table := make(StyleTable, Count)
	for _, id := range IDs {
		color := "yellow"
		switch {
		case id <= F:
			color = "green"
		case id <= N:
			color = "red"
		}
		table[id] = Row{
			Unlit: Appearance{Glyph: unlitGlyph, Foreground: color, Controls: []string{"dim"}},
			Lit:   Appearance{Glyph: litGlyph, Foreground: color, Controls: []string{"bold"}},
		}
	}
	return table
}

// Appearance returns how id is drawn for the given lit state. LEDs missing
// from the table fall back to an unstyled glyph.
func (t StyleTable) Appearance(id ID, lit bool) Appearance {
	row, ok := t[id]
	if !ok {
		if lit {
			return Appearance{Glyph: litGlyph}
		}
		return Appearance{Glyph: unlitGlyph}
	}
	if lit {
		return row.Lit
	}
	return row.Unlit
}

// Markup returns the template markup for one appearance.
func (a Appearance) Markup() string {
	var b strings.Builder
	b.WriteString("!(reset)")
	for _, control := range a.Controls {
		b.WriteString("!(" + control + ")")
	}
	if a.Foreground != "" {
		b.WriteString("$(" + a.Foreground + ")")
	}
	if a.Background != "" {
		b.WriteString("#(" + a.Background + ")")
	}
	b.WriteString(a.Glyph)
	b.WriteString("!(reset)")
	return b.String()
}

// Markup lays the panel out as template markup ready for rendering.
func Markup(state State, table StyleTable) string {
	var b strings.Builder
	for _, r := range Layout {
		id := ID(r)
		if r < 128 && id.Valid() {
			b.WriteString(table.Appearance(id, state.Lit(id)).Markup())
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
