package template

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	hexSuffix      = "#"
	widthSeparator = "_"

	// MaxWidth is the widest zero padding a &(unit_W) token may ask for.
	MaxWidth = 64
)

// ValueSpec is the parsed body of a &(...) token.
type ValueSpec struct {
	Name string
	Hex  bool
	// Width is the zero-padding width; 0 means no padding.
	Width int
}

// ParseValueSpec parses "name", "name#" or "name_W". A "_W" suffix that is
// not an integer in [1, MaxWidth] stays part of the name, so
// "seconds_since_epoch" is a bare name and "second_0" names a unit that
// does not exist.
func ParseValueSpec(body string) ValueSpec {
	if name, ok := strings.CutSuffix(body, hexSuffix); ok {
		return ValueSpec{Name: name, Hex: true}
	}

	if idx := strings.LastIndex(body, widthSeparator); idx > 0 {
		if width, err := strconv.Atoi(body[idx+1:]); err == nil && width > 0 && width <= MaxWidth && isDigits(body[idx+1:]) {
			return ValueSpec{Name: body[:idx], Width: width}
		}
	}

	return ValueSpec{Name: body}
}

// Format looks the unit up in values and renders it.
func (s ValueSpec) Format(values map[string]int64) (string, error) {
	value, ok := values[s.Name]
	if !ok {
		return "", unknownUnit(s.Name, nil)
	}

	switch {
	case s.Hex:
		return strings.ToUpper(strconv.FormatInt(value, 16)), nil
	case s.Width > 0:
		// Pads after the sign: -5 with width 3 is "-05".
		return fmt.Sprintf("%0*d", s.Width, value), nil
	default:
		return strconv.FormatInt(value, 10), nil
	}
}


func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}
