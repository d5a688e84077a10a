// Package template expands the alp markup language into terminal output.
//
// Four token kinds are recognized, each with its own delimiter pair:
//
//	!(name)   control or style (bold, reset, ...)
//	#(name)   background color
//	$(name)   foreground color
//	&(unit)   numeric value: "unit", "unit#" (uppercase hex), "unit_W" (zero-padded to W)
//
// Kinds are resolved in that order, one regular expression pass per kind.
package template

import (
	"regexp"
	"sort"

	errUtils "github.com/cloudposse/alp/errors"
)

var (
	controlToken    = regexp.MustCompile(`!\([^()]*\)`)
	backgroundToken = regexp.MustCompile(`#\([^()]*\)`)
	foregroundToken = regexp.MustCompile(`\$\([^()]*\)`)
	valueToken      = regexp.MustCompile(`&\([^()]*\)`)
)

// Render expands every token in format. Style tokens resolve through styles
// and degrade to nothing when unknown; a value token naming a unit missing
// from values fails the whole render with ErrUnknownUnit.
func Render(format string, values map[string]int64, styles StyleProvider) (string, error) {
	if styles == nil {
		styles = plainStyles{}
	}

	out := replaceTokens(controlToken, format, styles.Control)
	out = replaceTokens(backgroundToken, out, styles.Background)
	out = replaceTokens(foregroundToken, out, styles.Foreground)

	var renderErr error
	out = valueToken.ReplaceAllStringFunc(out, func(token string) string {
		if renderErr != nil {
			return ""
		}
		text, err := ParseValueSpec(tokenBody(token)).Format(values)
		if err != nil {
			renderErr = err
			return ""
		}
		return text
	})
	if renderErr != nil {
		return "", renderErr
	}

	return out, nil
}

// Renderer binds a StyleProvider so call sites only pass the format and values.
type Renderer struct {
	styles StyleProvider
}

// NewRenderer returns a Renderer resolving style tokens through styles.
func NewRenderer(styles StyleProvider) *Renderer {
	return &Renderer{styles: styles}
}

// Render expands format with the bound StyleProvider.
func (r *Renderer) Render(format string, values map[string]int64) (string, error) {
	return Render(format, values, r.styles)
}

// Validate reports the first unit referenced by format that is not in names.
// Display loops call it once up front instead of failing on the first frame.
func Validate(format string, names []string) error {
	known := make(map[string]struct{}, len(names))
	for _, name := range names {
		known[name] = struct{}{}
	}

	for _, ref := range ExtractUnitRefs(format) {
		if _, ok := known[ref.Spec.Name]; !ok {
			sorted := append([]string(nil), names...)
			sort.Strings(sorted)
			return unknownUnit(ref.Spec.Name, sorted)
		}
	}
	return nil
}

func replaceTokens(re *regexp.Regexp, s string, resolve func(string) string) string {
	return re.ReplaceAllStringFunc(s, func(token string) string {
		return resolve(tokenBody(token))
	})
}

// tokenBody strips the two-character opener and the closing parenthesis.
func tokenBody(token string) string {
	return token[2 : len(token)-1]
}

func unknownUnit(name string, known []string) error {
	builder := errUtils.Build(errUtils.ErrUnknownUnit).
		WithExplanationf("unit %q is not defined", name).
		WithContext("unit", name).
		WithExitCode(errUtils.ExitCodeUsage)
	if len(known) > 0 {
		builder = builder.WithHintf("Known units: %v", known)
	} else {
		builder = builder.WithHint("Run `alp units` to list the available units")
	}
	return builder.Err()
}
