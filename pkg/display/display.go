// Package display turns an Alp duration into a rendered frame for a set of
// display types.
package display

import (
	"sort"
	"strings"

	"github.com/samber/lo"

	errUtils "github.com/cloudposse/alp/errors"
	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/led"
	tmpl "github.com/cloudposse/alp/pkg/template"
)

// Display type names.
const (
	TypeDecimal = "dec"
	TypeHex     = "hex"
	TypeLED     = "led"
	TypeInfo    = "info"
	TypeSeconds = "seconds"
)

// Default templates. The decimal form reads e.g. 2403/093141202 and the hex
// form 2403/93EC2.
const (
	DecimalFormat = "!(bold)$(cyan)&(alp)!(reset)/" +
		"$(green)&(hexalp_2)&(qvalp)!(reset)" +
		"$(red)&(salp_2)&(talp_2)!(reset)" +
		"$(yellow)&(second_2)!(reset)"
	HexFormat = "!(bold)$(cyan)&(alp)!(reset)/" +
		"$(green)&(hexalp#)&(qvalp)!(reset)" +
		"$(red)&(salp#)&(talp#)!(reset)" +
		"$(yellow)&(second#)!(reset)"
	InfoFormat = "AlpTime{" +
		"$(cyan)&(alp)!(reset) alp, " +
		"$(green)&(hexalp)!(reset) hexalp, " +
		"$(green)&(qvalp)!(reset) qvalp, " +
		"$(red)&(salp)!(reset) salp, " +
		"$(red)&(talp)!(reset) talp, " +
		"$(yellow)&(second)!(reset) second}"
	SecondsFormat = "&(seconds_since_epoch)"
)

// Type is one way of drawing a duration.
type Type struct {
	Name        string
	Description string
	markup      func(alptime.Duration) string
}

// Markup returns the template markup for d.
func (t Type) Markup(d alptime.Duration) string {
	return t.markup(d)
}

func fixed(format string) func(alptime.Duration) string {
	return func(alptime.Duration) string { return format }
}

var types = map[string]Type{
	TypeDecimal: {Name: TypeDecimal, Description: "decimal date, e.g. 2403/093141202", markup: fixed(DecimalFormat)},
	TypeHex:     {Name: TypeHex, Description: "hexadecimal date, e.g. 2403/93EC2", markup: fixed(HexFormat)},
	TypeInfo:    {Name: TypeInfo, Description: "every unit spelled out", markup: fixed(InfoFormat)},
	TypeSeconds: {Name: TypeSeconds, Description: "seconds since the epoch", markup: fixed(SecondsFormat)},
	TypeLED: {
		Name:        TypeLED,
		Description: "virtual LED panel",
		markup: func(d alptime.Duration) string {
			return led.Markup(led.Project(d), led.DefaultStyleTable())
		},
	},
}

// Types returns every display type sorted by name.
func Types() []Type {
	all := lo.Values(types)
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	return all
}

// Names returns the sorted display type names.
func Names() []string {
	return lo.Map(Types(), func(t Type, _ int) string { return t.Name })
}

// Lookup returns the display types named by names. Entries may themselves be
// comma-separated; names are case-insensitive and duplicates are dropped.
func Lookup(names []string) ([]Type, error) {
	normalized := lo.Uniq(lo.Compact(lo.FlatMap(names, func(name string, _ int) []string {
		return lo.Map(strings.Split(name, ","), func(part string, _ int) string {
			return strings.ToLower(strings.TrimSpace(part))
		})
	})))
	if len(normalized) == 0 {
		normalized = []string{TypeDecimal}
	}

	selected := make([]Type, 0, len(normalized))
	for _, name := range normalized {
		t, ok := types[name]
		if !ok {
			return nil, errUtils.Build(errUtils.ErrInvalidDisplayType).
				WithExplanationf("display type %q is not supported", name).
				WithContext("type", name).
				WithHintf("Supported display types: %s", strings.Join(Names(), ", ")).
				WithExitCode(errUtils.ExitCodeUsage).
				Err()
		}
		selected = append(selected, t)
	}
	return selected, nil
}

// Frame holds what a single redraw needs.
type Frame struct {
	// Format, when set, replaces Types.
	Format   string
	Types    []Type
	Renderer *tmpl.Renderer
}

// Render draws d with every selected display type, one per line.
func (f Frame) Render(d alptime.Duration) (string, error) {
	values := d.Values()
	if f.Format != "" {
		return f.Renderer.Render(f.Format, values)
	}

	parts := make([]string, 0, len(f.Types))
	for _, t := range f.Types {
		out, err := f.Renderer.Render(t.Markup(d), values)
		if err != nil {
			return "", err
		}
		parts = append(parts, out)
	}
	return strings.Join(parts, "\n"), nil
}

// UnitNames lists the names usable in &(...) tokens.
func UnitNames() []string {
	var d alptime.Duration
	names := lo.Keys(d.Values())
	sort.Strings(names)
	return names
}
