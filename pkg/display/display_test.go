package display

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/alp/errors"
	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/terminal"
	tmpl "github.com/cloudposse/alp/pkg/template"
)

func sample(t *testing.T) alptime.Duration {
	t.Helper()
	d, err := alptime.FromUnits(2403, 9, 3, 14, 12, 2)
	require.NoError(t, err)
	return d
}

func TestFrame_Render(t *testing.T) {
	d := sample(t)

	tests := []struct {
		name  string
		types []string
		want  string
	}{
		{name: "decimal", types: []string{TypeDecimal}, want: "2403/093141202"},
		{name: "hex", types: []string{TypeHex}, want: "2403/93EC2"},
		{name: "info", types: []string{TypeInfo}, want: d.String()},
		{name: "seconds", types: []string{TypeSeconds}, want: "630095554"},
		{name: "two types", types: []string{"dec,hex"}, want: "2403/093141202\n2403/93EC2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selected, err := Lookup(tt.types)
			require.NoError(t, err)

			frame := Frame{Types: selected, Renderer: tmpl.NewRenderer(terminal.NoStyles{})}
			out, err := frame.Render(d)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestFrame_ColorStripsToPlain(t *testing.T) {
	d := sample(t)
	selected, err := Lookup([]string{TypeDecimal, TypeHex, TypeLED})
	require.NoError(t, err)

	colored, err := Frame{Types: selected, Renderer: tmpl.NewRenderer(terminal.NewStyles(terminal.Color16))}.Render(d)
	require.NoError(t, err)
	plain, err := Frame{Types: selected, Renderer: tmpl.NewRenderer(terminal.NoStyles{})}.Render(d)
	require.NoError(t, err)

	assert.NotEqual(t, plain, colored)
	assert.Equal(t, plain, ansi.Strip(colored))
	assert.NotContains(t, plain, "\x1b")
}

func TestFrame_CustomFormat(t *testing.T) {
	frame := Frame{Format: "&(alp)-&(talp#)", Renderer: tmpl.NewRenderer(nil)}
	out, err := frame.Render(sample(t))
	require.NoError(t, err)
	assert.Equal(t, "2403-C", out)

	frame.Format = "&(fortnight)"
	_, err = frame.Render(sample(t))
	assert.ErrorIs(t, err, errUtils.ErrUnknownUnit)
}

func TestLookup(t *testing.T) {
	selected, err := Lookup(nil)
	require.NoError(t, err)
	require.Len(t, selected, 1)
	assert.Equal(t, TypeDecimal, selected[0].Name)

	selected, err = Lookup([]string{" LED ", "led", "hex, dec"})
	require.NoError(t, err)
	assert.Equal(t, []string{TypeLED, TypeHex, TypeDecimal}, []string{selected[0].Name, selected[1].Name, selected[2].Name})

	_, err = Lookup([]string{"dec", "sundial"})
	assert.ErrorIs(t, err, errUtils.ErrInvalidDisplayType)
	assert.Equal(t, errUtils.ExitCodeUsage, errUtils.GetExitCode(err))
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{TypeDecimal, TypeHex, TypeInfo, TypeLED, TypeSeconds}, Names())
}

func TestUnitNames(t *testing.T) {
	names := UnitNames()
	assert.Contains(t, names, alptime.UnitHexalp)
	assert.Contains(t, names, alptime.UnitSecondsSinceEpoch)
	assert.Len(t, names, 8)
}

func TestDefaultFormatsOnlyUseKnownUnits(t *testing.T) {
	for _, format := range []string{DecimalFormat, HexFormat, InfoFormat, SecondsFormat} {
		assert.NoError(t, tmpl.Validate(format, UnitNames()), format)
	}
}
