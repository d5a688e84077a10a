package exec

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/alp/errors"
	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/schema"
	tmpl "github.com/cloudposse/alp/pkg/template"
	"github.com/cloudposse/alp/pkg/terminal"
)

// sampleLiteral is 2403/93EC2, 630095554 seconds after the epoch.
const sampleLiteral = "ALP:963,9,3,e,c,2"

type fakeTerminal struct {
	tty    bool
	styles tmpl.StyleProvider
}

func (f fakeTerminal) IsTTY(terminal.Stream) bool            { return f.tty }
func (f fakeTerminal) ColorProfile() terminal.ColorProfile { return terminal.Color16 }
func (f fakeTerminal) Width(terminal.Stream) int           { return 80 }
func (f fakeTerminal) Styles() tmpl.StyleProvider {
	if f.styles == nil {
		return terminal.NoStyles{}
	}
	return f.styles
}

func testConfig() *schema.Configuration {
	return &schema.Configuration{
		Display: schema.Display{Types: []string{"dec"}, Interval: time.Second},
		Time:    schema.Time{Speed: 1, Timezone: "UTC"},
		Logs:    schema.Logs{Level: "Info"},
	}
}

func newTestExec(cfg *schema.Configuration, out *bytes.Buffer, clock alptime.Clock, term terminal.Terminal) *ClockExec {
	return NewClockExec(cfg, WithOutput(out), WithClock(clock), WithTerminal(term))
}

func TestClockExec_OneShot(t *testing.T) {
	tests := []struct {
		name   string
		types  []string
		format string
		want   string
	}{
		{name: "decimal", types: []string{"dec"}, want: "2403/093141202\n"},
		{name: "hex", types: []string{"hex"}, want: "2403/93EC2\n"},
		{name: "seconds", types: []string{"seconds"}, want: "630095554\n"},
		{name: "several types", types: []string{"dec,hex"}, want: "2403/093141202\n2403/93EC2\n"},
		{name: "custom format", format: "&(alp).&(hexalp#)", want: "2403.9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			cfg.Display.Types = tt.types
			cfg.Display.Format = tt.format
			cfg.Time.Literal = sampleLiteral

			var out bytes.Buffer
			clock := alptime.NewFakeClock(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
			err := newTestExec(cfg, &out, clock, fakeTerminal{}).Execute(context.Background())

			require.NoError(t, err)
			assert.Equal(t, tt.want, out.String())
		})
	}
}

func TestClockExec_NoFormatIgnoresTerminalStyles(t *testing.T) {
	cfg := testConfig()
	cfg.Time.Literal = sampleLiteral
	cfg.Terminal.NoColor = true

	var out bytes.Buffer
	term := fakeTerminal{styles: terminal.NewANSIStyles(terminal.Color16)}
	err := newTestExec(cfg, &out, alptime.NewFakeClock(time.Now()), term).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "2403/093141202\n", out.String())
	assert.NotContains(t, out.String(), "\x1b")
}

func TestClockExec_StyledOutput(t *testing.T) {
	cfg := testConfig()
	cfg.Display.Types = []string{"led"}
	cfg.Time.Literal = sampleLiteral

	var out bytes.Buffer
	term := fakeTerminal{styles: terminal.NewANSIStyles(terminal.Color16)}
	err := newTestExec(cfg, &out, alptime.NewFakeClock(time.Now()), term).Execute(context.Background())

	require.NoError(t, err)
	assert.Contains(t, out.String(), "\x1b[")
	assert.Contains(t, ansi.Strip(out.String()), "●")
}

func TestClockExec_NowSinceEpoch(t *testing.T) {
	cfg := testConfig()
	cfg.Display.Types = []string{"seconds"}

	var out bytes.Buffer
	now := alptime.DefaultEpoch(time.UTC).Add(100 * time.Second)
	err := newTestExec(cfg, &out, alptime.NewFakeClock(now), fakeTerminal{}).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "100\n", out.String())
}

func TestClockExec_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*schema.Configuration)
		now      time.Time
		wantErr  error
		wantCode int
	}{
		{
			name:     "unknown display type",
			mutate:   func(c *schema.Configuration) { c.Display.Types = []string{"binary"} },
			wantErr:  errUtils.ErrInvalidDisplayType,
			wantCode: errUtils.ExitCodeUsage,
		},
		{
			name:     "unknown unit in format",
			mutate:   func(c *schema.Configuration) { c.Display.Format = "&(fortnight)" },
			wantErr:  errUtils.ErrUnknownUnit,
			wantCode: errUtils.ExitCodeUsage,
		},
		{
			name:     "bad literal",
			mutate:   func(c *schema.Configuration) { c.Time.Literal = "GRE:2020,13,1,0,0,0" },
			wantErr:  errUtils.ErrInvalidDateLiteral,
			wantCode: errUtils.ExitCodeUsage,
		},
		{
			name:     "literal before epoch",
			mutate:   func(c *schema.Configuration) { c.Time.Literal = "GRE:2000,1,1,0,0,0" },
			wantErr:  errUtils.ErrBeforeEpoch,
			wantCode: errUtils.ExitCodeFailure,
		},
		{
			name:     "bad timezone",
			mutate:   func(c *schema.Configuration) { c.Time.Timezone = "Nowhere/Land" },
			wantErr:  errUtils.ErrInvalidTimezone,
			wantCode: errUtils.ExitCodeUsage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)

			var out bytes.Buffer
			err := newTestExec(cfg, &out, alptime.NewFakeClock(time.Now()), fakeTerminal{}).Execute(context.Background())

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, errUtils.GetExitCode(err))
			assert.Empty(t, out.String())
		})
	}
}

func TestClockExec_InteractiveOnlyForStdout(t *testing.T) {
	var out bytes.Buffer
	e := newTestExec(testConfig(), &out, alptime.NewFakeClock(time.Now()), fakeTerminal{tty: true})
	assert.False(t, e.interactive())
}
