package exec

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/config"
	"github.com/cloudposse/alp/pkg/display"
	log "github.com/cloudposse/alp/pkg/logger"
	"github.com/cloudposse/alp/pkg/schema"
	tmpl "github.com/cloudposse/alp/pkg/template"
	"github.com/cloudposse/alp/pkg/terminal"
)

// ClockExec draws the Alp clock once or until its context is cancelled.
type ClockExec struct {
	config   *schema.Configuration
	out      io.Writer
	clock    alptime.Clock
	term     terminal.Terminal
	ticker   func(time.Duration) (<-chan time.Time, func())
	runModel func(ctx context.Context, m clockModel) (clockModel, error)
}

// Option configures ClockExec.
type Option func(*ClockExec)

// WithOutput sets the writer frames are drawn to.
func WithOutput(w io.Writer) Option {
	return func(e *ClockExec) {
		e.out = w
	}
}

// WithClock replaces the wall clock.
func WithClock(c alptime.Clock) Option {
	return func(e *ClockExec) {
		e.clock = c
	}
}

// WithTerminal replaces terminal detection.
func WithTerminal(t terminal.Terminal) Option {
	return func(e *ClockExec) {
		e.term = t
	}
}

// NewClockExec creates a ClockExec for the given configuration.
func NewClockExec(cfg *schema.Configuration, opts ...Option) *ClockExec {
	e := &ClockExec{
		config:   cfg,
		out:      os.Stdout,
		clock:    alptime.RealClock{},
		ticker:   newTicker,
		runModel: runProgram,
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.term == nil {
		e.term = terminal.New(terminal.WithConfig(terminal.NewConfig(cfg.Terminal)))
	}

	return e
}

func newTicker(d time.Duration) (<-chan time.Time, func()) {
	t := time.NewTicker(d)
	return t.C, t.Stop
}

// Execute validates the display settings and draws the clock.
func (e *ClockExec) Execute(ctx context.Context) error {
	session, err := e.session()
	if err != nil {
		return err
	}

	styles := e.styles()
	frame, err := e.frame(styles)
	if err != nil {
		return err
	}

	log.Debug("Starting clock",
		"epoch", session.Epoch.Format(time.RFC3339),
		"origin", session.Origin.Format(time.RFC3339),
		"speed", session.Speed,
		"continuous", e.config.Display.Continuous,
	)

	if !e.config.Display.Continuous {
		return e.draw(frame, session)
	}

	if e.interactive() {
		log.Trace("Using interactive display")
		final, err := e.runModel(ctx, newClockModel(frame, session, e.clock, e.config.Display.Interval))
		if err != nil {
			return err
		}
		return final.err
	}

	log.Trace("Using plain display loop", "interval", e.config.Display.Interval)
	return e.loop(ctx, frame, session, styles)
}

// session builds the Alp session from the timezone and optional date literal.
func (e *ClockExec) session() (alptime.Session, error) {
	loc, err := config.Location(e.config)
	if err != nil {
		return alptime.Session{}, err
	}

	epoch := alptime.DefaultEpoch(loc)
	session := alptime.NewSession(epoch, e.config.Time.Speed, e.clock.Now())

	if literal := e.config.Time.Literal; literal != "" {
		origin, err := alptime.ParseLiteral(literal, epoch, loc)
		if err != nil {
			return alptime.Session{}, err
		}
		session = session.WithOrigin(origin)
	}

	return session, nil
}

// styles returns NoStyles when formatting is disabled, whatever the environment says.
func (e *ClockExec) styles() tmpl.StyleProvider {
	if e.config.Terminal.NoColor {
		return terminal.NoStyles{}
	}
	return e.term.Styles()
}

func (e *ClockExec) frame(styles tmpl.StyleProvider) (display.Frame, error) {
	frame := display.Frame{
		Format:   e.config.Display.Format,
		Renderer: tmpl.NewRenderer(styles),
	}

	if frame.Format != "" {
		if err := tmpl.Validate(frame.Format, display.UnitNames()); err != nil {
			return display.Frame{}, err
		}
		return frame, nil
	}

	types, err := display.Lookup(e.config.Display.Types)
	if err != nil {
		return display.Frame{}, err
	}
	frame.Types = types
	return frame, nil
}

// interactive reports whether the bubbletea display can take over stdout.
func (e *ClockExec) interactive() bool {
	return e.out == os.Stdout && e.term.IsTTY(terminal.Stdout)
}

func (e *ClockExec) draw(frame display.Frame, session alptime.Session) error {
	d, err := session.Sample(e.clock.Now())
	if err != nil {
		return err
	}

	out, err := frame.Render(d)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(e.out, out)
	return err
}
