package exec

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/display"
)

var quitKeys = key.NewBinding(
	key.WithKeys("ctrl+c", "q", "esc"),
	key.WithHelp("q", "quit"),
)

// tickMsg triggers a redraw.
type tickMsg time.Time

// clockModel is the bubbletea model of the continuous display.
type clockModel struct {
	frame    display.Frame
	session  alptime.Session
	clock    alptime.Clock
	interval time.Duration
	view     string
	err      error
	done     bool
}

func newClockModel(frame display.Frame, session alptime.Session, clock alptime.Clock, interval time.Duration) clockModel {
	m := clockModel{
		frame:    frame,
		session:  session,
		clock:    clock,
		interval: interval,
	}
	m.refresh()
	return m
}

// Init starts the redraw ticker.
//
//nolint:gocritic // bubbletea models must be passed by value
func (m clockModel) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return m.tick()
}

func (m clockModel) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles key presses and ticks.
//
//nolint:gocritic // bubbletea models must be passed by value
func (m clockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, quitKeys) {
			m.done = true
			return m, tea.Quit
		}

	case tickMsg:
		m.refresh()
		if m.err != nil {
			m.done = true
			return m, tea.Quit
		}
		return m, m.tick()
	}

	return m, nil
}

// View renders the latest frame.
//
//nolint:gocritic // bubbletea models must be passed by value
func (m clockModel) View() string {
	if m.err != nil {
		return ""
	}
	return m.view + "\n"
}

func (m *clockModel) refresh() {
	d, err := m.session.Sample(m.clock.Now())
	if err != nil {
		m.err = err
		return
	}

	view, err := m.frame.Render(d)
	if err != nil {
		m.err = err
		return
	}
	m.view = view
}

// runProgram runs m until the user quits or ctx is cancelled.
func runProgram(ctx context.Context, m clockModel) (clockModel, error) {
	final, err := tea.NewProgram(m, tea.WithContext(ctx)).Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) {
			return m, context.Cause(ctx)
		}
		return m, err
	}

	if fm, ok := final.(clockModel); ok {
		return fm, nil
	}
	return m, nil
}
