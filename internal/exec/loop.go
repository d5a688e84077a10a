package exec

import (
	"context"
	"fmt"

	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/display"
	log "github.com/cloudposse/alp/pkg/logger"
	tmpl "github.com/cloudposse/alp/pkg/template"
)

// loop draws a frame per tick until ctx is cancelled, then writes the reset
// control so the terminal is left unstyled.
func (e *ClockExec) loop(ctx context.Context, frame display.Frame, session alptime.Session, styles tmpl.StyleProvider) error {
	ticks, stop := e.ticker(e.config.Display.Interval)
	defer stop()

	if err := e.draw(frame, session); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			log.Debug("Display loop stopped", "cause", context.Cause(ctx))
			if _, err := fmt.Fprint(e.out, styles.Control("reset")+styles.Control("show_cursor")); err != nil {
				log.Debug("Failed to reset terminal", "error", err)
			}
			return context.Cause(ctx)
		case <-ticks:
			if err := e.draw(frame, session); err != nil {
				return err
			}
		}
	}
}
