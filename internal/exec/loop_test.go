package exec

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errUtils "github.com/cloudposse/alp/errors"
	"github.com/cloudposse/alp/pkg/alptime"
	"github.com/cloudposse/alp/pkg/terminal"
)

// syncBuffer is a bytes.Buffer safe for a writer and a reader goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) lines() int {
	return strings.Count(b.String(), "\n")
}

func TestClockExec_Loop(t *testing.T) {
	cfg := testConfig()
	cfg.Display.Types = []string{"seconds"}
	cfg.Display.Continuous = true
	cfg.Time.Speed = 16

	epoch := alptime.DefaultEpoch(time.UTC)
	clock := alptime.NewFakeClock(epoch)
	ticks := make(chan time.Time)
	stopped := false

	var out syncBuffer
	e := NewClockExec(cfg, WithOutput(&out), WithClock(clock), WithTerminal(fakeTerminal{styles: terminal.NewANSIStyles(terminal.Color16)}))
	e.ticker = func(d time.Duration) (<-chan time.Time, func()) {
		assert.Equal(t, time.Second, d)
		return ticks, func() { stopped = true }
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- e.Execute(ctx) }()

	require.Eventually(t, func() bool { return out.lines() == 1 }, time.Second, time.Millisecond)

	clock.Advance(time.Second)
	ticks <- clock.Now()
	require.Eventually(t, func() bool { return out.lines() == 2 }, time.Second, time.Millisecond)

	clock.Advance(2 * time.Second)
	ticks <- clock.Now()
	require.Eventually(t, func() bool { return out.lines() == 3 }, time.Second, time.Millisecond)

	cancel()
	err := <-done

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, stopped)
	assert.True(t, strings.HasPrefix(out.String(), "0\n16\n48\n"))
	assert.True(t, strings.HasSuffix(out.String(), "\x1b[0m\x1b[?25h"))
}

func TestClockExec_LoopReturnsInterruptCause(t *testing.T) {
	cfg := testConfig()
	cfg.Display.Continuous = true
	cfg.Terminal.NoColor = true

	var out syncBuffer
	e := NewClockExec(cfg, WithOutput(&out), WithClock(alptime.NewFakeClock(time.Now())), WithTerminal(fakeTerminal{}))
	e.ticker = func(time.Duration) (<-chan time.Time, func()) {
		return make(chan time.Time), func() {}
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	interrupt := errUtils.Build(errUtils.ErrInterrupted).WithExitCode(errUtils.ExitCodeInterrupt).Err()
	cancel(interrupt)

	err := e.Execute(ctx)

	assert.ErrorIs(t, err, errUtils.ErrInterrupted)
	assert.Equal(t, errUtils.ExitCodeInterrupt, errUtils.GetExitCode(err))
	assert.NotContains(t, out.String(), "\x1b")
}

// resetFailWriter rejects the terminal reset sequence and accepts anything else.
type resetFailWriter struct {
	syncBuffer
}

func (w *resetFailWriter) Write(p []byte) (int, error) {
	if bytes.Contains(p, []byte("\x1b[?25h")) {
		return 0, assert.AnError
	}
	return w.syncBuffer.Write(p)
}

func TestClockExec_LoopResetWriteFailure(t *testing.T) {
	cfg := testConfig()
	cfg.Display.Types = []string{"seconds"}
	cfg.Display.Continuous = true

	var out resetFailWriter
	e := NewClockExec(cfg, WithOutput(&out), WithClock(alptime.NewFakeClock(alptime.DefaultEpoch(time.UTC))),
		WithTerminal(fakeTerminal{styles: terminal.NewANSIStyles(terminal.Color16)}))
	e.ticker = func(time.Duration) (<-chan time.Time, func()) {
		return make(chan time.Time), func() {}
	}

	ctx, cancel := context.WithCancelCause(context.Background())
	cancel(errUtils.ErrInterrupted)

	err := e.Execute(ctx)

	assert.ErrorIs(t, err, errUtils.ErrInterrupted)
	assert.NotErrorIs(t, err, assert.AnError)
	assert.Equal(t, "0\n", out.String())
}
