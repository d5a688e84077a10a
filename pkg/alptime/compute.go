package alptime

import (
	"math"
	"time"

	errUtils "github.com/cloudposse/alp/errors"
)

// DefaultEpoch returns the reference instant of the Alp calendar,
// 2009-10-08 13:01:34 wall time in loc.
func DefaultEpoch(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return time.Date(2009, time.October, 8, 13, 1, 34, 0, loc)
}

// Compute converts now into an Alp duration. The wall-clock time elapsed
// since start is scaled by speed and added to the offset of start from epoch:
//
//	secondsSinceEpoch = trunc((start - epoch) + trunc(now - start) * speed)
//
// Elapsed seconds are truncated toward zero before scaling.
func Compute(now, epoch time.Time, speed float64, start time.Time) (Duration, error) {
	return NewSession(epoch, speed, start).Sample(now)
}

// Session holds the epoch and speed settings of a running clock.
type Session struct {
	Epoch time.Time
	Speed float64
	// Start is the real instant the session began.
	Start time.Time
	// Origin is the displayed instant at Start. It differs from Start when
	// the clock was started from a date literal.
	Origin time.Time
}

// NewSession returns a session whose displayed time starts at start.
func NewSession(epoch time.Time, speed float64, start time.Time) Session {
	return Session{
		Epoch:  epoch,
		Speed:  speed,
		Start:  start,
		Origin: start,
	}
}

// WithOrigin returns a copy of the session displaying origin at Start.
func (s Session) WithOrigin(origin time.Time) Session {
	s.Origin = origin
	return s
}

// Sample computes the Alp duration displayed at the real instant now.
func (s Session) Sample(now time.Time) (Duration, error) {
	if s.Speed <= 0 || math.IsNaN(s.Speed) || math.IsInf(s.Speed, 0) {
		return Duration{}, errUtils.Build(errUtils.ErrInvalidSpeed).
			WithContext("speed", s.Speed).
			WithHint("Use a positive --speed such as 1 (real time) or 60").
			WithExitCode(errUtils.ExitCodeUsage).
			Err()
	}

	whole, frac := secondsBetween(s.Epoch, s.Origin)
	elapsed := int64(now.Sub(s.Start) / time.Second)

	// whole is exact; only the sub-second part and the scaled elapsed
	// time go through floating point.
	rest := frac + float64(elapsed)*s.Speed
	total := float64(whole) + rest
	if total < 0 {
		return Duration{}, errUtils.Build(errUtils.ErrBeforeEpoch).
			WithContext("epoch", s.Epoch.Format(time.RFC3339)).
			WithContext("instant", s.Origin.Format(time.RFC3339)).
			WithHint("Pick an instant after the epoch").
			WithTitle(beforeEpochTitle).
			Err()
	}
	// Checked in floating point, before the int64 conversion can wrap.
	if total > float64(MaxSecondsSinceEpoch) {
		return Duration{}, errUtils.Build(tooFarPastEpoch(total)).
			WithContext("speed", s.Speed).
			WithHint("Lower --speed or pick an earlier instant").
			Err()
	}

	return Decompose(whole + int64(math.Floor(rest)))
}

// secondsBetween returns to-from as whole seconds plus a fraction in [0, 1).
// Unix seconds are used so spans beyond time.Duration's range stay exact.
func secondsBetween(from, to time.Time) (int64, float64) {
	whole := to.Unix() - from.Unix()
	nanos := to.Nanosecond() - from.Nanosecond()
	if nanos < 0 {
		whole--
		nanos += int(time.Second)
	}
	return whole, float64(nanos) / float64(time.Second)
}

// Instant returns the instant at which d has elapsed since epoch.
func (d Duration) Instant(epoch time.Time) time.Time {
	return time.Unix(epoch.Unix()+d.SecondsSinceEpoch, int64(epoch.Nanosecond())).In(epoch.Location())
}
