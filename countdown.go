// Package countdown shows a pseudo-random number that changes on a fixed
// period, together with the seconds left before the next one.
//
// A ValueGenerator produces the numbers, a CountdownTimer follows it and
// Mount wires both to a Surface that redraws whenever either changes.
// Everything runs on a Loop, stepped by hand in tests or driven by the wall
// clock with Loop.Run.
package countdown

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/AnatoleLucet/countdown/internal/schedule"
)

type (
	// Loop runs the periodic callbacks of generators and timers.
	Loop = schedule.Loop
	// Interval is the handle of a periodic callback.
	Interval = schedule.Interval
	// LoopOption configures a Loop.
	LoopOption = schedule.Option
)

var (
	// NewLoop creates a loop starting at the current time of its clock.
	NewLoop = schedule.NewLoop
	// WithClock sets the clock a loop reads its start time from and sleeps on.
	WithClock = schedule.WithClock
	// WithLoopLogger sets the loop's logger.
	WithLoopLogger = schedule.WithLogger
)

// Emission is one production of a ValueGenerator. Two emissions are never
// equal, even when they carry the same value.
type Emission struct {
	ID    ulid.ULID
	Value int
	At    time.Time
}

// Source is anything a CountdownTimer can follow.
type Source interface {
	// Current returns the latest emission, tracking it when read from a reactive context.
	Current() Emission
}
