// Package schedule runs periodic callbacks one at a time on a logical clock.
//
// A Loop is either stepped by hand with Advance, which makes it a simulated
// clock for tests, or driven in real time by Run.
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"k8s.io/utils/clock"
)

// Loop fires periodic callbacks one at a time, in due order.
type Loop struct {
	mu sync.Mutex

	clock clock.Clock
	log   zerolog.Logger

	// logical time, only moved forward by Advance
	now time.Time

	timers timerHeap
	seq    uint64
	active int

	// wakes Run when the schedule changes while it sleeps
	wake chan struct{}
}

// Option configures a Loop.
type Option func(*Loop)

// WithClock sets the clock used for the start time and by Run.
func WithClock(c clock.Clock) Option {
	return func(l *Loop) {
		l.clock = c
	}
}

// WithLogger sets the loop's logger.
func WithLogger(log zerolog.Logger) Option {
	return func(l *Loop) {
		l.log = log
	}
}

// NewLoop creates a loop whose logical time starts at the clock's current time.
func NewLoop(opts ...Option) *Loop {
	l := &Loop{
		clock: clock.RealClock{},
		log:   zerolog.Nop(),
		wake:  make(chan struct{}, 1),
	}

	for _, opt := range opts {
		opt(l)
	}

	l.now = l.clock.Now()
	return l
}

// Now returns the loop's logical time.
func (l *Loop) Now() time.Time {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.now
}

// Active returns the number of intervals that have not been stopped.
func (l *Loop) Active() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.active
}

// Every calls fn each period, starting one period from now.
func (l *Loop) Every(period time.Duration, fn func()) *Interval {
	if period <= 0 {
		panic("schedule: non-positive interval period")
	}

	l.mu.Lock()
	l.seq++
	iv := &Interval{
		loop:   l,
		fn:     fn,
		period: period,
		due:    l.now.Add(period),
		seq:    l.seq,
		index:  -1,
	}
	l.timers.insert(iv)
	l.active++
	l.mu.Unlock()

	l.log.Debug().
		Uint64("interval", iv.seq).
		Dur("period", period).
		Msg("interval scheduled")

	l.notify()
	return iv
}

func (l *Loop) stop(iv *Interval) bool {
	l.mu.Lock()
	if iv.stopped {
		l.mu.Unlock()
		return false
	}
	iv.stopped = true
	l.timers.remove(iv)
	l.active--
	l.mu.Unlock()

	l.log.Debug().Uint64("interval", iv.seq).Msg("interval stopped")

	l.notify()
	return true
}

func (l *Loop) notify() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Advance moves logical time forward by d, firing every callback that falls
// due on the way, one at a time and in due order. It returns the number of
// callbacks fired.
func (l *Loop) Advance(d time.Duration) int {
	l.mu.Lock()
	target := l.now.Add(d)
	l.mu.Unlock()

	fired := 0
	for {
		l.mu.Lock()
		iv := l.timers.popDue(target)
		if iv == nil {
			l.now = target
			l.mu.Unlock()
			return fired
		}

		l.now = iv.due
		iv.due = iv.due.Add(iv.period)
		l.timers.insert(iv)
		l.mu.Unlock()

		iv.fn()
		fired++
	}
}

// untilNext returns how long until the next interval is due, and false when
// nothing is scheduled.
func (l *Loop) untilNext() (time.Duration, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	next := l.timers.peek()
	if next == nil {
		return 0, false
	}
	return next.due.Sub(l.now), true
}

// Run drives the loop with the wall clock until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	// changes made before Run are picked up by the first iteration
	select {
	case <-l.wake:
	default:
	}

	last := l.clock.Now()

	for {
		now := l.clock.Now()
		l.Advance(now.Sub(last))
		last = now

		wait, ok := l.untilNext()
		if ok && wait <= 0 {
			continue
		}

		var timer clock.Timer
		var fire <-chan time.Time
		if ok {
			timer = l.clock.NewTimer(wait)
			fire = timer.C()
		}

		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return errors.Wrap(ctx.Err(), "loop stopped")
		case <-l.wake:
		case <-fire:
		}

		if timer != nil {
			timer.Stop()
		}
	}
}
