package countdown

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/AnatoleLucet/countdown/internal/reactive"
)

// Defaults of a CountdownTimer.
const (
	DefaultStart = 10
	DefaultTick  = time.Second
)

// CountdownTimer counts the seconds left before its source emits again.
// It restarts from the top on every emission of the source.
type CountdownTimer struct {
	loop   *Loop
	source Source
	log    zerolog.Logger
	owner  *reactive.Owner

	start int
	tick  time.Duration
	clamp bool

	seconds *reactive.Signal[int]
	resets  int

	// decrement is bound once and reused by every schedule
	decrement func()

	stopOnce sync.Once
}

// TimerOption configures a CountdownTimer.
type TimerOption func(*CountdownTimer)

// WithStart sets the value the countdown resets to.
func WithStart(n int) TimerOption {
	return func(t *CountdownTimer) {
		t.start = n
	}
}

// WithTick sets the time between two decrements.
func WithTick(d time.Duration) TimerOption {
	return func(t *CountdownTimer) {
		t.tick = d
	}
}

// WithClampAtZero stops the countdown at zero instead of letting it go
// negative when the source is late.
func WithClampAtZero() TimerOption {
	return func(t *CountdownTimer) {
		t.clamp = true
	}
}

// WithTimerLogger sets the timer's logger.
func WithTimerLogger(log zerolog.Logger) TimerOption {
	return func(t *CountdownTimer) {
		t.log = log
	}
}

// NewCountdownTimer starts counting down from the source's current emission.
func NewCountdownTimer(loop *Loop, source Source, opts ...TimerOption) *CountdownTimer {
	t := &CountdownTimer{
		loop:   loop,
		source: source,
		log:    zerolog.Nop(),
		start:  DefaultStart,
		tick:   DefaultTick,
	}

	for _, opt := range opts {
		opt(t)
	}

	t.decrement = t.countDown

	t.owner = reactive.NewOwner()
	t.owner.Run(func() {
		t.seconds = reactive.NewSignal(t.start)
		reactive.NewEffect(t.follow)
	})

	return t
}

// follow runs each time the source emits.
func (t *CountdownTimer) follow() func() {
	e := t.source.Current()

	prev := reactive.Untrack(t.seconds.Get)
	t.seconds.Set(t.start)
	t.resets++

	schedule := t.loop.Every(t.tick, t.decrement)

	t.log.Debug().
		Int("value", e.Value).
		Int("previous", prev).
		Msg("countdown reset")

	return func() { schedule.Stop() }
}

func (t *CountdownTimer) countDown() {
	n := t.seconds.Peek() - 1
	if t.clamp && n < 0 {
		n = 0
	}

	t.seconds.Set(n)
}

// Seconds returns the seconds left.
func (t *CountdownTimer) Seconds() int {
	return t.seconds.Get()
}

// Resets returns how many times the countdown started over, the first start included.
func (t *CountdownTimer) Resets() int {
	return t.resets
}

// Stop cancels the active schedule. The countdown does not change afterwards.
func (t *CountdownTimer) Stop() {
	t.stopOnce.Do(func() {
		t.owner.Dispose()
		t.log.Debug().Int("seconds", t.seconds.Peek()).Msg("countdown stopped")
	})
}
