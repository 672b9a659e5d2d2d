package countdown

import (
	"time"

	"github.com/oklog/ulid/v2"
	testingclock "k8s.io/utils/clock/testing"

	"github.com/AnatoleLucet/countdown/internal/reactive"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestLoop() *Loop {
	return NewLoop(WithClock(testingclock.NewFakeClock(epoch)))
}

// sequence returns a randomizer cycling through values.
func sequence(values ...float64) Randomizer {
	i := 0
	return func() float64 {
		v := values[i%len(values)]
		i++
		return v
	}
}

type stubSource struct {
	current *reactive.Signal[Emission]
	n       byte
}

func newStubSource(value int) *stubSource {
	return &stubSource{current: reactive.NewSignal(Emission{Value: value})}
}

func (s *stubSource) Current() Emission {
	return s.current.Get()
}

func (s *stubSource) emit(value int) {
	s.n++
	s.current.Set(Emission{ID: ulid.ULID{s.n}, Value: value})
}
