package countdown

import (
	"io"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"

	"github.com/AnatoleLucet/countdown/internal/reactive"
)

// Defaults of a ValueGenerator.
const (
	DefaultInterval = 10 * time.Second
	DefaultMin      = 1000
	DefaultSpan     = 9000
)

// Randomizer returns a uniform value in [0, 1).
type Randomizer = func() float64

// PseudoRandomizer returns a Randomizer seeded with seed, or with the current
// time when seed is 0.
func PseudoRandomizer(seed int64) Randomizer {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed)).Float64
}

// ValueGenerator publishes a new random value every interval.
type ValueGenerator struct {
	loop  *Loop
	log   zerolog.Logger
	owner *reactive.Owner

	interval time.Duration
	low      int
	span     int
	random   Randomizer
	entropy  io.Reader

	current   *reactive.Signal[Emission]
	emissions int

	schedule *Interval
	stopOnce sync.Once
}

// GeneratorOption configures a ValueGenerator.
type GeneratorOption func(*ValueGenerator)

// WithInterval sets the time between two values.
func WithInterval(d time.Duration) GeneratorOption {
	return func(g *ValueGenerator) {
		g.interval = d
	}
}

// WithRange makes values fall in [low, low+span).
func WithRange(low, span int) GeneratorOption {
	return func(g *ValueGenerator) {
		g.low = low
		g.span = span
	}
}

// WithRandomizer replaces the default seeded source of randomness.
func WithRandomizer(r Randomizer) GeneratorOption {
	return func(g *ValueGenerator) {
		g.random = r
	}
}

// WithGeneratorLogger sets the generator's logger.
func WithGeneratorLogger(log zerolog.Logger) GeneratorOption {
	return func(g *ValueGenerator) {
		g.log = log
	}
}

// NewValueGenerator computes an initial value right away and publishes a new
// one every interval until Stop is called.
func NewValueGenerator(loop *Loop, opts ...GeneratorOption) *ValueGenerator {
	g := &ValueGenerator{
		loop:     loop,
		log:      zerolog.Nop(),
		interval: DefaultInterval,
		low:      DefaultMin,
		span:     DefaultSpan,
		entropy:  ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0),
	}

	for _, opt := range opts {
		opt(g)
	}

	if g.random == nil {
		g.random = PseudoRandomizer(0)
	}

	g.owner = reactive.NewOwner()
	g.owner.Run(func() {
		g.current = reactive.NewSignal(g.next())
	})

	g.schedule = loop.Every(g.interval, g.tick)
	g.owner.OnCleanup(func() { g.schedule.Stop() })

	g.log.Debug().
		Int("value", g.current.Peek().Value).
		Dur("interval", g.interval).
		Msg("generator started")

	return g
}

// Generate maps r, a value in [0, 1), to an integer in [low, low+span).
func Generate(r float64, low, span int) int {
	return int(math.Floor(r*float64(span) + float64(low)))
}

func (g *ValueGenerator) next() Emission {
	at := g.loop.Now()
	g.emissions++

	return Emission{
		ID:    ulid.MustNew(ulid.Timestamp(at), g.entropy),
		Value: Generate(g.random(), g.low, g.span),
		At:    at,
	}
}

func (g *ValueGenerator) tick() {
	e := g.next()

	reactive.Batch(func() {
		g.current.Set(e)
	})

	g.log.Debug().
		Int("value", e.Value).
		Str("id", e.ID.String()).
		Msg("value emitted")
}

// Current returns the latest emission.
func (g *ValueGenerator) Current() Emission {
	return g.current.Get()
}

// Value returns the latest value.
func (g *ValueGenerator) Value() int {
	return g.Current().Value
}

// Emissions returns how many values were produced, the initial one included.
func (g *ValueGenerator) Emissions() int {
	return g.emissions
}

// Stop cancels the schedule. No value is emitted afterwards.
func (g *ValueGenerator) Stop() {
	g.stopOnce.Do(func() {
		g.owner.Dispose()
		g.log.Debug().Int("emissions", g.emissions).Msg("generator stopped")
	})
}
