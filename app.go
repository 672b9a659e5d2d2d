package countdown

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/AnatoleLucet/countdown/internal/reactive"
)

// Frame is what a Surface draws.
type Frame struct {
	Value   int `json:"value"`
	Seconds int `json:"seconds"`
}

// Surface draws frames. Render is called synchronously on the loop, once per
// change of either value.
type Surface interface {
	Render(Frame)
}

// SurfaceFunc adapts a function to a Surface.
type SurfaceFunc func(Frame)

func (f SurfaceFunc) Render(frame Frame) { f(frame) }

// App is a generator and its countdown mounted on a surface.
type App struct {
	Generator *ValueGenerator
	Timer     *CountdownTimer

	owner *reactive.Owner
	once  sync.Once
	log   zerolog.Logger
}

// Mount starts a generator and a countdown on loop and renders them on surface
// until Unmount.
func Mount(loop *Loop, surface Surface, cfg Config, log zerolog.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	app := &App{
		owner: reactive.NewOwner(),
		log:   log,
	}

	app.owner.Run(func() {
		app.Generator = NewValueGenerator(loop,
			WithInterval(cfg.Interval),
			WithRange(cfg.Min, cfg.Span),
			WithRandomizer(PseudoRandomizer(cfg.Seed)),
			WithGeneratorLogger(log),
		)

		timerOpts := []TimerOption{
			WithStart(cfg.Start),
			WithTick(cfg.Tick),
			WithTimerLogger(log),
		}
		if cfg.ClampAtZero {
			timerOpts = append(timerOpts, WithClampAtZero())
		}
		app.Timer = NewCountdownTimer(loop, app.Generator, timerOpts...)

		frame := reactive.NewMemo(func() Frame {
			return Frame{
				Value:   app.Generator.Value(),
				Seconds: app.Timer.Seconds(),
			}
		})

		reactive.NewRenderEffect(func() {
			surface.Render(frame.Get())
		})
	})

	log.Info().
		Dur("interval", cfg.Interval).
		Int("start", cfg.Start).
		Msg("mounted")

	return app, nil
}

// Unmount stops the generator, the countdown and rendering.
func (a *App) Unmount() {
	a.once.Do(func() {
		a.owner.Dispose()
		a.Generator.Stop()
		a.Timer.Stop()

		a.log.Info().Msg("unmounted")
	})
}
