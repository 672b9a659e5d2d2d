package reactive

type EffectComputation interface {
	func() | func() func()
}

// Effect re-runs its computation whenever a signal it read changes.
type Effect[T EffectComputation] struct {
	*Owner

	sources sources

	computation T
	cleanup     func()

	render   bool
	disposed bool
}

func (e *Effect[T]) addDependency(o Observable) {
	e.sources.add(o)
}

func (e *Effect[T]) removeDependency(o Observable) {
	e.sources.remove(o)
}

func (e *Effect[T]) renderPhase() bool {
	return e.render
}

func (e *Effect[T]) clean() {
	if e.cleanup != nil {
		e.cleanup()
		e.cleanup = nil
	}

	e.sources.release(e)

	e.Owner.disposeChildren()
	e.Owner.runCleanups()
}

// Dispose stops the effect for good, running its pending cleanups.
func (e *Effect[T]) Dispose() {
	if e.disposed {
		return
	}
	e.disposed = true

	if e.parent != nil {
		e.parent.removeChild(e)
	}

	e.clean()
}

// Execute cleans up the previous run and runs the computation again.
func (e *Effect[T]) Execute() {
	if e.disposed {
		return
	}

	e.clean()

	prevReaction := e.ctx.swapActive(e)
	defer e.ctx.swapActive(prevReaction)

	e.Run(func() {
		switch fn := any(e.computation).(type) {
		case func():
			fn()
			e.cleanup = nil
		case func() func():
			e.cleanup = fn()
		}
	})
}

// NewEffect creates an effect owned by the active owner and runs it once.
func NewEffect[T EffectComputation](computation T) *Effect[T] {
	return newEffect(computation, false)
}

// NewRenderEffect is like NewEffect, but within a flush it only runs once
// every plain effect has settled.
func NewRenderEffect[T EffectComputation](computation T) *Effect[T] {
	return newEffect(computation, true)
}

func newEffect[T EffectComputation](computation T, render bool) *Effect[T] {
	parent := getActiveOwner()

	e := &Effect[T]{
		Owner: &Owner{parent: parent, ctx: parent.ctx},

		computation: computation,
		render:      render,
	}
	parent.addChild(e)

	e.Execute()

	return e
}
