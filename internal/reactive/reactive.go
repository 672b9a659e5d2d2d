// Package reactive is a small signals runtime: signals, memos, effects and
// owners, with batching and a render phase for effects that draw.
package reactive

// Reaction represents a reactive computation that depends on observables (signals).
// Think of it as an effect or a memo that needs to be re-evaluated when its dependencies change.
type Reaction interface {
	// Execute runs the reaction's logic.
	Execute()

	// Dispose cleans up the reaction, removing all dependencies and stopping further executions.
	Dispose()

	// addDependency registers an observable as a dependency of this reaction.
	addDependency(o Observable)

	// removeDependency removes an observable from this reaction's dependencies.
	removeDependency(o Observable)
}

// Observable represents a data source that can be observed by reactions.
type Observable interface {
	// track registers a reaction to be notified when this observable changes.
	track(r Reaction)

	// untrack removes a reaction from the notification list of this observable.
	untrack(r Reaction)
}

// Disposable is anything an owner can tear down.
type Disposable interface {
	Dispose()
}

// renderReaction is implemented by reactions that must run after every plain
// reaction of the same flush.
type renderReaction interface {
	renderPhase() bool
}

func isRender(r Reaction) bool {
	rr, ok := r.(renderReaction)
	return ok && rr.renderPhase()
}

// shared is the context every root owner runs in, so a write on one
// goroutine reaches reactions created on another. The active reaction in it
// is still kept per goroutine.
var shared = &reactiveContext{}

// Batch defers every reaction triggered inside fn until the outermost batch completes.
func Batch(fn func()) {
	getActiveOwner().ctx.batch(fn)
}

// Untrack runs fn without tracking any reactive dependency.
func Untrack[T any](fn func() T) T {
	ctx := getActiveOwner().ctx

	prev := ctx.swapActive(nil)
	defer ctx.swapActive(prev)

	return fn()
}

// OnCleanup registers fn on the active owner. Inside an effect, fn runs before
// the next execution and on dispose.
func OnCleanup(fn func()) {
	getActiveOwner().OnCleanup(fn)
}
