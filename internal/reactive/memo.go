package reactive

import "sync"

// Memo caches a value derived from other signals. It recomputes on the first
// read after one of them changed, and notifies its own readers when that happens.
type Memo[T any] struct {
	subs    subscribers
	sources sources

	mu    sync.Mutex
	stale bool
	value T

	compute func() T
	owner   *Owner
}

func (m *Memo[T]) addDependency(o Observable) { m.sources.add(o) }

func (m *Memo[T]) removeDependency(o Observable) { m.sources.remove(o) }

func (m *Memo[T]) track(r Reaction) { m.subs.add(m, r) }

func (m *Memo[T]) untrack(r Reaction) { m.subs.remove(m, r) }

// Dispose detaches the memo from its sources and its readers.
func (m *Memo[T]) Dispose() {
	m.sources.release(m)
	m.subs.detach(m)
}

// Execute marks the cached value stale and passes the change on.
func (m *Memo[T]) Execute() {
	m.mu.Lock()
	m.stale = true
	m.mu.Unlock()

	m.subs.notify(m.owner.ctx)
}

// Get returns the cached value, recomputing it when stale. Like Signal.Get,
// it only tracks into a reaction running on the calling goroutine.
func (m *Memo[T]) Get() T {
	ctx := m.owner.ctx

	if r := ctx.active(); r != nil {
		m.track(r)
	}

	m.mu.Lock()
	stale := m.stale
	value := m.value
	m.mu.Unlock()

	if !stale {
		return value
	}

	return m.refresh(ctx)
}

func (m *Memo[T]) refresh(ctx *reactiveContext) T {
	m.sources.release(m)

	value := func() T {
		prev := ctx.swapActive(m)
		defer ctx.swapActive(prev)

		return m.compute()
	}()

	m.mu.Lock()
	m.value = value
	m.stale = false
	m.mu.Unlock()

	return value
}

// NewMemo creates a memo owned by the active owner. Nothing is computed
// until the first Get.
func NewMemo[T any](compute func() T) *Memo[T] {
	m := &Memo[T]{
		stale:   true,
		compute: compute,
		owner:   getActiveOwner(),
	}
	m.owner.addChild(m)

	return m
}
