package reactive

import "sync"

// Signal is a read/write reactive value.
type Signal[T comparable] struct {
	subs subscribers

	mu    sync.RWMutex
	value T
	owner *Owner
}

// NewSignal creates a signal holding initial.
func NewSignal[T comparable](initial T) *Signal[T] {
	return &Signal[T]{
		value: initial,
		owner: getActiveOwner(),
	}
}

func (s *Signal[T]) track(r Reaction) {
	s.subs.add(s, r)
}

func (s *Signal[T]) untrack(r Reaction) {
	s.subs.remove(s, r)
}

// Get the current value, tracking the dependency if called from a reaction.
func (s *Signal[T]) Get() T {
	if r := s.owner.ctx.active(); r != nil {
		s.track(r)
	}

	return s.Peek()
}

// Peek returns the current value without tracking.
func (s *Signal[T]) Peek() T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.value
}

// Set a new value. Dependents are notified unless newValue equals the current value.
func (s *Signal[T]) Set(newValue T) {
	s.mu.Lock()
	if s.value == newValue {
		s.mu.Unlock()
		return
	}
	s.value = newValue
	s.mu.Unlock()

	s.subs.notify(s.owner.ctx)
}
