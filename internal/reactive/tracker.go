package reactive

import (
	"slices"
	"sync"
)

// subscribers is the set of reactions an observable notifies on change.
// Reads may come from any goroutine, so every access is locked.
type subscribers struct {
	mu        sync.Mutex
	reactions []Reaction
}

// add subscribes r to o, once.
func (s *subscribers) add(o Observable, r Reaction) {
	s.mu.Lock()
	if slices.Contains(s.reactions, r) {
		s.mu.Unlock()
		return
	}
	s.reactions = append(s.reactions, r)
	s.mu.Unlock()

	r.addDependency(o)
}

func (s *subscribers) remove(o Observable, r Reaction) {
	s.mu.Lock()
	index := slices.Index(s.reactions, r)
	if index == -1 {
		s.mu.Unlock()
		return
	}
	s.reactions = slices.Delete(s.reactions, index, index+1)
	s.mu.Unlock()

	r.removeDependency(o)
}

// detach drops every subscriber of o.
func (s *subscribers) detach(o Observable) {
	for _, r := range s.take() {
		r.removeDependency(o)
	}
}

// notify queues every current subscriber on ctx. Subscribers added while
// notifying wait for the next change.
func (s *subscribers) notify(ctx *reactiveContext) {
	for _, r := range s.snapshot() {
		ctx.queueReaction(r)
	}
}

func (s *subscribers) snapshot() []Reaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.reactions)
}

func (s *subscribers) take() []Reaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	reactions := s.reactions
	s.reactions = nil
	return reactions
}

// sources is the set of observables a reaction read during its last run.
type sources struct {
	mu          sync.Mutex
	observables []Observable
}

func (d *sources) add(o Observable) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !slices.Contains(d.observables, o) {
		d.observables = append(d.observables, o)
	}
}

func (d *sources) remove(o Observable) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if index := slices.Index(d.observables, o); index != -1 {
		d.observables = slices.Delete(d.observables, index, index+1)
	}
}

// release unsubscribes r from everything it read.
func (d *sources) release(r Reaction) {
	d.mu.Lock()
	observables := d.observables
	d.observables = nil
	d.mu.Unlock()

	for _, o := range observables {
		o.untrack(r)
	}
}

// len reports how many observables are tracked.
func (d *sources) len() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.observables)
}
