package reactive

import (
	"slices"
	"sync"
)

type reactiveContext struct {
	mu sync.Mutex

	// activeReactions holds the reaction executing on each goroutine.
	// A read only tracks into the reaction running on its own goroutine.
	activeReactions map[int64]Reaction

	// pending and pendingRender hold reactions queued during a batch or a flush.
	// Render reactions only run once no plain reaction is left.
	pending       []Reaction
	pendingRender []Reaction

	// batchDepth indicates the current depth of nested Batch calls.
	// It is used to determine when to flush pending reactions.
	batchDepth int

	flushing bool
}

func (rc *reactiveContext) active() Reaction {
	gid := goroutineID()

	rc.mu.Lock()
	defer rc.mu.Unlock()

	return rc.activeReactions[gid]
}

func (rc *reactiveContext) swapActive(r Reaction) Reaction {
	gid := goroutineID()

	rc.mu.Lock()
	defer rc.mu.Unlock()

	prev := rc.activeReactions[gid]
	if r == nil {
		delete(rc.activeReactions, gid)
	} else {
		if rc.activeReactions == nil {
			rc.activeReactions = make(map[int64]Reaction)
		}
		rc.activeReactions[gid] = r
	}
	return prev
}

func (rc *reactiveContext) batch(fn func()) {
	rc.batchDepth++
	fn()
	rc.batchDepth--

	if rc.batchDepth == 0 {
		rc.flush()
	}
}

func (rc *reactiveContext) queueReaction(r Reaction) {
	// if not batching nor flushing, execute immediately
	if rc.batchDepth == 0 && !rc.flushing {
		r.Execute()
		return
	}

	// else, queue for later execution
	if isRender(r) {
		if !slices.Contains(rc.pendingRender, r) {
			rc.pendingRender = append(rc.pendingRender, r)
		}
		return
	}

	if !slices.Contains(rc.pending, r) {
		rc.pending = append(rc.pending, r)
	}
}

func (rc *reactiveContext) flush() {
	if rc.flushing {
		return
	}

	rc.flushing = true
	defer func() { rc.flushing = false }()

	for {
		var next Reaction

		switch {
		case len(rc.pending) > 0:
			next, rc.pending = rc.pending[0], rc.pending[1:]
		case len(rc.pendingRender) > 0:
			next, rc.pendingRender = rc.pendingRender[0], rc.pendingRender[1:]
		default:
			return
		}

		next.Execute()
	}
}
