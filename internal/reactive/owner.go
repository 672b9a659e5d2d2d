package reactive

import (
	"slices"
	"sync"
)

// Owner manages the lifecycle of the reactive nodes created within its scope.
type Owner struct {
	mu sync.Mutex

	parent   *Owner
	children []Disposable

	// cleanup functions, run in reverse registration order
	cleanups []func()

	ctx *reactiveContext
}

// NewOwner creates an owner attached to the active owner of the calling goroutine.
func NewOwner() *Owner {
	parent := getActiveOwner()

	o := &Owner{
		parent: parent,
		ctx:    parent.ctx,
	}
	parent.addChild(o)

	return o
}

func (o *Owner) addChild(child Disposable) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if !slices.Contains(o.children, child) {
		o.children = append(o.children, child)
	}
}

func (o *Owner) removeChild(child Disposable) {
	o.mu.Lock()
	defer o.mu.Unlock()

	i := slices.Index(o.children, child)
	if i >= 0 {
		o.children = slices.Delete(o.children, i, i+1)
	}
}

// Run fn with o as the active owner. Nodes created by fn are disposed with o.
func (o *Owner) Run(fn func()) {
	prevOwner := getActiveOwner()
	setActiveOwner(o)
	defer setActiveOwner(prevOwner)

	fn()
}

// OnCleanup registers fn to be called once when o is disposed.
func (o *Owner) OnCleanup(fn func()) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.cleanups = append(o.cleanups, fn)
}

// Dispose o and all its children, latest first.
func (o *Owner) Dispose() {
	if o.parent != nil {
		o.parent.removeChild(o)
	}

	o.disposeChildren()
	o.runCleanups()
}

func (o *Owner) disposeChildren() {
	o.mu.Lock()
	children := o.children
	o.children = nil
	o.mu.Unlock()

	for i := len(children) - 1; i >= 0; i-- {
		children[i].Dispose()
	}
}

func (o *Owner) runCleanups() {
	o.mu.Lock()
	cleanups := o.cleanups
	o.cleanups = nil
	o.mu.Unlock()

	for i := len(cleanups) - 1; i >= 0; i-- {
		cleanups[i]()
	}
}
