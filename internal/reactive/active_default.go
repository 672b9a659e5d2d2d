//go:build !wasm

package reactive

import (
	"sync"

	"github.com/petermattis/goid"
)

// active owners are tracked per goroutine
var activeOwners sync.Map

func goroutineID() int64 {
	return goid.Get()
}

func getActiveOwner() *Owner {
	gid := goroutineID()
	if o, ok := activeOwners.Load(gid); ok {
		return o.(*Owner)
	}

	o := &Owner{ctx: shared}
	setActiveOwner(o)
	return o
}

func setActiveOwner(o *Owner) {
	activeOwners.Store(goroutineID(), o)
}
