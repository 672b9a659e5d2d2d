//go:build wasm

package reactive

// wasm runs a single thread, one active owner is enough
var activeOwner *Owner

func goroutineID() int64 {
	return 0
}

func getActiveOwner() *Owner {
	if activeOwner == nil {
		activeOwner = &Owner{ctx: shared}
	}

	return activeOwner
}

func setActiveOwner(o *Owner) {
	activeOwner = o
}
