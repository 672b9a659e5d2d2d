package reactive

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// elsewhere runs fn on another goroutine and waits for it.
func elsewhere(fn func()) {
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		fn()
	}()
	wg.Wait()
}

func TestGoroutines(t *testing.T) {
	t.Run("reads from another goroutine do not track", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)
		other := NewSignal(0)

		e := NewEffect(func() {
			count.Get()
			elsewhere(func() { other.Get() })
			runs++
		})

		assert.Equal(t, 1, e.sources.len())

		other.Set(1)
		assert.Equal(t, 1, runs)

		count.Set(1)
		assert.Equal(t, 2, runs)
	})

	t.Run("memo reads from another goroutine do not track", func(t *testing.T) {
		runs := 0

		count := NewSignal(1)
		double := NewMemo(func() int { return count.Get() * 2 })

		NewEffect(func() {
			elsewhere(func() { double.Get() })
			runs++
		})

		count.Set(2)

		assert.Equal(t, 1, runs)
		assert.Equal(t, 4, double.Get())
	})

	t.Run("each goroutine tracks into its own effect", func(t *testing.T) {
		var mu sync.Mutex
		log := []string{}

		a := NewSignal(0)
		b := NewSignal(0)

		NewEffect(func() {
			a.Get()
			mu.Lock()
			log = append(log, "a")
			mu.Unlock()
		})

		elsewhere(func() {
			NewEffect(func() {
				b.Get()
				mu.Lock()
				log = append(log, "b")
				mu.Unlock()
			})
		})

		b.Set(1)
		a.Set(1)

		assert.Equal(t, []string{"a", "b", "b", "a"}, log)
	})
}
