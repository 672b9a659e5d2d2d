package reactive

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwner(t *testing.T) {
	t.Run("runs function and disposes", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() {
			NewEffect(func() {
				log = append(log, "effect")

				OnCleanup(func() { log = append(log, "cleanup") })
			})
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"effect",
			"ran",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("nested owners", func(t *testing.T) {
		log := []string{}

		o := NewOwner()
		o.OnCleanup(func() {
			log = append(log, "parent disposed")
		})

		o.Run(func() {
			NewOwner().OnCleanup(func() {
				log = append(log, "child disposed")
			})
		})

		o.Dispose()

		assert.Equal(t, []string{
			"child disposed",
			"parent disposed",
		}, log)
	})

	t.Run("sibling effects disposal order", func(t *testing.T) {
		log := []string{}

		o := NewOwner()

		o.Run(func() {
			OnCleanup(func() {
				log = append(log, "cleanup")
			})

			NewEffect(func() {
				log = append(log, "running first")

				NewEffect(func() {
					log = append(log, "running nested")
					OnCleanup(func() { log = append(log, "cleanup nested") })
				})

				OnCleanup(func() { log = append(log, "cleanup first") })
			})

			NewEffect(func() {
				log = append(log, "running second")
				OnCleanup(func() { log = append(log, "cleanup second") })
			})
		})

		log = append(log, "ran")
		o.Dispose()
		log = append(log, "disposed")

		assert.Equal(t, []string{
			"running first",
			"running nested",
			"running second",
			"ran",
			"cleanup second",
			"cleanup nested",
			"cleanup first",
			"cleanup",
			"disposed",
		}, log)
	})

	t.Run("disposed effects stop reacting", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		o := NewOwner()
		o.Run(func() {
			NewEffect(func() {
				count.Get()
				runs++
			})
		})

		count.Set(1)
		o.Dispose()
		count.Set(2)

		assert.Equal(t, 2, runs)
	})

	t.Run("restores the previous owner", func(t *testing.T) {
		runs := 0

		count := NewSignal(0)

		o := NewOwner()
		o.Run(func() {})

		NewEffect(func() {
			count.Get()
			runs++
		})

		o.Dispose()
		count.Set(1)

		assert.Equal(t, 2, runs)
	})

	t.Run("dispose twice", func(t *testing.T) {
		calls := 0

		o := NewOwner()
		o.OnCleanup(func() { calls++ })

		o.Dispose()
		o.Dispose()

		assert.Equal(t, 1, calls)
	})
}
