package forest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubStop struct {
	minSize int
}

func TestSlotResolve(t *testing.T) {
	fallback := stubStop{minSize: 1}

	t.Run("default slot yields the fallback", func(t *testing.T) {
		s := Default[stubStop]()
		assert.True(t, s.IsDefault())
		assert.Equal(t, fallback, s.Resolve(fallback))
	})

	t.Run("explicit slot yields the caller's value unchanged", func(t *testing.T) {
		mine := stubStop{minSize: 10}
		s := Explicit(mine)
		assert.False(t, s.IsDefault())
		assert.Equal(t, mine, s.Resolve(fallback))
	})

	t.Run("zero value requests the default", func(t *testing.T) {
		var s Slot[stubStop]
		assert.True(t, s.IsDefault())
		assert.Equal(t, fallback, s.Resolve(fallback))
	})

	t.Run("works for reference types", func(t *testing.T) {
		fn := func(n int) int { return n * 2 }
		resolved := Explicit(fn).Resolve(nil)
		assert.NotNil(t, resolved)
		assert.Equal(t, 8, resolved(4))

		resolvedDefault := Default[func(int) int]().Resolve(fn)
		assert.Equal(t, 8, resolvedDefault(4))
	})
}
