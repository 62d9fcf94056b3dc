package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeededRandomIsReproducible(t *testing.T) {
	a, b := NewSeeded(42), NewSeeded(42)

	for range 20 {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
	}
	assert.Equal(t, a.String(8, "ABCDEF"), b.String(8, "ABCDEF"))
}

func TestIntnStaysInRange(t *testing.T) {
	for _, r := range []Random{New(), NewSeeded(7)} {
		for range 100 {
			n := r.Intn(6)
			assert.GreaterOrEqual(t, n, 0)
			assert.Less(t, n, 6)
		}
		assert.Equal(t, 0, r.Intn(0))
	}
}

func TestStringUsesAlphabet(t *testing.T) {
	s := NewSeeded(1).String(32, "AB")

	assert.Len(t, s, 32)
	assert.NotContains(t, s, "C")
	assert.Empty(t, New().String(0, "AB"))
	assert.Empty(t, New().String(4, ""))
}
