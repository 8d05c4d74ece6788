package randengine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministic(t *testing.T) {
	a, b := New(42), New(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Uniform(0, 86400), b.Uniform(0, 86400))
	}
}

func TestDiscreteDistribution(t *testing.T) {
	e := New(1)
	weight := []float64{1, 0, 3}
	for i := 0; i < 1000; i++ {
		idx := e.DiscreteDistribution(weight)
		assert.GreaterOrEqual(t, idx, int32(0))
		assert.Less(t, idx, int32(3))
		// zero weight must never be drawn
		assert.NotEqual(t, int32(1), idx)
	}
}

func TestUniform(t *testing.T) {
	e := New(7)
	for i := 0; i < 1000; i++ {
		v := e.Uniform(10, 20)
		assert.GreaterOrEqual(t, v, 10.0)
		assert.Less(t, v, 20.0)
	}
}
