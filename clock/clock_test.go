package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/config"
)

func TestClock(t *testing.T) {
	c := New(config.ControlStep{Start: 10, Total: 5, Interval: 2})
	assert.Equal(t, int32(10), c.InternalStep)
	assert.Equal(t, 20.0, c.T)
	assert.False(t, c.Done())

	for i := 0; i < 5; i++ {
		c.Step()
	}
	assert.Equal(t, int32(15), c.InternalStep)
	assert.Equal(t, 30.0, c.T)
	assert.True(t, c.Done())

	c.Init()
	assert.Equal(t, int32(10), c.InternalStep)
}

func TestClockString(t *testing.T) {
	c := New(config.ControlStep{Start: 0, Total: 100, Interval: 1})
	c.InternalStep = 3725
	c.T = 3725
	assert.Equal(t, "01:02:05", c.String())
	h, m, s := c.GetHourMinuteSecond()
	assert.Equal(t, 1, h)
	assert.Equal(t, 2, m)
	assert.InDelta(t, 5, s, 1e-9)
}
