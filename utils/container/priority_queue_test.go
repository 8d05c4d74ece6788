package container_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/container"
)

func TestPriorityQueueOrder(t *testing.T) {
	q := container.NewPriorityQueue[string]()
	assert.Equal(t, 0, q.Len())

	q.HeapPush("c", 3)
	q.HeapPush("a", 1)
	q.HeapPush("b", 2)
	assert.Equal(t, 3, q.Len())

	v, p := q.First()
	assert.Equal(t, "a", v)
	assert.Equal(t, 1.0, p)

	v, _ = q.HeapPop()
	assert.Equal(t, "a", v)
	v, _ = q.HeapPop()
	assert.Equal(t, "b", v)
	v, _ = q.HeapPop()
	assert.Equal(t, "c", v)
	assert.Equal(t, 0, q.Len())
}

func TestPriorityQueueStableTie(t *testing.T) {
	q := container.NewPriorityQueue[int]()

	// equal priorities must pop in push order
	for i := 0; i < 100; i++ {
		q.HeapPush(i, 7)
	}
	q.HeapPush(-1, 1)

	v, p := q.HeapPop()
	assert.Equal(t, -1, v)
	assert.Equal(t, 1.0, p)
	for i := 0; i < 100; i++ {
		v, p = q.HeapPop()
		assert.Equal(t, i, v)
		assert.Equal(t, 7.0, p)
	}
}
