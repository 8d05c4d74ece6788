package lane

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

func newTestManager() *LaneManager {
	m := NewManager(nil)
	m.Init([]*input.Lane{
		{ID: 1, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{0, 0}, {100, 0}},
			StartJunction: 10, EndJunction: 11, Sidewalk: lo.ToPtr(int32(101))},
		{ID: 2, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{100, 0}, {200, 0}},
			StartJunction: 11, EndJunction: 12},
		{ID: 101, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{0, 5}, {50, 5}, {50, 55}},
			StartJunction: 10, EndJunction: 11, Driving: lo.ToPtr(int32(1))},
		{ID: 103, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{0, 70}, {50, 70}},
			StartJunction: 17, EndJunction: 18},
	})
	return m
}

func TestNewLane(t *testing.T) {
	m := newTestManager()
	l := m.Get(101)
	assert.Equal(t, entity.LaneTypeWalking, l.Type())
	assert.InDelta(t, 100, l.Length(), 1e-9)
	assert.Equal(t, int32(10), l.StartJunctionID())

	assert.Panics(t, func() {
		newLane(&input.Lane{ID: 9, Type: "railway", CenterLine: [][]float64{{0, 0}, {1, 0}}})
	})
	assert.Panics(t, func() {
		newLane(&input.Lane{ID: 9, Type: "driving", CenterLine: [][]float64{{0, 0}}})
	})
}

func TestGetPositionByS(t *testing.T) {
	m := newTestManager()
	l := m.Get(101)
	p := l.GetPositionByS(25)
	assert.InDelta(t, 25, p.X, 1e-9)
	assert.InDelta(t, 5, p.Y, 1e-9)
	// past the first segment
	p = l.GetPositionByS(75)
	assert.InDelta(t, 50, p.X, 1e-9)
	assert.InDelta(t, 30, p.Y, 1e-9)
	// out of range clamps
	p = l.GetPositionByS(1000)
	assert.InDelta(t, 55, p.Y, 1e-9)
}

func TestBikeAccessSpot(t *testing.T) {
	m := newTestManager()
	spot, ok := m.BikeAccessSpot(101)
	assert.True(t, ok)
	assert.Equal(t, entity.SpotBikeRack, spot.Connection)
	assert.Equal(t, entity.Position{LaneID: 101, S: 50}, spot.Pos)

	_, ok = m.BikeAccessSpot(103)
	assert.False(t, ok)

	// not a sidewalk
	assert.Panics(t, func() { m.BikeAccessSpot(1) })
}

func TestSidewalkNear(t *testing.T) {
	m := newTestManager()
	l, ok := m.SidewalkNear(1)
	assert.True(t, ok)
	assert.Equal(t, int32(101), l.ID())

	_, ok = m.SidewalkNear(2)
	assert.False(t, ok)

	assert.Panics(t, func() { m.Get(999) })
	_, err := m.GetOrError(999)
	assert.Error(t, err)
}

func TestLanesSorted(t *testing.T) {
	m := newTestManager()
	ids := lo.Map(m.Lanes(), func(l entity.ILane, _ int) int32 { return l.ID() })
	assert.Equal(t, []int32{1, 2, 101, 103}, ids)
}
