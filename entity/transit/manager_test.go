package transit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/lane"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

func newTestLanes() *lane.LaneManager {
	m := lane.NewManager(nil)
	m.Init([]*input.Lane{
		{ID: 1, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{0, 0}, {100, 0}},
			StartJunction: 10, EndJunction: 11},
		{ID: 101, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{0, 5}, {100, 5}},
			StartJunction: 10, EndJunction: 11},
	})
	return m
}

func TestInitValidation(t *testing.T) {
	lanes := newTestLanes()

	// stop on a driving lane
	assert.Panics(t, func() {
		NewManager(nil).Init([]*input.Stop{{ID: 301, Lane: 1, S: 10}}, nil, lanes)
	})
	// route referencing an unknown stop
	assert.Panics(t, func() {
		NewManager(nil).Init(
			[]*input.Stop{{ID: 301, Lane: 101, S: 10}},
			[]*input.Route{{ID: 401, Stops: []int32{301, 999}}},
			lanes,
		)
	})
}

func TestStopSpot(t *testing.T) {
	lanes := newTestLanes()
	m := NewManager(nil)
	m.Init(
		[]*input.Stop{
			{ID: 301, Lane: 101, S: 10},
			{ID: 302, Lane: 101, S: 60},
		},
		[]*input.Route{{ID: 401, Name: "line 1", Stops: []int32{301, 302}}},
		lanes,
	)

	assert.Equal(t, entity.SidewalkSpot{
		Pos:        entity.Position{LaneID: 101, S: 10},
		Connection: entity.SpotBusStop,
		RefID:      301,
	}, m.StopSpot(301))

	route := m.GetRoute(401)
	assert.Equal(t, []int32{301, 302}, route.StopIDs)
	assert.Panics(t, func() { m.GetRoute(999) })
	assert.Panics(t, func() { m.GetStop(999) })
	_, err := m.GetStopOrError(999)
	assert.Error(t, err)
}
