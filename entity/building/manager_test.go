package building

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/lane"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

func newTestLanes() *lane.LaneManager {
	m := lane.NewManager(nil)
	m.Init([]*input.Lane{
		{ID: 1, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{0, 0}, {100, 0}},
			StartJunction: 10, EndJunction: 11, Sidewalk: lo.ToPtr(int32(101))},
		{ID: 101, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{0, 5}, {100, 5}},
			StartJunction: 10, EndJunction: 11, Driving: lo.ToPtr(int32(1))},
	})
	return m
}

func TestInitValidation(t *testing.T) {
	lanes := newTestLanes()

	m := NewManager(nil)
	assert.NotPanics(t, func() {
		m.Init([]*input.Building{
			{ID: 201, SidewalkLane: 101, SidewalkS: 20, ParkingLane: 1, ParkingS: 30},
		}, lanes)
	})

	// sidewalk gate on a driving lane
	assert.Panics(t, func() {
		NewManager(nil).Init([]*input.Building{
			{ID: 202, SidewalkLane: 1, SidewalkS: 20, ParkingLane: 1, ParkingS: 30},
		}, lanes)
	})
	// gate past the lane end
	assert.Panics(t, func() {
		NewManager(nil).Init([]*input.Building{
			{ID: 203, SidewalkLane: 101, SidewalkS: 500, ParkingLane: 1, ParkingS: 30},
		}, lanes)
	})
}

func TestSpots(t *testing.T) {
	lanes := newTestLanes()
	m := NewManager(nil)
	m.Init([]*input.Building{
		{ID: 201, SidewalkLane: 101, SidewalkS: 20, ParkingLane: 1, ParkingS: 30},
	}, lanes)

	spot := m.SidewalkSpot(201)
	assert.Equal(t, entity.SidewalkSpot{
		Pos:        entity.Position{LaneID: 101, S: 20},
		Connection: entity.SpotBuilding,
		RefID:      201,
	}, spot)

	assert.Equal(t, entity.Position{LaneID: 1, S: 30}, m.ParkingPosition(201))

	goal := entity.DrivingGoal{Type: entity.DrivingGoalParkNear, BuildingID: 201}
	deferred := m.DeferredParkingSpot(201, goal)
	assert.Equal(t, entity.SpotDeferredParking, deferred.Connection)
	assert.Equal(t, goal, deferred.DeferredGoal)
	assert.Equal(t, entity.Position{LaneID: 101, S: 20}, deferred.Pos)

	assert.Panics(t, func() { m.Get(999) })
	_, err := m.GetOrError(999)
	assert.Error(t, err)
}
