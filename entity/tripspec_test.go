package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func walkSpec(fromS, toS float64) TripSpec {
	return TripSpec{JustWalking: &JustWalkingSpec{
		Start: SidewalkSpot{
			Pos:        Position{LaneID: 101, S: fromS},
			Connection: SpotBuilding,
			RefID:      201,
		},
		Goal: SidewalkSpot{
			Pos:        Position{LaneID: 102, S: toS},
			Connection: SpotBuilding,
			RefID:      202,
		},
		WalkSpeed: 1.2,
	}}
}

func TestTripSpecKind(t *testing.T) {
	assert.Equal(t, "just_walking", walkSpec(10, 20).Kind())
	assert.Panics(t, func() { TripSpec{}.Kind() })
	assert.Panics(t, func() {
		s := walkSpec(10, 20)
		s.UsingParkedCar = &UsingParkedCarSpec{StartBuildingID: 201}
		s.Kind()
	})
}

func TestTripSpecEqual(t *testing.T) {
	assert.True(t, walkSpec(10, 20).Equal(walkSpec(10, 20)))
	assert.False(t, walkSpec(10, 20).Equal(walkSpec(10, 30)))
	assert.False(t, walkSpec(10, 20).Equal(TripSpec{}))
	assert.True(t, TripSpec{}.Equal(TripSpec{}))
}

func TestSidewalkSpotComparable(t *testing.T) {
	a := SidewalkSpot{Pos: Position{LaneID: 101, S: 20}, Connection: SpotBuilding, RefID: 201}
	b := SidewalkSpot{Pos: Position{LaneID: 101, S: 20}, Connection: SpotBuilding, RefID: 201}
	assert.True(t, a == b)
	b.DeferredGoal = DrivingGoal{Type: DrivingGoalParkNear, BuildingID: 202}
	assert.False(t, a == b)
}

func TestVehicleSpec(t *testing.T) {
	spec := VehicleSpec{Type: VehicleTypeCar, Length: MaxCarLength, MaxV: 30}
	v := spec.Make(2001, 1)
	assert.Equal(t, int32(2001), v.ID)
	assert.Equal(t, int32(1), v.OwnerID)
	assert.Equal(t, spec, v.Spec)
	assert.Equal(t, ConstraintCar, spec.Type.Constraints())
	assert.Equal(t, ConstraintBike, VehicleTypeBike.Constraints())
}
