package trip

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
)

func TestDeriveRequest(t *testing.T) {
	ctx := newTestCtx()

	// car to a border: full request with vehicle constraints
	req := DeriveRequest(ctx, carSpec(entity.Position{LaneID: 1, S: 10}, borderGoal()))
	assert.Equal(t, &entity.PathRequest{
		Start:       entity.Position{LaneID: 1, S: 10},
		End:         entity.Position{LaneID: 2, S: 100},
		Constraints: entity.ConstraintCar,
	}, req)

	// car parking near a building: goal resolves to the parking gate
	req = DeriveRequest(ctx, carSpec(entity.Position{LaneID: 1, S: 10}, parkGoal(202)))
	assert.Equal(t, entity.Position{LaneID: 2, S: 50}, req.End)

	// the parked car's location is unknown, no request
	req = DeriveRequest(ctx, entity.TripSpec{UsingParkedCar: &entity.UsingParkedCarSpec{
		StartBuildingID: 201,
		Goal:            parkGoal(202),
		WalkSpeed:       1.2,
	}})
	assert.Nil(t, req)

	// walking
	req = DeriveRequest(ctx, walkingSpec(ctx, 201, 202))
	assert.Equal(t, &entity.PathRequest{
		Start:       entity.Position{LaneID: 101, S: 20},
		End:         entity.Position{LaneID: 102, S: 40},
		Constraints: entity.ConstraintPedestrian,
	}, req)

	// bike: only the walking sub-leg to the rack
	req = DeriveRequest(ctx, bikeSpec(ctx.buildings.SidewalkSpot(201), parkGoal(202)))
	assert.Equal(t, &entity.PathRequest{
		Start:       entity.Position{LaneID: 101, S: 20},
		End:         entity.Position{LaneID: 101, S: 50},
		Constraints: entity.ConstraintPedestrian,
	}, req)

	// transit: only the walking sub-leg to the boarding stop
	req = DeriveRequest(ctx, entity.TripSpec{UsingTransit: &entity.UsingTransitSpec{
		Start:        ctx.buildings.SidewalkSpot(201),
		Goal:         ctx.buildings.SidewalkSpot(202),
		RouteID:      401,
		BoardStopID:  301,
		AlightStopID: 302,
		WalkSpeed:    1.0,
	}})
	assert.Equal(t, entity.Position{LaneID: 101, S: 10}, req.End)
	assert.Equal(t, entity.ConstraintPedestrian, req.Constraints)
}

func TestAdjustSpawnPosition(t *testing.T) {
	ctx := newTestCtx()

	// clamped up to the vehicle length
	pos, ok := AdjustSpawnPosition(ctx, entity.Position{LaneID: 1, S: 2}, false)
	assert.True(t, ok)
	assert.Equal(t, entity.Position{LaneID: 1, S: entity.MaxCarLength}, pos)

	// clamped below the lane end
	pos, ok = AdjustSpawnPosition(ctx, entity.Position{LaneID: 1, S: 100}, false)
	assert.True(t, ok)
	assert.InDelta(t, 100-entity.EpsilonDistance, pos.S, 1e-9)

	// already fine
	pos, ok = AdjustSpawnPosition(ctx, entity.Position{LaneID: 1, S: 50}, false)
	assert.True(t, ok)
	assert.Equal(t, 50.0, pos.S)

	// bikes are shorter
	pos, ok = AdjustSpawnPosition(ctx, entity.Position{LaneID: 1, S: 1}, true)
	assert.True(t, ok)
	assert.Equal(t, entity.BikeLength, pos.S)

	// lane 4 is 5m, no car fits
	_, ok = AdjustSpawnPosition(ctx, entity.Position{LaneID: 4, S: 3}, false)
	assert.False(t, ok)
}
