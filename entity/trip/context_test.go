package trip

import (
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/clock"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/building"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/lane"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/transit"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/metrics"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/router"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/scheduler"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// testCtx implements entity.ITaskContext over a small synthetic network
type testCtx struct {
	clk       *clock.Clock
	lanes     *lane.LaneManager
	buildings *building.BuildingManager
	transits  *transit.TransitManager
	trips     *TripManager
	sched     *scheduler.Scheduler
	rt        *router.LocalRouter
	cfg       *config.RuntimeConfig
	mtr       *metrics.Collector
}

func (ctx *testCtx) Clock() *clock.Clock                      { return ctx.clk }
func (ctx *testCtx) LaneManager() entity.ILaneManager         { return ctx.lanes }
func (ctx *testCtx) BuildingManager() entity.IBuildingManager { return ctx.buildings }
func (ctx *testCtx) TransitManager() entity.ITransitManager   { return ctx.transits }
func (ctx *testCtx) TripManager() entity.ITripManager         { return ctx.trips }
func (ctx *testCtx) Scheduler() entity.IScheduler             { return ctx.sched }
func (ctx *testCtx) Router() entity.IRouter                   { return ctx.rt }
func (ctx *testCtx) RuntimeConfig() *config.RuntimeConfig     { return ctx.cfg }
func (ctx *testCtx) Metrics() *metrics.Collector              { return ctx.mtr }

// the test network:
//
//	driving 1 (junction 10->11) -> driving 2 (11->12), sidewalks 101 -> 102
//	driving 3 has no sidewalk, driving 4 is 5m long
//	sidewalk 103 has no driving lane nearby
//	buildings 201/203 on sidewalk 101, 202 on 102, 204 parks on lane 3
//	bus route 401: stop 301 (101@10) -> stop 302 (102@60)
func testLanes() []*input.Lane {
	return []*input.Lane{
		{ID: 1, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{0, 0}, {100, 0}},
			StartJunction: 10, EndJunction: 11, Successors: []int32{2}, Sidewalk: lo.ToPtr(int32(101))},
		{ID: 2, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{100, 0}, {200, 0}},
			StartJunction: 11, EndJunction: 12, Predecessors: []int32{1}, Sidewalk: lo.ToPtr(int32(102))},
		{ID: 3, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{0, 50}, {100, 50}},
			StartJunction: 13, EndJunction: 14},
		{ID: 4, Type: "driving", MaxSpeed: 30, CenterLine: [][]float64{{0, 60}, {5, 60}},
			StartJunction: 15, EndJunction: 16},
		{ID: 101, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{0, 5}, {100, 5}},
			StartJunction: 10, EndJunction: 11, Successors: []int32{102}, Driving: lo.ToPtr(int32(1))},
		{ID: 102, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{100, 5}, {200, 5}},
			StartJunction: 11, EndJunction: 12, Predecessors: []int32{101}, Driving: lo.ToPtr(int32(2))},
		{ID: 103, Type: "walking", MaxSpeed: 2, CenterLine: [][]float64{{0, 70}, {50, 70}},
			StartJunction: 17, EndJunction: 18},
	}
}

func testBuildings() []*input.Building {
	return []*input.Building{
		{ID: 201, SidewalkLane: 101, SidewalkS: 20, ParkingLane: 1, ParkingS: 30},
		{ID: 202, SidewalkLane: 102, SidewalkS: 40, ParkingLane: 2, ParkingS: 50},
		{ID: 203, SidewalkLane: 101, SidewalkS: 70, ParkingLane: 1, ParkingS: 80},
		{ID: 204, SidewalkLane: 101, SidewalkS: 90, ParkingLane: 3, ParkingS: 50},
	}
}

func testPersons() []*input.Person {
	return []*input.Person{
		{ID: 1, Ped: 1001, Car: lo.ToPtr(int32(2001)), WalkSpeed: 1.2},
		{ID: 2, Ped: 1002, WalkSpeed: 1.0},
	}
}

func newTestCtx() *testCtx {
	ctx := &testCtx{}
	ctx.clk = clock.New(config.ControlStep{Start: 0, Total: 100, Interval: 1})
	ctx.mtr = metrics.NewCollector()
	ctx.cfg = config.NewRuntimeConfig(config.Config{})
	ctx.lanes = lane.NewManager(ctx)
	ctx.buildings = building.NewManager(ctx)
	ctx.transits = transit.NewManager(ctx)
	ctx.trips = NewManager(ctx)
	ctx.sched = scheduler.New()
	ctx.rt = router.New()

	ctx.lanes.Init(testLanes())
	ctx.buildings.Init(testBuildings(), ctx.lanes)
	ctx.transits.Init(
		[]*input.Stop{
			{ID: 301, Lane: 101, S: 10},
			{ID: 302, Lane: 102, S: 60},
		},
		[]*input.Route{
			{ID: 401, Name: "line 1", Stops: []int32{301, 302}},
		},
		ctx.lanes,
	)
	ctx.trips.Init(testPersons())
	ctx.rt.Init(ctx.lanes.Lanes())
	return ctx
}

// intent helpers

func walkingSpec(ctx *testCtx, from, to int32) entity.TripSpec {
	return entity.TripSpec{JustWalking: &entity.JustWalkingSpec{
		Start:     ctx.buildings.SidewalkSpot(from),
		Goal:      ctx.buildings.SidewalkSpot(to),
		WalkSpeed: 1.2,
	}}
}

func bikeSpec(start entity.SidewalkSpot, goal entity.DrivingGoal) entity.TripSpec {
	return entity.TripSpec{UsingBike: &entity.UsingBikeSpec{
		Start: start,
		Goal:  goal,
		Vehicle: entity.VehicleSpec{
			Type:   entity.VehicleTypeBike,
			Length: entity.BikeLength,
			MaxV:   7,
		},
		WalkSpeed: 1.2,
	}}
}

func carSpec(pos entity.Position, goal entity.DrivingGoal) entity.TripSpec {
	return entity.TripSpec{CarAppearing: &entity.CarAppearingSpec{
		StartPos: pos,
		Goal:     goal,
		Vehicle: entity.VehicleSpec{
			Type:   entity.VehicleTypeCar,
			Length: entity.MaxCarLength,
			MaxV:   30,
		},
		WalkSpeed: 1.2,
	}}
}
