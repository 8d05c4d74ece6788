package scenario

import (
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/trip"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/randengine"
)

// 随机出行的默认速度参数
const (
	defaultWalkSpeed = 1.2  // m/s
	bikeMaxV         = 7.0  // m/s
	carMaxV          = 30.0 // m/s
)

// 随机模式权重的下标含义
const (
	modeWalk = iota
	modeBike
	modeDrive
	modeTransit
)

// Generator 场景生成器
// 功能：把配置中的显式出行意图和随机生成规则翻译成TripSpec
// 并提交给Spawner。显式意图按配置顺序提交，随机意图在其后，
// 同一种子下生成结果完全可复现
type Generator struct {
	ctx  entity.ITaskContext
	data *input.Input

	walkSpeeds map[int32]float64 // 人员ID到步行速度
	personIDs  []int32           // 按输入顺序的人员ID，随机抽取用
}

// New 创建场景生成器
func New(ctx entity.ITaskContext, data *input.Input) *Generator {
	g := &Generator{
		ctx:        ctx,
		data:       data,
		walkSpeeds: make(map[int32]float64),
		personIDs:  make([]int32, 0, len(data.Persons.Persons)),
	}
	for _, p := range data.Persons.Persons {
		speed := p.WalkSpeed
		if speed <= 0 {
			speed = defaultWalkSpeed
		}
		g.walkSpeeds[p.ID] = speed
		g.personIDs = append(g.personIDs, p.ID)
	}
	return g
}

// Generate 生成场景内全部出行意图并提交
func (g *Generator) Generate(spawner *trip.Spawner) {
	scenario := &g.ctx.RuntimeConfig().All.Scenario
	for i := range scenario.Trips {
		g.submitExplicit(spawner, &scenario.Trips[i])
	}
	if random := scenario.Random; random != nil {
		g.submitRandom(spawner, random)
	}
	log.Infof("scenario generated, %d trips buffered", spawner.Len())
}

func (g *Generator) walkSpeed(personID int32) float64 {
	if speed, ok := g.walkSpeeds[personID]; ok {
		return speed
	}
	log.Panicf("no id %d in person data", personID)
	return 0
}

// startSpot 解析显式意图的步行起点
// 建筑起点连到建筑步行门，车道起点按凭空出现处理
func (g *Generator) startSpot(t *config.ScenarioTrip) entity.SidewalkSpot {
	if t.StartBuilding != nil {
		return g.ctx.BuildingManager().SidewalkSpot(*t.StartBuilding)
	}
	if t.StartLane != nil && t.StartS != nil {
		return entity.SidewalkSpot{
			Pos:        entity.Position{LaneID: *t.StartLane, S: *t.StartS},
			Connection: entity.SpotSuddenlyAppear,
			RefID:      entity.NullID,
		}
	}
	log.Panicf("trip for person %d has no usable start", t.PersonID)
	return entity.SidewalkSpot{}
}

// goalSpot 解析显式意图的步行终点
func (g *Generator) goalSpot(t *config.ScenarioTrip) entity.SidewalkSpot {
	if t.EndBuilding != nil {
		return g.ctx.BuildingManager().SidewalkSpot(*t.EndBuilding)
	}
	if t.EndJunction != nil && t.EndLane != nil {
		l := g.ctx.LaneManager().Get(*t.EndLane)
		return entity.SidewalkSpot{
			Pos:        entity.Position{LaneID: *t.EndLane, S: l.Length()},
			Connection: entity.SpotBorder,
			RefID:      *t.EndJunction,
		}
	}
	log.Panicf("trip for person %d has no usable goal", t.PersonID)
	return entity.SidewalkSpot{}
}

// drivingGoal 解析显式意图的行车终点
func (g *Generator) drivingGoal(t *config.ScenarioTrip) entity.DrivingGoal {
	if t.EndBuilding != nil {
		return entity.DrivingGoal{Type: entity.DrivingGoalParkNear, BuildingID: *t.EndBuilding}
	}
	if t.EndJunction != nil && t.EndLane != nil {
		return entity.DrivingGoal{Type: entity.DrivingGoalBorder, JunctionID: *t.EndJunction, LaneID: *t.EndLane}
	}
	log.Panicf("trip for person %d has no usable driving goal", t.PersonID)
	return entity.DrivingGoal{}
}

// submitExplicit 提交一条显式配置的出行意图
func (g *Generator) submitExplicit(spawner *trip.Spawner, t *config.ScenarioTrip) {
	speed := g.walkSpeed(t.PersonID)
	var spec entity.TripSpec
	switch t.Mode {
	case "car_appearing":
		if t.StartLane == nil || t.StartS == nil {
			log.Panicf("car_appearing trip for person %d needs start_lane and start_s", t.PersonID)
		}
		pos, ok := trip.AdjustSpawnPosition(g.ctx,
			entity.Position{LaneID: *t.StartLane, S: *t.StartS}, false)
		if !ok {
			log.Panicf("lane %d is too short to spawn a car on", *t.StartLane)
		}
		spec = entity.TripSpec{CarAppearing: &entity.CarAppearingSpec{
			StartPos: pos,
			Goal:     g.drivingGoal(t),
			Vehicle: entity.VehicleSpec{
				Type:   entity.VehicleTypeCar,
				Length: entity.MaxCarLength,
				MaxV:   carMaxV,
			},
			WalkSpeed: speed,
		}}
	case "using_parked_car":
		if t.StartBuilding == nil {
			log.Panicf("using_parked_car trip for person %d needs start_building", t.PersonID)
		}
		spec = entity.TripSpec{UsingParkedCar: &entity.UsingParkedCarSpec{
			StartBuildingID: *t.StartBuilding,
			Goal:            g.drivingGoal(t),
			WalkSpeed:       speed,
		}}
	case "just_walking":
		spec = entity.TripSpec{JustWalking: &entity.JustWalkingSpec{
			Start:     g.startSpot(t),
			Goal:      g.goalSpot(t),
			WalkSpeed: speed,
		}}
	case "using_bike":
		spec = entity.TripSpec{UsingBike: &entity.UsingBikeSpec{
			Start: g.startSpot(t),
			Goal:  g.drivingGoal(t),
			Vehicle: entity.VehicleSpec{
				Type:   entity.VehicleTypeBike,
				Length: entity.BikeLength,
				MaxV:   bikeMaxV,
			},
			WalkSpeed: speed,
		}}
	case "using_transit":
		if t.Route == nil || t.BoardStop == nil || t.AlightStop == nil {
			log.Panicf("using_transit trip for person %d needs route, board_stop and alight_stop", t.PersonID)
		}
		spec = entity.TripSpec{UsingTransit: &entity.UsingTransitSpec{
			Start:        g.startSpot(t),
			Goal:         g.goalSpot(t),
			RouteID:      *t.Route,
			BoardStopID:  *t.BoardStop,
			AlightStopID: *t.AlightStop,
			WalkSpeed:    speed,
		}}
	default:
		log.Panicf("unknown trip mode %s for person %d", t.Mode, t.PersonID)
	}
	spawner.Submit(t.PersonID, t.DepartureTime, spec)
}

// submitRandom 按配置随机生成出行意图
// 说明：建筑到建筑的出行，模式按权重抽取。开车统一走
// using_parked_car（车在起点建筑附近停着），公交在随机线路上
// 抽两个不同站。路网没有建筑或人员时直接跳过
func (g *Generator) submitRandom(spawner *trip.Spawner, c *config.ScenarioRandom) {
	if len(g.personIDs) == 0 || len(g.data.Map.Buildings) == 0 {
		log.Warnf("no persons or buildings, skip random scenario")
		return
	}
	e := randengine.New(c.Seed)
	weights := c.ModeWeights
	for i := int32(0); i < c.Count; i++ {
		personID := g.personIDs[e.Intn(len(g.personIDs))]
		departure := e.Uniform(c.StartTime, c.EndTime)
		speed := g.walkSpeed(personID)
		from := g.data.Map.Buildings[e.Intn(len(g.data.Map.Buildings))].ID
		to := g.data.Map.Buildings[e.Intn(len(g.data.Map.Buildings))].ID
		for to == from && len(g.data.Map.Buildings) > 1 {
			to = g.data.Map.Buildings[e.Intn(len(g.data.Map.Buildings))].ID
		}

		mode := e.DiscreteDistribution(weights)
		if mode == modeTransit && len(g.data.Map.Routes) == 0 {
			mode = modeWalk
		}
		var spec entity.TripSpec
		switch mode {
		case modeWalk:
			spec = entity.TripSpec{JustWalking: &entity.JustWalkingSpec{
				Start:     g.ctx.BuildingManager().SidewalkSpot(from),
				Goal:      g.ctx.BuildingManager().SidewalkSpot(to),
				WalkSpeed: speed,
			}}
		case modeBike:
			spec = entity.TripSpec{UsingBike: &entity.UsingBikeSpec{
				Start: g.ctx.BuildingManager().SidewalkSpot(from),
				Goal:  entity.DrivingGoal{Type: entity.DrivingGoalParkNear, BuildingID: to},
				Vehicle: entity.VehicleSpec{
					Type:   entity.VehicleTypeBike,
					Length: entity.BikeLength,
					MaxV:   bikeMaxV,
				},
				WalkSpeed: speed,
			}}
		case modeDrive:
			spec = entity.TripSpec{UsingParkedCar: &entity.UsingParkedCarSpec{
				StartBuildingID: from,
				Goal:            entity.DrivingGoal{Type: entity.DrivingGoalParkNear, BuildingID: to},
				WalkSpeed:       speed,
			}}
		case modeTransit:
			route := g.data.Map.Routes[e.Intn(len(g.data.Map.Routes))]
			if len(route.Stops) < 2 {
				log.Warnf("route %d has fewer than 2 stops, fall back to walking", route.ID)
				spec = entity.TripSpec{JustWalking: &entity.JustWalkingSpec{
					Start:     g.ctx.BuildingManager().SidewalkSpot(from),
					Goal:      g.ctx.BuildingManager().SidewalkSpot(to),
					WalkSpeed: speed,
				}}
				break
			}
			board := e.Intn(len(route.Stops) - 1)
			alight := board + 1 + e.Intn(len(route.Stops)-board-1)
			spec = entity.TripSpec{UsingTransit: &entity.UsingTransitSpec{
				Start:        g.ctx.BuildingManager().SidewalkSpot(from),
				Goal:         g.ctx.BuildingManager().SidewalkSpot(to),
				RouteID:      route.ID,
				BoardStopID:  route.Stops[board],
				AlightStopID: route.Stops[alight],
				WalkSpeed:    speed,
			}}
		}
		// 起终点落在同一个建筑门上的步行意图没有意义，丢掉
		if spec.JustWalking != nil && spec.JustWalking.Start == spec.JustWalking.Goal {
			continue
		}
		spawner.Submit(personID, departure, spec)
	}
}
