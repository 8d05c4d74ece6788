package trip

import (
	"git.fiblab.net/general/common/v2/parallel"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
)

// 丢弃原因（metrics的reason标签）
const (
	dropNoBikeAccess       = "no_bike_access"
	dropNoSidewalkNearGoal = "no_sidewalk_near_goal"
)

// bufferedTrip 已提交待展开的出行意图
type bufferedTrip struct {
	personID  int32
	startTime float64
	spec      entity.TripSpec
}

// resolvedTrip 并行导航阶段的输出：意图加上导航请求与结果
type resolvedTrip struct {
	bufferedTrip
	req  *entity.PathRequest
	path *entity.Path
}

// Spawner 出行意图缓冲与行程生成器
// 功能：接收出行意图并做提交期校验（改写/丢弃/报错），
// 在Finalize中批量解析路径并展开为行程腿序列，向调度器
// 推送StartTrip指令。由场景生成器或交互调用方临时创建，
// Finalize一次性消费全部缓冲后即不可再用
type Spawner struct {
	ctx entity.ITaskContext

	trips []bufferedTrip
}

// NewSpawner 创建Spawner实例
func NewSpawner(ctx entity.ITaskContext) *Spawner {
	return &Spawner{
		ctx:   ctx,
		trips: make([]bufferedTrip, 0),
	}
}

// Len 当前缓冲的意图数
func (s *Spawner) Len() int {
	return len(s.trips)
}

// Submit 提交一条出行意图
// 功能：逐变体做提交期可行性校验。校验只涉及单条意图的
// 几何与逻辑检查（无全网寻路），保证Finalize的批量导航
// 只处理结构合法的意图。三种结果：
//   - 致命错误（上游数据生成的bug）：log.Panicf中止整个运行
//   - 可恢复改写：退化的骑行意图原地改写为步行意图后入缓冲
//   - 可恢复丢弃：缺少骑行基础设施的意图告警后丢弃——被丢弃的
//     意图不会以失败行程的形式流向下游，只有告警日志与计数
func (s *Spawner) Submit(personID int32, startTime float64, spec entity.TripSpec) {
	s.ctx.Metrics().TripsSubmitted.Inc()
	laneManager := s.ctx.LaneManager()
	switch {
	case spec.CarAppearing != nil:
		v := spec.CarAppearing
		if v.StartPos.S < v.Vehicle.Length {
			log.Panicf("can't spawn a %v at %.2f on lane %d; too close to the start",
				v.Vehicle.Type, v.StartPos.S, v.StartPos.LaneID)
		}
		lane := laneManager.Get(v.StartPos.LaneID)
		if v.StartPos.S >= lane.Length() {
			log.Panicf("can't spawn a %v at %.2f; lane %d isn't that long",
				v.Vehicle.Type, v.StartPos.S, v.StartPos.LaneID)
		}
		if v.Goal.Type == entity.DrivingGoalBorder {
			endLane := laneManager.Get(v.Goal.LaneID)
			if v.StartPos.LaneID == v.Goal.LaneID && v.StartPos.S == endLane.Length() {
				log.Panicf("can't start a %v at the edge of a border already", v.Vehicle.Type)
			}
		}
	case spec.UsingParkedCar != nil:
		// 停车可行性推迟到展开阶段
	case spec.JustWalking != nil:
		v := spec.JustWalking
		if v.Start == v.Goal {
			log.Panicf("a trip just walking from %v to %v doesn't make sense", v.Start, v.Goal)
		}
	case spec.UsingBike != nil:
		v := spec.UsingBike
		if _, ok := laneManager.BikeAccessSpot(v.Start.Pos.LaneID); !ok {
			log.Warnf("can't start biking from lane %d; no biking or driving lane nearby?",
				v.Start.Pos.LaneID)
			s.ctx.Metrics().TripsDropped.WithLabelValues(dropNoBikeAccess).Inc()
			return
		}
		if v.Goal.Type == entity.DrivingGoalParkNear {
			lastLane := goalPos(s.ctx, v.Goal, entity.ConstraintBike).LaneID
			if _, ok := laneManager.SidewalkNear(lastLane); !ok {
				log.Warnf("can't fulfill %v for a bike trip; no sidewalk near lane %d",
					v.Goal, lastLane)
				s.ctx.Metrics().TripsDropped.WithLabelValues(dropNoSidewalkNearGoal).Inc()
				return
			}
			// 同一条人行道上起点和终点的骑行……直接改成步行
			b := s.ctx.BuildingManager().Get(v.Goal.BuildingID)
			if v.Start.Pos.LaneID == b.SidewalkLaneID() {
				log.Warnf("bike trip from %v to %v will just walk; it's the same sidewalk",
					v.Start, v.Goal)
				s.ctx.Metrics().TripsRewritten.Inc()
				s.trips = append(s.trips, bufferedTrip{
					personID:  personID,
					startTime: startTime,
					spec: entity.TripSpec{JustWalking: &entity.JustWalkingSpec{
						Start:     v.Start,
						Goal:      s.ctx.BuildingManager().SidewalkSpot(v.Goal.BuildingID),
						WalkSpeed: v.WalkSpeed,
					}},
				})
				return
			}
		}
	case spec.UsingTransit != nil:
		// 公交意图不做提交期结构校验
	default:
		log.Panicf("empty trip spec for person %d", personID)
	}

	s.trips = append(s.trips, bufferedTrip{personID: personID, startTime: startTime, spec: spec})
}

// Finalize 一次性消费全部缓冲，生成行程并推送调度器指令
// 算法说明：
// 1. 排空缓冲（此后Spawner不可再用）
// 2. 并行解析导航：对每条意图导出请求并向导航服务求解。
//    各条意图互不共享可变状态，路网在本阶段只读；parallel.GoMap
//    按输入下标收集结果，并行完成顺序不影响输出顺序
// 3. 按提交顺序逐条展开：查人员的持久身份、展开腿序列、
//    登记行程拿ID、按出发时间推送StartTrip指令。行程ID与
//    调度器插入顺序因此在多次运行间可复现
func (s *Spawner) Finalize(tripManager entity.ITripManager, scheduler entity.IScheduler) {
	if s.trips == nil {
		log.Panicf("spawner finalized twice")
	}
	trips := s.trips
	s.trips = nil

	resolved := parallel.GoMap(trips, func(t bufferedTrip) resolvedTrip {
		req := DeriveRequest(s.ctx, t.spec)
		var path *entity.Path
		if req != nil {
			path = s.ctx.Router().Pathfind(*req)
		}
		return resolvedTrip{bufferedTrip: t, req: req, path: path}
	})

	for _, r := range resolved {
		if r.req != nil {
			if r.path != nil {
				s.ctx.Metrics().RoutesResolved.Inc()
			} else {
				// 无路可走不是错误：显式带着空结果交给下游处理
				s.ctx.Metrics().RoutesMissing.Inc()
			}
		}
		person := tripManager.GetPerson(r.personID)
		origin, legs := s.expand(person, r.spec, tripManager)
		tripID := tripManager.NewTrip(person.ID, r.startTime, origin, legs)
		scheduler.Push(r.startTime, entity.Command{StartTrip: &entity.StartTripCommand{
			TripID:  tripID,
			Spec:    r.spec,
			Request: r.req,
			Path:    r.path,
		}})
		s.ctx.Metrics().TripsSpawned.Inc()
	}
}

// expand 将意图展开为行程起点端点与腿序列
func (s *Spawner) expand(person *entity.PersonRecord, spec entity.TripSpec, tripManager entity.ITripManager) (entity.TripEndpoint, []entity.TripLeg) {
	buildingManager := s.ctx.BuildingManager()
	switch {
	case spec.CarAppearing != nil:
		v := spec.CarAppearing
		vehicleID := person.CarID
		if v.Vehicle.Type != entity.VehicleTypeCar {
			vehicleID = person.BikeID
		}
		if vehicleID == entity.NullID {
			log.Panicf("person %d has no %v for %v", person.ID, v.Vehicle.Type, spec)
		}
		vehicle := v.Vehicle.Make(vehicleID, person.ID)
		legs := []entity.TripLeg{{Drive: &entity.DriveLeg{Vehicle: vehicle, Goal: v.Goal}}}
		if v.Goal.Type == entity.DrivingGoalParkNear {
			legs = append(legs, entity.TripLeg{Walk: &entity.WalkLeg{
				PedestrianID: person.PedID,
				Speed:        v.WalkSpeed,
				To:           buildingManager.SidewalkSpot(v.Goal.BuildingID),
			}})
		}
		startLane := s.ctx.LaneManager().Get(v.StartPos.LaneID)
		return entity.TripEndpoint{Type: entity.EndpointBorder, ID: startLane.StartJunctionID()}, legs

	case spec.UsingParkedCar != nil:
		v := spec.UsingParkedCar
		walkTo := buildingManager.DeferredParkingSpot(v.StartBuildingID, v.Goal)
		// 不能加Drive腿：车辆还未知。DrivingGoal随spot一起带走，
		// 仿真时走完这段再展开行程
		legs := []entity.TripLeg{{Walk: &entity.WalkLeg{
			PedestrianID: person.PedID,
			Speed:        v.WalkSpeed,
			To:           walkTo,
		}}}
		return entity.TripEndpoint{Type: entity.EndpointBuilding, ID: v.StartBuildingID}, legs

	case spec.JustWalking != nil:
		v := spec.JustWalking
		legs := []entity.TripLeg{{Walk: &entity.WalkLeg{
			PedestrianID: person.PedID,
			Speed:        v.WalkSpeed,
			To:           v.Goal,
		}}}
		return s.tripOrigin(v.Start), legs

	case spec.UsingBike != nil:
		v := spec.UsingBike
		walkTo, ok := s.ctx.LaneManager().BikeAccessSpot(v.Start.Pos.LaneID)
		if !ok {
			log.Panicf("no bike access near lane %d for validated spec %v", v.Start.Pos.LaneID, spec)
		}
		// 自行车按需生成，不查人员注册表
		bike := v.Vehicle.Make(tripManager.NextBikeID(), entity.NullID)
		legs := []entity.TripLeg{
			{Walk: &entity.WalkLeg{PedestrianID: person.PedID, Speed: v.WalkSpeed, To: walkTo}},
			{Drive: &entity.DriveLeg{Vehicle: bike, Goal: v.Goal}},
		}
		if v.Goal.Type == entity.DrivingGoalParkNear {
			legs = append(legs, entity.TripLeg{Walk: &entity.WalkLeg{
				PedestrianID: person.PedID,
				Speed:        v.WalkSpeed,
				To:           buildingManager.SidewalkSpot(v.Goal.BuildingID),
			}})
		}
		return s.tripOrigin(v.Start), legs

	case spec.UsingTransit != nil:
		v := spec.UsingTransit
		walkTo := s.ctx.TransitManager().StopSpot(v.BoardStopID)
		legs := []entity.TripLeg{
			{Walk: &entity.WalkLeg{PedestrianID: person.PedID, Speed: v.WalkSpeed, To: walkTo}},
			{RideBus: &entity.RideBusLeg{PedestrianID: person.PedID, RouteID: v.RouteID, AlightStopID: v.AlightStopID}},
			{Walk: &entity.WalkLeg{PedestrianID: person.PedID, Speed: v.WalkSpeed, To: v.Goal}},
		}
		return s.tripOrigin(v.Start), legs

	default:
		log.Panicf("empty trip spec for person %d", person.ID)
		return entity.TripEndpoint{}, nil
	}
}

// tripOrigin 由起点spot的连接类型导出行程起点端点
// 说明：这里只允许建筑/边界/凭空出现三种连接，出现其他类型
// 说明上游spot构造破坏了不变量，必须中止而不是悄悄兜底
func (s *Spawner) tripOrigin(spot entity.SidewalkSpot) entity.TripEndpoint {
	switch spot.Connection {
	case entity.SpotBuilding:
		return entity.TripEndpoint{Type: entity.EndpointBuilding, ID: spot.RefID}
	case entity.SpotSuddenlyAppear:
		lane := s.ctx.LaneManager().Get(spot.Pos.LaneID)
		return entity.TripEndpoint{Type: entity.EndpointBorder, ID: lane.StartJunctionID()}
	case entity.SpotBorder:
		return entity.TripEndpoint{Type: entity.EndpointBorder, ID: spot.RefID}
	default:
		log.Panicf("unexpected connection %v for trip origin spot %v", spot.Connection, spot)
		return entity.TripEndpoint{}
	}
}
