package trip

import (
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
)

// goalPos 解析机动车目的地的终点位置
// Border目标取离网车道的末端；ParkNear目标向路网的离街停车索引
// 做惰性解析，得到建筑停车门位置
func goalPos(ctx entity.ITaskContext, goal entity.DrivingGoal, constraints entity.PathConstraints) entity.Position {
	switch goal.Type {
	case entity.DrivingGoalBorder:
		l := ctx.LaneManager().Get(goal.LaneID)
		return entity.Position{LaneID: goal.LaneID, S: l.Length()}
	case entity.DrivingGoalParkNear:
		return ctx.BuildingManager().ParkingPosition(goal.BuildingID)
	default:
		log.Panicf("bad driving goal %v", goal)
		return entity.Position{}
	}
}

// DeriveRequest 由出行意图导出导航请求，无副作用
// 功能：每个变体映射到零个或一个导航请求。
// 驾驶/骑行腿的完整路线可能依赖展开阶段才确定的状态
// （实际车辆、实际停车位），所以只预计算无条件可知的子路线：
//   - CarAppearing：起点到目的地的完整请求，约束由车辆类型决定
//   - UsingParkedCar：不产生请求（车在哪不知道）
//   - JustWalking：起点到终点的步行请求
//   - UsingBike：仅步行子腿（起点人行道到最近车架）
//   - UsingTransit：仅步行子腿（起点到上车站）
func DeriveRequest(ctx entity.ITaskContext, spec entity.TripSpec) *entity.PathRequest {
	switch {
	case spec.CarAppearing != nil:
		s := spec.CarAppearing
		constraints := s.Vehicle.Type.Constraints()
		return &entity.PathRequest{
			Start:       s.StartPos,
			End:         goalPos(ctx, s.Goal, constraints),
			Constraints: constraints,
		}
	case spec.UsingParkedCar != nil:
		// 不知道停着的车在哪
		return nil
	case spec.JustWalking != nil:
		s := spec.JustWalking
		return &entity.PathRequest{
			Start:       s.Start.Pos,
			End:         s.Goal.Pos,
			Constraints: entity.ConstraintPedestrian,
		}
	case spec.UsingBike != nil:
		s := spec.UsingBike
		rack, ok := ctx.LaneManager().BikeAccessSpot(s.Start.Pos.LaneID)
		if !ok {
			// Submit已经校验过车架存在
			log.Panicf("no bike access near lane %d for validated spec %v", s.Start.Pos.LaneID, spec)
		}
		return &entity.PathRequest{
			Start:       s.Start.Pos,
			End:         rack.Pos,
			Constraints: entity.ConstraintPedestrian,
		}
	case spec.UsingTransit != nil:
		s := spec.UsingTransit
		return &entity.PathRequest{
			Start:       s.Start.Pos,
			End:         ctx.TransitManager().StopSpot(s.BoardStopID).Pos,
			Constraints: entity.ConstraintPedestrian,
		}
	default:
		log.Panicf("empty trip spec")
		return nil
	}
}

// AdjustSpawnPosition 修正车辆出现位置，使其满足Submit的可行性校验
// 功能：交互式/调试生成路径用，提前规避CarAppearing的硬校验失败。
// 返回的位置保证落在[车长, 车道长度)内；车道本身短于车长时返回false
func AdjustSpawnPosition(ctx entity.ITaskContext, pos entity.Position, isBike bool) (entity.Position, bool) {
	laneLength := ctx.LaneManager().Get(pos.LaneID).Length()
	vehicleLength := entity.MaxCarLength
	if isBike {
		vehicleLength = entity.BikeLength
	}
	// 这条车道没有希望
	if laneLength <= vehicleLength {
		return entity.Position{}, false
	}

	if pos.S < vehicleLength {
		return entity.Position{LaneID: pos.LaneID, S: vehicleLength}, true
	} else if pos.S >= laneLength {
		return entity.Position{LaneID: pos.LaneID, S: laneLength - entity.EpsilonDistance}, true
	}
	return pos, true
}
