package building

import (
	"fmt"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// BuildingManager Building管理器
// 功能：管理所有Building实体，提供步行门/停车门的位置点构造
type BuildingManager struct {
	ctx entity.ITaskContext

	data map[int32]*Building
}

// NewManager 创建Building管理器实例
func NewManager(ctx entity.ITaskContext) *BuildingManager {
	return &BuildingManager{
		ctx:  ctx,
		data: make(map[int32]*Building),
	}
}

// Init 初始化所有Building
// 说明：校验门所在车道存在且类型正确，越界的S坐标直接panic
func (m *BuildingManager) Init(pbs []*input.Building, laneManager entity.ILaneManager) {
	buildings := parallel.GoMap(pbs, func(pb *input.Building) *Building {
		return newBuilding(m.ctx, pb)
	})
	m.data = lo.SliceToMap(buildings, func(b *Building) (int32, *Building) {
		return b.id, b
	})
	for _, b := range buildings {
		sidewalk := laneManager.Get(b.sidewalkLaneID)
		if sidewalk.Type() != entity.LaneTypeWalking {
			log.Panicf("building %d: sidewalk gate lane %d is not a sidewalk", b.id, b.sidewalkLaneID)
		}
		if b.sidewalkS < 0 || b.sidewalkS > sidewalk.Length() {
			log.Panicf("building %d: sidewalk gate s %f out of lane %d", b.id, b.sidewalkS, b.sidewalkLaneID)
		}
		parking := laneManager.Get(b.parkingLaneID)
		if parking.Type() != entity.LaneTypeDriving {
			log.Panicf("building %d: parking gate lane %d is not a driving lane", b.id, b.parkingLaneID)
		}
		if b.parkingS < 0 || b.parkingS > parking.Length() {
			log.Panicf("building %d: parking gate s %f out of lane %d", b.id, b.parkingS, b.parkingLaneID)
		}
	}
}

// Get 根据ID获取Building实例，如果不存在则panic
func (m *BuildingManager) Get(id int32) entity.IBuilding {
	if b, ok := m.data[id]; !ok {
		log.Panicf("no id %d in building data", id)
		return nil
	} else {
		return b
	}
}

// GetOrError 根据ID获取Building实例，如果不存在则返回错误
func (m *BuildingManager) GetOrError(id int32) (entity.IBuilding, error) {
	if b, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in building data", id)
	} else {
		return b, nil
	}
}

// SidewalkSpot 建筑步行门对应的SidewalkSpot
func (m *BuildingManager) SidewalkSpot(buildingID int32) entity.SidewalkSpot {
	b := m.Get(buildingID)
	return entity.SidewalkSpot{
		Pos:        entity.Position{LaneID: b.SidewalkLaneID(), S: b.SidewalkS()},
		Connection: entity.SpotBuilding,
		RefID:      b.ID(),
	}
}

// ParkingPosition 建筑附近的停车位置
// 说明：离街停车索引的惰性解析入口，只在行程展开阶段调用，
// 避免在提交校验时重复做停车搜索
func (m *BuildingManager) ParkingPosition(buildingID int32) entity.Position {
	b := m.Get(buildingID)
	return entity.Position{LaneID: b.ParkingLaneID(), S: b.ParkingS()}
}

// DeferredParkingSpot 延迟解析的停车点
// 功能：UsingParkedCar行程的步行目的地——走到起点建筑的人行道，
// 具体用哪辆车到仿真时才知道，goal随spot带到后续展开
func (m *BuildingManager) DeferredParkingSpot(startBuildingID int32, goal entity.DrivingGoal) entity.SidewalkSpot {
	b := m.Get(startBuildingID)
	return entity.SidewalkSpot{
		Pos:          entity.Position{LaneID: b.SidewalkLaneID(), S: b.SidewalkS()},
		Connection:   entity.SpotDeferredParking,
		RefID:        b.ID(),
		DeferredGoal: goal,
	}
}
