package lane

import (
	"fmt"
	"slices"

	"git.fiblab.net/general/common/v2/parallel"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// LaneManager Lane管理器
// 功能：管理所有Lane实体，提供查找与人行道/行车道邻接查询
type LaneManager struct {
	ctx entity.ITaskContext

	data map[int32]*Lane
}

// NewManager 创建Lane管理器实例
func NewManager(ctx entity.ITaskContext) *LaneManager {
	return &LaneManager{
		ctx:  ctx,
		data: make(map[int32]*Lane),
	}
}

// Init 初始化所有Lane
// 说明：使用并行处理提高初始化效率
func (m *LaneManager) Init(pbs []*input.Lane) {
	lanes := parallel.GoMap(pbs, func(pb *input.Lane) *Lane {
		return newLane(pb)
	})
	m.data = lo.SliceToMap(lanes, func(l *Lane) (int32, *Lane) {
		return l.id, l
	})
}

// Get 根据ID获取Lane实例，如果不存在则panic
func (m *LaneManager) Get(id int32) entity.ILane {
	if l, ok := m.data[id]; !ok {
		log.Panicf("no id %d in lane data", id)
		return nil
	} else {
		return l
	}
}

// GetOrError 根据ID获取Lane实例，如果不存在则返回错误
func (m *LaneManager) GetOrError(id int32) (entity.ILane, error) {
	if l, ok := m.data[id]; !ok {
		return nil, fmt.Errorf("no id %d in lane data", id)
	} else {
		return l, nil
	}
}

// Lanes 按ID升序返回全部Lane
func (m *LaneManager) Lanes() []entity.ILane {
	ids := lo.Keys(m.data)
	slices.Sort(ids)
	return lo.Map(ids, func(id int32, _ int) entity.ILane {
		return m.data[id]
	})
}

// BikeAccessSpot 从人行道出发可达的自行车停放点
// 功能：人行道有邻接的可骑行车道时，在人行道中点放置车架；
// 没有邻接车道则返回false（调用方决定丢弃意图还是报错）
func (m *LaneManager) BikeAccessSpot(sidewalkLaneID int32) (entity.SidewalkSpot, bool) {
	l, ok := m.data[sidewalkLaneID]
	if !ok {
		log.Panicf("no id %d in lane data", sidewalkLaneID)
	}
	if l.typ != entity.LaneTypeWalking {
		log.Panicf("lane %d is not a sidewalk", sidewalkLaneID)
	}
	if l.drivingID == entity.NullID {
		return entity.SidewalkSpot{}, false
	}
	return entity.SidewalkSpot{
		Pos:        entity.Position{LaneID: l.id, S: l.length / 2},
		Connection: entity.SpotBikeRack,
		RefID:      entity.NullID,
	}, true
}

// SidewalkNear 行车道邻接的人行道
func (m *LaneManager) SidewalkNear(drivingLaneID int32) (entity.ILane, bool) {
	l, ok := m.data[drivingLaneID]
	if !ok {
		log.Panicf("no id %d in lane data", drivingLaneID)
	}
	if l.sidewalkID == entity.NullID {
		return nil, false
	}
	return m.Get(l.sidewalkID), true
}
