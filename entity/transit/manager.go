package transit

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// TransitManager 公交管理器
// 功能：管理公交线路与站点，提供站点位置点构造
type TransitManager struct {
	ctx entity.ITaskContext

	routes map[int32]*entity.TransitRoute
	stops  map[int32]*entity.TransitStop
}

// NewManager 创建公交管理器实例
func NewManager(ctx entity.ITaskContext) *TransitManager {
	return &TransitManager{
		ctx:    ctx,
		routes: make(map[int32]*entity.TransitRoute),
		stops:  make(map[int32]*entity.TransitStop),
	}
}

// Init 初始化公交线路与站点
// 说明：站点必须落在人行道上，线路引用的站点必须存在，否则panic
func (m *TransitManager) Init(stops []*input.Stop, routes []*input.Route, laneManager entity.ILaneManager) {
	m.stops = lo.SliceToMap(stops, func(pb *input.Stop) (int32, *entity.TransitStop) {
		lane := laneManager.Get(pb.Lane)
		if lane.Type() != entity.LaneTypeWalking {
			log.Panicf("stop %d: lane %d is not a sidewalk", pb.ID, pb.Lane)
		}
		if pb.S < 0 || pb.S > lane.Length() {
			log.Panicf("stop %d: s %f out of lane %d", pb.ID, pb.S, pb.Lane)
		}
		return pb.ID, &entity.TransitStop{ID: pb.ID, LaneID: pb.Lane, S: pb.S}
	})
	m.routes = lo.SliceToMap(routes, func(pb *input.Route) (int32, *entity.TransitRoute) {
		for _, stopID := range pb.Stops {
			if _, ok := m.stops[stopID]; !ok {
				log.Panicf("route %d: no such stop %d", pb.ID, stopID)
			}
		}
		return pb.ID, &entity.TransitRoute{ID: pb.ID, Name: pb.Name, StopIDs: pb.Stops}
	})
}

// GetRoute 根据ID获取线路，如果不存在则panic
func (m *TransitManager) GetRoute(id int32) *entity.TransitRoute {
	if r, ok := m.routes[id]; !ok {
		log.Panicf("no id %d in route data", id)
		return nil
	} else {
		return r
	}
}

// GetStop 根据ID获取站点，如果不存在则panic
func (m *TransitManager) GetStop(id int32) *entity.TransitStop {
	if s, ok := m.stops[id]; !ok {
		log.Panicf("no id %d in stop data", id)
		return nil
	} else {
		return s
	}
}

// GetStopOrError 根据ID获取站点，如果不存在则返回错误
func (m *TransitManager) GetStopOrError(id int32) (*entity.TransitStop, error) {
	if s, ok := m.stops[id]; !ok {
		return nil, fmt.Errorf("no id %d in stop data", id)
	} else {
		return s, nil
	}
}

// StopSpot 公交站对应的SidewalkSpot
func (m *TransitManager) StopSpot(stopID int32) entity.SidewalkSpot {
	s := m.GetStop(stopID)
	return entity.SidewalkSpot{
		Pos:        entity.Position{LaneID: s.LaneID, S: s.S},
		Connection: entity.SpotBusStop,
		RefID:      s.ID,
	}
}
