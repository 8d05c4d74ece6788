package lane

import (
	"fmt"
	"sort"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/samber/lo"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// Lane 车道实体
// 功能：表示路网中的一条车道，包含几何信息、连接关系与
// 行车道/人行道之间的邻接关系
type Lane struct {
	id int32

	typ  entity.LaneType // 车道类型
	maxV float64         // 车道限速

	startJunctionID int32 // 车道起点路口
	endJunctionID   int32 // 车道终点路口

	predecessorIDs []int32 // 前驱车道ID列表
	successorIDs   []int32 // 后继车道ID列表

	sidewalkID int32 // 行车道邻接的人行道，NullID表示无
	drivingID  int32 // 人行道邻接的可骑行车道，NullID表示无

	line        []geometry.Point // 转成Point的中心线折线
	lineLengths []float64        // 中心线折线点对应的长度列表
	length      float64          // 以中心线的长度为车道长度
}

// newLane 创建并初始化一个新的Lane实例
// 说明：车道长度由中心线折线计算得到，类型非法时panic
func newLane(base *input.Lane) *Lane {
	l := &Lane{
		id:              base.ID,
		maxV:            base.MaxSpeed,
		startJunctionID: base.StartJunction,
		endJunctionID:   base.EndJunction,
		predecessorIDs:  base.Predecessors,
		successorIDs:    base.Successors,
		sidewalkID:      entity.NullID,
		drivingID:       entity.NullID,
	}
	switch base.Type {
	case "driving":
		l.typ = entity.LaneTypeDriving
	case "walking":
		l.typ = entity.LaneTypeWalking
	default:
		log.Panicf("bad type %q for lane %d", base.Type, base.ID)
	}
	if base.Sidewalk != nil {
		l.sidewalkID = *base.Sidewalk
	}
	if base.Driving != nil {
		l.drivingID = *base.Driving
	}
	if len(base.CenterLine) < 2 {
		log.Panicf("lane %d: center line needs at least 2 points", base.ID)
	}
	l.line = lo.Map(base.CenterLine, func(node []float64, _ int) geometry.Point {
		return geometry.Point{X: node[0], Y: node[1]}
	})
	l.lineLengths = geometry.GetPolylineLengths2D(l.line)
	l.length = l.lineLengths[len(l.lineLengths)-1]
	return l
}

func (l *Lane) String() string {
	return fmt.Sprintf("Lane{id=%d, type=%v, length=%.2f}", l.id, l.typ, l.length)
}

func (l *Lane) ID() int32 {
	return l.id
}

func (l *Lane) Length() float64 {
	return l.length
}

func (l *Lane) Type() entity.LaneType {
	return l.typ
}

func (l *Lane) MaxV() float64 {
	return l.maxV
}

func (l *Lane) Line() []geometry.Point {
	return l.line
}

func (l *Lane) StartJunctionID() int32 {
	return l.startJunctionID
}

func (l *Lane) EndJunctionID() int32 {
	return l.endJunctionID
}

func (l *Lane) PredecessorIDs() []int32 {
	return l.predecessorIDs
}

func (l *Lane) SuccessorIDs() []int32 {
	return l.successorIDs
}

// DrivingID 人行道邻接的可骑行/行车道ID
func (l *Lane) DrivingID() (int32, bool) {
	return l.drivingID, l.drivingID != entity.NullID
}

// SidewalkID 行车道邻接的人行道ID
func (l *Lane) SidewalkID() (int32, bool) {
	return l.sidewalkID, l.sidewalkID != entity.NullID
}

// GetPositionByS 将当前车道s坐标转换为xy坐标
func (l *Lane) GetPositionByS(s float64) (pos geometry.Point) {
	if s < l.lineLengths[0] || s > l.lineLengths[len(l.lineLengths)-1] {
		log.Debugf("get position with s %v out of range{%v,%v}",
			s, l.lineLengths[0], l.lineLengths[len(l.lineLengths)-1])
		s = lo.Clamp(s, l.lineLengths[0], l.lineLengths[len(l.lineLengths)-1])
	}
	if i := sort.SearchFloat64s(l.lineLengths, s); i == 0 {
		pos = l.line[0]
	} else {
		sHigh, sLow := l.lineLengths[i], l.lineLengths[i-1]
		k := (s - sLow) / (sHigh - sLow)
		pos = geometry.Blend(l.line[i-1], l.line[i], k)
	}
	return
}
