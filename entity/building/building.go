package building

import (
	"fmt"

	"git.fiblab.net/general/common/v2/geometry"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// Building 建筑实体
// 功能：行程端点的现实锚点，带两个路网接入门：
// 步行门（人行道上的位置）与停车门（行车道上的离街停车位置）
type Building struct {
	ctx entity.ITaskContext

	id int32

	sidewalkLaneID int32   // 步行门所在人行道
	sidewalkS      float64 // 步行门S坐标
	parkingLaneID  int32   // 停车门所在行车道
	parkingS       float64 // 停车门S坐标
}

// newBuilding 创建并初始化一个新的Building实例
// 说明：门位置的合法性（车道存在、S在界内）由管理器Init统一校验
func newBuilding(ctx entity.ITaskContext, base *input.Building) *Building {
	return &Building{
		ctx:            ctx,
		id:             base.ID,
		sidewalkLaneID: base.SidewalkLane,
		sidewalkS:      base.SidewalkS,
		parkingLaneID:  base.ParkingLane,
		parkingS:       base.ParkingS,
	}
}

func (b *Building) String() string {
	return fmt.Sprintf("Building{id=%d, sidewalk=%d@%.2f, parking=%d@%.2f}",
		b.id, b.sidewalkLaneID, b.sidewalkS, b.parkingLaneID, b.parkingS)
}

func (b *Building) ID() int32 {
	return b.id
}

func (b *Building) SidewalkLaneID() int32 {
	return b.sidewalkLaneID
}

func (b *Building) SidewalkS() float64 {
	return b.sidewalkS
}

func (b *Building) ParkingLaneID() int32 {
	return b.parkingLaneID
}

func (b *Building) ParkingS() float64 {
	return b.parkingS
}

// Centroid 获取建筑位置坐标（以步行门位置近似）
func (b *Building) Centroid() geometry.Point {
	return b.ctx.LaneManager().Get(b.sidewalkLaneID).GetPositionByS(b.sidewalkS)
}
