package entity

import (
	"fmt"
)

// 车辆几何常量（米）
const (
	MaxCarLength = 6.5 // 最大车长
	MinCarLength = 4.5 // 最小车长
	BikeLength   = 1.8 // 自行车车长

	// 浮点比较与边界收缩用的最小距离
	EpsilonDistance = 0.01
)

// LaneType 车道类型
type LaneType int32

const (
	LaneTypeUnspecified LaneType = iota // 未指定
	LaneTypeDriving                     // 行车道（机动车与自行车）
	LaneTypeWalking                     // 人行道
)

// PathConstraints 导航请求的通行约束，决定请求在哪类车道图上求解
type PathConstraints int32

const (
	ConstraintPedestrian PathConstraints = iota // 行人
	ConstraintBike                              // 自行车
	ConstraintCar                               // 机动车
	ConstraintBus                               // 公交车
)

func (c PathConstraints) String() string {
	switch c {
	case ConstraintPedestrian:
		return "pedestrian"
	case ConstraintBike:
		return "bike"
	case ConstraintCar:
		return "car"
	case ConstraintBus:
		return "bus"
	default:
		return fmt.Sprintf("constraints(%d)", int32(c))
	}
}

// VehicleType 车辆类型
type VehicleType int32

const (
	VehicleTypeCar  VehicleType = iota // 机动车
	VehicleTypeBike                    // 自行车
	VehicleTypeBus                     // 公交车
)

// Constraints 车辆类型对应的通行约束
func (t VehicleType) Constraints() PathConstraints {
	switch t {
	case VehicleTypeCar:
		return ConstraintCar
	case VehicleTypeBike:
		return ConstraintBike
	case VehicleTypeBus:
		return ConstraintBus
	default:
		panic(fmt.Sprintf("bad vehicle type %d", int32(t)))
	}
}

// VehicleSpec 车辆规格
// 功能：描述一辆尚未实例化的车（类型、车长、最大速度），
// 在行程展开阶段通过Make绑定车辆ID得到具体车辆
type VehicleSpec struct {
	Type   VehicleType `json:"type"`
	Length float64     `json:"length"` // 车长（米）
	MaxV   float64     `json:"max_v"`  // 最大速度（米/秒）
}

// Make 将规格实例化为具体车辆
// 参数：id-车辆ID，ownerID-车主Person ID（NullID表示无主，如临时生成的自行车）
func (s VehicleSpec) Make(id int32, ownerID int32) Vehicle {
	return Vehicle{ID: id, OwnerID: ownerID, Spec: s}
}

// NullID 表示"无此引用"的ID占位值
const NullID int32 = -1

// Vehicle 车辆实例
type Vehicle struct {
	ID      int32       `json:"id"`
	OwnerID int32       `json:"owner_id"` // 车主Person ID，NullID表示无主
	Spec    VehicleSpec `json:"spec"`
}

// Position 车道上的位置
// 不变量：0 <= S <= 所在车道长度
type Position struct {
	LaneID int32   `json:"lane_id"`
	S      float64 `json:"s"` // 沿车道中心线的距离（米）
}

func (p Position) String() string {
	return fmt.Sprintf("Position{Lane=%d, S=%.2f}", p.LaneID, p.S)
}

// SpotConnectionType 人行道位置点的连接类型，说明该点为何可达
type SpotConnectionType int32

const (
	SpotBuilding        SpotConnectionType = iota // 建筑入口
	SpotBorder                                    // 边界路口（离开路网）
	SpotBusStop                                   // 公交站
	SpotSuddenlyAppear                            // 凭空出现（无现实锚点的合成起点）
	SpotBikeRack                                  // 自行车停放点
	SpotDeferredParking                           // 延迟解析的停车点（车辆在仿真时才确定）
)

func (t SpotConnectionType) String() string {
	switch t {
	case SpotBuilding:
		return "building"
	case SpotBorder:
		return "border"
	case SpotBusStop:
		return "bus_stop"
	case SpotSuddenlyAppear:
		return "suddenly_appear"
	case SpotBikeRack:
		return "bike_rack"
	case SpotDeferredParking:
		return "deferred_parking"
	default:
		return fmt.Sprintf("connection(%d)", int32(t))
	}
}

// SidewalkSpot 行人可达的位置点
// 功能：人行道上的位置加上连接类型（建筑/边界/公交站等），
// 是步行腿的目的地表示
type SidewalkSpot struct {
	Pos        Position           `json:"pos"`
	Connection SpotConnectionType `json:"connection"`
	// 连接对象ID，依Connection而定：建筑ID/路口ID/公交站ID；
	// SuddenlyAppear与BikeRack无连接对象，取NullID
	RefID int32 `json:"ref_id"`
	// 仅SpotDeferredParking使用：展开时机动车腿的最终目标
	DeferredGoal DrivingGoal `json:"deferred_goal,omitempty"`
}

func (s SidewalkSpot) String() string {
	return fmt.Sprintf("SidewalkSpot{%v, %v, ref=%d}", s.Pos, s.Connection, s.RefID)
}

// DrivingGoalType 机动车目的地类型
type DrivingGoalType int32

const (
	DrivingGoalBorder   DrivingGoalType = iota // 从边界路口离开路网
	DrivingGoalParkNear                        // 在建筑附近停车
)

// DrivingGoal 机动车目的地
// Border：从指定路口的指定车道末端离开路网；
// ParkNear：在指定建筑附近停车，停车位置到展开阶段才向路网的
// 停车索引做惰性解析
type DrivingGoal struct {
	Type       DrivingGoalType `json:"type"`
	JunctionID int32           `json:"junction_id,omitempty"` // Border：边界路口ID
	LaneID     int32           `json:"lane_id,omitempty"`     // Border：离开路网的车道ID
	BuildingID int32           `json:"building_id,omitempty"` // ParkNear：建筑ID
}

func (g DrivingGoal) String() string {
	switch g.Type {
	case DrivingGoalBorder:
		return fmt.Sprintf("DrivingGoal{Border, junction=%d, lane=%d}", g.JunctionID, g.LaneID)
	case DrivingGoalParkNear:
		return fmt.Sprintf("DrivingGoal{ParkNear, building=%d}", g.BuildingID)
	default:
		return fmt.Sprintf("DrivingGoal{%d}", int32(g.Type))
	}
}

// PathRequest 导航请求
type PathRequest struct {
	Start       Position        `json:"start"`
	End         Position        `json:"end"`
	Constraints PathConstraints `json:"constraints"`
}

func (r PathRequest) String() string {
	return fmt.Sprintf("PathRequest{%v -> %v, %v}", r.Start, r.End, r.Constraints)
}

// Path 导航结果：途径车道序列与总距离
type Path struct {
	LaneIDs  []int32 `json:"lane_ids"`
	Distance float64 `json:"distance"`
}

// TripEndpointType 行程端点类型
type TripEndpointType int32

const (
	EndpointBuilding TripEndpointType = iota // 建筑
	EndpointBorder                           // 边界路口
)

// TripEndpoint 行程端点（起点记录用）
type TripEndpoint struct {
	Type TripEndpointType `json:"type"`
	ID   int32            `json:"id"` // 建筑ID或路口ID
}

// WalkLeg 步行腿
type WalkLeg struct {
	PedestrianID int32        `json:"pedestrian_id"`
	Speed        float64      `json:"speed"` // 步行速度（米/秒）
	To           SidewalkSpot `json:"to"`
}

// DriveLeg 驾驶腿（机动车或自行车）
type DriveLeg struct {
	Vehicle Vehicle     `json:"vehicle"`
	Goal    DrivingGoal `json:"goal"`
}

// RideBusLeg 乘坐公交腿
type RideBusLeg struct {
	PedestrianID int32 `json:"pedestrian_id"`
	RouteID      int32 `json:"route_id"`
	AlightStopID int32 `json:"alight_stop_id"` // 下车站
}

// TripLeg 行程腿：行程的一个原子移动单元，Walk/Drive/RideBus三选一
type TripLeg struct {
	Walk    *WalkLeg    `json:"walk,omitempty"`
	Drive   *DriveLeg   `json:"drive,omitempty"`
	RideBus *RideBusLeg `json:"ride_bus,omitempty"`
}

func (l TripLeg) String() string {
	switch {
	case l.Walk != nil:
		return fmt.Sprintf("Walk{ped=%d, to=%v}", l.Walk.PedestrianID, l.Walk.To)
	case l.Drive != nil:
		return fmt.Sprintf("Drive{vehicle=%d, goal=%v}", l.Drive.Vehicle.ID, l.Drive.Goal)
	case l.RideBus != nil:
		return fmt.Sprintf("RideBus{ped=%d, route=%d, alight=%d}", l.RideBus.PedestrianID, l.RideBus.RouteID, l.RideBus.AlightStopID)
	default:
		return "TripLeg{empty}"
	}
}
