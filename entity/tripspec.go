package entity

import "fmt"

// CarAppearingSpec 车辆直接出现在路网上的出行意图
// 用于边界流入或交互式/合成生成的车辆
type CarAppearingSpec struct {
	StartPos  Position    `json:"start_pos"`
	Goal      DrivingGoal `json:"goal"`
	Vehicle   VehicleSpec `json:"vehicle"`
	WalkSpeed float64     `json:"walk_speed"` // 停车后步行段的速度
}

// UsingParkedCarSpec 使用停在建筑附近的车出行的意图
// 具体车辆在仿真时走到停车点才确定
type UsingParkedCarSpec struct {
	StartBuildingID int32       `json:"start_building_id"`
	Goal            DrivingGoal `json:"goal"`
	WalkSpeed       float64     `json:"walk_speed"`
}

// JustWalkingSpec 纯步行出行意图
type JustWalkingSpec struct {
	Start     SidewalkSpot `json:"start"`
	Goal      SidewalkSpot `json:"goal"`
	WalkSpeed float64      `json:"walk_speed"`
}

// UsingBikeSpec 骑行出行意图：步行到车架、骑行，可能再步行
type UsingBikeSpec struct {
	Start     SidewalkSpot `json:"start"`
	Goal      DrivingGoal  `json:"goal"`
	Vehicle   VehicleSpec  `json:"vehicle"`
	WalkSpeed float64      `json:"walk_speed"`
}

// UsingTransitSpec 公交出行意图：步行到上车站、乘车、步行到终点
type UsingTransitSpec struct {
	Start        SidewalkSpot `json:"start"`
	Goal         SidewalkSpot `json:"goal"`
	RouteID      int32        `json:"route_id"`
	BoardStopID  int32        `json:"board_stop_id"`
	AlightStopID int32        `json:"alight_stop_id"`
	WalkSpeed    float64      `json:"walk_speed"`
}

// TripSpec 出行意图
// 功能：行程在解析出路径与具体车辆之前的声明式描述，
// 五个变体互斥，有且仅有一个非空
type TripSpec struct {
	CarAppearing   *CarAppearingSpec   `json:"car_appearing,omitempty"`
	UsingParkedCar *UsingParkedCarSpec `json:"using_parked_car,omitempty"`
	JustWalking    *JustWalkingSpec    `json:"just_walking,omitempty"`
	UsingBike      *UsingBikeSpec      `json:"using_bike,omitempty"`
	UsingTransit   *UsingTransitSpec   `json:"using_transit,omitempty"`
}

// Kind 返回变体名，变体数不为1时panic
func (s TripSpec) Kind() string {
	kinds := make([]string, 0, 1)
	if s.CarAppearing != nil {
		kinds = append(kinds, "car_appearing")
	}
	if s.UsingParkedCar != nil {
		kinds = append(kinds, "using_parked_car")
	}
	if s.JustWalking != nil {
		kinds = append(kinds, "just_walking")
	}
	if s.UsingBike != nil {
		kinds = append(kinds, "using_bike")
	}
	if s.UsingTransit != nil {
		kinds = append(kinds, "using_transit")
	}
	if len(kinds) != 1 {
		panic(fmt.Sprintf("trip spec must have exactly one variant, got %v", kinds))
	}
	return kinds[0]
}

// Equal 结构相等（逐变体比较）
func (s TripSpec) Equal(other TripSpec) bool {
	switch {
	case s.CarAppearing != nil:
		return other.CarAppearing != nil && *s.CarAppearing == *other.CarAppearing
	case s.UsingParkedCar != nil:
		return other.UsingParkedCar != nil && *s.UsingParkedCar == *other.UsingParkedCar
	case s.JustWalking != nil:
		return other.JustWalking != nil && *s.JustWalking == *other.JustWalking
	case s.UsingBike != nil:
		return other.UsingBike != nil && *s.UsingBike == *other.UsingBike
	case s.UsingTransit != nil:
		return other.UsingTransit != nil && *s.UsingTransit == *other.UsingTransit
	default:
		return other.CarAppearing == nil && other.UsingParkedCar == nil &&
			other.JustWalking == nil && other.UsingBike == nil && other.UsingTransit == nil
	}
}

func (s TripSpec) String() string {
	switch {
	case s.CarAppearing != nil:
		return fmt.Sprintf("TripSpec{CarAppearing, %v -> %v}", s.CarAppearing.StartPos, s.CarAppearing.Goal)
	case s.UsingParkedCar != nil:
		return fmt.Sprintf("TripSpec{UsingParkedCar, building %d -> %v}", s.UsingParkedCar.StartBuildingID, s.UsingParkedCar.Goal)
	case s.JustWalking != nil:
		return fmt.Sprintf("TripSpec{JustWalking, %v -> %v}", s.JustWalking.Start, s.JustWalking.Goal)
	case s.UsingBike != nil:
		return fmt.Sprintf("TripSpec{UsingBike, %v -> %v}", s.UsingBike.Start, s.UsingBike.Goal)
	case s.UsingTransit != nil:
		return fmt.Sprintf("TripSpec{UsingTransit, %v -> %v via route %d}", s.UsingTransit.Start, s.UsingTransit.Goal, s.UsingTransit.RouteID)
	default:
		return "TripSpec{empty}"
	}
}
