package entity

import "fmt"

// StartTripCommand 启动行程指令
// 功能：交给事件调度器的最小单元，带着意图原文、
// 预解析的导航请求与结果（nil表示该意图无预解析请求/无可行路径）
type StartTripCommand struct {
	TripID  int32
	Spec    TripSpec
	Request *PathRequest
	Path    *Path
}

// Command 调度器指令，目前仅StartTrip一种
type Command struct {
	StartTrip *StartTripCommand
}

func (c Command) String() string {
	if c.StartTrip != nil {
		return fmt.Sprintf("Command{StartTrip, trip=%d, %v}", c.StartTrip.TripID, c.StartTrip.Spec)
	}
	return "Command{empty}"
}
