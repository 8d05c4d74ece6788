package entity

import "git.fiblab.net/general/common/v2/geometry"

// Manager依赖倒置

// entity/lane/lane.go的依赖倒置
type ILane interface {
	String() string

	ID() int32              // 获取Lane ID
	Length() float64        // 获取Lane长度（中心线长度）
	Type() LaneType         // 获取Lane类型
	MaxV() float64          // 获取车道限速
	Line() []geometry.Point // 获取Lane的中心线
	StartJunctionID() int32 // 获取车道起点路口ID
	EndJunctionID() int32   // 获取车道终点路口ID

	PredecessorIDs() []int32 // 获取前驱车道ID列表
	SuccessorIDs() []int32   // 获取后继车道ID列表

	// 人行道：邻接的可骑行/行车道ID，无则返回(NullID, false)
	DrivingID() (int32, bool)
	// 行车道：邻接的人行道ID，无则返回(NullID, false)
	SidewalkID() (int32, bool)

	GetPositionByS(s float64) geometry.Point // 将当前车道s坐标转换为xy坐标
}

// entity/lane/manager.go的依赖倒置
type ILaneManager interface {
	// 输入Lane ID，查找Lane，如果不存在则panic
	Get(id int32) ILane
	// 输入Lane ID，查找Lane，如果不存在则返回error
	GetOrError(id int32) (ILane, error)

	// 从人行道出发可达的自行车停放点，没有邻接的可骑行车道则返回false
	BikeAccessSpot(sidewalkLaneID int32) (SidewalkSpot, bool)
	// 行车道邻接的人行道，没有则返回false
	SidewalkNear(drivingLaneID int32) (ILane, bool)
}

// entity/building/building.go的依赖倒置
type IBuilding interface {
	ID() int32               // 获取建筑ID
	SidewalkLaneID() int32   // 步行门所在人行道ID
	SidewalkS() float64      // 步行门S坐标
	ParkingLaneID() int32    // 停车门所在行车道ID
	ParkingS() float64       // 停车门S坐标
	Centroid() geometry.Point
}

// entity/building/manager.go的依赖倒置
type IBuildingManager interface {
	// 输入建筑ID，查找建筑，如果不存在则panic
	Get(id int32) IBuilding
	// 输入建筑ID，查找建筑，如果不存在则返回error
	GetOrError(id int32) (IBuilding, error)

	// 建筑步行门对应的SidewalkSpot
	SidewalkSpot(buildingID int32) SidewalkSpot
	// 建筑附近的停车位置（路网离街停车索引的惰性解析入口）
	ParkingPosition(buildingID int32) Position
	// 延迟解析的停车点：walk腿先走到起点建筑的人行道，
	// 车辆与停车位到仿真时才绑定，goal随spot带到展开阶段之后
	DeferredParkingSpot(startBuildingID int32, goal DrivingGoal) SidewalkSpot
}

// TransitRoute 公交线路：有序的站点ID序列
type TransitRoute struct {
	ID      int32
	Name    string
	StopIDs []int32
}

// TransitStop 公交站
type TransitStop struct {
	ID     int32
	LaneID int32   // 所在人行道
	S      float64 // 站台S坐标
}

// entity/transit/manager.go的依赖倒置
type ITransitManager interface {
	// 输入线路ID，查找线路，如果不存在则panic
	GetRoute(id int32) *TransitRoute
	// 输入站点ID，查找站点，如果不存在则panic
	GetStop(id int32) *TransitStop

	// 公交站对应的SidewalkSpot
	StopSpot(stopID int32) SidewalkSpot
}

// PersonRecord 人员的持久身份记录
// 车辆/行人ID归人员注册表所有，行程展开只做按ID查引用
type PersonRecord struct {
	ID    int32
	PedID int32 // 行人身份ID
	CarID int32 // 机动车ID，NullID表示没有车
	BikeID int32 // 自行车ID，NullID表示没有登记自行车
}

// entity/trip/manager.go的依赖倒置
type ITripManager interface {
	// 输入Person ID，查找人员记录，如果不存在则panic
	GetPerson(id int32) *PersonRecord
	// 输入Person ID，查找人员记录，如果不存在则返回error
	GetPersonOrError(id int32) (*PersonRecord, error)

	// 登记新行程，返回行程ID（按登记顺序递增）
	NewTrip(personID int32, departureTime float64, origin TripEndpoint, legs []TripLeg) int32
	// 分配一个新的自行车ID（按需生成的车）
	NextBikeID() int32
	// 标记行程开始（由调度器指令触发）
	StartTrip(tripID int32)
}

// scheduler/scheduler.go的依赖倒置
// Push按时间排序，相同时间按Push先后稳定排序
type IScheduler interface {
	Push(t float64, cmd Command)
	// 队首指令时间，空队列返回mathutil.INF
	NextTime() float64
	Pop() (Command, float64)
	Len() int
}

// 导航模块接口
// Pathfind无可行路径时返回nil，不作为错误处理
type IRouter interface {
	Pathfind(req PathRequest) *Path
}
