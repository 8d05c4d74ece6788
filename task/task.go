package task

import (
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/clock"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/building"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/lane"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/transit"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/trip"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/metrics"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/router"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/scheduler"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/config"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/input"
)

// Context 仿真任务上下文
// 功能：包含一次仿真任务的所有变量和状态，替代原来的全局变量
// 说明：管理仿真系统的所有组件，包括时钟、各管理器、调度器、
// 导航服务与指标收集
type Context struct {
	// 任务名
	job string

	// 时钟
	clock *clock.Clock

	// Lane管理器
	laneManager *lane.LaneManager
	// 建筑管理器
	buildingManager *building.BuildingManager
	// 公交管理器
	transitManager *transit.TransitManager
	// 行程管理器
	tripManager *trip.TripManager

	// 指令调度器
	scheduler *scheduler.Scheduler
	// 导航服务
	router *router.LocalRouter

	// 运行时配置文件
	runtimeConfig *config.RuntimeConfig
	// 指标收集器
	metrics *metrics.Collector

	// 用于初始化的输入
	initRes *input.Input
}

// NewContext 创建新的仿真任务上下文
// 功能：加载输入数据并创建仿真系统的所有组件
// 参数：job-任务名称，c-配置对象
// 返回：初始化完成的Context实例
func NewContext(job string, c config.Config) *Context {
	ctx := &Context{job: job}
	ctx.clock = clock.New(c.Control.Step)

	// 加载所有模拟器启动所需的数据
	ctx.initRes = input.Init(c)

	ctx.runtimeConfig = config.NewRuntimeConfig(c)
	ctx.metrics = metrics.NewCollector()

	// 新建各类模拟对象
	ctx.laneManager = lane.NewManager(ctx)
	ctx.buildingManager = building.NewManager(ctx)
	ctx.transitManager = transit.NewManager(ctx)
	ctx.tripManager = trip.NewManager(ctx)
	ctx.scheduler = scheduler.New()
	ctx.router = router.New()

	return ctx
}

func (ctx *Context) GetInput() *input.Input {
	return ctx.initRes
}

func (ctx *Context) Clock() *clock.Clock {
	return ctx.clock
}

func (ctx *Context) LaneManager() entity.ILaneManager {
	return ctx.laneManager
}

func (ctx *Context) BuildingManager() entity.IBuildingManager {
	return ctx.buildingManager
}

func (ctx *Context) TransitManager() entity.ITransitManager {
	return ctx.transitManager
}

func (ctx *Context) TripManager() entity.ITripManager {
	return ctx.tripManager
}

func (ctx *Context) Scheduler() entity.IScheduler {
	return ctx.scheduler
}

func (ctx *Context) Router() entity.IRouter {
	return ctx.router
}

func (ctx *Context) RuntimeConfig() *config.RuntimeConfig {
	return ctx.runtimeConfig
}

func (ctx *Context) Metrics() *metrics.Collector {
	return ctx.metrics
}

// Init 初始化所有组件
// 说明：车道先完成初始化，建筑/公交的门位校验依赖车道数据
func (ctx *Context) Init() {
	ctx.clock.Init()

	initRes := ctx.initRes
	mapData := initRes.Map
	persons := initRes.Persons.Persons

	log.Infof("Lane: %v", len(mapData.Lanes))
	log.Infof("Building: %v", len(mapData.Buildings))
	log.Infof("Stop: %v", len(mapData.Stops))
	log.Infof("Route: %v", len(mapData.Routes))
	log.Infof("Person: %v", len(persons))

	ctx.laneManager.Init(mapData.Lanes) // 先完成lane的所有初始化
	// 在建立好lanes的基础上
	ctx.buildingManager.Init(mapData.Buildings, ctx.laneManager)
	ctx.transitManager.Init(mapData.Stops, mapData.Routes, ctx.laneManager)

	// 完成地图构建后，开始构建person
	ctx.tripManager.Init(persons)
	// router
	ctx.router.Init(ctx.laneManager.Lanes())
}
