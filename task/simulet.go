package task

import (
	"flag"

	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity/trip"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/scenario"
)

const (
	SelfName = "tripspawn" // 本程序在模拟任务集群中的名字
)

var (
	heartBeatInterval = flag.Int("log.heartbeat_interval", 100, "心跳日志间隔步数")
)

// spawn 生成阶段，初始化后执行一次
// 功能：把场景配置翻译成出行意图，经Spawner校验、批量解析
// 导航并展开为行程，全部启动指令进入调度器
func (ctx *Context) spawn() {
	spawner := trip.NewSpawner(ctx)
	generator := scenario.New(ctx, ctx.initRes)
	generator.Generate(spawner)
	spawner.Finalize(ctx.tripManager, ctx.scheduler)
	log.Infof("spawn complete, %d trips registered, %d commands scheduled",
		ctx.tripManager.Len(), ctx.scheduler.Len())
}

// update 更新阶段，每步执行一次
// 功能：弹出并执行当前时刻到期的全部调度器指令
// 说明：指令按时间排序，相同时间按加入顺序执行
func (ctx *Context) update() {
	for ctx.scheduler.NextTime() <= ctx.clock.T {
		cmd, t := ctx.scheduler.Pop()
		if cmd.StartTrip == nil {
			log.Panicf("empty command scheduled at %.1f", t)
		}
		ctx.tripManager.StartTrip(cmd.StartTrip.TripID)
		log.Debugf("step %d: trip %d started (scheduled at %.1f)",
			ctx.clock.InternalStep, cmd.StartTrip.TripID, t)
	}
}

// Run 运行
// 算法说明：
// 1. 初始化所有组件并生成场景
// 2. 主循环逐步推进时钟，执行到期指令，定期输出心跳日志
// 3. 模拟区间结束后，仍在队列中的指令只告警不执行
func (ctx *Context) Run() {
	ctx.Init()
	ctx.spawn()
	for !ctx.clock.Done() {
		if ctx.clock.InternalStep%int32(*heartBeatInterval) == 0 {
			hour, minute, second := ctx.clock.GetHourMinuteSecond()
			log.Infof(
				"STEP: %d(%d:%d:%.2f)",
				ctx.clock.InternalStep,
				hour, minute, second,
			)
		}
		ctx.update()
		ctx.clock.Step()
	}
	if n := ctx.scheduler.Len(); n > 0 {
		log.Warnf("%d commands still scheduled after END_STEP", n)
	}
	log.Infof("engine complete")
}
