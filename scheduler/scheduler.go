package scheduler

import (
	"git.fiblab.net/general/common/v2/mathutil"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/entity"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/container"
)

// Scheduler 指令调度器
// 功能：按时间排序的指令队列，仿真主循环逐步弹出到期指令执行。
// 相同时间的指令严格按Push先后弹出，保证批量生成的行程
// 在同一时刻的启动顺序可复现
type Scheduler struct {
	queue *container.PriorityQueue[entity.Command]
}

// New 创建调度器实例
func New() *Scheduler {
	return &Scheduler{queue: container.NewPriorityQueue[entity.Command]()}
}

// Push 加入指令，t为指令的执行时间
func (s *Scheduler) Push(t float64, cmd entity.Command) {
	s.queue.HeapPush(cmd, t)
}

// NextTime 队首指令的执行时间，空队列返回INF
func (s *Scheduler) NextTime() float64 {
	if s.queue.Len() == 0 {
		return mathutil.INF
	}
	_, t := s.queue.First()
	return t
}

// Pop 弹出队首指令及其执行时间
func (s *Scheduler) Pop() (entity.Command, float64) {
	return s.queue.HeapPop()
}

// Len 队列中待执行的指令数
func (s *Scheduler) Len() int {
	return s.queue.Len()
}
