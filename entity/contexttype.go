package entity

import (
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/clock"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/metrics"
	"github.com/tsinghua-fib-lab/tripspawn-sim-oss/utils/config"
)

type ITaskContext interface {
	Clock() *clock.Clock
	LaneManager() ILaneManager
	BuildingManager() IBuildingManager
	TransitManager() ITransitManager
	TripManager() ITripManager
	Scheduler() IScheduler
	Router() IRouter
	RuntimeConfig() *config.RuntimeConfig
	Metrics() *metrics.Collector
}
