// 出行生成管线的指标统计。
// 被丢弃的意图不会以失败行程的形式流向下游，因此这里必须计数，
// 否则它们在任何输出中都不可见。
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("module", "metrics")

// Collector 指标收集器
type Collector struct {
	reg *prometheus.Registry

	TripsSubmitted prometheus.Counter
	TripsRewritten prometheus.Counter
	TripsSpawned   prometheus.Counter
	TripsStarted   prometheus.Counter

	TripsDropped *prometheus.CounterVec // reason label: no_bike_access|no_sidewalk_near_goal

	RoutesResolved prometheus.Counter
	RoutesMissing  prometheus.Counter
}

// NewCollector 创建指标收集器
func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		TripsSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spawner_trips_submitted_total",
			Help: "Total trip intents submitted to the spawner.",
		}),
		TripsRewritten: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spawner_trips_rewritten_total",
			Help: "Total trip intents rewritten to another mode at submission.",
		}),
		TripsSpawned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spawner_trips_spawned_total",
			Help: "Total trips expanded and pushed to the scheduler.",
		}),
		TripsStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spawner_trips_started_total",
			Help: "Total trips started by the scheduler.",
		}),
		TripsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "spawner_trips_dropped_total",
			Help: "Total trip intents silently dropped at submission.",
		}, []string{"reason"}),
		RoutesResolved: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spawner_routes_resolved_total",
			Help: "Total path requests resolved to a route.",
		}),
		RoutesMissing: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "spawner_routes_missing_total",
			Help: "Total path requests with no route found.",
		}),
	}
	reg.MustRegister(
		c.TripsSubmitted, c.TripsRewritten, c.TripsSpawned, c.TripsStarted,
		c.TripsDropped, c.RoutesResolved, c.RoutesMissing,
	)
	return c
}

// Serve 启动promhttp服务（阻塞，调用方自行放入goroutine）
func (c *Collector) Serve(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}))
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Errorf("metrics server exited: %v", err)
	}
}

// DroppedCount 读取某一丢弃原因的当前计数（测试用）
func (c *Collector) DroppedCount(reason string) float64 {
	var m dto.Metric
	if err := c.TripsDropped.WithLabelValues(reason).Write(&m); err != nil {
		log.Errorf("read dropped counter: %v", err)
		return 0
	}
	return m.GetCounter().GetValue()
}
