package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fuelstation"

var (
	PlatformCalls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "platform_calls_total",
		Help:      "Calls to platform functions by function and outcome.",
	}, []string{"function", "outcome"})

	PlatformOnline = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "platform_online",
		Help:      "1 while the platform is reachable.",
	})

	ShiftCloses = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "shift_closes_total",
		Help:      "Shift close submissions by result.",
	}, []string{"result"})

	SalesSyncUpdates = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sales_sync_updates_total",
		Help:      "Running sales total refreshes by result.",
	}, []string{"result"})

	OpenFlows = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "close_flows_open",
		Help:      "Mounted shift close flows.",
	})
)

func NewRegistry() (*prometheus.Registry, error) {
	reg := prometheus.NewRegistry()
	cs := []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		PlatformCalls,
		PlatformOnline,
		ShiftCloses,
		SalesSyncUpdates,
		OpenFlows,
	}
	for _, c := range cs {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
