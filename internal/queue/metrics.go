package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	processed *prometheus.CounterVec
	skipped   *prometheus.CounterVec
	failed    *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer, q *Queue) *metrics {
	factory := promauto.With(reg)

	factory.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: "web3hooks",
		Subsystem: "queue",
		Name:      "depth",
		Help:      "Number of events waiting in the delay queue",
	}, func() float64 {
		return float64(q.Len())
	})

	return &metrics{
		processed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "web3hooks",
			Subsystem: "queue",
			Name:      "processed_total",
			Help:      "Events that completed the pipeline",
		}, []string{"kind"}),
		skipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "web3hooks",
			Subsystem: "queue",
			Name:      "skipped_total",
			Help:      "Events dropped because no handler or formatter exists for their kind",
		}, []string{"kind"}),
		failed: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "web3hooks",
			Subsystem: "queue",
			Name:      "failed_attempts_total",
			Help:      "Failed processing attempts; the event stays at the head and is retried",
		}, []string{"kind"}),
	}
}
