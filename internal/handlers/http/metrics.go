package http

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type metrics struct {
	successful *prometheus.CounterVec
	failed     prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	factory := promauto.With(reg)

	return &metrics{
		successful: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "successful_webhooks",
			Help: "Number of successful webhook calls",
		}, []string{"eventType"}),
		failed: factory.NewCounter(prometheus.CounterOpts{
			Name: "failed_webhooks",
			Help: "Number of failed webhook calls",
		}),
	}
}
