package web

import "github.com/prometheus/client_golang/prometheus"

const (
	endpointForm = "form"
	endpointAPI  = "api"

	outcomeOK       = "ok"
	outcomeRejected = "rejected"
)

type metrics struct {
	requests *prometheus.CounterVec
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "treehouse",
			Name:      "sum_requests_total",
			Help:      "Sum requests handled, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
	}
	reg.MustRegister(m.requests)
	return m
}
