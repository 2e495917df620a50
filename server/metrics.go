package server

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	renders    *prometheus.CounterVec
	evaluation *prometheus.HistogramVec
	reloads    prometheus.Counter
}

func newMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "raddeg",
			Name:      "renders_total",
			Help:      "Number of rendered curves by model and output format.",
		}, []string{"mode", "format"}),
		evaluation: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "raddeg",
			Name:      "model_evaluation_seconds",
			Help:      "Time spent evaluating a model over its sample domain.",
			Buckets:   prometheus.ExponentialBuckets(1e-5, 4, 10),
		}, []string{"mode"}),
		reloads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "raddeg",
			Name:      "parameter_reloads_total",
			Help:      "Number of times the parameters were replaced.",
		}),
	}
	reg.MustRegister(m.renders, m.evaluation, m.reloads)
	return m
}
