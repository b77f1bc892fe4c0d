package metrics

import "github.com/prometheus/client_golang/prometheus"

type Service struct {
	Refreshes          prometheus.Counter
	RefreshFailures    prometheus.Counter
	RefreshDuration    prometheus.Histogram
	RosteredPlayers    prometheus.Gauge
	MissingValues      prometheus.Gauge
	MissingProjections prometheus.Gauge
	Commands           *prometheus.CounterVec
	MessagesSent       prometheus.Counter
	MessagesFailed     prometheus.Counter
}
