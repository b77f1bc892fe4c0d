package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler serves gatherer, or the default gatherer when none is given.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates the collectors and registers them with registerer, or
// with the default registerer when none is given.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Refreshes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterbot_refreshes_total",
			Help: "The total number of league data refreshes.",
		}),
		RefreshFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterbot_refresh_failures_total",
			Help: "The total number of league data refreshes that failed.",
		}),
		RefreshDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "rosterbot_refresh_duration_seconds",
			Help:    "The duration of a full league data refresh.",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		}),
		RosteredPlayers: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rosterbot_rostered_players",
			Help: "The number of rostered players in the last snapshot.",
		}),
		MissingValues: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rosterbot_missing_values",
			Help: "Rostered players without a market value in the last snapshot.",
		}),
		MissingProjections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "rosterbot_missing_projections",
			Help: "Rostered players without a projection in the last snapshot.",
		}),
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "rosterbot_commands_total",
			Help: "Bot commands handled, by command.",
		}, []string{"command"}),
		MessagesSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterbot_messages_sent_total",
			Help: "The total number of scheduled messages sent.",
		}),
		MessagesFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "rosterbot_messages_failed_total",
			Help: "The total number of scheduled messages that failed to send.",
		}),
	}

	reg.MustRegister(
		s.Refreshes,
		s.RefreshFailures,
		s.RefreshDuration,
		s.RosteredPlayers,
		s.MissingValues,
		s.MissingProjections,
		s.Commands,
		s.MessagesSent,
		s.MessagesFailed,
	)

	return s
}

func (s *Service) IncRefreshes() {
	s.Refreshes.Inc()
}

func (s *Service) IncRefreshFailures() {
	s.RefreshFailures.Inc()
}

func (s *Service) ObserveRefreshDuration(seconds float64) {
	s.RefreshDuration.Observe(seconds)
}

func (s *Service) SetRosteredPlayers(n int) {
	s.RosteredPlayers.Set(float64(n))
}

func (s *Service) SetDataGaps(missingValues, missingProjections int) {
	s.MissingValues.Set(float64(missingValues))
	s.MissingProjections.Set(float64(missingProjections))
}

func (s *Service) IncCommand(command string) {
	s.Commands.WithLabelValues(command).Inc()
}

func (s *Service) IncMessagesSent() {
	s.MessagesSent.Inc()
}

func (s *Service) IncMessagesFailed() {
	s.MessagesFailed.Inc()
}
