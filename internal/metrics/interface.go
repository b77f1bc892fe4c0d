package metrics

// Metrics is what the service, bot and scheduler report to. The Prometheus
// Service is the production implementation; Mock is used in tests.
type Metrics interface {
	IncRefreshes()
	IncRefreshFailures()
	ObserveRefreshDuration(seconds float64)
	SetRosteredPlayers(n int)
	SetDataGaps(missingValues, missingProjections int)
	IncCommand(command string)
	IncMessagesSent()
	IncMessagesFailed()
}
