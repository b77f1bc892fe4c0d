package metrics

import "sync"

// Mock records calls for assertions in tests. It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	refreshes          int
	refreshFailures    int
	refreshDurations   []float64
	rosteredPlayers    int
	missingValues      int
	missingProjections int
	commands           map[string]int
	messagesSent       int
	messagesFailed     int
}

var _ Metrics = (*Mock)(nil)

func NewMock() *Mock {
	return &Mock{
		refreshDurations: make([]float64, 0),
		commands:         make(map[string]int),
	}
}

func (m *Mock) IncRefreshes() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshes++
}

func (m *Mock) IncRefreshFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshFailures++
}

func (m *Mock) ObserveRefreshDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshDurations = append(m.refreshDurations, seconds)
}

func (m *Mock) SetRosteredPlayers(n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosteredPlayers = n
}

func (m *Mock) SetDataGaps(missingValues, missingProjections int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.missingValues = missingValues
	m.missingProjections = missingProjections
}

func (m *Mock) IncCommand(command string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commands[command]++
}

func (m *Mock) IncMessagesSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesSent++
}

func (m *Mock) IncMessagesFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messagesFailed++
}

func (m *Mock) Refreshes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshes
}

func (m *Mock) RefreshFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.refreshFailures
}

func (m *Mock) RefreshDurations() []float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]float64(nil), m.refreshDurations...)
}

func (m *Mock) RosteredPlayers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rosteredPlayers
}

// DataGaps returns the last values passed to SetDataGaps.
func (m *Mock) DataGaps() (int, int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.missingValues, m.missingProjections
}

func (m *Mock) Commands(command string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.commands[command]
}

func (m *Mock) MessagesSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messagesSent
}

func (m *Mock) MessagesFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.messagesFailed
}
