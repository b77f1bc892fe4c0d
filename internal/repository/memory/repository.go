package memory

import (
	"sync"

	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/omarshaarawi/rosterbot/internal/trade"
)

// Repository holds the current league snapshot and the per-chat session
// state. Nothing survives a restart.
type Repository struct {
	league  *models.League
	display map[int64]models.DisplayConfig
	trades  map[int64]*trade.Proposal
	mu      sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{
		display: make(map[int64]models.DisplayConfig),
		trades:  make(map[int64]*trade.Proposal),
	}
}

func (r *Repository) SaveLeague(league *models.League) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.league = league
}

func (r *Repository) GetLeague() *models.League {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.league
}

// GetDisplayConfig returns the chat's settings, or the zero config (rank by
// value, raw values, weekly average) if the chat never changed them.
func (r *Repository) GetDisplayConfig(chatID int64) models.DisplayConfig {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.display[chatID]
}

func (r *Repository) SaveDisplayConfig(chatID int64, cfg models.DisplayConfig) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.display[chatID] = cfg
}

func (r *Repository) GetTrade(chatID int64) (*trade.Proposal, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.trades[chatID]
	return p, ok
}

func (r *Repository) SaveTrade(chatID int64, p *trade.Proposal) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.trades[chatID] = p
}

