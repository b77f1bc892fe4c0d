package fantasy

import (
	"github.com/omarshaarawi/rosterbot/internal/api/espn"
	"github.com/omarshaarawi/rosterbot/internal/api/fantasycalc"
	"github.com/omarshaarawi/rosterbot/internal/api/sleeper"
	"github.com/omarshaarawi/rosterbot/internal/config"
)

// NewFromConfig wires the Sleeper, FantasyCalc and ESPN clients described by cfg.
func NewFromConfig(cfg *config.Config) *API {
	return NewAPI(
		sleeper.NewAPI(sleeper.NewClient(), cfg.Sleeper.LeagueID),
		fantasycalc.NewClient(cfg.FantasyCalc),
		espn.NewAPI(espn.NewClient(cfg.ESPNAPI)),
		cfg.League,
	)
}
