package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/rosterbot/internal/metrics"
	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/omarshaarawi/rosterbot/internal/repository/memory"
	"github.com/omarshaarawi/rosterbot/internal/service"
)

type cliSource struct{}

func (cliSource) FetchLeague(context.Context) (*models.League, error) {
	return &models.League{
		Name:        "CLI League",
		LastUpdated: time.Now(),
		Teams: []models.Team{
			{RosterID: "1", TeamName: "Sharks", Players: []models.Player{
				{ID: "a", Name: "Josh Allen", Position: models.PositionQB, RawValue: 9000, IsStarter: true},
				{ID: "c", Name: "Mac Jones", Position: models.PositionQB, RawValue: 300},
			}},
			{RosterID: "2", TeamName: "Jets", Players: []models.Player{
				{ID: "b", Name: "Jalen Hurts", Position: models.PositionQB, RawValue: 8000},
			}},
		},
	}, nil
}

func setup(t *testing.T) *bytes.Buffer {
	t.Helper()
	slots := []models.SlotDefinition{{Name: "QB", Eligible: []models.Position{models.PositionQB}, Count: 1}}
	rosterService = service.NewRosterService(cliSource{}, memory.NewRepository(), metrics.NewMock(), slots, time.Hour)

	ranking, normalization, window = "", "", ""
	tradeTeams, tradeSends, showImpact = nil, nil, false
	sortBy, listed = "value", "all"

	var out bytes.Buffer
	for _, cmd := range []*cobra.Command{tradeCmd, rostersCmd} {
		cmd.SetOut(&out)
		cmd.SetContext(context.Background())
	}
	return &out
}

func run(cmd *cobra.Command) error {
	return cmd.RunE(cmd, nil)
}

func TestApplyDisplayFlags(t *testing.T) {
	setup(t)
	normalization, window = "normalized", "week"

	require.NoError(t, applyDisplayFlags(rosterService))
	cfg := rosterService.GetDisplayConfig(cliChat)
	assert.Equal(t, models.NormalizationScaled, cfg.Normalization)
	assert.Equal(t, models.WindowSingleWeek, cfg.Window)

	ranking = "astrology"
	assert.Error(t, applyDisplayFlags(rosterService))
}

func TestTradeCommand(t *testing.T) {
	out := setup(t)
	tradeTeams = []string{"Sharks", "Jets"}
	tradeSends = []string{"Josh Allen>Jets", "Jalen Hurts > Sharks"}
	showImpact = true

	require.NoError(t, run(tradeCmd))
	assert.Contains(t, out.String(), "*Sharks*: in 8000, out 9000, net -1000")
	assert.Contains(t, out.String(), "Lineup Impact")
}

func TestTradeCommandValidation(t *testing.T) {
	setup(t)
	tradeTeams = []string{"Sharks"}
	assert.ErrorContains(t, run(tradeCmd), "at least two")

	tradeTeams = []string{"Sharks", "Jets"}
	tradeSends = []string{"Josh Allen to Jets"}
	assert.ErrorContains(t, run(tradeCmd), "expected")
}

func TestRostersFilter(t *testing.T) {
	out := setup(t)
	listed = "bench"

	require.NoError(t, run(rostersCmd))
	assert.Contains(t, out.String(), "bench only")
	assert.Contains(t, out.String(), "▫️ BN QB Mac Jones")
	assert.NotContains(t, out.String(), "Josh Allen")

	listed = "taxi"
	assert.ErrorContains(t, run(rostersCmd), "unknown filter")
}
