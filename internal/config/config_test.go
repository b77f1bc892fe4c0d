package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "1257448634119626752")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "1257448634119626752", cfg.Sleeper.LeagueID)
	assert.Equal(t, 2, cfg.FantasyCalc.NumQBs)
	assert.Equal(t, 10, cfg.FantasyCalc.NumTeams)
	assert.Equal(t, 1.0, cfg.FantasyCalc.PPR)
	assert.False(t, cfg.FantasyCalc.IsDynasty)
	assert.Equal(t, 6*time.Hour, cfg.Server.RefreshInterval)
	assert.Equal(t, ":80", cfg.Server.Addr)
	assert.Len(t, cfg.League.Slots, 6)
}

func TestNewRequiresLeague(t *testing.T) {
	t.Setenv("SLEEPER_LEAGUE_ID", "")
	os.Unsetenv("SLEEPER_LEAGUE_ID")

	_, err := New()
	assert.Error(t, err)
}

func TestNewLoadsSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "league.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
slots:
  - name: qb
    positions: [QB]
    count: 1
  - name: FLEX
    positions: [RB, WR]
    count: 1
`), 0o644))
	t.Setenv("SLEEPER_LEAGUE_ID", "1")
	t.Setenv("LEAGUE_SETTINGS_FILE", path)

	cfg, err := New()
	require.NoError(t, err)

	slots, err := cfg.League.SlotDefinitions()
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "QB", slots[0].Name)
	assert.Equal(t, []models.Position{models.PositionRB, models.PositionWR}, slots[1].Eligible)
	assert.True(t, cfg.League.IsExcluded("def"))
}

func TestDefaultSlots(t *testing.T) {
	slots, err := DefaultLeagueSettings().SlotDefinitions()
	require.NoError(t, err)

	assert.Equal(t, 10, models.TotalOpenings(slots))
	assert.Equal(t, "SFLEX", slots[4].Name)
	assert.True(t, slots[5].IsFlex())
}

func TestParseLeagueSettingsRejectsBadSlots(t *testing.T) {
	tests := map[string]string{
		"unknown position": "slots:\n  - {name: K, positions: [K], count: 1}\n",
		"zero count":       "slots:\n  - {name: QB, positions: [QB], count: 0}\n",
		"no positions":     "slots:\n  - {name: QB, count: 1}\n",
		"unknown field":    "slotz: []\n",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseLeagueSettings([]byte(doc))
			assert.Error(t, err)
		})
	}
}
