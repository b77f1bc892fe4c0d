package fantasy

import (
	"context"
	"errors"
	"testing"

	"github.com/omarshaarawi/rosterbot/internal/config"
	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func fixtureSources() Sources {
	return Sources{
		League: models.SleeperLeague{LeagueID: "42", Name: "Dynasty Dads", Season: "2025"},
		Rosters: []models.SleeperRoster{
			{RosterID: 1, OwnerID: "u1", Players: []string{"qb1", "rb1", "k1", "wr1"}, Starters: []string{"qb1", "rb1", "te1"}},
			{RosterID: 2, OwnerID: "u2", Players: []string{"qb2", "lb1", "ghost"}},
			{RosterID: 3, OwnerID: "nobody"},
		},
		Users: []models.SleeperUser{
			{UserID: "u1", DisplayName: "coyote", Metadata: models.SleeperUserMetadata{TeamName: "Coyote Ugly"}},
			{UserID: "u2", DisplayName: "roadrunner"},
		},
		Players: map[string]models.SleeperPlayer{
			"qb1": {FirstName: "Josh", LastName: "Allen", Position: "QB", Team: strPtr("BUF"), ESPNID: "3918298"},
			"rb1": {FirstName: "Bijan", LastName: "Robinson", Position: "RB", Team: strPtr("ATL"), ESPNID: "4430807"},
			"wr1": {FirstName: "Free", LastName: "Agent", Position: "WR"},
			"te1": {FirstName: "Sam", LastName: "LaPorta", Position: "TE", Team: strPtr("DET")},
			"k1":  {FirstName: "Justin", LastName: "Tucker", Position: "K", Team: strPtr("BAL")},
			"qb2": {FirstName: "Lamar", LastName: "Jackson", Position: "QB", Team: strPtr("BAL"), ESPNID: "3916387"},
			"lb1": {FirstName: "Fred", LastName: "Warner", Position: "LB", Team: strPtr("SF")},
		},
		Values: map[string]float64{
			"qb1": 10000,
			"rb1": 8000,
			"qb2": 5000,
			"te1": 0,
		},
		Projections: map[models.ExternalID]models.Projection{
			"3918298": {Week: 2, WeekPoints: 25, AveragePoints: 23, Found: true},
			"3916387": {Week: 2, WeekPoints: 22, AveragePoints: 24, Found: true},
		},
		Week: 2,
	}
}

func findPlayer(t *testing.T, team models.Team, id string) models.Player {
	t.Helper()
	for _, p := range team.Players {
		if p.ID == id {
			return p
		}
	}
	t.Fatalf("player %s not on %s", id, team.TeamName)
	return models.Player{}
}

func TestBuildLeague(t *testing.T) {
	league := BuildLeague(fixtureSources(), config.DefaultLeagueSettings())

	assert.Equal(t, "Dynasty Dads", league.Name)
	assert.Equal(t, 2, league.Week)
	require.Len(t, league.Teams, 3)

	home := league.Teams[0]
	assert.Equal(t, "1", home.RosterID)
	assert.Equal(t, "Coyote Ugly", home.TeamName)
	assert.Equal(t, "coyote", home.OwnerName)

	// kicker dropped, starter-only TE merged in once
	var got []string
	for _, p := range home.Players {
		got = append(got, p.ID)
	}
	assert.Equal(t, []string{"qb1", "rb1", "wr1", "te1"}, got)

	allen := findPlayer(t, home, "qb1")
	assert.Equal(t, "Josh Allen", allen.Name)
	assert.Equal(t, "BUF", allen.Team)
	assert.True(t, allen.IsStarter)
	assert.Equal(t, 10000.0, allen.RawValue)
	assert.Equal(t, 100.0, allen.NormalizedValue)
	assert.Equal(t, 23.0, allen.ProjectedPoints(models.WindowWeeklyAverage))

	fa := findPlayer(t, home, "wr1")
	assert.Equal(t, "FA", fa.Team)
	assert.False(t, fa.IsStarter)
	assert.Zero(t, fa.RawValue)
	assert.Zero(t, fa.ProjectedPoints(models.WindowSingleWeek))

	assert.Equal(t, 80.0, findPlayer(t, home, "rb1").NormalizedValue)

	away := league.Teams[1]
	assert.Equal(t, "roadrunner", away.TeamName)
	require.Len(t, away.Players, 1)
	assert.Equal(t, 50.0, away.Players[0].NormalizedValue)

	assert.Equal(t, "Unknown Team", league.Teams[2].TeamName)
	assert.Empty(t, league.Teams[2].Players)

	assert.Equal(t, 10000.0, league.MaxRawValue)
	// wr1 has no value entry; te1 has an explicit zero
	assert.Equal(t, 1, league.MissingValues)
	assert.Equal(t, 3, league.MissingProjections)
}

func TestNormalizeIsLossless(t *testing.T) {
	league := BuildLeague(fixtureSources(), config.DefaultLeagueSettings())
	before := league.Players()

	Normalize(league)
	Normalize(league)

	for id, p := range league.Players() {
		assert.Equal(t, before[id].RawValue, p.RawValue, id)
		assert.Equal(t, before[id].NormalizedValue, p.NormalizedValue, id)
		assert.Equal(t, p.RawValue, p.Value(models.NormalizationRaw), id)
	}
}

func TestNormalizedValue(t *testing.T) {
	assert.Equal(t, 33.3, NormalizedValue(1, 3))
	assert.Equal(t, 100.0, NormalizedValue(7, 7))
	assert.Zero(t, NormalizedValue(5, 0))
}

type fakeSleeper struct {
	src         Sources
	playerCalls int
	stateErr    error
}

func (f *fakeSleeper) GetLeague(context.Context) (models.SleeperLeague, error) { return f.src.League, nil }
func (f *fakeSleeper) GetRosters(context.Context) ([]models.SleeperRoster, error) {
	return f.src.Rosters, nil
}
func (f *fakeSleeper) GetUsers(context.Context) ([]models.SleeperUser, error) { return f.src.Users, nil }
func (f *fakeSleeper) GetPlayers(context.Context) (map[string]models.SleeperPlayer, error) {
	f.playerCalls++
	return f.src.Players, nil
}
func (f *fakeSleeper) GetState(context.Context) (models.SleeperState, error) {
	return models.SleeperState{Week: f.src.Week}, f.stateErr
}

type fakeValues struct {
	values map[string]float64
	err    error
}

func (f fakeValues) GetValues(context.Context) (map[string]float64, error) { return f.values, f.err }

type fakeProjections struct {
	projections map[models.ExternalID]models.Projection
	err         error
	week        int
}

func (f *fakeProjections) GetProjections(_ context.Context, week int) (map[models.ExternalID]models.Projection, error) {
	f.week = week
	return f.projections, f.err
}

func TestFetchLeague(t *testing.T) {
	src := fixtureSources()
	sleeper := &fakeSleeper{src: src}
	projections := &fakeProjections{projections: src.Projections}
	api := NewAPI(sleeper, fakeValues{values: src.Values}, projections, config.DefaultLeagueSettings())

	league, err := api.FetchLeague(context.Background())
	require.NoError(t, err)
	assert.Len(t, league.Teams, 3)
	assert.Equal(t, 2, projections.week)

	_, err = api.FetchLeague(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, sleeper.playerCalls, "player dump should be cached")
}

func TestFetchLeagueWithoutProjections(t *testing.T) {
	src := fixtureSources()
	sleeper := &fakeSleeper{src: src, stateErr: errors.New("state down")}
	projections := &fakeProjections{err: errors.New("espn down")}
	api := NewAPI(sleeper, fakeValues{values: src.Values}, projections, config.DefaultLeagueSettings())

	league, err := api.FetchLeague(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, projections.week)
	assert.Equal(t, 5, league.MissingProjections)
	for _, p := range league.Players() {
		assert.Zero(t, p.ProjectedPoints(models.WindowSeasonTotal))
	}
}

func TestFetchLeagueValuesFailure(t *testing.T) {
	src := fixtureSources()
	api := NewAPI(&fakeSleeper{src: src}, fakeValues{err: errors.New("boom")}, &fakeProjections{}, config.DefaultLeagueSettings())

	_, err := api.FetchLeague(context.Background())
	assert.ErrorContains(t, err, "fetching player values")
}
