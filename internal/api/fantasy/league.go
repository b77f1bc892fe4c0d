package fantasy

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/omarshaarawi/rosterbot/internal/config"
	"github.com/omarshaarawi/rosterbot/internal/models"
)

// Sleeper asks clients to pull the full player dump at most once a day.
const playersTTL = 24 * time.Hour

type SleeperSource interface {
	GetLeague(ctx context.Context) (models.SleeperLeague, error)
	GetRosters(ctx context.Context) ([]models.SleeperRoster, error)
	GetUsers(ctx context.Context) ([]models.SleeperUser, error)
	GetPlayers(ctx context.Context) (map[string]models.SleeperPlayer, error)
	GetState(ctx context.Context) (models.SleeperState, error)
}

type ValueSource interface {
	GetValues(ctx context.Context) (map[string]float64, error)
}

type ProjectionSource interface {
	GetProjections(ctx context.Context, week int) (map[models.ExternalID]models.Projection, error)
}

type API struct {
	sleeper     SleeperSource
	values      ValueSource
	projections ProjectionSource
	settings    config.LeagueSettings

	mu             sync.Mutex
	players        map[string]models.SleeperPlayer
	playersFetched time.Time
}

func NewAPI(sleeper SleeperSource, values ValueSource, projections ProjectionSource, settings config.LeagueSettings) *API {
	return &API{
		sleeper:     sleeper,
		values:      values,
		projections: projections,
		settings:    settings,
	}
}

// FetchLeague pulls every feed and merges them into a league snapshot.
// Sleeper and FantasyCalc failures are fatal; missing projections are not.
func (a *API) FetchLeague(ctx context.Context) (*models.League, error) {
	league, err := a.sleeper.GetLeague(ctx)
	if err != nil {
		return nil, err
	}

	rosters, err := a.sleeper.GetRosters(ctx)
	if err != nil {
		return nil, err
	}

	users, err := a.sleeper.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	players, err := a.getPlayers(ctx)
	if err != nil {
		return nil, err
	}

	values, err := a.values.GetValues(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching player values: %w", err)
	}

	week := 1
	state, err := a.sleeper.GetState(ctx)
	if err != nil {
		slog.Warn("Falling back to week 1", "error", err)
	} else if state.Week > 0 {
		week = state.Week
	}

	projections, err := a.projections.GetProjections(ctx, week)
	if err != nil {
		slog.Warn("Projections unavailable, continuing without them", "week", week, "error", err)
		projections = nil
	}

	return BuildLeague(Sources{
		League:      league,
		Rosters:     rosters,
		Users:       users,
		Players:     players,
		Values:      values,
		Projections: projections,
		Week:        week,
	}, a.settings), nil
}

func (a *API) getPlayers(ctx context.Context) (map[string]models.SleeperPlayer, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.players != nil && time.Since(a.playersFetched) < playersTTL {
		return a.players, nil
	}

	players, err := a.sleeper.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	a.players = players
	a.playersFetched = time.Now()
	return players, nil
}

type Sources struct {
	League      models.SleeperLeague
	Rosters     []models.SleeperRoster
	Users       []models.SleeperUser
	Players     map[string]models.SleeperPlayer
	Values      map[string]float64
	Projections map[models.ExternalID]models.Projection
	Week        int
}

// BuildLeague turns raw feed data into the league model. Excluded and
// unknown positions are dropped; players without a value or projection are
// kept at zero.
func BuildLeague(src Sources, settings config.LeagueSettings) *models.League {
	league := &models.League{
		ID:          src.League.LeagueID,
		Name:        src.League.Name,
		Season:      src.League.Season,
		Week:        src.Week,
		LastUpdated: time.Now(),
	}
	if league.Name == "" {
		league.Name = "Unknown League"
	}

	usersByID := make(map[string]models.SleeperUser, len(src.Users))
	for _, u := range src.Users {
		usersByID[u.UserID] = u
	}

	for _, roster := range src.Rosters {
		user, hasUser := usersByID[roster.OwnerID]
		team := models.Team{
			RosterID: strconv.Itoa(roster.RosterID),
			TeamName: teamName(user, hasUser),
			OwnerID:  roster.OwnerID,
		}
		if hasUser {
			team.OwnerName = user.DisplayName
		}

		starters := make(map[string]bool, len(roster.Starters))
		for _, id := range roster.Starters {
			starters[id] = true
		}

		for _, id := range uniqueIDs(roster.Players, roster.Starters) {
			raw, ok := src.Players[id]
			if !ok || settings.IsExcluded(raw.Position) {
				continue
			}
			pos, ok := models.ParsePosition(raw.Position)
			if !ok {
				continue
			}

			player := models.Player{
				ID:        id,
				Name:      fmt.Sprintf("%s %s", raw.FirstName, raw.LastName),
				Team:      "FA",
				Position:  pos,
				IsStarter: starters[id],
			}
			if raw.Team != nil && *raw.Team != "" {
				player.Team = *raw.Team
			}

			if value, ok := src.Values[id]; ok {
				player.RawValue = value
			} else {
				league.MissingValues++
				slog.Debug("No market value", "player", player.Name, "id", id)
			}

			if proj, ok := src.Projections[raw.ESPNID]; ok && raw.ESPNID != "" {
				player.Projection = proj
			} else {
				league.MissingProjections++
				slog.Debug("No projection", "player", player.Name, "id", id, "espn_id", raw.ESPNID)
			}

			team.Players = append(team.Players, player)
		}

		league.Teams = append(league.Teams, team)
	}

	Normalize(league)

	if league.MissingValues > 0 || league.MissingProjections > 0 {
		slog.Warn("League data has gaps",
			"league", league.Name,
			"missing_values", league.MissingValues,
			"missing_projections", league.MissingProjections)
	}

	return league
}

// Normalize rescales every player's raw value to 0-100 against the highest
// raw value in the league, rounded to one decimal. Raw values are untouched,
// so calling it again yields the same result.
func Normalize(league *models.League) {
	var top float64
	for _, t := range league.Teams {
		for _, p := range t.Players {
			if p.RawValue > top {
				top = p.RawValue
			}
		}
	}
	league.MaxRawValue = top

	for ti := range league.Teams {
		players := league.Teams[ti].Players
		for pi := range players {
			players[pi].NormalizedValue = NormalizedValue(players[pi].RawValue, top)
		}
	}
}

func NormalizedValue(raw, top float64) float64 {
	if top <= 0 {
		return 0
	}
	return math.Round(raw/top*1000) / 10
}

func teamName(user models.SleeperUser, ok bool) string {
	if !ok {
		return "Unknown Team"
	}
	if user.Metadata.TeamName != "" {
		return user.Metadata.TeamName
	}
	if user.DisplayName != "" {
		return user.DisplayName
	}
	return "Unknown Team"
}

func uniqueIDs(lists ...[]string) []string {
	seen := make(map[string]bool)
	var out []string
	for _, list := range lists {
		for _, id := range list {
			if id == "" || seen[id] {
				continue
			}
			seen[id] = true
			out = append(out, id)
		}
	}
	return out
}
