package sleeper

import (
	"context"
	"fmt"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

type API struct {
	client   *Client
	leagueID string
}

func NewAPI(client *Client, leagueID string) *API {
	return &API{client: client, leagueID: leagueID}
}

func (a *API) GetLeague(ctx context.Context) (models.SleeperLeague, error) {
	var league models.SleeperLeague
	if err := a.client.Get(ctx, fmt.Sprintf("/league/%s", a.leagueID), &league); err != nil {
		return models.SleeperLeague{}, fmt.Errorf("fetching league: %w", err)
	}
	return league, nil
}

func (a *API) GetRosters(ctx context.Context) ([]models.SleeperRoster, error) {
	var rosters []models.SleeperRoster
	if err := a.client.Get(ctx, fmt.Sprintf("/league/%s/rosters", a.leagueID), &rosters); err != nil {
		return nil, fmt.Errorf("fetching rosters: %w", err)
	}
	return rosters, nil
}

func (a *API) GetUsers(ctx context.Context) ([]models.SleeperUser, error) {
	var users []models.SleeperUser
	if err := a.client.Get(ctx, fmt.Sprintf("/league/%s/users", a.leagueID), &users); err != nil {
		return nil, fmt.Errorf("fetching users: %w", err)
	}
	return users, nil
}

// GetPlayers returns every NFL player Sleeper knows about, keyed by Sleeper id.
func (a *API) GetPlayers(ctx context.Context) (map[string]models.SleeperPlayer, error) {
	var players map[string]models.SleeperPlayer
	if err := a.client.Get(ctx, "/players/nfl", &players); err != nil {
		return nil, fmt.Errorf("fetching players: %w", err)
	}
	return players, nil
}

func (a *API) GetState(ctx context.Context) (models.SleeperState, error) {
	var state models.SleeperState
	if err := a.client.Get(ctx, "/state/nfl", &state); err != nil {
		return models.SleeperState{}, fmt.Errorf("fetching nfl state: %w", err)
	}
	return state, nil
}
