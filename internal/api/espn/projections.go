package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

const (
	statSourceProjected = 1
	seasonScoringPeriod = 0
	playerLimit         = 2000
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

// GetProjections returns projections for week keyed by ESPN player id.
func (a *API) GetProjections(ctx context.Context, week int) (map[models.ExternalID]models.Projection, error) {
	var response models.PlayerInfoResponse

	endpoint := fmt.Sprintf("/seasons/%s/segments/0/leaguedefaults/3", a.client.Config.Year)
	if a.client.Config.LeagueID != "" {
		endpoint = fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
	}

	params := map[string]string{
		"view":            "kona_player_info",
		"scoringPeriodId": strconv.Itoa(week),
	}

	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"limit": playerLimit,
			"filterSlotIds": map[string]interface{}{
				"value": []int{0, 2, 4, 6, 23},
			},
			"sortPercOwned": map[string]interface{}{
				"sortPriority": 1,
				"sortAsc":      false,
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(ctx, endpoint, params, headers, &response); err != nil {
		return nil, fmt.Errorf("fetching projections: %w", err)
	}

	projections := make(map[models.ExternalID]models.Projection, len(response.Players))
	for _, entry := range response.Players {
		if _, ok := models.ParsePosition(getPositionString(entry.Player.DefaultPositionID)); !ok {
			continue
		}
		proj := parseProjection(entry.Player.Stats, week)
		if !proj.Found {
			continue
		}
		projections[models.ExternalIDFromInt(entry.Player.ID)] = proj
	}

	return projections, nil
}

// parseProjection picks the projected total for week and the projected
// season average out of a player's stat lines.
func parseProjection(stats []models.ESPNStat, week int) models.Projection {
	proj := models.Projection{Week: week}

	for _, stat := range stats {
		if stat.StatSourceID != statSourceProjected {
			continue
		}
		if stat.ScoringPeriodID == seasonScoringPeriod {
			proj.AveragePoints = stat.AppliedAverage
			proj.Found = true
		} else if stat.ScoringPeriodID == week {
			proj.WeekPoints = stat.AppliedTotal
			proj.Found = true
		}
	}

	return proj
}

func getPositionString(positionID int) string {
	positions := map[int]string{
		1: "QB", 2: "RB", 3: "WR", 4: "TE", 5: "K", 16: "D/ST",
	}
	if pos, ok := positions[positionID]; ok {
		return pos
	}
	return "Unknown"
}
