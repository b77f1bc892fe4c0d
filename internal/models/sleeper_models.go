package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

type SleeperLeague struct {
	LeagueID        string   `json:"league_id"`
	Name            string   `json:"name"`
	Season          string   `json:"season"`
	TotalRosters    int      `json:"total_rosters"`
	RosterPositions []string `json:"roster_positions"`
}

type SleeperRoster struct {
	RosterID int      `json:"roster_id"`
	OwnerID  string   `json:"owner_id"`
	Players  []string `json:"players"`
	Starters []string `json:"starters"`
}

type SleeperUser struct {
	UserID      string              `json:"user_id"`
	DisplayName string              `json:"display_name"`
	Metadata    SleeperUserMetadata `json:"metadata"`
}

type SleeperUserMetadata struct {
	TeamName string `json:"team_name"`
}

type SleeperPlayer struct {
	PlayerID  string     `json:"player_id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	Position  string     `json:"position"`
	Team      *string    `json:"team"`
	ESPNID    ExternalID `json:"espn_id"`
}

type SleeperState struct {
	Week       int    `json:"week"`
	Season     string `json:"season"`
	SeasonType string `json:"season_type"`
}

// ExternalID is an identifier that upstream feeds encode either as a JSON
// number or as a string.
type ExternalID string

func (id *ExternalID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ExternalID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ExternalID(n.String())
	return nil
}

func ExternalIDFromInt(n int) ExternalID {
	return ExternalID(strconv.Itoa(n))
}
