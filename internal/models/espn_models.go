package models

// ESPN wire models for the kona_player_info view.

type PlayerInfoResponse struct {
	Players []PlayerPoolEntry `json:"players"`
}

type PlayerPoolEntry struct {
	ID       int        `json:"id"`
	OnTeamID int        `json:"onTeamId"`
	Player   ESPNPlayer `json:"player"`
}

type ESPNPlayer struct {
	ID                int        `json:"id"`
	FullName          string     `json:"fullName"`
	DefaultPositionID int        `json:"defaultPositionId"`
	ProTeamID         int        `json:"proTeamId"`
	Stats             []ESPNStat `json:"stats"`
	InjuryStatus      string     `json:"injuryStatus"`
}

type ESPNStat struct {
	SeasonID        int     `json:"seasonId"`
	StatSourceID    int     `json:"statSourceId"`
	StatSplitTypeID int     `json:"statSplitTypeId"`
	ScoringPeriodID int     `json:"scoringPeriodId"`
	AppliedTotal    float64 `json:"appliedTotal"`
	AppliedAverage  float64 `json:"appliedAverage"`
}
