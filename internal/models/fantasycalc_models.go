package models

type FantasyCalcValue struct {
	Player FantasyCalcPlayer `json:"player"`
	Value  float64           `json:"value"`
}

type FantasyCalcPlayer struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Position  string     `json:"position"`
	SleeperID string     `json:"sleeperId"`
	ESPNID    ExternalID `json:"espnId"`
}
