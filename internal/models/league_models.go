package models

import "time"

// SlotDefinition is one named starting requirement shared by every team.
type SlotDefinition struct {
	Name     string
	Eligible []Position
	Count    int
}

func (s SlotDefinition) Accepts(pos Position) bool {
	for _, e := range s.Eligible {
		if e == pos {
			return true
		}
	}
	return false
}

// IsFlex reports whether more than one position may fill the slot.
func (s SlotDefinition) IsFlex() bool {
	return len(s.Eligible) > 1
}

// TotalOpenings is the number of starting seats across all slots.
func TotalOpenings(slots []SlotDefinition) int {
	n := 0
	for _, s := range slots {
		if s.Count > 0 {
			n += s.Count
		}
	}
	return n
}

type Team struct {
	RosterID  string
	TeamName  string
	OwnerID   string
	OwnerName string
	Players   []Player
}

// PlayerIndex maps player id to player for every rostered player in the league.
type PlayerIndex map[string]Player

type League struct {
	ID                 string
	Name               string
	Season             string
	Week               int
	Teams              []Team
	MaxRawValue        float64
	MissingValues      int
	MissingProjections int
	LastUpdated        time.Time
}

func (l *League) Players() PlayerIndex {
	idx := make(PlayerIndex)
	for _, t := range l.Teams {
		for _, p := range t.Players {
			idx[p.ID] = p
		}
	}
	return idx
}

// Owner returns the roster id that holds playerID, or false when the player
// is not rostered.
func (l *League) Owner(playerID string) (string, bool) {
	for _, t := range l.Teams {
		for _, p := range t.Players {
			if p.ID == playerID {
				return t.RosterID, true
			}
		}
	}
	return "", false
}

func (l *League) Team(rosterID string) (Team, bool) {
	for _, t := range l.Teams {
		if t.RosterID == rosterID {
			return t, true
		}
	}
	return Team{}, false
}
