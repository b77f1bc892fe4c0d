// Package lineup assigns a roster's players to the league's starting slots
// and scores each team's depth at every position.
package lineup

import (
	"sort"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

// RankFunc orders players for slot assignment; higher is better.
type RankFunc func(models.Player) float64

// ByValue ranks by market valuation. Normalized and raw values produce the
// same order since normalization is a positive scale of the raw value.
func ByValue(mode models.NormalizationMode) RankFunc {
	return func(p models.Player) float64 {
		return p.Value(mode)
	}
}

func ByProjection(window models.ProjectionWindow) RankFunc {
	return func(p models.Player) float64 {
		return p.ProjectedPoints(window)
	}
}

func RankerFor(cfg models.DisplayConfig) RankFunc {
	if cfg.Ranking == models.RankByProjection {
		return ByProjection(cfg.Window)
	}
	return ByValue(cfg.Normalization)
}

type Tier int

const (
	TierNone Tier = iota
	TierStarter
	TierFlex
	TierBench
)

func (t Tier) String() string {
	switch t {
	case TierStarter:
		return "starter"
	case TierFlex:
		return "flex"
	case TierBench:
		return "bench"
	default:
		return "none"
	}
}

type SlotAssignment struct {
	Slot    models.SlotDefinition
	Players []models.Player
}

// Empty is the number of openings in the slot left unfilled.
func (a SlotAssignment) Empty() int {
	if n := a.Slot.Count - len(a.Players); n > 0 {
		return n
	}
	return 0
}

// Opening is one starting seat. A nil Player marks an empty slot.
type Opening struct {
	Slot   string
	Player *models.Player
}

type Lineup struct {
	Slots []SlotAssignment
	Bench []models.Player
}

// Optimize fills slots in their configured order. Each opening takes the
// highest ranked unassigned player whose position the slot accepts; ties go
// to the player seen first in the input. Players claimed by an earlier slot
// are never reconsidered, so a flex-eligible player is spent on the first
// slot that wants him. Everything left over is benched, best first.
func Optimize(players []models.Player, slots []models.SlotDefinition, rank RankFunc) Lineup {
	available := make([]models.Player, len(players))
	copy(available, players)

	result := Lineup{Slots: make([]SlotAssignment, 0, len(slots))}

	for _, slot := range slots {
		assignment := SlotAssignment{Slot: slot, Players: []models.Player{}}

		for i := 0; i < slot.Count; i++ {
			best := -1
			var bestRank float64
			for j, p := range available {
				if !slot.Accepts(p.Position) {
					continue
				}
				if r := rank(p); best < 0 || r > bestRank {
					best = j
					bestRank = r
				}
			}
			if best < 0 {
				break
			}
			assignment.Players = append(assignment.Players, available[best])
			available = append(available[:best], available[best+1:]...)
		}

		result.Slots = append(result.Slots, assignment)
	}

	sort.SliceStable(available, func(i, j int) bool {
		return rank(available[i]) > rank(available[j])
	})
	result.Bench = available

	return result
}

// Openings lists every configured seat in slot order, filled seats first
// within a slot.
func (l Lineup) Openings() []Opening {
	var out []Opening
	for _, a := range l.Slots {
		for i := range a.Players {
			out = append(out, Opening{Slot: a.Slot.Name, Player: &a.Players[i]})
		}
		for i := 0; i < a.Empty(); i++ {
			out = append(out, Opening{Slot: a.Slot.Name})
		}
	}
	return out
}

func (l Lineup) Starters() []models.Player {
	var out []models.Player
	for _, a := range l.Slots {
		out = append(out, a.Players...)
	}
	return out
}

func (l Lineup) EmptySlots() int {
	n := 0
	for _, a := range l.Slots {
		n += a.Empty()
	}
	return n
}

// Tier reports where playerID landed: a single-position slot, a flex slot,
// the bench, or nowhere.
func (l Lineup) Tier(playerID string) Tier {
	for _, a := range l.Slots {
		for _, p := range a.Players {
			if p.ID == playerID {
				if a.Slot.IsFlex() {
					return TierFlex
				}
				return TierStarter
			}
		}
	}
	for _, p := range l.Bench {
		if p.ID == playerID {
			return TierBench
		}
	}
	return TierNone
}
