package trade

import (
	"github.com/omarshaarawi/rosterbot/internal/lineup"
	"github.com/omarshaarawi/rosterbot/internal/models"
)

type Snapshot struct {
	Lineup               lineup.Lineup
	Scores               lineup.PositionalScores
	StarterValue         float64
	TotalValue           float64
	WeeklyProjected      float64
	OverallPositionScore float64
}

type TierChange struct {
	Player models.Player
	Before lineup.Tier
	After  lineup.Tier
}

type TeamImpact struct {
	RosterID             string
	Before               Snapshot
	After                Snapshot
	StarterValueDelta    float64
	TotalValueDelta      float64
	WeeklyProjectedDelta float64
	OverallScoreDelta    float64
	Changes              []TierChange
}

// Impact re-optimizes team's roster with and without the proposal applied.
func Impact(team models.Team, p *Proposal, players models.PlayerIndex, slots []models.SlotDefinition, cfg models.DisplayConfig) TeamImpact {
	after := ApplyTo(team, p, players)
	rank := lineup.RankerFor(cfg)

	before := snapshot(team.Players, slots, rank)
	post := snapshot(after, slots, rank)

	impact := TeamImpact{
		RosterID:             team.RosterID,
		Before:               before,
		After:                post,
		StarterValueDelta:    post.StarterValue - before.StarterValue,
		TotalValueDelta:      post.TotalValue - before.TotalValue,
		WeeklyProjectedDelta: post.WeeklyProjected - before.WeeklyProjected,
		OverallScoreDelta:    post.OverallPositionScore - before.OverallPositionScore,
	}

	seen := make(map[string]bool)
	for _, pl := range append(append([]models.Player{}, team.Players...), after...) {
		if seen[pl.ID] {
			continue
		}
		seen[pl.ID] = true
		b, a := before.Lineup.Tier(pl.ID), post.Lineup.Tier(pl.ID)
		if b != a {
			impact.Changes = append(impact.Changes, TierChange{Player: pl, Before: b, After: a})
		}
	}

	return impact
}

// ApplyTo returns team's players after the proposal executes: outgoing
// players removed, incoming players appended in move order.
func ApplyTo(team models.Team, p *Proposal, players models.PlayerIndex) []models.Player {
	outgoing := make(map[string]bool)
	for _, id := range p.Sending(team.RosterID) {
		outgoing[id] = true
	}

	out := make([]models.Player, 0, len(team.Players))
	for _, pl := range team.Players {
		if !outgoing[pl.ID] {
			out = append(out, pl)
		}
	}
	for _, id := range p.Receiving(team.RosterID) {
		if pl, ok := players[id]; ok {
			out = append(out, pl)
		}
	}
	return out
}

func snapshot(players []models.Player, slots []models.SlotDefinition, rank lineup.RankFunc) Snapshot {
	s := Snapshot{
		Lineup: lineup.Optimize(players, slots, rank),
		Scores: lineup.ScorePositions(players),
	}
	for _, p := range players {
		s.TotalValue += p.RawValue
	}
	for _, p := range s.Lineup.Starters() {
		s.StarterValue += p.RawValue
		s.WeeklyProjected += p.ProjectedPoints(models.WindowWeeklyAverage)
	}
	s.OverallPositionScore = s.Scores.Overall()
	return s
}
