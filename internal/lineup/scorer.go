package lineup

import (
	"sort"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

// Weight is the depth profile for one position. The top Starters players
// count at full weight, the next FlexDepth at FlexWeight, and everyone
// after that at DepthWeight.
type Weight struct {
	Starters    int
	FlexDepth   int
	FullWeight  float64
	FlexWeight  float64
	DepthWeight float64
}

var Weights = map[models.Position]Weight{
	models.PositionQB: {Starters: 2, FlexDepth: 2, FullWeight: 1.0, FlexWeight: 0.3, DepthWeight: 0.1},
	models.PositionRB: {Starters: 2, FlexDepth: 2, FullWeight: 1.0, FlexWeight: 0.5, DepthWeight: 0.15},
	models.PositionWR: {Starters: 3, FlexDepth: 2, FullWeight: 1.0, FlexWeight: 0.5, DepthWeight: 0.15},
	models.PositionTE: {Starters: 1, FlexDepth: 2, FullWeight: 1.0, FlexWeight: 0.3, DepthWeight: 0.1},
}

func (w Weight) at(rank int) float64 {
	switch {
	case rank < w.Starters:
		return w.FullWeight
	case rank < w.Starters+w.FlexDepth:
		return w.FlexWeight
	default:
		return w.DepthWeight
	}
}

type PositionScore struct {
	Position    models.Position
	Raw         float64
	Normalized  float64
	PlayerCount int
	NoData      bool
	Players     []models.Player
}

// Score returns the variant matching the display mode.
func (s PositionScore) Score(mode models.NormalizationMode) float64 {
	if mode == models.NormalizationScaled {
		return s.Normalized
	}
	return s.Raw
}

type PositionalScores map[models.Position]PositionScore

// ScorePositions groups players by their true position and weights each
// group by rank. Every tracked position is present in the result.
func ScorePositions(players []models.Player) PositionalScores {
	byPos := make(map[models.Position][]models.Player, len(models.Positions))
	for _, p := range players {
		byPos[p.Position] = append(byPos[p.Position], p)
	}

	scores := make(PositionalScores, len(models.Positions))
	for _, pos := range models.Positions {
		group := byPos[pos]
		if len(group) == 0 {
			scores[pos] = PositionScore{Position: pos, NoData: true}
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].RawValue > group[j].RawValue
		})

		w := Weights[pos]
		s := PositionScore{Position: pos, PlayerCount: len(group), Players: group}
		for i, p := range group {
			s.Raw += w.at(i) * p.RawValue
			s.Normalized += w.at(i) * p.NormalizedValue
		}
		scores[pos] = s
	}

	return scores
}

// Overall averages the normalized score across positions that have players.
func (s PositionalScores) Overall() float64 {
	var sum float64
	n := 0
	for _, pos := range models.Positions {
		ps, ok := s[pos]
		if !ok || ps.NoData {
			continue
		}
		sum += ps.Normalized
		n++
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
