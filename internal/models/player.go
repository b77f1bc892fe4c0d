package models

import (
	"fmt"
	"strings"
)

type Position string

const (
	PositionQB Position = "QB"
	PositionRB Position = "RB"
	PositionWR Position = "WR"
	PositionTE Position = "TE"
)

// Positions lists every position the model tracks, in display order.
var Positions = []Position{PositionQB, PositionRB, PositionWR, PositionTE}

// ParsePosition returns the tracked position for s. Kickers, defenses and
// anything else outside the four skill positions report false.
func ParsePosition(s string) (Position, bool) {
	switch Position(strings.ToUpper(strings.TrimSpace(s))) {
	case PositionQB:
		return PositionQB, true
	case PositionRB:
		return PositionRB, true
	case PositionWR:
		return PositionWR, true
	case PositionTE:
		return PositionTE, true
	}
	return "", false
}

// SeasonWeeks is the multiplier from a projected weekly average to a season total.
const SeasonWeeks = 17

type Projection struct {
	Week          int
	WeekPoints    float64
	AveragePoints float64
	Found         bool
}

type Player struct {
	ID              string
	Name            string
	Team            string
	Position        Position
	RawValue        float64
	NormalizedValue float64
	IsStarter       bool
	Projection      Projection
}

// Value returns the display valuation for the given mode. Arithmetic on
// rosters should use RawValue directly.
func (p Player) Value(mode NormalizationMode) float64 {
	if mode == NormalizationScaled {
		return p.NormalizedValue
	}
	return p.RawValue
}

func (p Player) ProjectedPoints(window ProjectionWindow) float64 {
	if !p.Projection.Found {
		return 0
	}
	switch window {
	case WindowSingleWeek:
		return p.Projection.WeekPoints
	case WindowSeasonTotal:
		return p.Projection.AveragePoints * SeasonWeeks
	default:
		return p.Projection.AveragePoints
	}
}

func (p Player) String() string {
	return fmt.Sprintf("%s (%s - %s)", p.Name, p.Position, p.Team)
}
