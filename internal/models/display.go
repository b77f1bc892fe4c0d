package models

import (
	"fmt"
	"strings"
)

type RankingMode int

const (
	RankByValue RankingMode = iota
	RankByProjection
)

func (m RankingMode) String() string {
	if m == RankByProjection {
		return "projection"
	}
	return "value"
}

type NormalizationMode int

const (
	NormalizationRaw NormalizationMode = iota
	NormalizationScaled
)

func (m NormalizationMode) String() string {
	if m == NormalizationScaled {
		return "normalized"
	}
	return "raw"
}

type ProjectionWindow int

const (
	WindowWeeklyAverage ProjectionWindow = iota
	WindowSingleWeek
	WindowSeasonTotal
)

func (w ProjectionWindow) String() string {
	switch w {
	case WindowSingleWeek:
		return "single-week"
	case WindowSeasonTotal:
		return "season-total"
	default:
		return "weekly-average"
	}
}

// DisplayConfig carries the user-selected modes into every compute call.
// The zero value ranks by raw value with weekly-average projections.
type DisplayConfig struct {
	Ranking       RankingMode
	Normalization NormalizationMode
	Window        ProjectionWindow
}

func ParseRankingMode(s string) (RankingMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value", "values", "market":
		return RankByValue, nil
	case "projection", "projections", "proj", "points":
		return RankByProjection, nil
	}
	return RankByValue, fmt.Errorf("unknown ranking mode %q", s)
}

func ParseNormalizationMode(s string) (NormalizationMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "raw":
		return NormalizationRaw, nil
	case "normalized", "norm", "scaled", "100":
		return NormalizationScaled, nil
	}
	return NormalizationRaw, fmt.Errorf("unknown normalization mode %q", s)
}

func ParseProjectionWindow(s string) (ProjectionWindow, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "week", "single-week", "weekly":
		return WindowSingleWeek, nil
	case "avg", "average", "weekly-average":
		return WindowWeeklyAverage, nil
	case "season", "season-total", "total":
		return WindowSeasonTotal, nil
	}
	return WindowWeeklyAverage, fmt.Errorf("unknown projection window %q", s)
}
