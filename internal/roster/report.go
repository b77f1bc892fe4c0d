// Package roster builds the per-team view of a league: optimized lineup,
// positional scores and roster totals.
package roster

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/rosterbot/internal/lineup"
	"github.com/omarshaarawi/rosterbot/internal/models"
)

type Stats struct {
	TotalValue             float64
	StarterValue           float64
	ListedStarterValue     float64
	TotalProjectedPoints   float64
	StarterProjectedPoints float64
	PlayerCount            int
	ListedStarterCount     int
}

type Report struct {
	Team   models.Team
	Lineup lineup.Lineup
	Scores lineup.PositionalScores
	Stats  Stats
}

// Analyze optimizes and scores a single team. Value totals are always raw;
// projected totals follow the configured window.
func Analyze(team models.Team, slots []models.SlotDefinition, cfg models.DisplayConfig) Report {
	r := Report{
		Team:   team,
		Lineup: lineup.Optimize(team.Players, slots, lineup.RankerFor(cfg)),
		Scores: lineup.ScorePositions(team.Players),
	}

	r.Stats.PlayerCount = len(team.Players)
	for _, p := range team.Players {
		r.Stats.TotalValue += p.RawValue
		r.Stats.TotalProjectedPoints += p.ProjectedPoints(cfg.Window)
		if p.IsStarter {
			r.Stats.ListedStarterValue += p.RawValue
			r.Stats.ListedStarterCount++
		}
	}
	for _, p := range r.Lineup.Starters() {
		r.Stats.StarterValue += p.RawValue
		r.Stats.StarterProjectedPoints += p.ProjectedPoints(cfg.Window)
	}

	return r
}

// AnalyzeLeague reports on every team, highest total value first.
func AnalyzeLeague(league *models.League, slots []models.SlotDefinition, cfg models.DisplayConfig) []Report {
	if league == nil {
		return nil
	}
	reports := make([]Report, 0, len(league.Teams))
	for _, t := range league.Teams {
		reports = append(reports, Analyze(t, slots, cfg))
	}
	SortReports(reports, SortByValue)
	return reports
}

type SortKey int

const (
	SortByValue SortKey = iota
	SortByName
)

func ParseSortKey(s string) (SortKey, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "value":
		return SortByValue, true
	case "name", "team":
		return SortByName, true
	}
	return SortByValue, false
}

func SortReports(reports []Report, key SortKey) {
	switch key {
	case SortByName:
		sort.SliceStable(reports, func(i, j int) bool {
			return strings.ToLower(reports[i].Team.TeamName) < strings.ToLower(reports[j].Team.TeamName)
		})
	default:
		sort.SliceStable(reports, func(i, j int) bool {
			return reports[i].Stats.TotalValue > reports[j].Stats.TotalValue
		})
	}
}

// Search narrows each team to the players that match query and re-optimizes
// what is left. Teams without a match
// are dropped. An empty query returns reports as they are.
func Search(reports []Report, query string, slots []models.SlotDefinition, cfg models.DisplayConfig) []Report {
	query = strings.TrimSpace(query)
	if query == "" {
		return reports
	}

	var out []Report
	for _, r := range reports {
		team := r.Team
		team.Players = nil
		for _, p := range r.Team.Players {
			if Matches(p, query) {
				team.Players = append(team.Players, p)
			}
		}
		if len(team.Players) == 0 {
			continue
		}
		out = append(out, Analyze(team, slots, cfg))
	}
	return out
}

// Matches is true when the name fuzzy-matches query or the position or NFL
// team contains it.
func Matches(p models.Player, query string) bool {
	q := strings.ToLower(query)
	return fuzzy.MatchFold(query, p.Name) ||
		strings.Contains(strings.ToLower(string(p.Position)), q) ||
		strings.Contains(strings.ToLower(p.Team), q)
}

type ListedFilter int

const (
	ListedAll ListedFilter = iota
	StartersOnly
	BenchOnly
)

func (f ListedFilter) String() string {
	switch f {
	case StartersOnly:
		return "starters"
	case BenchOnly:
		return "bench"
	default:
		return "all"
	}
}

func ParseListedFilter(s string) (ListedFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return ListedAll, true
	case "starters", "starter":
		return StartersOnly, true
	case "bench":
		return BenchOnly, true
	}
	return ListedAll, false
}

// FilterListed keeps players by the starter flag the league host reports,
// not by the optimized lineup. Starters are re-optimized into slots; bench
// players stay on the bench and every slot is left empty.
func FilterListed(reports []Report, filter ListedFilter, slots []models.SlotDefinition, cfg models.DisplayConfig) []Report {
	if filter == ListedAll {
		return reports
	}

	out := make([]Report, 0, len(reports))
	for _, r := range reports {
		team := r.Team
		team.Players = nil
		for _, p := range r.Team.Players {
			if p.IsStarter == (filter == StartersOnly) {
				team.Players = append(team.Players, p)
			}
		}
		if filter == BenchOnly {
			out = append(out, benchReport(team, slots, cfg))
			continue
		}
		out = append(out, Analyze(team, slots, cfg))
	}
	return out
}

func benchReport(team models.Team, slots []models.SlotDefinition, cfg models.DisplayConfig) Report {
	r := Analyze(team, slots, cfg)

	benched := lineup.Optimize(team.Players, nil, lineup.RankerFor(cfg))
	for _, slot := range slots {
		benched.Slots = append(benched.Slots, lineup.SlotAssignment{Slot: slot, Players: []models.Player{}})
	}
	r.Lineup = benched
	r.Stats.StarterValue = 0
	r.Stats.StarterProjectedPoints = 0
	return r
}

type Grade string

const (
	GradeHigh   Grade = "high"
	GradeMedium Grade = "medium"
	GradeLow    Grade = "low"
)

func (g Grade) Marker() string {
	switch g {
	case GradeHigh:
		return "🟢"
	case GradeMedium:
		return "🟡"
	default:
		return "⚪"
	}
}

// ValueTier buckets a raw market value for display.
func ValueTier(v float64) Grade {
	switch {
	case v >= 5000:
		return GradeHigh
	case v >= 1000:
		return GradeMedium
	default:
		return GradeLow
	}
}
