package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/omarshaarawi/rosterbot/internal/lineup"
	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/omarshaarawi/rosterbot/internal/roster"
)

// GetRosters summarizes every team. A listed filter of "starters" or "bench"
// narrows each roster by the host's starter flag and lists the players kept.
func (s *RosterService) GetRosters(ctx context.Context, chatID int64, sortBy, listed string) (string, error) {
	key, ok := roster.ParseSortKey(sortBy)
	if !ok {
		return "", fmt.Errorf("unknown sort %q, use value or name", sortBy)
	}
	filter, ok := roster.ParseListedFilter(listed)
	if !ok {
		return "", fmt.Errorf("unknown filter %q, use starters or bench", listed)
	}

	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}

	cfg := s.repo.GetDisplayConfig(chatID)
	reports := roster.FilterListed(roster.AnalyzeLeague(league, s.slots, cfg), filter, s.slots, cfg)
	roster.SortReports(reports, key)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s Rosters* (week %d)\n", league.Name, league.Week))
	sb.WriteString(fmt.Sprintf("_by %s, %s values, %s", cfg.Ranking, cfg.Normalization, cfg.Window))
	if filter != roster.ListedAll {
		sb.WriteString(fmt.Sprintf(", %s only", filter))
	}
	sb.WriteString("_\n\n")

	for i, r := range reports {
		sb.WriteString(fmt.Sprintf("%d. *%s*\n", i+1, r.Team.TeamName))
		sb.WriteString(fmt.Sprintf("   Total: %s | Starters: %s\n",
			formatValue(r.Stats.TotalValue, league, cfg), formatValue(r.Stats.StarterValue, league, cfg)))
		sb.WriteString(fmt.Sprintf("   Projected: %.1f pts | %d players", r.Stats.StarterProjectedPoints, r.Stats.PlayerCount))
		if empty := r.Lineup.EmptySlots(); empty > 0 && filter == roster.ListedAll {
			sb.WriteString(fmt.Sprintf(" | %d empty", empty))
		}
		sb.WriteString("\n")
		if filter != roster.ListedAll {
			writeLineupPlayers(&sb, r.Lineup, cfg)
		}
		sb.WriteString("\n")
	}

	writeDataGaps(&sb, league)
	return sb.String(), nil
}

func writeLineupPlayers(sb *strings.Builder, l lineup.Lineup, cfg models.DisplayConfig) {
	for _, o := range l.Openings() {
		if o.Player != nil {
			sb.WriteString(fmt.Sprintf("   ▫️ %s %s\n", o.Slot, formatPlayer(*o.Player, cfg)))
		}
	}
	for _, p := range l.Bench {
		sb.WriteString(fmt.Sprintf("   ▫️ BN %s %s\n", p.Position, formatPlayer(p, cfg)))
	}
}

func (s *RosterService) GetTeamLineup(ctx context.Context, chatID int64, name string) (string, error) {
	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}

	team, err := findTeam(league, name)
	if err != nil {
		return "", err
	}

	cfg := s.repo.GetDisplayConfig(chatID)
	r := roster.Analyze(team, s.slots, cfg)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 *%s*", team.TeamName))
	if team.OwnerName != "" && team.OwnerName != team.TeamName {
		sb.WriteString(fmt.Sprintf(" (%s)", team.OwnerName))
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Total: %s | Starters: %s | Listed: %s\n",
		formatValue(r.Stats.TotalValue, league, cfg),
		formatValue(r.Stats.StarterValue, league, cfg),
		formatValue(r.Stats.ListedStarterValue, league, cfg)))
	sb.WriteString(fmt.Sprintf("Projected: %.1f pts (%s)\n", r.Stats.StarterProjectedPoints, cfg.Window))

	openings := models.TotalOpenings(s.slots)
	sb.WriteString(fmt.Sprintf("\n*Starting Lineup* (%d/%d):\n", openings-r.Lineup.EmptySlots(), openings))
	for _, o := range r.Lineup.Openings() {
		if o.Player == nil {
			sb.WriteString(fmt.Sprintf("▫️ %s - empty\n", o.Slot))
			continue
		}
		sb.WriteString(fmt.Sprintf("▫️ %s %s\n", o.Slot, formatPlayer(*o.Player, cfg)))
	}

	sb.WriteString("\n*Bench:*\n")
	if len(r.Lineup.Bench) == 0 {
		sb.WriteString("None\n")
	}
	for _, p := range r.Lineup.Bench {
		sb.WriteString(fmt.Sprintf("▫️ %s %s\n", p.Position, formatPlayer(p, cfg)))
	}

	sb.WriteString("\n*Positional Scores:*\n")
	for _, pos := range models.Positions {
		ps := r.Scores[pos]
		if ps.NoData {
			sb.WriteString(fmt.Sprintf("%s: no data\n", pos))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s: %s (%d)\n", pos, formatScore(ps, cfg), ps.PlayerCount))
	}

	return sb.String(), nil
}

func (s *RosterService) GetPositionalRankings(ctx context.Context, chatID int64) (string, error) {
	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}

	cfg := s.repo.GetDisplayConfig(chatID)
	reports := roster.AnalyzeLeague(league, s.slots, cfg)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📊 *Positional Rankings* (%s)\n", cfg.Normalization))

	for _, pos := range models.Positions {
		ranked := make([]roster.Report, len(reports))
		copy(ranked, reports)
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := ranked[i].Scores[pos], ranked[j].Scores[pos]
			if a.NoData != b.NoData {
				return !a.NoData
			}
			return a.Score(cfg.Normalization) > b.Score(cfg.Normalization)
		})

		sb.WriteString(fmt.Sprintf("\n*%s*\n", pos))
		for i, r := range ranked {
			ps := r.Scores[pos]
			if ps.NoData {
				sb.WriteString(fmt.Sprintf("%d. %s - no data\n", i+1, r.Team.TeamName))
				continue
			}
			sb.WriteString(fmt.Sprintf("%d. %s - %s\n", i+1, r.Team.TeamName, formatScore(ps, cfg)))
		}
	}

	return sb.String(), nil
}

func (s *RosterService) SearchPlayers(ctx context.Context, chatID int64, query string) (string, error) {
	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}

	cfg := s.repo.GetDisplayConfig(chatID)
	found := roster.Search(roster.AnalyzeLeague(league, s.slots, cfg), query, s.slots, cfg)
	if len(found) == 0 {
		return fmt.Sprintf("🔍 No rostered player found matching '%s'.", query), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔍 *Results for '%s'*\n", query))
	for _, r := range found {
		sb.WriteString(fmt.Sprintf("\n*%s*\n", r.Team.TeamName))
		full, _ := league.Team(r.Team.RosterID)
		teamLineup := lineup.Optimize(full.Players, s.slots, lineup.RankerFor(cfg))
		for _, p := range r.Team.Players {
			sb.WriteString(fmt.Sprintf("▫️ %s %s [%s]\n", p.Position, formatPlayer(p, cfg), teamLineup.Tier(p.ID)))
		}
	}
	return sb.String(), nil
}

// GetPowerReport ranks every team by optimized starter value using the
// default display settings.
func (s *RosterService) GetPowerReport(ctx context.Context) (string, error) {
	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}

	var cfg models.DisplayConfig
	reports := roster.AnalyzeLeague(league, s.slots, cfg)
	sort.SliceStable(reports, func(i, j int) bool {
		return reports[i].Stats.StarterValue > reports[j].Stats.StarterValue
	})

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏆 *Week %d Power Report*\n\n", league.Week))
	for i, r := range reports {
		sb.WriteString(fmt.Sprintf("%d. *%s* - %.0f\n", i+1, r.Team.TeamName, r.Stats.StarterValue))
		sb.WriteString(fmt.Sprintf("   Depth score: %.1f | Projected: %.1f pts\n",
			r.Scores.Overall(), r.Stats.StarterProjectedPoints))
	}
	return sb.String(), nil
}

// formatValue renders an aggregate of raw values. In normalized mode the
// aggregate is rescaled against the league's top raw value.
func formatValue(raw float64, league *models.League, cfg models.DisplayConfig) string {
	if cfg.Normalization == models.NormalizationScaled {
		if league.MaxRawValue <= 0 {
			return "0.0"
		}
		return fmt.Sprintf("%.1f", raw/league.MaxRawValue*100)
	}
	return fmt.Sprintf("%.0f", raw)
}

func formatPlayer(p models.Player, cfg models.DisplayConfig) string {
	value := fmt.Sprintf("%.0f", p.RawValue)
	if cfg.Normalization == models.NormalizationScaled {
		value = fmt.Sprintf("%.1f", p.NormalizedValue)
	}
	proj := "-"
	if p.Projection.Found {
		proj = fmt.Sprintf("%.1f", p.ProjectedPoints(cfg.Window))
	}
	return fmt.Sprintf("%s (%s) - %s | %s pts %s", p.Name, p.Team, value, proj, roster.ValueTier(p.RawValue).Marker())
}

func formatScore(ps lineup.PositionScore, cfg models.DisplayConfig) string {
	if cfg.Normalization == models.NormalizationScaled {
		return fmt.Sprintf("%.1f", ps.Normalized)
	}
	return fmt.Sprintf("%.0f", ps.Raw)
}

func writeDataGaps(sb *strings.Builder, league *models.League) {
	if league.MissingValues == 0 && league.MissingProjections == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf("⚠️ %d players without a value, %d without a projection\n",
		league.MissingValues, league.MissingProjections))
}
