package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/omarshaarawi/rosterbot/internal/trade"
)

// Trade state is kept per chat. The bot handles one update at a time, so a
// proposal is never mutated concurrently.

func (s *RosterService) StartTrade(ctx context.Context, chatID int64, teamNames ...string) (string, error) {
	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}

	ids := make([]string, 0, len(teamNames))
	for _, name := range teamNames {
		team, err := findTeam(league, name)
		if err != nil {
			return "", err
		}
		ids = append(ids, team.RosterID)
	}

	p, err := trade.NewProposal(ids...)
	if err != nil {
		return "", fmt.Errorf("starting trade: %w", err)
	}
	s.repo.SaveTrade(chatID, p)
	slog.Info("Trade started", "chat", chatID, "trade", p.ID, "teams", len(ids))
	return renderTrade(league, p, s.repo.GetDisplayConfig(chatID)), nil
}

// AddTradeTeam adds a team, starting a new trade if the chat has none.
func (s *RosterService) AddTradeTeam(ctx context.Context, chatID int64, name string) (string, error) {
	league, err := s.GetLeague(ctx)
	if err != nil {
		return "", fmt.Errorf("error fetching league: %w", err)
	}
	team, err := findTeam(league, name)
	if err != nil {
		return "", err
	}

	p, ok := s.repo.GetTrade(chatID)
	if !ok {
		if p, err = trade.NewProposal(); err != nil {
			return "", err
		}
	}
	if err := p.AddTeam(team.RosterID); err != nil {
		return "", fmt.Errorf("adding %s: %w", team.TeamName, err)
	}
	s.repo.SaveTrade(chatID, p)
	slog.Info("Trade team added", "chat", chatID, "trade", p.ID, "team", team.RosterID)
	return renderTrade(league, p, s.repo.GetDisplayConfig(chatID)), nil
}

func (s *RosterService) RemoveTradeTeam(ctx context.Context, chatID int64, name string) (string, error) {
	league, p, err := s.currentTrade(ctx, chatID)
	if err != nil {
		return "", err
	}
	team, err := findTeam(league, name)
	if err != nil {
		return "", err
	}
	if err := p.RemoveTeam(team.RosterID); err != nil {
		return "", fmt.Errorf("removing %s: %w", team.TeamName, err)
	}
	return renderTrade(league, p, s.repo.GetDisplayConfig(chatID)), nil
}

// SendPlayer moves a player from the roster that currently holds him to
// toTeam. Both rosters must already be part of the trade.
func (s *RosterService) SendPlayer(ctx context.Context, chatID int64, playerName, toTeam string) (string, error) {
	league, p, err := s.currentTrade(ctx, chatID)
	if err != nil {
		return "", err
	}

	player, owner, err := findPlayer(league, playerName, p.Teams()...)
	if err != nil {
		return "", err
	}
	to, err := findTeam(league, toTeam)
	if err != nil {
		return "", err
	}

	if err := p.AddPlayer(player.ID, owner, to.RosterID); err != nil {
		if errors.Is(err, trade.ErrUnknownTeam) && !p.HasTeam(owner) {
			return "", fmt.Errorf("%s is on %s, which is not part of the trade: %w",
				player.Name, teamName(league, owner), trade.ErrUnknownTeam)
		}
		return "", fmt.Errorf("sending %s: %w", player.Name, err)
	}
	return renderTrade(league, p, s.repo.GetDisplayConfig(chatID)), nil
}

func (s *RosterService) DropTradePlayer(ctx context.Context, chatID int64, playerName string) (string, error) {
	league, p, err := s.currentTrade(ctx, chatID)
	if err != nil {
		return "", err
	}
	player, _, err := findPlayer(league, playerName, p.Teams()...)
	if err != nil {
		return "", err
	}
	if err := p.RemovePlayer(player.ID); err != nil {
		return "", fmt.Errorf("dropping %s: %w", player.Name, err)
	}
	return renderTrade(league, p, s.repo.GetDisplayConfig(chatID)), nil
}

func (s *RosterService) ShowTrade(ctx context.Context, chatID int64) (string, error) {
	league, p, err := s.currentTrade(ctx, chatID)
	if err != nil {
		return "", err
	}
	return renderTrade(league, p, s.repo.GetDisplayConfig(chatID)), nil
}

// TradeImpact re-optimizes every participant's lineup with the trade applied.
func (s *RosterService) TradeImpact(ctx context.Context, chatID int64) (string, error) {
	league, p, err := s.currentTrade(ctx, chatID)
	if err != nil {
		return "", err
	}
	if p.IsEmpty() {
		return "🔄 No players in the trade yet.", nil
	}

	cfg := s.repo.GetDisplayConfig(chatID)
	players := league.Players()

	var sb strings.Builder
	sb.WriteString("📈 *Lineup Impact*\n")
	for _, id := range p.Teams() {
		team, ok := league.Team(id)
		if !ok {
			continue
		}
		impact := trade.Impact(team, p, players, s.slots, cfg)

		sb.WriteString(fmt.Sprintf("\n*%s*\n", team.TeamName))
		sb.WriteString(fmt.Sprintf("Starters: %s → %s (%s)\n",
			formatValue(impact.Before.StarterValue, league, cfg),
			formatValue(impact.After.StarterValue, league, cfg),
			signed(formatValue(impact.StarterValueDelta, league, cfg))))
		sb.WriteString(fmt.Sprintf("Projected: %.1f → %.1f pts (%+.1f)\n",
			impact.Before.WeeklyProjected, impact.After.WeeklyProjected, impact.WeeklyProjectedDelta))
		sb.WriteString(fmt.Sprintf("Depth score: %.1f → %.1f (%+.1f)\n",
			impact.Before.OverallPositionScore, impact.After.OverallPositionScore, impact.OverallScoreDelta))
		for _, c := range impact.Changes {
			sb.WriteString(fmt.Sprintf("  ▫️ %s: %s → %s\n", c.Player.Name, c.Before, c.After))
		}
	}
	return sb.String(), nil
}

// ClearTrade empties the chat's trade but keeps it open for new teams.
func (s *RosterService) ClearTrade(chatID int64) string {
	if p, ok := s.repo.GetTrade(chatID); ok {
		p.Clear()
	}
	return "🔄 Trade cleared."
}

func (s *RosterService) currentTrade(ctx context.Context, chatID int64) (*models.League, *trade.Proposal, error) {
	p, ok := s.repo.GetTrade(chatID)
	if !ok {
		return nil, nil, ErrNoTrade
	}
	league, err := s.GetLeague(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("error fetching league: %w", err)
	}
	return league, p, nil
}

func renderTrade(league *models.League, p *trade.Proposal, cfg models.DisplayConfig) string {
	teams := p.Teams()
	if len(teams) == 0 {
		return "🔄 *Trade*\nNo teams yet. Add one with /trade add <team>."
	}

	players := league.Players()

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🔄 *Trade* `%s` (%d/%d teams)\n", shortID(p), len(teams), trade.MaxTeams))
	for _, id := range teams {
		sb.WriteString(fmt.Sprintf("\n*%s* sends:\n", teamName(league, id)))
		sending := p.Sending(id)
		if len(sending) == 0 {
			sb.WriteString("  nothing\n")
			continue
		}
		for _, pid := range sending {
			m, _ := p.Move(pid)
			pl := players[pid]
			sb.WriteString(fmt.Sprintf("  ▫️ %s %s (%.0f) → %s\n", pl.Position, pl.Name, pl.RawValue, teamName(league, m.To)))
		}
	}

	if p.IsEmpty() {
		return sb.String()
	}

	eval := trade.Evaluate(p, players)
	sb.WriteString("\n*Value:*\n")
	for _, r := range eval.Teams {
		sb.WriteString(fmt.Sprintf("*%s*: in %s, out %s",
			teamName(league, r.RosterID),
			formatValue(r.Received, league, cfg),
			formatValue(r.Sent, league, cfg)))
		if r.Tax > 0 {
			sb.WriteString(fmt.Sprintf(", tax %s", formatValue(r.Tax, league, cfg)))
		}
		sb.WriteString(fmt.Sprintf(", net %s\n", signed(formatValue(r.Net, league, cfg))))
		for _, n := range r.Notes {
			n.Counterpart = teamName(league, n.Counterpart)
			sb.WriteString("   " + n.String() + "\n")
		}
	}
	return sb.String()
}

// shortID is the first block of the proposal's uuid.
func shortID(p *trade.Proposal) string {
	return p.ID.String()[:8]
}

func signed(v string) string {
	if strings.HasPrefix(v, "-") {
		return v
	}
	return "+" + v
}
