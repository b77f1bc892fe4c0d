package service

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/omarshaarawi/rosterbot/internal/models"
)

var (
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrNoTrade        = errors.New("no trade in progress, start one with /trade new")
)

const (
	teamThreshold   = 0.6
	playerThreshold = 0.7
)

// similarity is 1 minus the Levenshtein distance scaled by the longer string.
func similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(fuzzy.LevenshteinDistance(a, b))/float64(maxLen)
}

// findTeam resolves a roster id, team name or owner name. Exact matches win
// over fuzzy ones.
func findTeam(league *models.League, query string) (models.Team, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Team{}, fmt.Errorf("%w: empty name", ErrTeamNotFound)
	}

	for _, t := range league.Teams {
		if t.RosterID == query ||
			strings.EqualFold(t.TeamName, query) ||
			strings.EqualFold(t.OwnerName, query) {
			return t, nil
		}
	}

	var best *models.Team
	bestScore := teamThreshold
	for i, t := range league.Teams {
		score := max(similarity(query, t.TeamName), similarity(query, t.OwnerName))
		if score > bestScore {
			bestScore = score
			best = &league.Teams[i]
		}
	}
	if best == nil {
		return models.Team{}, fmt.Errorf("%w: %s", ErrTeamNotFound, query)
	}
	return *best, nil
}

// findPlayer resolves a rostered player by name, preferring players on the
// given rosters when more than one name scores equally.
func findPlayer(league *models.League, query string, prefer ...string) (models.Player, string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.Player{}, "", fmt.Errorf("%w: empty name", ErrPlayerNotFound)
	}

	preferred := make(map[string]bool, len(prefer))
	for _, id := range prefer {
		preferred[id] = true
	}

	var (
		best      models.Player
		bestOwner string
		bestScore = playerThreshold
		found     bool
	)
	for _, t := range league.Teams {
		for _, p := range t.Players {
			score := similarity(query, p.Name)
			if strings.EqualFold(query, p.Name) || p.ID == query {
				score = 2
			}
			better := score > bestScore ||
				(found && score == bestScore && preferred[t.RosterID] && !preferred[bestOwner])
			if better {
				best, bestOwner, bestScore, found = p, t.RosterID, score, true
			}
		}
	}
	if !found {
		return models.Player{}, "", fmt.Errorf("%w: %s", ErrPlayerNotFound, query)
	}
	return best, bestOwner, nil
}

func teamName(league *models.League, rosterID string) string {
	if t, ok := league.Team(rosterID); ok {
		return t.TeamName
	}
	return rosterID
}
