package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/omarshaarawi/rosterbot/internal/metrics"
	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/omarshaarawi/rosterbot/internal/repository/memory"
)

// LeagueSource produces a fresh league snapshot.
type LeagueSource interface {
	FetchLeague(ctx context.Context) (*models.League, error)
}

type RosterService struct {
	source   LeagueSource
	repo     *memory.Repository
	metrics  metrics.Metrics
	slots    []models.SlotDefinition
	cacheTTL time.Duration

	refreshMu sync.Mutex
}

func NewRosterService(source LeagueSource, repo *memory.Repository, m metrics.Metrics, slots []models.SlotDefinition, cacheTTL time.Duration) *RosterService {
	return &RosterService{
		source:   source,
		repo:     repo,
		metrics:  m,
		slots:    slots,
		cacheTTL: cacheTTL,
	}
}

// Refresh fetches every feed and replaces the stored snapshot. On failure the
// previous snapshot is kept.
func (s *RosterService) Refresh(ctx context.Context) (*models.League, error) {
	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()
	return s.refresh(ctx)
}

func (s *RosterService) refresh(ctx context.Context) (*models.League, error) {
	start := time.Now()
	s.metrics.IncRefreshes()

	league, err := s.source.FetchLeague(ctx)
	s.metrics.ObserveRefreshDuration(time.Since(start).Seconds())
	if err != nil {
		s.metrics.IncRefreshFailures()
		return nil, fmt.Errorf("refreshing league: %w", err)
	}

	s.repo.SaveLeague(league)
	s.metrics.SetRosteredPlayers(len(league.Players()))
	s.metrics.SetDataGaps(league.MissingValues, league.MissingProjections)

	slog.Info("League refreshed",
		"league", league.Name,
		"week", league.Week,
		"teams", len(league.Teams),
		"duration", time.Since(start))
	return league, nil
}

// GetLeague returns the stored snapshot, refreshing it first when it is
// missing or older than the cache TTL. A stale snapshot is served if the
// refresh fails.
func (s *RosterService) GetLeague(ctx context.Context) (*models.League, error) {
	league := s.repo.GetLeague()
	if league != nil && time.Since(league.LastUpdated) <= s.cacheTTL {
		return league, nil
	}

	s.refreshMu.Lock()
	defer s.refreshMu.Unlock()

	// another caller may have refreshed while we waited
	if current := s.repo.GetLeague(); current != nil && time.Since(current.LastUpdated) <= s.cacheTTL {
		return current, nil
	}

	fresh, err := s.refresh(ctx)
	if err != nil {
		if league != nil {
			slog.Warn("Serving stale league data", "age", time.Since(league.LastUpdated), "error", err)
			return league, nil
		}
		return nil, err
	}
	return fresh, nil
}

func (s *RosterService) GetDisplayConfig(chatID int64) models.DisplayConfig {
	return s.repo.GetDisplayConfig(chatID)
}

func (s *RosterService) SetRanking(chatID int64, value string) (string, error) {
	mode, err := models.ParseRankingMode(value)
	if err != nil {
		return "", err
	}
	cfg := s.repo.GetDisplayConfig(chatID)
	cfg.Ranking = mode
	s.repo.SaveDisplayConfig(chatID, cfg)
	return fmt.Sprintf("⚙️ Lineups now ranked by *%s*", mode), nil
}

func (s *RosterService) SetNormalization(chatID int64, value string) (string, error) {
	mode, err := models.ParseNormalizationMode(value)
	if err != nil {
		return "", err
	}
	cfg := s.repo.GetDisplayConfig(chatID)
	cfg.Normalization = mode
	s.repo.SaveDisplayConfig(chatID, cfg)
	return fmt.Sprintf("⚙️ Values now shown as *%s*", mode), nil
}

func (s *RosterService) SetWindow(chatID int64, value string) (string, error) {
	window, err := models.ParseProjectionWindow(value)
	if err != nil {
		return "", err
	}
	cfg := s.repo.GetDisplayConfig(chatID)
	cfg.Window = window
	s.repo.SaveDisplayConfig(chatID, cfg)
	return fmt.Sprintf("⚙️ Projections now use *%s*", window), nil
}

// DescribeDisplayConfig renders the chat's current settings.
func (s *RosterService) DescribeDisplayConfig(chatID int64) string {
	cfg := s.repo.GetDisplayConfig(chatID)
	return fmt.Sprintf("⚙️ *Display settings*\nRanking: %s\nValues: %s\nProjections: %s",
		cfg.Ranking, cfg.Normalization, cfg.Window)
}
