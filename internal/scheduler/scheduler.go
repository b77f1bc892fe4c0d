package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/omarshaarawi/rosterbot/internal/models"
)

// Reporter is the part of the roster service the scheduler drives.
type Reporter interface {
	Refresh(ctx context.Context) (*models.League, error)
	GetPowerReport(ctx context.Context) (string, error)
}

type Scheduler struct {
	s               gocron.Scheduler
	reporter        Reporter
	sendMessage     func(string) error
	refreshInterval time.Duration
}

func NewScheduler(reporter Reporter, sendMessage func(string) error, refreshInterval time.Duration) (*Scheduler, error) {
	location, err := time.LoadLocation("America/Chicago") // CDT
	if err != nil {
		slog.Error("Failed to load location", "error", err)
		location = time.UTC
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(location),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	return &Scheduler{
		s:               s,
		reporter:        reporter,
		sendMessage:     sendMessage,
		refreshInterval: refreshInterval,
	}, nil
}

func (s *Scheduler) Start() error {
	var err error

	// League data refresh, first run immediately
	_, err = s.s.NewJob(
		gocron.DurationJob(s.refreshInterval),
		gocron.NewTask(s.refresh),
		gocron.WithStartAt(gocron.WithStartImmediately()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to create refresh job: %w", err)
	}

	// Power report - Tuesday 7:30 CDT
	if s.sendMessage != nil {
		_, err = s.s.NewJob(
			gocron.WeeklyJob(1, gocron.NewWeekdays(time.Tuesday), gocron.NewAtTimes(gocron.NewAtTime(7, 30, 0))),
			gocron.NewTask(s.sendPowerReport),
		)
		if err != nil {
			return fmt.Errorf("failed to create power report job: %w", err)
		}
	}

	s.s.Start()
	return nil
}

func (s *Scheduler) Stop() error {
	return s.s.Shutdown()
}

func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if _, err := s.reporter.Refresh(ctx); err != nil {
		slog.Error("Scheduled refresh failed", "error", err)
	}
}

func (s *Scheduler) sendPowerReport() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	report, err := s.reporter.GetPowerReport(ctx)
	if err != nil {
		slog.Error("Failed to get power report", "error", err)
		return
	}
	if err := s.sendMessage(report); err != nil {
		slog.Error("Failed to send power report", "error", err)
	}
}
