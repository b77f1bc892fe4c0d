package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/omarshaarawi/rosterbot/internal/api/fantasy"
	"github.com/omarshaarawi/rosterbot/internal/config"
	"github.com/omarshaarawi/rosterbot/internal/metrics"
	"github.com/omarshaarawi/rosterbot/internal/repository/memory"
	"github.com/omarshaarawi/rosterbot/internal/service"
)

// cliChat is the session id used for every command; the CLI has one user.
const cliChat int64 = 0

var (
	ranking       string
	normalization string
	window        string

	rosterService *service.RosterService
)

var rootCmd = &cobra.Command{
	Use:   "rosterctl",
	Short: "Run roster and trade reports for a Sleeper league",
	Long: `A command-line interface that pulls the configured Sleeper league,
FantasyCalc values and ESPN projections once and prints the same reports the
bot sends.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		_ = godotenv.Load()

		cfg, err := config.New()
		if err != nil {
			return err
		}
		slots, err := cfg.League.SlotDefinitions()
		if err != nil {
			return err
		}

		rosterService = service.NewRosterService(
			fantasy.NewFromConfig(cfg),
			memory.NewRepository(),
			metrics.NewService(),
			slots,
			cfg.Server.CacheTTL,
		)
		return applyDisplayFlags(rosterService)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&ranking, "mode", "", "Rank lineups by value or projection")
	rootCmd.PersistentFlags().StringVar(&normalization, "norm", "", "Show raw or normalized values")
	rootCmd.PersistentFlags().StringVar(&window, "window", "", "Projection window: week, avg or season")
}

func applyDisplayFlags(svc *service.RosterService) error {
	if ranking != "" {
		if _, err := svc.SetRanking(cliChat, ranking); err != nil {
			return err
		}
	}
	if normalization != "" {
		if _, err := svc.SetNormalization(cliChat, normalization); err != nil {
			return err
		}
	}
	if window != "" {
		if _, err := svc.SetWindow(cliChat, window); err != nil {
			return err
		}
	}
	return nil
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		stop()
		os.Exit(1)
	}
}

func main() {
	Execute()
}
