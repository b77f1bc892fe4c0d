package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var (
	sortBy     string
	listed     string
	tradeTeams []string
	tradeSends []string
	showImpact bool
)

func init() {
	rostersCmd.Flags().StringVar(&sortBy, "sort", "value", "Sort teams by value or name")
	rostersCmd.Flags().StringVar(&listed, "filter", "all", "Keep only the host's listed starters or bench")

	tradeCmd.Flags().StringArrayVar(&tradeTeams, "team", nil, "Team taking part in the trade (repeat up to 3 times)")
	tradeCmd.Flags().StringArrayVar(&tradeSends, "send", nil, `Player to send, as "player>team"`)
	tradeCmd.Flags().BoolVar(&showImpact, "impact", false, "Also print the lineup impact for every team")

	rootCmd.AddCommand(rostersCmd)
	rootCmd.AddCommand(teamCmd)
	rootCmd.AddCommand(positionsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(tradeCmd)
}

var rostersCmd = &cobra.Command{
	Use:   "rosters",
	Short: "List every team with its optimized lineup totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := rosterService.GetRosters(cmd.Context(), cliChat, sortBy, listed)
		return printResult(cmd, out, err)
	},
}

var teamCmd = &cobra.Command{
	Use:   "team <name>",
	Short: "Show a team's lineup, bench and positional scores",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := rosterService.GetTeamLineup(cmd.Context(), cliChat, strings.Join(args, " "))
		return printResult(cmd, out, err)
	},
}

var positionsCmd = &cobra.Command{
	Use:   "positions",
	Short: "Rank teams at every position",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := rosterService.GetPositionalRankings(cmd.Context(), cliChat)
		return printResult(cmd, out, err)
	},
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Find rostered players by name, position or NFL team",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := rosterService.SearchPlayers(cmd.Context(), cliChat, strings.Join(args, " "))
		return printResult(cmd, out, err)
	},
}

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Print the weekly power report",
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := rosterService.GetPowerReport(cmd.Context())
		return printResult(cmd, out, err)
	},
}

var tradeCmd = &cobra.Command{
	Use:   "trade",
	Short: "Evaluate a trade between two or three teams",
	Example: `  rosterctl trade --team "Taco Corp" --team "Monday Mayhem" \
    --send "Puka Nacua>Monday Mayhem" --send "Derrick Henry>Taco Corp" --impact`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(tradeTeams) < 2 {
			return fmt.Errorf("a trade needs at least two --team flags")
		}

		ctx := cmd.Context()
		out, err := rosterService.StartTrade(ctx, cliChat, tradeTeams...)
		if err != nil {
			return err
		}

		for _, send := range tradeSends {
			player, team, ok := strings.Cut(send, ">")
			if !ok {
				return fmt.Errorf("invalid --send %q, expected \"player>team\"", send)
			}
			out, err = rosterService.SendPlayer(ctx, cliChat, strings.TrimSpace(player), strings.TrimSpace(team))
			if err != nil {
				return err
			}
		}

		if !showImpact {
			return printResult(cmd, out, nil)
		}
		impact, err := rosterService.TradeImpact(ctx, cliChat)
		if err != nil {
			return err
		}
		return printResult(cmd, out+"\n"+impact, nil)
	},
}

func printResult(cmd *cobra.Command, out string, err error) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
