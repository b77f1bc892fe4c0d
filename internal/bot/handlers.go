package bot

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/omarshaarawi/rosterbot/internal/metrics"
	"github.com/omarshaarawi/rosterbot/internal/roster"
	"github.com/omarshaarawi/rosterbot/internal/service"
)

const helpText = `Available commands:
/rosters [value|name] [starters|bench] - League rosters with optimized lineups
/team <team> - Lineup, bench and positional scores for a team
/positions - Teams ranked at every position
/search <player|position|nfl team> - Find rostered players
/refresh - Pull fresh league data
/mode <value|projection> - Rank lineups by value or projection
/norm <raw|normalized> - Show raw or 0-100 values
/window <week|avg|season> - Projection window
/settings - Show display settings
/trade new <team>, <team>[, <team>] - Start a trade
/trade add <team> - Add a team (max 3)
/trade remove <team> - Remove a team and its players
/trade send <player> > <team> - Send a player to a team
/trade drop <player> - Take a player out of the trade
/trade show - Trade values and taxes
/trade impact - Lineup changes for every team
/trade clear - Start over`

type Handler struct {
	rosterService *service.RosterService
	metrics       metrics.Metrics
}

func NewHandler(rosterService *service.RosterService, m metrics.Metrics) *Handler {
	return &Handler{rosterService: rosterService, metrics: m}
}

func (h *Handler) HandleCommand(ctx context.Context, update tgbotapi.Update) tgbotapi.MessageConfig {
	chatID := update.Message.Chat.ID
	msg := tgbotapi.NewMessage(chatID, "")
	command := strings.ToLower(update.Message.Command())
	args := strings.TrimSpace(update.Message.CommandArguments())
	msg.ParseMode = "Markdown"

	h.metrics.IncCommand(command)

	switch command {
	case "start":
		msg.Text = "Welcome to RosterBot! Use /help to see available commands."
	case "help":
		msg.Text = helpText
	case "refresh":
		h.handleRefresh(ctx, &msg)
	case "rosters":
		h.reply(&msg, "Error fetching rosters", func() (string, error) {
			sortBy, listed := rostersArgs(args)
			return h.rosterService.GetRosters(ctx, chatID, sortBy, listed)
		})
	case "team":
		if args == "" {
			msg.Text = "Please provide a team name. Usage: /team <team name>"
			break
		}
		h.reply(&msg, "Error getting team lineup", func() (string, error) {
			return h.rosterService.GetTeamLineup(ctx, chatID, args)
		})
	case "positions":
		h.reply(&msg, "Error ranking positions", func() (string, error) {
			return h.rosterService.GetPositionalRankings(ctx, chatID)
		})
	case "search":
		if args == "" {
			msg.Text = "Please provide a search term. Usage: /search <player name>"
			break
		}
		h.reply(&msg, "Error searching players", func() (string, error) {
			return h.rosterService.SearchPlayers(ctx, chatID, args)
		})
	case "mode":
		h.handleSetting(&msg, chatID, args, h.rosterService.SetRanking)
	case "norm":
		h.handleSetting(&msg, chatID, args, h.rosterService.SetNormalization)
	case "window":
		h.handleSetting(&msg, chatID, args, h.rosterService.SetWindow)
	case "settings":
		msg.Text = h.rosterService.DescribeDisplayConfig(chatID)
	case "trade":
		h.handleTrade(ctx, &msg, chatID, args)
	default:
		msg.Text = "Unknown command. Use /help to see available commands."
	}

	return msg
}

func (h *Handler) reply(msg *tgbotapi.MessageConfig, errPrefix string, fn func() (string, error)) {
	text, err := fn()
	if err != nil {
		msg.Text = fmt.Sprintf("%s: %v", errPrefix, err)
		msg.ParseMode = ""
		return
	}
	msg.Text = text
}

func (h *Handler) handleRefresh(ctx context.Context, msg *tgbotapi.MessageConfig) {
	league, err := h.rosterService.Refresh(ctx)
	if err != nil {
		msg.Text = fmt.Sprintf("Error refreshing data: %v", err)
		msg.ParseMode = ""
		return
	}
	msg.Text = fmt.Sprintf("🔄 Refreshed *%s*: %d teams, week %d", league.Name, len(league.Teams), league.Week)
}

func (h *Handler) handleSetting(msg *tgbotapi.MessageConfig, chatID int64, args string, set func(int64, string) (string, error)) {
	if args == "" {
		msg.Text = h.rosterService.DescribeDisplayConfig(chatID)
		return
	}
	h.reply(msg, "Error updating settings", func() (string, error) {
		return set(chatID, args)
	})
}

func (h *Handler) handleTrade(ctx context.Context, msg *tgbotapi.MessageConfig, chatID int64, args string) {
	sub, rest, _ := strings.Cut(args, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(sub) {
	case "new", "start":
		h.reply(msg, "Error starting trade", func() (string, error) {
			return h.rosterService.StartTrade(ctx, chatID, splitList(rest)...)
		})
	case "add":
		h.reply(msg, "Error adding team", func() (string, error) {
			return h.rosterService.AddTradeTeam(ctx, chatID, rest)
		})
	case "remove":
		h.reply(msg, "Error removing team", func() (string, error) {
			return h.rosterService.RemoveTradeTeam(ctx, chatID, rest)
		})
	case "send":
		player, team, ok := strings.Cut(rest, ">")
		if !ok {
			msg.Text = "Usage: /trade send <player> > <team>"
			return
		}
		h.reply(msg, "Error sending player", func() (string, error) {
			return h.rosterService.SendPlayer(ctx, chatID, strings.TrimSpace(player), strings.TrimSpace(team))
		})
	case "drop":
		h.reply(msg, "Error dropping player", func() (string, error) {
			return h.rosterService.DropTradePlayer(ctx, chatID, rest)
		})
	case "", "show":
		h.reply(msg, "Error showing trade", func() (string, error) {
			return h.rosterService.ShowTrade(ctx, chatID)
		})
	case "impact":
		h.reply(msg, "Error computing impact", func() (string, error) {
			return h.rosterService.TradeImpact(ctx, chatID)
		})
	case "clear":
		msg.Text = h.rosterService.ClearTrade(chatID)
	default:
		msg.Text = "Unknown trade command. Use /help to see available commands."
	}
}

// rostersArgs splits "/rosters name bench" into a sort key and a listed
// filter, in either order.
func rostersArgs(args string) (sortBy, listed string) {
	for _, f := range strings.Fields(args) {
		if _, ok := roster.ParseListedFilter(f); ok {
			listed = f
			continue
		}
		sortBy = f
	}
	return sortBy, listed
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
