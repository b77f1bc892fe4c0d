package bot

import (
	"context"
	"errors"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarshaarawi/rosterbot/internal/metrics"
	"github.com/omarshaarawi/rosterbot/internal/models"
	"github.com/omarshaarawi/rosterbot/internal/repository/memory"
	"github.com/omarshaarawi/rosterbot/internal/service"
)

type staticSource struct {
	err error
}

func (s staticSource) FetchLeague(context.Context) (*models.League, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.League{
		Name:        "Handler League",
		Week:        5,
		MaxRawValue: 9000,
		LastUpdated: time.Now(),
		Teams: []models.Team{
			{RosterID: "1", TeamName: "Sharks", Players: []models.Player{
				{ID: "a", Name: "Josh Allen", Position: models.PositionQB, Team: "BUF", RawValue: 9000},
			}},
			{RosterID: "2", TeamName: "Jets", Players: []models.Player{
				{ID: "b", Name: "Bijan Robinson", Position: models.PositionRB, Team: "ATL", RawValue: 8000},
			}},
		},
	}, nil
}

var handlerSlots = []models.SlotDefinition{
	{Name: "QB", Eligible: []models.Position{models.PositionQB}, Count: 1},
	{Name: "RB", Eligible: []models.Position{models.PositionRB}, Count: 1},
}

func newHandler(src service.LeagueSource) (*Handler, *metrics.Mock) {
	m := metrics.NewMock()
	svc := service.NewRosterService(src, memory.NewRepository(), m, handlerSlots, time.Hour)
	return NewHandler(svc, m), m
}

func command(text string) tgbotapi.Update {
	length := len(text)
	for i, r := range text {
		if r == ' ' {
			length = i
			break
		}
	}
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Text:     text,
		Chat:     &tgbotapi.Chat{ID: 99},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: length}},
	}}
}

func TestHandleCommand(t *testing.T) {
	h, m := newHandler(staticSource{})
	ctx := context.Background()

	tests := []struct {
		text string
		want string
	}{
		{"/start", "Welcome to RosterBot"},
		{"/help", "/trade send <player> > <team>"},
		{"/rosters", "Handler League Rosters"},
		{"/rosters age", "Error fetching rosters"},
		{"/rosters bench", "▫️ BN QB Josh Allen"},
		{"/rosters starters name", "starters only"},
		{"/team", "Please provide a team name"},
		{"/team sharks", "*Sharks*"},
		{"/team nobody at all", "team not found"},
		{"/positions", "*QB*\n1. Sharks - 9000"},
		{"/search", "Please provide a search term"},
		{"/search bijan", "Bijan Robinson"},
		{"/refresh", "Refreshed *Handler League*: 2 teams, week 5"},
		{"/dance", "Unknown command"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			msg := h.HandleCommand(ctx, command(tt.text))
			assert.Equal(t, int64(99), msg.ChatID)
			assert.Contains(t, msg.Text, tt.want)
		})
	}

	assert.Equal(t, 3, m.Commands("team"))
}

func TestHandleSettings(t *testing.T) {
	h, _ := newHandler(staticSource{})
	ctx := context.Background()

	msg := h.HandleCommand(ctx, command("/norm normalized"))
	assert.Contains(t, msg.Text, "normalized")

	msg = h.HandleCommand(ctx, command("/window season"))
	assert.Contains(t, msg.Text, "season-total")

	msg = h.HandleCommand(ctx, command("/mode projection"))
	assert.Contains(t, msg.Text, "projection")

	msg = h.HandleCommand(ctx, command("/mode"))
	assert.Contains(t, msg.Text, "Ranking: projection")

	msg = h.HandleCommand(ctx, command("/mode sideways"))
	assert.Contains(t, msg.Text, "Error updating settings")
	assert.Empty(t, msg.ParseMode)

	msg = h.HandleCommand(ctx, command("/settings"))
	assert.Contains(t, msg.Text, "Values: normalized")
}

func TestHandleTrade(t *testing.T) {
	h, _ := newHandler(staticSource{})
	ctx := context.Background()

	msg := h.HandleCommand(ctx, command("/trade show"))
	assert.Contains(t, msg.Text, "no trade in progress")

	msg = h.HandleCommand(ctx, command("/trade new Sharks, Jets"))
	assert.Contains(t, msg.Text, "(2/3 teams)")

	msg = h.HandleCommand(ctx, command("/trade send Josh Allen Jets"))
	assert.Contains(t, msg.Text, "Usage: /trade send")

	msg = h.HandleCommand(ctx, command("/trade send Josh Allen > Jets"))
	assert.Contains(t, msg.Text, "QB Josh Allen (9000) → Jets")

	msg = h.HandleCommand(ctx, command("/trade send Bijan Robinson > Sharks"))
	assert.Contains(t, msg.Text, "*Sharks*: in 8000, out 9000, net -1000")

	msg = h.HandleCommand(ctx, command("/trade impact"))
	assert.Contains(t, msg.Text, "Bijan Robinson: none → starter")

	msg = h.HandleCommand(ctx, command("/trade drop Bijan Robinson"))
	assert.NotContains(t, msg.Text, "Bijan")

	msg = h.HandleCommand(ctx, command("/trade remove Jets"))
	assert.Contains(t, msg.Text, "(1/3 teams)")

	msg = h.HandleCommand(ctx, command("/trade add Jets"))
	assert.Contains(t, msg.Text, "(2/3 teams)")

	msg = h.HandleCommand(ctx, command("/trade clear"))
	assert.Contains(t, msg.Text, "Trade cleared")

	msg = h.HandleCommand(ctx, command("/trade"))
	assert.Contains(t, msg.Text, "No teams yet")

	msg = h.HandleCommand(ctx, command("/trade juggle"))
	assert.Contains(t, msg.Text, "Unknown trade command")
}

func TestHandleRefreshFailure(t *testing.T) {
	h, m := newHandler(staticSource{err: errors.New("sleeper is down")})

	msg := h.HandleCommand(context.Background(), command("/refresh"))
	assert.Contains(t, msg.Text, "Error refreshing data: refreshing league: sleeper is down")
	assert.Equal(t, 1, m.RefreshFailures())
}

func TestRostersArgs(t *testing.T) {
	sortBy, listed := rostersArgs("name bench")
	assert.Equal(t, "name", sortBy)
	assert.Equal(t, "bench", listed)

	sortBy, listed = rostersArgs("starters")
	assert.Empty(t, sortBy)
	assert.Equal(t, "starters", listed)

	sortBy, listed = rostersArgs("")
	assert.Empty(t, sortBy)
	assert.Empty(t, listed)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Sharks", "Jets", "Big Team"}, splitList(" Sharks,Jets , Big Team,, "))
	assert.Nil(t, splitList(""))
	require.Len(t, splitList("one"), 1)
}
