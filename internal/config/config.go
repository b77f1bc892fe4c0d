package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	Sleeper     Sleeper
	FantasyCalc FantasyCalc
	ESPNAPI     ESPNAPI
	Server      Server
	League      LeagueSettings `ignored:"true"`
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN"`
	ChatID int64  `envconfig:"CHAT_ID"`
}

type Sleeper struct {
	LeagueID string `envconfig:"SLEEPER_LEAGUE_ID" required:"true"`
}

type FantasyCalc struct {
	IsDynasty bool    `envconfig:"FANTASYCALC_DYNASTY" default:"false"`
	NumQBs    int     `envconfig:"FANTASYCALC_NUM_QBS" default:"2"`
	NumTeams  int     `envconfig:"FANTASYCALC_NUM_TEAMS" default:"10"`
	PPR       float64 `envconfig:"FANTASYCALC_PPR" default:"1"`
}

// ESPNAPI points at the league whose projections are used. SWID and
// ESPN_S2 are only needed for private leagues.
type ESPNAPI struct {
	Year     string `envconfig:"YEAR" default:"2025"`
	LeagueID string `envconfig:"ESPN_LEAGUE_ID"`
	SWID     string `envconfig:"SWID"`
	ESPNS2   string `envconfig:"ESPN_S2"`
}

type Server struct {
	Addr               string        `envconfig:"HTTP_ADDR" default:":80"`
	RefreshInterval    time.Duration `envconfig:"REFRESH_INTERVAL" default:"6h"`
	CacheTTL           time.Duration `envconfig:"CACHE_TTL" default:"1h"`
	LeagueSettingsFile string        `envconfig:"LEAGUE_SETTINGS_FILE"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}

	c.League = DefaultLeagueSettings()
	if c.Server.LeagueSettingsFile != "" {
		league, err := LoadLeagueSettings(c.Server.LeagueSettingsFile)
		if err != nil {
			return nil, err
		}
		c.League = league
	}

	return &c, nil
}
