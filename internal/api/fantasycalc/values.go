package fantasycalc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/omarshaarawi/rosterbot/internal/config"
	"github.com/omarshaarawi/rosterbot/internal/models"
)

const defaultBaseURL = "https://api.fantasycalc.com"

type Client struct {
	httpClient *http.Client
	BaseURL    string
	Config     config.FantasyCalc
}

func NewClient(cfg config.FantasyCalc) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		BaseURL:    defaultBaseURL,
		Config:     cfg,
	}
}

// GetValues returns current market values keyed by Sleeper player id.
// Players FantasyCalc cannot map to Sleeper are skipped.
func (c *Client) GetValues(ctx context.Context) (map[string]float64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/values/current", nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	q := req.URL.Query()
	q.Set("isDynasty", strconv.FormatBool(c.Config.IsDynasty))
	q.Set("numQbs", strconv.Itoa(c.Config.NumQBs))
	q.Set("numTeams", strconv.Itoa(c.Config.NumTeams))
	q.Set("ppr", strconv.FormatFloat(c.Config.PPR, 'f', -1, 64))
	req.URL.RawQuery = q.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching values: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching values: unexpected status code: %d", resp.StatusCode)
	}

	var payload []models.FantasyCalcValue
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("error decoding values: %w", err)
	}

	values := make(map[string]float64, len(payload))
	for _, v := range payload {
		if v.Player.SleeperID == "" {
			continue
		}
		values[v.Player.SleeperID] = v.Value
	}

	return values, nil
}
