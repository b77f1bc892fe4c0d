package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.sleeper.app/v1"

// Sleeper blocks clients making more than 1000 calls a minute.
const requestsPerMinute = 1000

type Client struct {
	httpClient  *http.Client
	rateLimiter *rate.Limiter
	BaseURL     string
}

func NewClient() *Client {
	return &Client{
		// the full NFL player dump is several megabytes
		httpClient:  &http.Client{Timeout: 60 * time.Second},
		rateLimiter: rate.NewLimiter(rate.Every(time.Minute/requestsPerMinute), 10),
		BaseURL:     defaultBaseURL,
	}
}

func (c *Client) Get(ctx context.Context, endpoint string, result interface{}) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter: %w", err)
	}

	url := fmt.Sprintf("%s%s", c.BaseURL, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("error decoding response: %w", err)
	}

	return nil
}
