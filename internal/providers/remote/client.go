package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/providers"
)

// Config controls how the client reaches the players API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches players from a REST endpoint serving a JSON array at the
// base URL and single players at <base>/<id>.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a players API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// FetchPlayers retrieves the full player list.
func (c *Client) FetchPlayers(ctx context.Context) ([]players.Player, error) {
	var items []players.Player
	if err := c.getJSON(ctx, c.baseURL, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []players.Player{}
	}
	return items, nil
}

// FetchPlayer retrieves one player by id.
func (c *Client) FetchPlayer(ctx context.Context, id string) (players.Player, error) {
	if strings.TrimSpace(id) == "" {
		return players.Player{}, providers.ErrPlayerNotFound
	}
	var p players.Player
	if err := c.getJSON(ctx, c.baseURL+"/"+url.PathEscape(id), &p); err != nil {
		return players.Player{}, err
	}
	return p, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, dest any) error {
	if c.baseURL == "" {
		return fmt.Errorf("%s: base url not configured: %w", providerName, providers.ErrProviderUnavailable)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := c.checkStatus(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("%s: decode response: %w", providerName, err)
	}
	return nil
}

func (c *Client) checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(body))

	switch resp.StatusCode {
	case http.StatusNotFound:
		return fmt.Errorf("%s: %w", providerName, providers.ErrPlayerNotFound)
	case http.StatusTooManyRequests:
		return &providers.RateLimitError{
			Provider:   providerName,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    msg,
		}
	}
	return &providers.StatusError{
		Provider:   providerName,
		StatusCode: resp.StatusCode,
		Body:       msg,
	}
}
