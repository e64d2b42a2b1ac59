package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	"github.com/preston-bernstein/football-players-service/internal/metrics"
)

// UpstreamTimeout bounds a single generate call on the default HTTP client.
const UpstreamTimeout = 30 * time.Second

const (
	defaultBaseURL  = "https://generativelanguage.googleapis.com/v1"
	defaultModel    = "gemini-1.5-flash"
	maxResponseBody = 1 << 20
	maxErrorBody    = 512
	replyPath       = "candidates.0.content.parts.0.text"
	metricsName     = "chat"
)

var (
	// ErrMissingAPIKey is returned when no API key is configured.
	ErrMissingAPIKey = errors.New("chat: api key not configured")
	// ErrEmptyResponse is returned when the API answers without a candidate text.
	ErrEmptyResponse = errors.New("chat: no valid response from api")
)

// APIError captures a non-2xx answer from the chat API.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("chat: unexpected status %d: %s", e.StatusCode, e.Body)
}

// Generator produces a reply for a user message.
type Generator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// Config controls how the client reaches the chat API.
type Config struct {
	APIKey        string
	BaseURL       string
	Model         string
	RatePerMinute int
	HTTPClient    *http.Client
	Metrics       *metrics.Recorder
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the generateContent endpoint.
type Client struct {
	apiKey     string
	baseURL    string
	model      string
	httpClient httpDoer
	limiter    *rate.Limiter
	metrics    *metrics.Recorder
}

// NewClient constructs a chat client. A non-positive rate disables limiting.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	model := cfg.Model
	if model == "" {
		model = defaultModel
	}
	var httpClient httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		httpClient = &http.Client{Timeout: UpstreamTimeout}
	}
	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RatePerMinute > 0 {
		limiter = rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RatePerMinute)), 1)
	}
	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		model:      model,
		httpClient: httpClient,
		limiter:    limiter,
		metrics:    cfg.Metrics,
	}
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// Generate sends message and returns the first candidate's text.
func (c *Client) Generate(ctx context.Context, message string) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("chat: wait for rate limiter: %w", err)
	}

	start := time.Now()
	reply, err := c.generate(ctx, message)
	c.metrics.RecordChatCall(time.Since(start), err)
	return reply, err
}

func (c *Client) generate(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: message}}}},
	})
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		if resp.StatusCode == http.StatusTooManyRequests {
			c.metrics.RecordRateLimit(metricsName, 0)
		}
		return "", &APIError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return "", fmt.Errorf("chat: read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("chat: decode response: %w", ErrEmptyResponse)
	}
	reply := gjson.GetBytes(body, replyPath)
	if !reply.Exists() || reply.Type != gjson.String {
		return "", ErrEmptyResponse
	}
	return reply.String(), nil
}
