package remote

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/preston-bernstein/football-players-service/internal/providers"
)

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func newTestClient(base string, rt roundTripperFunc) *Client {
	return NewClient(Config{
		BaseURL:    base,
		HTTPClient: &http.Client{Transport: rt},
	})
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchPlayersDecodesArray(t *testing.T) {
	var gotPath string
	client := newTestClient("https://api.example.com/players/", func(req *http.Request) (*http.Response, error) {
		gotPath = req.URL.Path
		if req.Header.Get("Accept") != "application/json" {
			t.Fatalf("expected json accept header")
		}
		return jsonResponse(http.StatusOK, `[
			{"id":"1","playerName":"Alice","team":"Red","position":"Forward","YoB":1998,
			 "MinutesPlayed":1200,"PassingAccuracy":0.85,"isCaptain":true,"image":"a.png",
			 "feedbacks":[{"rating":5,"comment":"great","author":"x","date":"2024-01-01"}]},
			{"id":"2","playerName":"Bob","team":"Blue","position":"Midfielder"}
		]`), nil
	})

	items, err := client.FetchPlayers(context.Background())
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if gotPath != "/players" {
		t.Fatalf("expected trailing slash trimmed, got path %s", gotPath)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 players, got %d", len(items))
	}
	alice := items[0]
	if alice.PlayerName != "Alice" || !alice.IsCaptain || alice.YoB != 1998 || len(alice.Feedbacks) != 1 {
		t.Fatalf("unexpected decoded player %+v", alice)
	}
}

func TestFetchPlayersNullBodyIsEmpty(t *testing.T) {
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `null`), nil
	})
	items, err := client.FetchPlayers(context.Background())
	if err != nil || items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v %v", items, err)
	}
}

func TestFetchPlayerBuildsIDPath(t *testing.T) {
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		if req.URL.EscapedPath() != "/players/a%2Fb" {
			t.Fatalf("expected escaped id in path, got %s", req.URL.EscapedPath())
		}
		return jsonResponse(http.StatusOK, `{"id":"a/b","playerName":"Slash"}`), nil
	})
	p, err := client.FetchPlayer(context.Background(), "a/b")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if p.PlayerName != "Slash" {
		t.Fatalf("unexpected player %+v", p)
	}
}

func TestFetchPlayerNotFound(t *testing.T) {
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `"Not found"`), nil
	})
	_, err := client.FetchPlayer(context.Background(), "999")
	if !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}

	if _, err := client.FetchPlayer(context.Background(), "  "); !errors.Is(err, providers.ErrPlayerNotFound) {
		t.Fatalf("expected blank id to be not found, got %v", err)
	}
}

func TestNon2xxReturnsStatusError(t *testing.T) {
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusInternalServerError, strings.Repeat("x", 2*maxErrorBody)), nil
	})
	_, err := client.FetchPlayers(context.Background())
	st, ok := providers.AsStatusError(err)
	if !ok {
		t.Fatalf("expected StatusError, got %v", err)
	}
	if st.StatusCode != http.StatusInternalServerError || len(st.Body) != maxErrorBody {
		t.Fatalf("unexpected status error %+v", st)
	}
}

func TestTooManyRequestsReturnsRateLimitError(t *testing.T) {
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		resp := jsonResponse(http.StatusTooManyRequests, "slow down")
		resp.Header.Set("Retry-After", "7")
		return resp, nil
	})
	_, err := client.FetchPlayers(context.Background())
	rl, ok := providers.AsRateLimitError(err)
	if !ok {
		t.Fatalf("expected RateLimitError, got %v", err)
	}
	if rl.RetryAfter != 7*time.Second || rl.Provider != providerName {
		t.Fatalf("unexpected rate limit error %+v", rl)
	}
}

func TestDecodeErrorIsWrapped(t *testing.T) {
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{not json`), nil
	})
	if _, err := client.FetchPlayers(context.Background()); err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("expected decode error, got %v", err)
	}
}

func TestTransportErrorPropagates(t *testing.T) {
	boom := errors.New("dial failed")
	client := newTestClient("https://api.example.com/players", func(req *http.Request) (*http.Response, error) {
		return nil, boom
	})
	if _, err := client.FetchPlayers(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected transport error, got %v", err)
	}
}

func TestMissingBaseURLIsUnavailable(t *testing.T) {
	client := NewClient(Config{})
	if _, err := client.FetchPlayers(context.Background()); !errors.Is(err, providers.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
