package riot

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/ukpabik/mid-diff/internal/adapter"
	"github.com/ukpabik/mid-diff/internal/config"
	"github.com/ukpabik/mid-diff/internal/domain"
	"github.com/ukpabik/mid-diff/internal/logger"
	"github.com/ukpabik/mid-diff/internal/ratelimit"
)

const apiKeyHeader = "X-Riot-Token"

// defaultRetryAfter is used when a throttling response carries no usable
// Retry-After header
const defaultRetryAfter = 1 * time.Second

// Client defines the interface for the Riot API client to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/riot_client.go -package=mocks -mock_names=Client=MockRiotClient
type Client interface {
	// AccountByRiotID resolves an account (puuid included) by game name and
	// tagline
	AccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error)

	// RecentMatchIDs returns up to count recent match ids for a puuid,
	// newest first, filtered by match type
	RecentMatchIDs(ctx context.Context, puuid string, filter domain.MatchFilter, count int) ([]string, error)

	// MatchByID fetches the full match payload for a match id
	MatchByID(ctx context.Context, matchID string) (*MatchPayload, error)

	// LeagueEntries returns the ranked ladder entries for a puuid
	LeagueEntries(ctx context.Context, puuid string) ([]LeagueEntry, error)
}

// RiotClient implements Client against the live Riot API. Every call
// acquires a token from the shared admission gate before going out, and
// resolves at most one throttling response by honoring the server-supplied
// retry delay and retrying exactly once.
type RiotClient struct {
	httpClient  adapter.HTTPClient
	gate        ratelimit.Gate
	clock       adapter.Clock
	json        adapter.JSON
	regionalURL string
	platformURL string
	apiKey      string
}

// NewClient creates a new Riot API client
func NewClient(httpClient adapter.HTTPClient, gate ratelimit.Gate, clock adapter.Clock, json adapter.JSON, cfg config.RiotConfig) *RiotClient {
	return &RiotClient{
		httpClient:  httpClient,
		gate:        gate,
		clock:       clock,
		json:        json,
		regionalURL: cfg.RegionalURL,
		platformURL: cfg.PlatformURL,
		apiKey:      cfg.APIKey,
	}
}

// AccountByRiotID resolves an account by game name and tagline
func (c *RiotClient) AccountByRiotID(ctx context.Context, gameName, tagLine string) (*Account, error) {
	reqURL := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.regionalURL, url.PathEscape(gameName), url.PathEscape(tagLine))

	body, err := c.do(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var account Account
	if err := c.json.Unmarshal(body, &account); err != nil {
		return nil, &domain.UpstreamError{URL: reqURL, Err: fmt.Errorf("failed to decode account: %w", err)}
	}
	return &account, nil
}

// RecentMatchIDs returns up to count recent match ids for a puuid
func (c *RiotClient) RecentMatchIDs(ctx context.Context, puuid string, filter domain.MatchFilter, count int) ([]string, error) {
	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?type=%s&count=%d",
		c.regionalURL, url.PathEscape(puuid), filter, count)

	body, err := c.do(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var ids []string
	if err := c.json.Unmarshal(body, &ids); err != nil {
		return nil, &domain.UpstreamError{URL: reqURL, Err: fmt.Errorf("failed to decode match id list: %w", err)}
	}
	return ids, nil
}

// MatchByID fetches the full match payload for a match id
func (c *RiotClient) MatchByID(ctx context.Context, matchID string) (*MatchPayload, error) {
	reqURL := fmt.Sprintf("%s/lol/match/v5/matches/%s", c.regionalURL, url.PathEscape(matchID))

	body, err := c.do(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var payload MatchPayload
	if err := c.json.Unmarshal(body, &payload); err != nil {
		return nil, &domain.UpstreamError{URL: reqURL, Err: fmt.Errorf("failed to decode match payload: %w", err)}
	}
	return &payload, nil
}

// LeagueEntries returns the ranked ladder entries for a puuid
func (c *RiotClient) LeagueEntries(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	reqURL := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", c.platformURL, url.PathEscape(puuid))

	body, err := c.do(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	var entries []LeagueEntry
	if err := c.json.Unmarshal(body, &entries); err != nil {
		return nil, &domain.UpstreamError{URL: reqURL, Err: fmt.Errorf("failed to decode league entries: %w", err)}
	}
	return entries, nil
}

// do performs one gated GET against the Riot API. On a throttling response
// it sleeps for the server-supplied delay, reacquires a token, and retries
// exactly once; a second throttling response is fatal for this call. All
// other non-2xx responses surface immediately without retry.
func (c *RiotClient) do(ctx context.Context, reqURL string) ([]byte, error) {
	resp, err := c.gatedGet(ctx, reqURL)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		delay := retryAfter(resp.Header)
		logger.WarnCtx(ctx, "Riot API throttled request, retrying once",
			zap.String("url", reqURL),
			zap.Duration("retry_after", delay),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-c.clock.After(delay):
		}

		resp, err = c.gatedGet(ctx, reqURL)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode == http.StatusTooManyRequests {
			return nil, fmt.Errorf("%w: %s", domain.ErrRateLimitExceeded, reqURL)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.UpstreamError{StatusCode: resp.StatusCode, URL: reqURL}
	}

	return resp.Body, nil
}

// gatedGet waits for a rate-limit token, then performs the request
func (c *RiotClient) gatedGet(ctx context.Context, reqURL string) (*adapter.Response, error) {
	if err := c.gate.Acquire(ctx); err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Get(ctx, reqURL, map[string]string{
		apiKeyHeader: c.apiKey,
	})
	if err != nil {
		return nil, &domain.UpstreamError{URL: reqURL, Err: err}
	}
	return resp, nil
}

// retryAfter reads the server-supplied retry delay from a throttling
// response, in whole seconds per the Riot API contract
func retryAfter(header http.Header) time.Duration {
	value := header.Get("Retry-After")
	if value == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
