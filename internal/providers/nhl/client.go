package nhl

import (
	"context"
	"fmt"
	"time"

	"github.com/puckwatch/puckwatch/internal/adapter"
	"github.com/puckwatch/puckwatch/internal/domain"
)

const (
	// DefaultBaseURL is the public NHL web API host
	DefaultBaseURL = "https://api-web.nhle.com"
	// DefaultTimeout bounds one score request end to end
	DefaultTimeout = 30 * time.Second
)

// Client defines the interface for NHL score API operations to enable mocking
//
//go:generate mockgen -source=client.go -destination=../../mocks/nhl_client.go -package=mocks -mock_names=Client=MockNHLClient
type Client interface {
	// GetScores fetches the daily score payload for a calendar date
	GetScores(ctx context.Context, date time.Time) (*ScoreResponse, error)
	// ScoreURL returns the endpoint URL for a calendar date
	ScoreURL(date time.Time) string
}

// NHLClient implements the NHL score API client
type NHLClient struct {
	httpClient adapter.HTTPClient
	baseURL    string
}

// NewClient creates a new NHL score API client. An empty baseURL falls back
// to the public host.
func NewClient(httpClient adapter.HTTPClient, baseURL string) Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &NHLClient{
		httpClient: httpClient,
		baseURL:    baseURL,
	}
}

// ScoreURL returns the endpoint URL for a calendar date
func (c *NHLClient) ScoreURL(date time.Time) string {
	return fmt.Sprintf("%s/v1/score/%s", c.baseURL, domain.FormatGameDate(date))
}

// GetScores fetches the daily score payload for a calendar date
func (c *NHLClient) GetScores(ctx context.Context, date time.Time) (*ScoreResponse, error) {
	var response ScoreResponse
	if err := c.httpClient.Get(ctx, c.ScoreURL(date), &response); err != nil {
		return nil, fmt.Errorf("failed to call NHL score API: %w", err)
	}
	return &response, nil
}
