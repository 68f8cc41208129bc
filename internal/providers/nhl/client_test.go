package nhl

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puckwatch/puckwatch/internal/adapter"
	"github.com/puckwatch/puckwatch/internal/logger"
)

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	os.Exit(m.Run())
}

const scorePayload = `{
	"currentDate": "2026-01-15",
	"games": [
		{
			"id": 2026020500,
			"season": 20252026,
			"gameType": 2,
			"gameDate": "2026-01-15",
			"startTimeUTC": "2026-01-16T00:00:00Z",
			"easternUTCOffset": "-05:00",
			"venueUTCOffset": "-05:00",
			"venueTimezone": "America/Toronto",
			"venue": {"default": "Scotiabank Arena"},
			"gameState": "FUT",
			"gameScheduleState": "OK",
			"homeTeam": {"id": 10, "name": {"default": "Maple Leafs"}, "abbrev": "TOR"},
			"awayTeam": {"id": 6, "name": {"default": "Bruins"}, "abbrev": "BOS"},
			"tvBroadcasts": [
				{"id": 281, "market": "N", "countryCode": "US", "network": "ESPN+", "sequenceNumber": 1}
			]
		}
	]
}`

func TestGetScores(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/score/2026-01-15", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(scorePayload))
		}))
		defer server.Close()

		client := NewClient(adapter.NewHTTPClient(5*time.Second), server.URL)

		response, err := client.GetScores(context.Background(), date)
		require.NoError(t, err)
		require.NotNil(t, response)
		assert.Equal(t, "2026-01-15", response.CurrentDate)
		require.Len(t, response.Games, 1)

		game := response.Games[0]
		assert.Equal(t, int64(2026020500), game.ID)
		assert.Equal(t, "FUT", game.GameState)
		assert.Equal(t, "Maple Leafs", game.HomeTeam.Name.Default)
		assert.Equal(t, "TOR", game.HomeTeam.Abbrev)
		require.NotNil(t, game.Venue)
		assert.Equal(t, "Scotiabank Arena", game.Venue.Default)
		require.Len(t, game.TVBroadcasts, 1)
		assert.Equal(t, "N", game.TVBroadcasts[0].Market)
	})

	t.Run("server error fails without retry", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := NewClient(adapter.NewHTTPClient(5*time.Second), server.URL)

		_, err := client.GetScores(context.Background(), date)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unexpected status code 500")
		assert.Equal(t, 1, calls)
	})

	t.Run("rate limit is retried", func(t *testing.T) {
		var calls int
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls++
			if calls == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(scorePayload))
		}))
		defer server.Close()

		client := NewClient(adapter.NewHTTPClient(5*time.Second), server.URL)

		response, err := client.GetScores(context.Background(), date)
		require.NoError(t, err)
		require.Len(t, response.Games, 1)
		assert.Equal(t, 2, calls)
	})

	t.Run("malformed body fails", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := NewClient(adapter.NewHTTPClient(5*time.Second), server.URL)

		_, err := client.GetScores(context.Background(), date)
		require.Error(t, err)
	})
}

func TestScoreURL(t *testing.T) {
	date := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	client := NewClient(adapter.NewHTTPClient(time.Second), "")
	assert.Equal(t, "https://api-web.nhle.com/v1/score/2026-01-15", client.ScoreURL(date))

	client = NewClient(adapter.NewHTTPClient(time.Second), "http://localhost:8080")
	assert.Equal(t, "http://localhost:8080/v1/score/2026-01-15", client.ScoreURL(date))
}
