package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/puckwatch/puckwatch/internal/api/middleware"
	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/logger"
	"github.com/puckwatch/puckwatch/internal/mocks"
	"github.com/puckwatch/puckwatch/internal/store"
	"github.com/puckwatch/puckwatch/internal/store/schema"
)

const testAPIKey = "test-api-key"

func TestMain(m *testing.M) {
	if err := logger.Initialize(logger.Config{Debug: true}); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

var testNow = time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

// stubIngestor satisfies Ingestor for handler tests without a live NHL client
type stubIngestor struct {
	resolveDate func(arg string) (time.Time, error)
	run         func(ctx context.Context, date time.Time) (*store.ReconcileGameDayResult, error)
}

func (s *stubIngestor) ResolveDate(arg string) (time.Time, error) {
	return s.resolveDate(arg)
}

func (s *stubIngestor) Run(ctx context.Context, date time.Time) (*store.ReconcileGameDayResult, error) {
	return s.run(ctx, date)
}

func setupRouter(t *testing.T, ingestor Ingestor) (*gin.Engine, *mocks.MockStore, *mocks.MockClock) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	st := mocks.NewMockStore(ctrl)
	clock := mocks.NewMockClock(ctrl)

	router := gin.New()
	SetupRoutes(router, NewHandler(st, ingestor, clock), middleware.AuthConfig{
		APIKeys: []string{testAPIKey},
	})
	return router, st, clock
}

func performRequest(router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func buildStoredGame() schema.Game {
	homeScore, awayScore := 4, 2
	return schema.Game{
		ID:           1,
		ExternalID:   2026020500,
		Season:       20252026,
		GameType:     domain.GameTypeRegular,
		GameDate:     time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
		StartTimeUTC: time.Date(2026, 1, 16, 0, 0, 0, 0, time.UTC),
		State:        domain.GameStateFinal,
		HomeScore:    &homeScore,
		AwayScore:    &awayScore,
		HomeTeam:     &schema.Team{ID: 1, ExternalID: 10, Name: "Maple Leafs", Abbreviation: "TOR"},
		AwayTeam:     &schema.Team{ID: 2, ExternalID: 6, Name: "Bruins", Abbreviation: "BOS"},
	}
}

func TestHealthCheck(t *testing.T) {
	router, _, _ := setupRouter(t, nil)

	w := performRequest(router, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "ok"}`, w.Body.String())
}

func TestListGames(t *testing.T) {
	t.Run("returns games for a date", func(t *testing.T) {
		router, st, _ := setupRouter(t, nil)

		st.EXPECT().ListGamesByDate(gomock.Any(), time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)).
			Return([]schema.Game{buildStoredGame()}, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/games?date=2026-01-15", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Date  string    `json:"date"`
			Games []GameDTO `json:"games"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "2026-01-15", response.Date)
		require.Len(t, response.Games, 1)
		assert.Equal(t, int64(2026020500), response.Games[0].ExternalID)
		require.NotNil(t, response.Games[0].Winner)
		assert.Equal(t, "TOR", response.Games[0].Winner.Abbreviation)
	})

	t.Run("missing date is a bad request", func(t *testing.T) {
		router, _, _ := setupRouter(t, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/games", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "bad_request")
	})

	t.Run("unparseable date fails validation", func(t *testing.T) {
		router, _, _ := setupRouter(t, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/games?date=01/15/2026", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_failed")
	})

	t.Run("store failure is an internal error", func(t *testing.T) {
		router, st, _ := setupRouter(t, nil)

		st.EXPECT().ListGamesByDate(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("connection refused"))

		w := performRequest(router, http.MethodGet, "/api/v1/games?date=2026-01-15", "", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestGetGame(t *testing.T) {
	t.Run("returns a game by ID", func(t *testing.T) {
		router, st, _ := setupRouter(t, nil)

		game := buildStoredGame()
		st.EXPECT().GetGameByID(gomock.Any(), int64(1)).Return(&game, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/games/1", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var dto GameDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
		assert.Equal(t, int64(1), dto.ID)
		assert.Equal(t, domain.GameStateFinal, dto.State)
	})

	t.Run("unknown game is not found", func(t *testing.T) {
		router, st, _ := setupRouter(t, nil)

		st.EXPECT().GetGameByID(gomock.Any(), int64(999)).Return(nil, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/games/999", "", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "not_found")
	})

	t.Run("non-numeric ID is a bad request", func(t *testing.T) {
		router, _, _ := setupRouter(t, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/games/abc", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListUsers(t *testing.T) {
	router, st, clock := setupRouter(t, nil)

	st.EXPECT().ListBotUsers(gomock.Any(), 20, 20).
		Return([]schema.BotUser{{TelegramID: 21, FirstName: "Page2"}}, int64(21), nil)
	clock.EXPECT().Now().Return(testNow)
	st.EXPECT().GetBotUserStats(gomock.Any(), testNow.Add(-30*24*time.Hour)).
		Return(&store.BotUserStats{Total: 21, Active: 5, Premium: 2, Verified: 1}, nil)

	w := performRequest(router, http.MethodGet, "/api/v1/users?page=2", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Users      []BotUserDTO `json:"users"`
		Page       int          `json:"page"`
		TotalPages int          `json:"total_pages"`
		Stats      UserStatsDTO `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, 2, response.Page)
	assert.Equal(t, 2, response.TotalPages)
	require.Len(t, response.Users, 1)
	assert.Equal(t, int64(21), response.Users[0].TelegramID)
	assert.Equal(t, int64(5), response.Stats.Active)
}

func TestListFetchLogs(t *testing.T) {
	t.Run("returns recent logs", func(t *testing.T) {
		router, st, _ := setupRouter(t, nil)

		st.EXPECT().ListFetchLogs(gomock.Any(), 20).Return([]schema.FetchLog{
			{RunID: uuid.New(), FetchDate: testNow, Success: true, GamesProcessed: 3},
		}, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/fetch-logs", "", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var response struct {
			FetchLogs []FetchLogDTO `json:"fetch_logs"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.FetchLogs, 1)
		assert.True(t, response.FetchLogs[0].Success)
		assert.Equal(t, 3, response.FetchLogs[0].GamesProcessed)
	})

	t.Run("limit is clamped to the maximum", func(t *testing.T) {
		router, st, _ := setupRouter(t, nil)

		st.EXPECT().ListFetchLogs(gomock.Any(), 100).Return(nil, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/fetch-logs?limit=500", "", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("non-positive limit fails validation", func(t *testing.T) {
		router, _, _ := setupRouter(t, nil)

		w := performRequest(router, http.MethodGet, "/api/v1/fetch-logs?limit=0", "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTriggerFetch(t *testing.T) {
	authHeader := map[string]string{
		"Authorization": "APIKey " + testAPIKey,
		"Content-Type":  "application/json",
	}
	fetchDate := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("requires authentication", func(t *testing.T) {
		router, _, _ := setupRouter(t, nil)

		w := performRequest(router, http.MethodPost, "/api/v1/fetch", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a wrong key", func(t *testing.T) {
		router, _, _ := setupRouter(t, nil)

		w := performRequest(router, http.MethodPost, "/api/v1/fetch", "", map[string]string{
			"Authorization": "APIKey wrong",
		})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("runs an ingestion pass for the requested date", func(t *testing.T) {
		ingestor := &stubIngestor{
			resolveDate: func(arg string) (time.Time, error) {
				assert.Equal(t, "2026-01-15", arg)
				return fetchDate, nil
			},
			run: func(_ context.Context, date time.Time) (*store.ReconcileGameDayResult, error) {
				assert.Equal(t, fetchDate, date)
				return &store.ReconcileGameDayResult{Processed: 5, Skipped: 1}, nil
			},
		}
		router, _, _ := setupRouter(t, ingestor)

		w := performRequest(router, http.MethodPost, "/api/v1/fetch", `{"date": "2026-01-15"}`, authHeader)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"date": "2026-01-15", "processed": 5, "skipped": 1}`, w.Body.String())
	})

	t.Run("empty body defaults the date", func(t *testing.T) {
		ingestor := &stubIngestor{
			resolveDate: func(arg string) (time.Time, error) {
				assert.Empty(t, arg)
				return fetchDate, nil
			},
			run: func(context.Context, time.Time) (*store.ReconcileGameDayResult, error) {
				return &store.ReconcileGameDayResult{}, nil
			},
		}
		router, _, _ := setupRouter(t, ingestor)

		w := performRequest(router, http.MethodPost, "/api/v1/fetch", "", authHeader)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid date fails validation", func(t *testing.T) {
		ingestor := &stubIngestor{
			resolveDate: func(arg string) (time.Time, error) {
				return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidDate, arg)
			},
		}
		router, _, _ := setupRouter(t, ingestor)

		w := performRequest(router, http.MethodPost, "/api/v1/fetch", `{"date": "tomorrow"}`, authHeader)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "validation_failed")
	})

	t.Run("run failure is an internal error", func(t *testing.T) {
		ingestor := &stubIngestor{
			resolveDate: func(string) (time.Time, error) { return fetchDate, nil },
			run: func(context.Context, time.Time) (*store.ReconcileGameDayResult, error) {
				return nil, errors.New("fetch failed")
			},
		}
		router, _, _ := setupRouter(t, ingestor)

		w := performRequest(router, http.MethodPost, "/api/v1/fetch", "{}", authHeader)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
