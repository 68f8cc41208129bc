package rest

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/puckwatch/puckwatch/internal/adapter"
	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/store"
	"github.com/puckwatch/puckwatch/internal/view"
)

const (
	defaultFetchLogLimit = 20
	maxFetchLogLimit     = 100
)

// Ingestor triggers an ingestion run for a calendar date
type Ingestor interface {
	// ResolveDate parses an optional YYYY-MM-DD argument, defaulting to today
	ResolveDate(arg string) (time.Time, error)
	// Run fetches and reconciles one calendar date
	Run(ctx context.Context, date time.Time) (*store.ReconcileGameDayResult, error)
}

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// ListGames retrieves games for a calendar date
	// GET /api/v1/games?date=YYYY-MM-DD
	ListGames(c *gin.Context)

	// GetGame retrieves a single game by internal ID
	// GET /api/v1/games/:id
	GetGame(c *gin.Context)

	// ListUsers retrieves one page of bot users with aggregate stats
	// GET /api/v1/users?page=N
	ListUsers(c *gin.Context)

	// ListFetchLogs retrieves the most recent ingestion runs
	// GET /api/v1/fetch-logs?limit=N
	ListFetchLogs(c *gin.Context)

	// TriggerFetch runs an ingestion pass (requires API key)
	// POST /api/v1/fetch
	TriggerFetch(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	store    store.Store
	ingestor Ingestor
	clock    adapter.Clock
}

// NewHandler creates a new REST API handler
func NewHandler(st store.Store, ingestor Ingestor, clock adapter.Clock) Handler {
	return &handler{
		store:    st,
		ingestor: ingestor,
		clock:    clock,
	}
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// ListGames retrieves games for a calendar date
func (h *handler) ListGames(c *gin.Context) {
	dateArg := c.Query("date")
	if dateArg == "" {
		respondBadRequest(c, "date query parameter is required")
		return
	}
	date, err := domain.ParseGameDate(dateArg)
	if err != nil {
		respondValidationError(c, domain.ErrInvalidDate.Error())
		return
	}

	games, err := h.store.ListGamesByDate(c.Request.Context(), date)
	if err != nil {
		respondInternalError(c, err, "Failed to list games")
		return
	}

	dtos := make([]*GameDTO, 0, len(games))
	for i := range games {
		dtos = append(dtos, toGameDTO(&games[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"date":  dateArg,
		"games": dtos,
	})
}

// GetGame retrieves a single game by internal ID
func (h *handler) GetGame(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "Invalid game ID")
		return
	}

	game, err := h.store.GetGameByID(c.Request.Context(), id)
	if err != nil {
		respondInternalError(c, err, "Failed to get game")
		return
	}
	if game == nil {
		respondNotFound(c, domain.ErrGameNotFound.Error())
		return
	}

	c.JSON(http.StatusOK, toGameDTO(game))
}

// ListUsers retrieves one page of bot users with aggregate stats
func (h *handler) ListUsers(c *gin.Context) {
	page := view.ParsePage(c.Query("page"))

	users, total, err := h.store.ListBotUsers(c.Request.Context(), view.UsersPageSize, (page-1)*view.UsersPageSize)
	if err != nil {
		respondInternalError(c, err, "Failed to list users")
		return
	}

	stats, err := h.store.GetBotUserStats(c.Request.Context(), h.clock.Now().Add(-view.ActiveWindow))
	if err != nil {
		respondInternalError(c, err, "Failed to get user stats")
		return
	}

	dtos := make([]BotUserDTO, 0, len(users))
	for _, user := range users {
		dtos = append(dtos, toBotUserDTO(user))
	}
	c.JSON(http.StatusOK, gin.H{
		"users":       dtos,
		"page":        page,
		"total_pages": view.TotalPages(total, view.UsersPageSize),
		"stats":       toUserStatsDTO(stats),
	})
}

// ListFetchLogs retrieves the most recent ingestion runs
func (h *handler) ListFetchLogs(c *gin.Context) {
	limit := defaultFetchLogLimit
	if arg := c.Query("limit"); arg != "" {
		parsed, err := strconv.Atoi(arg)
		if err != nil || parsed < 1 {
			respondValidationError(c, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxFetchLogLimit)
	}

	logs, err := h.store.ListFetchLogs(c.Request.Context(), limit)
	if err != nil {
		respondInternalError(c, err, "Failed to list fetch logs")
		return
	}

	dtos := make([]FetchLogDTO, 0, len(logs))
	for _, log := range logs {
		dtos = append(dtos, toFetchLogDTO(log))
	}
	c.JSON(http.StatusOK, gin.H{"fetch_logs": dtos})
}

// triggerFetchRequest is the body of POST /api/v1/fetch
type triggerFetchRequest struct {
	Date string `json:"date"`
}

// TriggerFetch runs an ingestion pass for the requested date (today when omitted)
func (h *handler) TriggerFetch(c *gin.Context) {
	var req triggerFetchRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "Invalid request body", err.Error())
			return
		}
	}

	date, err := h.ingestor.ResolveDate(req.Date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidDate) {
			respondValidationError(c, err.Error())
			return
		}
		respondInternalError(c, err, "Failed to resolve date")
		return
	}

	result, err := h.ingestor.Run(c.Request.Context(), date)
	if err != nil {
		respondInternalError(c, err, "Fetch failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":      domain.FormatGameDate(date),
		"processed": result.Processed,
		"skipped":   result.Skipped,
	})
}
