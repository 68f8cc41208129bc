package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/store/schema"
)

// Store defines the interface for database operations
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// GetGameByID retrieves a game with its associations by internal ID
	GetGameByID(ctx context.Context, id int64) (*schema.Game, error)
	// GetGameByExternalID retrieves a game with its associations by the NHL API game ID
	GetGameByExternalID(ctx context.Context, externalID int64) (*schema.Game, error)
	// ListGamesByDate retrieves all games on a calendar date, ordered by start time
	ListGamesByDate(ctx context.Context, date time.Time) ([]schema.Game, error)
	// ListUpcomingGames retrieves scheduled (FUT) games on or after the given date,
	// ordered by date then start time, capped at limit
	ListUpcomingGames(ctx context.Context, from time.Time, limit int) ([]schema.Game, error)
	// ReconcileGameDay reconciles one day of games into the store in a single
	// transaction and records the run's fetch log. Individual malformed games
	// are skipped without aborting the batch.
	ReconcileGameDay(ctx context.Context, input ReconcileGameDayInput) (*ReconcileGameDayResult, error)
	// CreateFetchLog records an ingestion run outside a reconciliation, used
	// for runs that failed before reaching the store
	CreateFetchLog(ctx context.Context, input CreateFetchLogInput) error
	// ListFetchLogs retrieves the most recent fetch logs, newest first
	ListFetchLogs(ctx context.Context, limit int) ([]schema.FetchLog, error)
	// UpsertBotUser creates or refreshes a bot user from its Telegram profile,
	// always bumping last_seen_at
	UpsertBotUser(ctx context.Context, input UpsertBotUserInput) (*schema.BotUser, error)
	// GetBotUserByTelegramID retrieves a bot user by Telegram account ID
	GetBotUserByTelegramID(ctx context.Context, telegramID int64) (*schema.BotUser, error)
	// ListBotUsers retrieves a page of bot users ordered by registration time,
	// newest first, along with the total user count
	ListBotUsers(ctx context.Context, limit int, offset int) ([]schema.BotUser, int64, error)
	// GetBotUserStats computes aggregate user counts; activeSince bounds the
	// "recently active" bucket
	GetBotUserStats(ctx context.Context, activeSince time.Time) (*BotUserStats, error)
}

// TeamInput carries the team fields reported by the score API
type TeamInput struct {
	ExternalID   int64
	Name         string
	Abbreviation string
	LogoURL      string
}

// VenueInput carries the venue fields reported by the score API
type VenueInput struct {
	Name     string
	Timezone string
}

// BroadcastInput carries one TV broadcast of a game
type BroadcastInput struct {
	ExternalID     int64
	Market         domain.BroadcastMarket
	CountryCode    string
	Network        string
	SequenceNumber int
}

// GameInput carries one normalized game ready for reconciliation
type GameInput struct {
	ExternalID       int64
	Season           int
	GameType         domain.GameType
	GameDate         time.Time
	StartTimeUTC     time.Time
	EasternUTCOffset string
	VenueUTCOffset   string
	HomeTeam         TeamInput
	AwayTeam         TeamInput
	Venue            *VenueInput
	State            domain.GameState
	ScheduleState    string
	NeutralSite      bool
	HomeScore        *int
	AwayScore        *int
	HomeShotsOnGoal  *int
	AwayShotsOnGoal  *int
	HomeRecord       *string
	AwayRecord       *string
	GameCenterLink   *string
	TicketsLink      *string
	Broadcasts       []BroadcastInput
}

// ReconcileGameDayInput is one ingestion run's worth of games
type ReconcileGameDayInput struct {
	RunID     uuid.UUID
	FetchDate time.Time
	SourceURL string
	Games     []GameInput
}

// ReconcileGameDayResult reports the outcome of a reconciliation run
type ReconcileGameDayResult struct {
	// Processed is the number of games successfully reconciled
	Processed int
	// Skipped is the number of games dropped due to per-game errors
	Skipped int
}

// CreateFetchLogInput records an ingestion run
type CreateFetchLogInput struct {
	RunID          uuid.UUID
	FetchDate      time.Time
	Success        bool
	GamesProcessed int
	ErrorMessage   *string
	SourceURL      string
}

// UpsertBotUserInput carries a Telegram user profile
type UpsertBotUserInput struct {
	TelegramID   int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
	IsBot        bool
	IsPremium    bool
	IsVerified   bool
}

// BotUserStats aggregates user counts for the stats views
type BotUserStats struct {
	Total    int64
	Active   int64
	Premium  int64
	Verified int64
}
