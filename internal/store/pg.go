package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/logger"
	"github.com/puckwatch/puckwatch/internal/store/schema"
)

// gameDayLockScope is the advisory lock namespace used to serialize
// reconciliation runs for the same calendar date.
const gameDayLockScope = 7057

// gameDayLockKey derives the advisory lock key from the calendar date of
// the fetch. Two instants on the same calendar date always yield the same
// key, whatever their time of day or location.
func gameDayLockKey(fetchDate time.Time) (int64, error) {
	day, err := domain.ParseGameDate(domain.FormatGameDate(fetchDate))
	if err != nil {
		return 0, fmt.Errorf("failed to derive game-day lock key: %w", err)
	}
	return day.Unix() / 86400, nil
}

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// ConfigureConnectionPool configures the connection pool settings for a GORM
// database connection. Zero values fall back to reasonable defaults.
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and clamps pool settings
// into safe values.
//
// Defaults (when zero):
//   - MaxOpenConns: 20
//   - MaxIdleConns: 5
//   - ConnMaxLifetime: 5 minutes
//   - ConnMaxIdleTime: 10 minutes
//
// Notes:
//   - database/sql treats MaxOpenConns=0 as "unlimited"
//   - database/sql treats MaxIdleConns=0 as "no idle connections"
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns == 0 {
		maxOpenConns = 20
	}
	if maxIdleConns == 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime == 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime == 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	// Ensure MaxIdleConns doesn't exceed MaxOpenConns
	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// withGameAssociations preloads the associations the read side renders
func withGameAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("HomeTeam").
		Preload("AwayTeam").
		Preload("Venue").
		Preload("Broadcasts", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence_number ASC")
		})
}

// GetGameByID retrieves a game with its associations by internal ID
func (s *pgStore) GetGameByID(ctx context.Context, id int64) (*schema.Game, error) {
	var game schema.Game
	err := withGameAssociations(s.db.WithContext(ctx)).Where("id = ?", id).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

// GetGameByExternalID retrieves a game with its associations by the NHL API game ID
func (s *pgStore) GetGameByExternalID(ctx context.Context, externalID int64) (*schema.Game, error) {
	var game schema.Game
	err := withGameAssociations(s.db.WithContext(ctx)).Where("external_id = ?", externalID).First(&game).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get game: %w", err)
	}
	return &game, nil
}

// ListGamesByDate retrieves all games on a calendar date, ordered by start time
func (s *pgStore) ListGamesByDate(ctx context.Context, date time.Time) ([]schema.Game, error) {
	var games []schema.Game
	err := withGameAssociations(s.db.WithContext(ctx)).
		Where("game_date = ?", domain.FormatGameDate(date)).
		Order("start_time_utc ASC, id ASC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}
	return games, nil
}

// ListUpcomingGames retrieves scheduled games on or after the given date
func (s *pgStore) ListUpcomingGames(ctx context.Context, from time.Time, limit int) ([]schema.Game, error) {
	var games []schema.Game
	err := withGameAssociations(s.db.WithContext(ctx)).
		Where("state = ? AND game_date >= ?", domain.GameStateFuture, domain.FormatGameDate(from)).
		Order("game_date ASC, start_time_utc ASC, id ASC").
		Limit(limit).
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list upcoming games: %w", err)
	}
	return games, nil
}

// ReconcileGameDay reconciles one day of games inside a single transaction.
// An advisory transaction lock keyed on the fetch date serializes overlapping
// runs for the same day. Each game is reconciled in a nested transaction
// (savepoint) so a malformed game rolls back alone and the batch continues.
func (s *pgStore) ReconcileGameDay(ctx context.Context, input ReconcileGameDayInput) (*ReconcileGameDayResult, error) {
	result := &ReconcileGameDayResult{}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		lockKey, err := gameDayLockKey(input.FetchDate)
		if err != nil {
			return err
		}
		if err := tx.Exec("SELECT pg_advisory_xact_lock(?, ?)", gameDayLockScope, lockKey).Error; err != nil {
			return fmt.Errorf("failed to acquire game-day lock: %w", err)
		}

		for i := range input.Games {
			game := &input.Games[i]
			if err := tx.Transaction(func(tx *gorm.DB) error {
				return s.reconcileGame(tx, game)
			}); err != nil {
				logger.WarnCtx(ctx, "skipping game",
					zap.Int64("external_id", game.ExternalID),
					zap.Error(err))
				result.Skipped++
				continue
			}
			result.Processed++
		}

		fetchLog := schema.FetchLog{
			RunID:          input.RunID,
			FetchDate:      input.FetchDate,
			FetchedAt:      time.Now().UTC(),
			Success:        true,
			GamesProcessed: result.Processed,
			SourceURL:      input.SourceURL,
		}
		if err := tx.Create(&fetchLog).Error; err != nil {
			return fmt.Errorf("failed to create fetch log: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// reconcileGame brings one game and its owned rows in line with the payload
func (s *pgStore) reconcileGame(tx *gorm.DB, input *GameInput) error {
	if input.ExternalID == 0 {
		return fmt.Errorf("%w: missing game id", domain.ErrMalformedGame)
	}

	homeTeam, err := s.reconcileTeam(tx, input.HomeTeam)
	if err != nil {
		return fmt.Errorf("failed to reconcile home team: %w", err)
	}
	awayTeam, err := s.reconcileTeam(tx, input.AwayTeam)
	if err != nil {
		return fmt.Errorf("failed to reconcile away team: %w", err)
	}

	var venueID *int64
	if input.Venue != nil && input.Venue.Name != "" {
		venue, err := s.reconcileVenue(tx, *input.Venue)
		if err != nil {
			return fmt.Errorf("failed to reconcile venue: %w", err)
		}
		venueID = &venue.ID
	}

	game := schema.Game{
		ExternalID:       input.ExternalID,
		Season:           input.Season,
		GameType:         input.GameType,
		GameDate:         input.GameDate,
		StartTimeUTC:     input.StartTimeUTC,
		EasternUTCOffset: input.EasternUTCOffset,
		VenueUTCOffset:   input.VenueUTCOffset,
		HomeTeamID:       homeTeam.ID,
		AwayTeamID:       awayTeam.ID,
		VenueID:          venueID,
		State:            input.State,
		ScheduleState:    input.ScheduleState,
		NeutralSite:      input.NeutralSite,
		HomeScore:        input.HomeScore,
		AwayScore:        input.AwayScore,
		HomeShotsOnGoal:  input.HomeShotsOnGoal,
		AwayShotsOnGoal:  input.AwayShotsOnGoal,
		HomeRecord:       input.HomeRecord,
		AwayRecord:       input.AwayRecord,
		GameCenterLink:   input.GameCenterLink,
		TicketsLink:      input.TicketsLink,
	}

	// Upsert by the natural key with full field replacement
	if err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "external_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"season", "game_type", "game_date", "start_time_utc",
			"eastern_utc_offset", "venue_utc_offset",
			"home_team_id", "away_team_id", "venue_id",
			"state", "schedule_state", "neutral_site",
			"home_score", "away_score", "home_sog", "away_sog",
			"home_record", "away_record",
			"game_center_link", "tickets_link", "updated_at",
		}),
	}).Create(&game).Error; err != nil {
		return fmt.Errorf("failed to upsert game: %w", err)
	}

	// If game.ID is 0 the row already existed, so fetch it
	if game.ID == 0 {
		if err := tx.Where("external_id = ?", input.ExternalID).First(&game).Error; err != nil {
			return fmt.Errorf("failed to get existing game: %w", err)
		}
	}

	// Broadcasts are owned rows: replace the set wholesale
	if err := tx.Where("game_id = ?", game.ID).Delete(&schema.Broadcast{}).Error; err != nil {
		return fmt.Errorf("failed to delete broadcasts: %w", err)
	}
	if len(input.Broadcasts) > 0 {
		broadcasts := make([]schema.Broadcast, 0, len(input.Broadcasts))
		for _, b := range input.Broadcasts {
			broadcasts = append(broadcasts, schema.Broadcast{
				GameID:         game.ID,
				ExternalID:     b.ExternalID,
				Market:         b.Market,
				CountryCode:    b.CountryCode,
				Network:        b.Network,
				SequenceNumber: b.SequenceNumber,
			})
		}
		if err := tx.Create(&broadcasts).Error; err != nil {
			return fmt.Errorf("failed to create broadcasts: %w", err)
		}
	}

	return nil
}

// reconcileTeam gets or creates the team, then applies a diff-based update
// so unchanged payloads leave the row untouched
func (s *pgStore) reconcileTeam(tx *gorm.DB, input TeamInput) (*schema.Team, error) {
	if input.ExternalID == 0 {
		return nil, fmt.Errorf("%w: missing team id", domain.ErrMalformedGame)
	}

	var team schema.Team
	err := tx.Where("external_id = ?", input.ExternalID).First(&team).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		team = schema.Team{
			ExternalID:   input.ExternalID,
			Name:         input.Name,
			Abbreviation: input.Abbreviation,
			LogoURL:      input.LogoURL,
		}
		if err := tx.Create(&team).Error; err != nil {
			return nil, fmt.Errorf("failed to create team: %w", err)
		}
		return &team, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}

	updates := map[string]interface{}{}
	if input.Name != "" && input.Name != team.Name {
		updates["name"] = input.Name
	}
	if input.Abbreviation != "" && input.Abbreviation != team.Abbreviation {
		updates["abbreviation"] = input.Abbreviation
	}
	if input.LogoURL != "" && input.LogoURL != team.LogoURL {
		updates["logo_url"] = input.LogoURL
	}
	if len(updates) > 0 {
		if err := tx.Model(&team).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update team: %w", err)
		}
	}

	return &team, nil
}

// reconcileVenue gets or creates the venue by name. The name is immutable;
// only the timezone is refreshed when the payload supplies a different one.
func (s *pgStore) reconcileVenue(tx *gorm.DB, input VenueInput) (*schema.Venue, error) {
	var venue schema.Venue
	err := tx.Where("name = ?", input.Name).First(&venue).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		venue = schema.Venue{
			Name:     input.Name,
			Timezone: input.Timezone,
		}
		if err := tx.Create(&venue).Error; err != nil {
			return nil, fmt.Errorf("failed to create venue: %w", err)
		}
		return &venue, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get venue: %w", err)
	}

	if input.Timezone != "" && input.Timezone != venue.Timezone {
		if err := tx.Model(&venue).Update("timezone", input.Timezone).Error; err != nil {
			return nil, fmt.Errorf("failed to update venue: %w", err)
		}
	}

	return &venue, nil
}

// CreateFetchLog records an ingestion run that never reached reconciliation
func (s *pgStore) CreateFetchLog(ctx context.Context, input CreateFetchLogInput) error {
	fetchLog := schema.FetchLog{
		RunID:          input.RunID,
		FetchDate:      input.FetchDate,
		FetchedAt:      time.Now().UTC(),
		Success:        input.Success,
		GamesProcessed: input.GamesProcessed,
		ErrorMessage:   input.ErrorMessage,
		SourceURL:      input.SourceURL,
	}
	if err := s.db.WithContext(ctx).Create(&fetchLog).Error; err != nil {
		return fmt.Errorf("failed to create fetch log: %w", err)
	}
	return nil
}

// ListFetchLogs retrieves the most recent fetch logs, newest first
func (s *pgStore) ListFetchLogs(ctx context.Context, limit int) ([]schema.FetchLog, error) {
	var logs []schema.FetchLog
	err := s.db.WithContext(ctx).
		Order("fetched_at DESC, id DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list fetch logs: %w", err)
	}
	return logs, nil
}

// UpsertBotUser creates or refreshes a bot user. Existing rows get a
// diff-based update of profile fields; last_seen_at is always bumped.
func (s *pgStore) UpsertBotUser(ctx context.Context, input UpsertBotUserInput) (*schema.BotUser, error) {
	var user schema.BotUser
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		now := time.Now().UTC()

		err := tx.Where("telegram_id = ?", input.TelegramID).First(&user).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			user = schema.BotUser{
				TelegramID:   input.TelegramID,
				FirstName:    input.FirstName,
				LastName:     input.LastName,
				Username:     input.Username,
				LanguageCode: input.LanguageCode,
				IsBot:        input.IsBot,
				IsPremium:    input.IsPremium,
				IsVerified:   input.IsVerified,
				LastSeenAt:   now,
			}
			if err := tx.Create(&user).Error; err != nil {
				return fmt.Errorf("failed to create bot user: %w", err)
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to get bot user: %w", err)
		}

		updates := map[string]interface{}{"last_seen_at": now}
		if input.FirstName != user.FirstName {
			updates["first_name"] = input.FirstName
		}
		if input.LastName != user.LastName {
			updates["last_name"] = input.LastName
		}
		if input.Username != user.Username {
			updates["username"] = input.Username
		}
		if input.LanguageCode != user.LanguageCode {
			updates["language_code"] = input.LanguageCode
		}
		if input.IsBot != user.IsBot {
			updates["is_bot"] = input.IsBot
		}
		if input.IsPremium != user.IsPremium {
			updates["is_premium"] = input.IsPremium
		}
		if input.IsVerified != user.IsVerified {
			updates["is_verified"] = input.IsVerified
		}
		if err := tx.Model(&user).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update bot user: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// GetBotUserByTelegramID retrieves a bot user by Telegram account ID
func (s *pgStore) GetBotUserByTelegramID(ctx context.Context, telegramID int64) (*schema.BotUser, error) {
	var user schema.BotUser
	err := s.db.WithContext(ctx).Where("telegram_id = ?", telegramID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get bot user: %w", err)
	}
	return &user, nil
}

// ListBotUsers retrieves a page of bot users, newest registrations first
func (s *pgStore) ListBotUsers(ctx context.Context, limit int, offset int) ([]schema.BotUser, int64, error) {
	query := s.db.WithContext(ctx).Model(&schema.BotUser{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count bot users: %w", err)
	}

	var users []schema.BotUser
	err := query.
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&users).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bot users: %w", err)
	}

	return users, total, nil
}

// GetBotUserStats computes aggregate user counts
func (s *pgStore) GetBotUserStats(ctx context.Context, activeSince time.Time) (*BotUserStats, error) {
	stats := &BotUserStats{}
	db := s.db.WithContext(ctx).Model(&schema.BotUser{})

	if err := db.Session(&gorm.Session{}).Count(&stats.Total).Error; err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	if err := db.Session(&gorm.Session{}).Where("last_seen_at >= ?", activeSince).Count(&stats.Active).Error; err != nil {
		return nil, fmt.Errorf("failed to count active users: %w", err)
	}
	if err := db.Session(&gorm.Session{}).Where("is_premium = ?", true).Count(&stats.Premium).Error; err != nil {
		return nil, fmt.Errorf("failed to count premium users: %w", err)
	}
	if err := db.Session(&gorm.Session{}).Where("is_verified = ?", true).Count(&stats.Verified).Error; err != nil {
		return nil, fmt.Errorf("failed to count verified users: %w", err)
	}

	return stats, nil
}
