package rest

import (
	"time"

	"github.com/puckwatch/puckwatch/internal/domain"
	"github.com/puckwatch/puckwatch/internal/store"
	"github.com/puckwatch/puckwatch/internal/store/schema"
)

// TeamDTO is the API representation of a team
type TeamDTO struct {
	ExternalID   int64  `json:"external_id"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
	LogoURL      string `json:"logo_url,omitempty"`
}

// VenueDTO is the API representation of a venue
type VenueDTO struct {
	Name     string `json:"name"`
	Timezone string `json:"timezone,omitempty"`
}

// BroadcastDTO is the API representation of a TV broadcast
type BroadcastDTO struct {
	Market      domain.BroadcastMarket `json:"market"`
	CountryCode string                 `json:"country_code,omitempty"`
	Network     string                 `json:"network"`
}

// GameDTO is the API representation of a game
type GameDTO struct {
	ID               int64            `json:"id"`
	ExternalID       int64            `json:"external_id"`
	Season           int              `json:"season"`
	GameType         domain.GameType  `json:"game_type"`
	GameDate         string           `json:"game_date"`
	StartTimeUTC     time.Time        `json:"start_time_utc"`
	State            domain.GameState `json:"state"`
	ScheduleState    string           `json:"schedule_state,omitempty"`
	NeutralSite      bool             `json:"neutral_site"`
	HomeTeam         *TeamDTO         `json:"home_team"`
	AwayTeam         *TeamDTO         `json:"away_team"`
	Venue            *VenueDTO        `json:"venue,omitempty"`
	HomeScore        *int             `json:"home_score,omitempty"`
	AwayScore        *int             `json:"away_score,omitempty"`
	HomeShotsOnGoal  *int             `json:"home_sog,omitempty"`
	AwayShotsOnGoal  *int             `json:"away_sog,omitempty"`
	Winner           *TeamDTO         `json:"winner,omitempty"`
	Broadcasts       []BroadcastDTO   `json:"broadcasts,omitempty"`
	GameCenterLink   *string          `json:"game_center_link,omitempty"`
	TicketsLink      *string          `json:"tickets_link,omitempty"`
}

// BotUserDTO is the API representation of a bot user
type BotUserDTO struct {
	TelegramID int64     `json:"telegram_id"`
	FirstName  string    `json:"first_name,omitempty"`
	LastName   string    `json:"last_name,omitempty"`
	Username   string    `json:"username,omitempty"`
	IsPremium  bool      `json:"is_premium"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// UserStatsDTO aggregates user counts
type UserStatsDTO struct {
	Total    int64 `json:"total"`
	Active   int64 `json:"active"`
	Premium  int64 `json:"premium"`
	Verified int64 `json:"verified"`
}

// FetchLogDTO is the API representation of an ingestion run record
type FetchLogDTO struct {
	RunID          string    `json:"run_id"`
	FetchDate      string    `json:"fetch_date"`
	FetchedAt      time.Time `json:"fetched_at"`
	Success        bool      `json:"success"`
	GamesProcessed int       `json:"games_processed"`
	ErrorMessage   *string   `json:"error_message,omitempty"`
	SourceURL      string    `json:"source_url"`
}

func toTeamDTO(team *schema.Team) *TeamDTO {
	if team == nil {
		return nil
	}
	return &TeamDTO{
		ExternalID:   team.ExternalID,
		Name:         team.Name,
		Abbreviation: team.Abbreviation,
		LogoURL:      team.LogoURL,
	}
}

func toGameDTO(game *schema.Game) *GameDTO {
	dto := &GameDTO{
		ID:              game.ID,
		ExternalID:      game.ExternalID,
		Season:          game.Season,
		GameType:        game.GameType,
		GameDate:        domain.FormatGameDate(game.GameDate),
		StartTimeUTC:    game.StartTimeUTC.UTC(),
		State:           game.State,
		ScheduleState:   game.ScheduleState,
		NeutralSite:     game.NeutralSite,
		HomeTeam:        toTeamDTO(game.HomeTeam),
		AwayTeam:        toTeamDTO(game.AwayTeam),
		HomeScore:       game.HomeScore,
		AwayScore:       game.AwayScore,
		HomeShotsOnGoal: game.HomeShotsOnGoal,
		AwayShotsOnGoal: game.AwayShotsOnGoal,
		Winner:          toTeamDTO(game.Winner()),
		GameCenterLink:  game.GameCenterLink,
		TicketsLink:     game.TicketsLink,
	}
	if game.Venue != nil {
		dto.Venue = &VenueDTO{
			Name:     game.Venue.Name,
			Timezone: game.Venue.Timezone,
		}
	}
	for _, b := range game.Broadcasts {
		dto.Broadcasts = append(dto.Broadcasts, BroadcastDTO{
			Market:      b.Market,
			CountryCode: b.CountryCode,
			Network:     b.Network,
		})
	}
	return dto
}

func toBotUserDTO(user schema.BotUser) BotUserDTO {
	return BotUserDTO{
		TelegramID: user.TelegramID,
		FirstName:  user.FirstName,
		LastName:   user.LastName,
		Username:   user.Username,
		IsPremium:  user.IsPremium,
		IsVerified: user.IsVerified,
		CreatedAt:  user.CreatedAt,
		LastSeenAt: user.LastSeenAt,
	}
}

func toUserStatsDTO(stats *store.BotUserStats) UserStatsDTO {
	return UserStatsDTO{
		Total:    stats.Total,
		Active:   stats.Active,
		Premium:  stats.Premium,
		Verified: stats.Verified,
	}
}

func toFetchLogDTO(log schema.FetchLog) FetchLogDTO {
	return FetchLogDTO{
		RunID:          log.RunID.String(),
		FetchDate:      domain.FormatGameDate(log.FetchDate),
		FetchedAt:      log.FetchedAt,
		Success:        log.Success,
		GamesProcessed: log.GamesProcessed,
		ErrorMessage:   log.ErrorMessage,
		SourceURL:      log.SourceURL,
	}
}
