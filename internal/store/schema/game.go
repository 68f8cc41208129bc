package schema

import (
	"time"

	"github.com/puckwatch/puckwatch/internal/domain"
)

// Game represents the games table - the primary entity, keyed by the
// NHL API game identifier
type Game struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ExternalID is the NHL API game identifier (the natural key)
	ExternalID int64 `gorm:"column:external_id;not null;uniqueIndex"`
	// Season is the season identifier (e.g., 20252026)
	Season int `gorm:"column:season;not null"`
	// GameType is the competition phase (preseason, regular, playoff)
	GameType domain.GameType `gorm:"column:game_type;not null;type:text"`
	// GameDate is the calendar date the game belongs to
	GameDate time.Time `gorm:"column:game_date;not null;type:date;index:idx_games_date_start,priority:1"`
	// StartTimeUTC is the scheduled start instant
	StartTimeUTC time.Time `gorm:"column:start_time_utc;not null;index:idx_games_date_start,priority:2"`
	// EasternUTCOffset is the US/Eastern offset string reported for the game (e.g., "-05:00")
	EasternUTCOffset string `gorm:"column:eastern_utc_offset;type:text"`
	// VenueUTCOffset is the venue-local offset string reported for the game
	VenueUTCOffset string `gorm:"column:venue_utc_offset;type:text"`
	// HomeTeamID references the home team
	HomeTeamID int64 `gorm:"column:home_team_id;not null;index"`
	// AwayTeamID references the away team
	AwayTeamID int64 `gorm:"column:away_team_id;not null;index"`
	// VenueID references the venue, if known
	VenueID *int64 `gorm:"column:venue_id"`
	// State is the game lifecycle state (FUT, PRE, LIVE, CRIT, FINAL, OFF)
	State domain.GameState `gorm:"column:state;not null;type:text;index"`
	// ScheduleState is the schedule qualifier reported by the API (e.g., "OK", "PPD")
	ScheduleState string `gorm:"column:schedule_state;type:text"`
	// NeutralSite indicates the game is played at a neutral venue
	NeutralSite bool `gorm:"column:neutral_site;not null;default:false"`
	// HomeScore is the home team's goal count (nil before play starts)
	HomeScore *int `gorm:"column:home_score"`
	// AwayScore is the away team's goal count (nil before play starts)
	AwayScore *int `gorm:"column:away_score"`
	// HomeShotsOnGoal is the home team's shot count (nil before play starts)
	HomeShotsOnGoal *int `gorm:"column:home_sog"`
	// AwayShotsOnGoal is the away team's shot count (nil before play starts)
	AwayShotsOnGoal *int `gorm:"column:away_sog"`
	// HomeRecord is the home team's win-loss-OT record string (e.g., "10-5-2")
	HomeRecord *string `gorm:"column:home_record;type:text"`
	// AwayRecord is the away team's win-loss-OT record string
	AwayRecord *string `gorm:"column:away_record;type:text"`
	// GameCenterLink is the relative link to the NHL game-center page
	GameCenterLink *string `gorm:"column:game_center_link;type:text"`
	// TicketsLink points to the ticket vendor for the game
	TicketsLink *string `gorm:"column:tickets_link;type:text"`
	// CreatedAt is the timestamp when this record was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the most recent change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`

	// Associations
	HomeTeam   *Team       `gorm:"foreignKey:HomeTeamID;constraint:OnDelete:CASCADE"`
	AwayTeam   *Team       `gorm:"foreignKey:AwayTeamID;constraint:OnDelete:CASCADE"`
	Venue      *Venue      `gorm:"foreignKey:VenueID;constraint:OnDelete:SET NULL"`
	Broadcasts []Broadcast `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Game model
func (Game) TableName() string {
	return "games"
}

// Winner returns the winning team, or nil when no winner can be derived.
// A winner exists only for final-like games with both scores present and
// unequal. Requires the HomeTeam and AwayTeam associations to be loaded.
func (g *Game) Winner() *Team {
	if !g.State.IsFinalLike() {
		return nil
	}
	if g.HomeScore == nil || g.AwayScore == nil {
		return nil
	}
	switch {
	case *g.HomeScore > *g.AwayScore:
		return g.HomeTeam
	case *g.AwayScore > *g.HomeScore:
		return g.AwayTeam
	}
	return nil
}
