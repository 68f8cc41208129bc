package schema

import (
	"github.com/puckwatch/puckwatch/internal/domain"
)

// Broadcast represents the broadcasts table. Broadcasts are owned by
// their game and are replaced wholesale whenever the game is re-fetched.
type Broadcast struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// GameID references the owning game
	GameID int64 `gorm:"column:game_id;not null;uniqueIndex:idx_broadcasts_game_external,priority:1"`
	// ExternalID is the NHL API broadcast identifier, unique per game
	ExternalID int64 `gorm:"column:external_id;not null;uniqueIndex:idx_broadcasts_game_external,priority:2"`
	// Market is the audience market (home, away, national)
	Market domain.BroadcastMarket `gorm:"column:market;not null;type:text"`
	// CountryCode is the ISO country code of the broadcast (e.g., "US", "CA")
	CountryCode string `gorm:"column:country_code;type:text"`
	// Network is the broadcaster's network name (e.g., "SN", "ESPN+")
	Network string `gorm:"column:network;not null;type:text"`
	// SequenceNumber orders broadcasts for display
	SequenceNumber int `gorm:"column:sequence_number;not null;default:0"`
}

// TableName specifies the table name for the Broadcast model
func (Broadcast) TableName() string {
	return "broadcasts"
}
