package schema

import (
	"time"
)

// Team represents the teams table - one row per NHL franchise, keyed by
// the league's external team id
type Team struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// ExternalID is the NHL API team identifier
	ExternalID int64 `gorm:"column:external_id;not null;uniqueIndex"`
	// Name is the team's display name (e.g., "Maple Leafs")
	Name string `gorm:"column:name;not null;type:text"`
	// Abbreviation is the three-letter team code (e.g., "TOR")
	Abbreviation string `gorm:"column:abbreviation;not null;type:text"`
	// LogoURL points to the team's logo asset
	LogoURL string `gorm:"column:logo_url;type:text"`
	// CreatedAt is the timestamp when this record was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the most recent change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Team model
func (Team) TableName() string {
	return "teams"
}
