package schema

import (
	"time"
)

// Venue represents the venues table. Venues are keyed by name; the name
// never changes once stored, only the timezone may be refreshed.
type Venue struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// Name is the venue's display name (e.g., "Scotiabank Arena")
	Name string `gorm:"column:name;not null;uniqueIndex;type:text"`
	// Timezone is the venue's IANA timezone (e.g., "America/Toronto")
	Timezone string `gorm:"column:timezone;type:text"`
	// CreatedAt is the timestamp when this record was first stored
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the most recent change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
}

// TableName specifies the table name for the Venue model
func (Venue) TableName() string {
	return "venues"
}
