package store

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/puckwatch/puckwatch/internal/store/schema"
)

// AutoMigrate creates or updates the database schema for all models
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&schema.Team{},
		&schema.Venue{},
		&schema.Game{},
		&schema.Broadcast{},
		&schema.FetchLog{},
		&schema.BotUser{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
