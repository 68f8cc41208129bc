package schema

import (
	"time"

	"github.com/google/uuid"
)

// FetchLog represents the fetch_logs table - an append-only journal with
// exactly one row per ingestion run
type FetchLog struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// RunID uniquely identifies the ingestion run
	RunID uuid.UUID `gorm:"column:run_id;not null;uniqueIndex;type:uuid"`
	// FetchDate is the calendar date the run fetched
	FetchDate time.Time `gorm:"column:fetch_date;not null;type:date;index"`
	// FetchedAt is the instant the run finished
	FetchedAt time.Time `gorm:"column:fetched_at;not null;default:now()"`
	// Success indicates whether the run completed without a transport or storage failure
	Success bool `gorm:"column:success;not null"`
	// GamesProcessed is the number of games reconciled during the run
	GamesProcessed int `gorm:"column:games_processed;not null;default:0"`
	// ErrorMessage carries the failure detail for unsuccessful runs
	ErrorMessage *string `gorm:"column:error_message;type:text"`
	// SourceURL is the API URL the run fetched
	SourceURL string `gorm:"column:source_url;not null;type:text"`
}

// TableName specifies the table name for the FetchLog model
func (FetchLog) TableName() string {
	return "fetch_logs"
}
