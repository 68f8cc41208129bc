package schema

import (
	"time"
)

// BotUser represents the bot_users table - one row per Telegram account
// that has interacted with the bot
type BotUser struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// TelegramID is the Telegram account identifier
	TelegramID int64 `gorm:"column:telegram_id;not null;uniqueIndex"`
	// FirstName is the account's first name
	FirstName string `gorm:"column:first_name;type:text"`
	// LastName is the account's last name
	LastName string `gorm:"column:last_name;type:text"`
	// Username is the account's @username, without the leading @
	Username string `gorm:"column:username;type:text"`
	// LanguageCode is the account's IETF language tag (e.g., "en")
	LanguageCode string `gorm:"column:language_code;type:text"`
	// IsBot indicates the account is itself a bot
	IsBot bool `gorm:"column:is_bot;not null;default:false"`
	// IsPremium indicates a Telegram Premium subscription
	IsPremium bool `gorm:"column:is_premium;not null;default:false"`
	// IsVerified indicates a verified Telegram account
	IsVerified bool `gorm:"column:is_verified;not null;default:false"`
	// CreatedAt is the timestamp when the account first interacted with the bot
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now()"`
	// UpdatedAt is the timestamp of the most recent profile change
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now()"`
	// LastSeenAt is the timestamp of the account's most recent interaction
	LastSeenAt time.Time `gorm:"column:last_seen_at;not null;default:now()"`
}

// TableName specifies the table name for the BotUser model
func (BotUser) TableName() string {
	return "bot_users"
}
