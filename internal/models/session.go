package models

import "time"

// Session binds an opaque client token to a user until ExpiresAt.
// Only the SHA-256 digest of the token is stored.
type Session struct {
	TokenHash string    `gorm:"primaryKey;size:64" json:"-"`
	UserID    string    `gorm:"size:32;not null;index" json:"user_id"`
	ExpiresAt UTCTime   `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

func (Session) TableName() string {
	return "user_sessions"
}
