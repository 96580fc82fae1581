package models

import "time"

// EmergencySettings are the per-user safety toggles shown on the profile screen.
type EmergencySettings struct {
	AutoDetect      bool `json:"auto_detect"`
	AlertContacts   bool `json:"alert_contacts"`
	ShareLocation   bool `json:"share_location"`
	FakeCallEnabled bool `json:"fake_call_enabled"`
}

// DefaultEmergencySettings is what a user gets on first sign-in.
func DefaultEmergencySettings() EmergencySettings {
	return EmergencySettings{
		AutoDetect:      true,
		AlertContacts:   true,
		ShareLocation:   true,
		FakeCallEnabled: true,
	}
}

type User struct {
	UserID            string            `gorm:"primaryKey;size:32" json:"user_id"`
	Email             string            `gorm:"not null;size:255;uniqueIndex" json:"email"`
	Name              string            `gorm:"not null;size:255" json:"name"`
	Picture           *string           `gorm:"size:1024" json:"picture"`
	Phone             *string           `gorm:"size:50" json:"phone"`
	EmergencySettings EmergencySettings `gorm:"type:jsonb;serializer:json" json:"emergency_settings"`
	LastActive        *time.Time        `json:"last_active,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
