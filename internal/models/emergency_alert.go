package models

import "time"

type AlertStatus string

const (
	AlertStatusActive   AlertStatus = "active"
	AlertStatusResolved AlertStatus = "resolved"
)

// EmergencyAlert is an SOS raised by a user. It moves from active to resolved once and is never deleted.
type EmergencyAlert struct {
	AlertID          string      `gorm:"primaryKey;size:32" json:"alert_id"`
	UserID           string      `gorm:"size:32;not null;index:idx_alerts_user_status" json:"user_id"`
	Type             string      `gorm:"size:50;not null" json:"type"`
	Status           AlertStatus `gorm:"size:20;not null;index:idx_alerts_user_status" json:"status"`
	Location         Location    `gorm:"type:jsonb;serializer:json" json:"location"`
	TriggeredAt      time.Time   `gorm:"not null;index" json:"triggered_at"`
	ResolvedAt       *time.Time  `json:"resolved_at"`
	ContactsNotified []string    `gorm:"type:jsonb;serializer:json" json:"contacts_notified"`
	Evidence         []string    `gorm:"type:jsonb;serializer:json" json:"evidence"`
}

func (EmergencyAlert) TableName() string {
	return "emergency_alerts"
}
