package models

import "time"

const ReportStatusPending = "pending"

// CommunityReport is a user-submitted safety incident. UserID is nil for anonymous reports.
type CommunityReport struct {
	ReportID    string    `gorm:"primaryKey;size:32" json:"report_id"`
	UserID      *string   `gorm:"size:32;index" json:"user_id"`
	Type        string    `gorm:"size:50;not null" json:"type"`
	Severity    int       `gorm:"not null" json:"severity"`
	Location    Location  `gorm:"type:jsonb;serializer:json" json:"location"`
	Description string    `gorm:"type:text" json:"description"`
	Timestamp   time.Time `gorm:"not null;index" json:"timestamp"`
	Anonymous   bool      `json:"anonymous"`
	Status      string    `gorm:"size:20;not null" json:"status"`
}

func (CommunityReport) TableName() string {
	return "community_reports"
}
