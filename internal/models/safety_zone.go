package models

import "time"

// SafetyZone is a police station, hospital or shelter shown on the safety map.
type SafetyZone struct {
	ZoneID     string    `gorm:"primaryKey;size:32" json:"zone_id"`
	Name       string    `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Type       string    `gorm:"size:50;not null" json:"type"`
	Location   Location  `gorm:"type:jsonb;serializer:json" json:"location"`
	Address    string    `gorm:"size:500" json:"address"`
	Contact    *string   `gorm:"size:50" json:"contact"`
	Hours      string    `gorm:"size:50" json:"hours"`
	Verified   bool      `gorm:"index" json:"verified"`
	Facilities []string  `gorm:"type:jsonb;serializer:json" json:"facilities"`
	CreatedAt  time.Time `gorm:"not null;index" json:"created_at"`
}

func (SafetyZone) TableName() string {
	return "safety_zones"
}
