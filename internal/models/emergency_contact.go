package models

import "time"

type EmergencyContact struct {
	ContactID    string    `gorm:"primaryKey;size:32" json:"contact_id"`
	UserID       string    `gorm:"size:32;not null;index" json:"user_id"`
	Name         string    `gorm:"size:255;not null" json:"name"`
	Relationship string    `gorm:"size:100;not null" json:"relationship"`
	Phone        string    `gorm:"size:50;not null" json:"phone"`
	Email        *string   `gorm:"size:255" json:"email"`
	IsPrimary    bool      `json:"is_primary"`
	CreatedAt    time.Time `gorm:"index" json:"created_at"`
}

func (EmergencyContact) TableName() string {
	return "emergency_contacts"
}
