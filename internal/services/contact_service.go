package services

import (
	"context"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
)

const maxContacts = 100

type ContactService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewContactService(db *gorm.DB) *ContactService {
	return &ContactService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// List returns the user's contacts in insertion order.
func (s *ContactService) List(ctx context.Context, userID string) ([]models.EmergencyContact, error) {
	contacts := make([]models.EmergencyContact, 0)
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(maxContacts).
		Find(&contacts).Error; err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) Create(ctx context.Context, userID string, req *dto.CreateContactRequest) (*models.EmergencyContact, error) {
	switch {
	case req.Name == nil:
		return nil, required("name")
	case req.Relationship == nil:
		return nil, required("relationship")
	case req.Phone == nil:
		return nil, required("phone")
	}

	contact := models.EmergencyContact{
		ContactID:    NewID("contact"),
		UserID:       userID,
		Name:         *req.Name,
		Relationship: *req.Relationship,
		Phone:        *req.Phone,
		Email:        req.Email,
		IsPrimary:    req.IsPrimary,
		CreatedAt:    s.now(),
	}
	if err := s.db.WithContext(ctx).Create(&contact).Error; err != nil {
		return nil, fmt.Errorf("failed to create contact: %w", err)
	}
	return &contact, nil
}

// Delete removes a contact only when it belongs to userID.
func (s *ContactService) Delete(ctx context.Context, userID, contactID string) error {
	result := s.db.WithContext(ctx).
		Where("contact_id = ? AND user_id = ?", contactID, userID).
		Delete(&models.EmergencyContact{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete contact: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrContactNotFound
	}
	return nil
}
