package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
)

const defaultAlertType = "manual"

type AlertService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAlertService(db *gorm.DB) *AlertService {
	return &AlertService{db: db, now: func() time.Time { return time.Now().UTC() }}
}

// Trigger raises an active alert and snapshots the ids of the user's current
// contacts. A user without contacts still gets an alert with an empty list.
func (s *AlertService) Trigger(ctx context.Context, userID string, req *dto.TriggerEmergencyRequest) (*models.EmergencyAlert, error) {
	if req.Location == nil {
		return nil, required("location")
	}

	contactIDs := make([]string, 0)
	if err := s.db.WithContext(ctx).
		Model(&models.EmergencyContact{}).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Limit(maxContacts).
		Pluck("contact_id", &contactIDs).Error; err != nil {
		return nil, fmt.Errorf("failed to load contacts: %w", err)
	}
	if contactIDs == nil {
		contactIDs = []string{}
	}

	alertType := strings.TrimSpace(req.Type)
	if alertType == "" {
		alertType = defaultAlertType
	}

	alert := models.EmergencyAlert{
		AlertID:          NewID("alert"),
		UserID:           userID,
		Type:             alertType,
		Status:           models.AlertStatusActive,
		Location:         *req.Location,
		TriggeredAt:      s.now(),
		ContactsNotified: contactIDs,
		Evidence:         req.Evidence,
	}
	if err := s.db.WithContext(ctx).Create(&alert).Error; err != nil {
		return nil, fmt.Errorf("failed to create alert: %w", err)
	}
	return &alert, nil
}

// Active returns the user's most recently triggered active alert, or nil.
func (s *AlertService) Active(ctx context.Context, userID string) (*models.EmergencyAlert, error) {
	var alert models.EmergencyAlert
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.AlertStatusActive).
		Order("triggered_at DESC").
		First(&alert).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load active alert: %w", err)
	}
	if alert.ContactsNotified == nil {
		alert.ContactsNotified = []string{}
	}
	return &alert, nil
}

// Resolve moves an active alert owned by userID to resolved.
func (s *AlertService) Resolve(ctx context.Context, userID, alertID string) error {
	result := s.db.WithContext(ctx).
		Model(&models.EmergencyAlert{}).
		Where("alert_id = ? AND user_id = ? AND status = ?", alertID, userID, models.AlertStatusActive).
		Updates(map[string]interface{}{
			"status":      models.AlertStatusResolved,
			"resolved_at": s.now(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to resolve alert: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
