package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
)

// SessionStore persists session tokens by digest. Safe for concurrent use.
type SessionStore struct {
	db *gorm.DB
}

func NewSessionStore(db *gorm.DB) *SessionStore {
	return &SessionStore{db: db}
}

func (s *SessionStore) Create(ctx context.Context, token, userID string, expiresAt time.Time) error {
	session := models.Session{
		TokenHash: hashToken(token),
		UserID:    userID,
		ExpiresAt: models.NewUTCTime(expiresAt),
	}
	if err := s.db.WithContext(ctx).Create(&session).Error; err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}

// Find returns ErrInvalidSession when no session matches token.
func (s *SessionStore) Find(ctx context.Context, token string) (*models.Session, error) {
	var session models.Session
	err := s.db.WithContext(ctx).Where("token_hash = ?", hashToken(token)).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidSession
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	return &session, nil
}

func (s *SessionStore) DeleteForUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Session{}).Error
}

// PurgeExpired removes sessions whose expiry is before now.
func (s *SessionStore) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	result := s.db.WithContext(ctx).Where("expires_at < ?", models.NewUTCTime(now)).Delete(&models.Session{})
	return result.RowsAffected, result.Error
}

func hashToken(token string) string {
	h := sha256.Sum256([]byte(token))
	return fmt.Sprintf("%x", h)
}
