package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultSessionTTL = 7 * 24 * time.Hour

type AuthService struct {
	db       *gorm.DB
	cfg      *config.Config
	sessions *SessionStore
	identity *IdentityClient
	now      func() time.Time
}

func NewAuthService(db *gorm.DB, cfg *config.Config, sessions *SessionStore, identity *IdentityClient) *AuthService {
	return &AuthService{
		db:       db,
		cfg:      cfg,
		sessions: sessions,
		identity: identity,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// ExtractToken picks the credential for a request. A non-empty Authorization
// header wins over the cookie; the Bearer scheme is optional and matched
// case-insensitively. A header carrying only the scheme counts as absent.
func ExtractToken(authorization, cookie string) string {
	token := strings.TrimSpace(authorization)
	if scheme, rest, found := strings.Cut(token, " "); found && strings.EqualFold(scheme, "Bearer") {
		token = strings.TrimSpace(rest)
	} else if strings.EqualFold(token, "Bearer") {
		token = ""
	}
	if token != "" {
		return token
	}
	return strings.TrimSpace(cookie)
}

// Authenticate resolves a request credential to its user.
func (s *AuthService) Authenticate(ctx context.Context, authorization, cookie string) (*models.User, error) {
	token := ExtractToken(authorization, cookie)
	if token == "" {
		return nil, ErrUnauthenticated
	}

	session, err := s.sessions.Find(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.ExpiresAt.Before(s.now()) {
		return nil, ErrSessionExpired
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "user_id = ?", session.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// ExchangeSession trades a provider session id for a new session, creating the
// user on first sign-in. Existing sessions of the user stay valid.
func (s *AuthService) ExchangeSession(ctx context.Context, sessionID string) (*models.User, string, error) {
	data, err := s.identity.FetchSession(ctx, sessionID)
	if err != nil {
		return nil, "", err
	}

	user, err := s.upsertUser(ctx, data)
	if err != nil {
		return nil, "", err
	}

	ttl := s.cfg.SessionTTL
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if err := s.sessions.Create(ctx, data.SessionToken, user.UserID, s.now().Add(ttl)); err != nil {
		return nil, "", err
	}

	slog.Info("session created", "user_id", user.UserID)
	return user, data.SessionToken, nil
}

func (s *AuthService) upsertUser(ctx context.Context, data *SessionData) (*models.User, error) {
	now := s.now()
	db := s.db.WithContext(ctx)

	user := models.User{
		UserID:            NewID("user"),
		Email:             data.Email,
		Name:              data.Name,
		Picture:           data.Picture,
		EmergencySettings: models.DefaultEmergencySettings(),
		CreatedAt:         now,
	}

	// concurrent first sign-ins for one email race on the unique index
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&user)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to create user: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return &user, nil
	}

	var existing models.User
	if err := db.Where("email = ?", data.Email).First(&existing).Error; err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}

	if err := db.Model(&existing).Updates(map[string]interface{}{
		"name":        data.Name,
		"picture":     data.Picture,
		"last_active": now,
	}).Error; err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	existing.Name = data.Name
	existing.Picture = data.Picture
	existing.LastActive = &now
	return &existing, nil
}

// Logout deletes every session of the user.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.sessions.DeleteForUser(ctx, userID)
}
