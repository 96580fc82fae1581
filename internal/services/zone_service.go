package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/cache"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	verifiedZonesKey = "safety_zones:verified"
	maxZones         = 100
)

type ZoneService struct {
	db    *gorm.DB
	cache cache.Cache
	ttl   time.Duration
	now   func() time.Time
}

// NewZoneService builds the zone catalog. c may be nil to disable caching.
func NewZoneService(db *gorm.DB, c cache.Cache, ttl time.Duration) *ZoneService {
	return &ZoneService{db: db, cache: c, ttl: ttl, now: func() time.Time { return time.Now().UTC() }}
}

// ListVerified returns up to 100 verified zones in insertion order, served from
// the cache when warm.
func (s *ZoneService) ListVerified(ctx context.Context) ([]models.SafetyZone, error) {
	if zones, ok := s.cached(ctx); ok {
		return zones, nil
	}

	zones := make([]models.SafetyZone, 0)
	if err := s.db.WithContext(ctx).
		Where("verified = ?", true).
		Order("created_at ASC").
		Order("zone_id ASC").
		Limit(maxZones).
		Find(&zones).Error; err != nil {
		return nil, fmt.Errorf("failed to list zones: %w", err)
	}
	for i := range zones {
		if zones[i].Facilities == nil {
			zones[i].Facilities = []string{}
		}
	}

	s.store(ctx, zones)
	return zones, nil
}

// Nearby returns verified zones within radius meters, closest first.
func (s *ZoneService) Nearby(ctx context.Context, lat, lng, radius float64) ([]dto.NearbyZone, error) {
	zones, err := s.ListVerified(ctx)
	if err != nil {
		return nil, err
	}
	return FilterNearby(zones, lat, lng, radius), nil
}

// Seed inserts the built-in zones that are not present yet, matched by name.
// It returns the size of the built-in set, not the number inserted.
func (s *ZoneService) Seed(ctx context.Context) (int, error) {
	db := s.db.WithContext(ctx)
	seeds := seedZones()
	for i := range seeds {
		zone := seeds[i]
		zone.ZoneID = NewID("zone")
		zone.CreatedAt = s.now()

		// concurrent seeds race on the unique name index
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&zone)
		if result.Error != nil {
			return 0, fmt.Errorf("failed to seed zone %q: %w", zone.Name, result.Error)
		}
		if result.RowsAffected == 1 {
			slog.Info("seeded safety zone", "zone_id", zone.ZoneID, "name", zone.Name)
		}
	}

	s.invalidate(ctx)
	return len(seeds), nil
}

func (s *ZoneService) cached(ctx context.Context) ([]models.SafetyZone, bool) {
	if s.cache == nil {
		return nil, false
	}
	raw, found, err := s.cache.Get(ctx, verifiedZonesKey)
	if err != nil {
		slog.Warn("zone cache read failed", "error", err)
		return nil, false
	}
	if !found {
		return nil, false
	}
	var zones []models.SafetyZone
	if err := json.Unmarshal(raw, &zones); err != nil {
		slog.Warn("zone cache entry corrupt", "error", err)
		return nil, false
	}
	return zones, true
}

func (s *ZoneService) store(ctx context.Context, zones []models.SafetyZone) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(zones)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, verifiedZonesKey, raw, s.ttl); err != nil {
		slog.Warn("zone cache write failed", "error", err)
	}
}

func (s *ZoneService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, verifiedZonesKey); err != nil {
		slog.Warn("zone cache invalidation failed", "error", err)
	}
}

func strPtr(s string) *string { return &s }

func seedZones() []models.SafetyZone {
	return []models.SafetyZone{
		{
			Name:       "Women's Police Station - Central",
			Type:       "police_station",
			Location:   models.Location{Latitude: 28.6139, Longitude: 77.2090},
			Address:    "Connaught Place, New Delhi",
			Contact:    strPtr("+91-11-23412345"),
			Hours:      "24/7",
			Verified:   true,
			Facilities: []string{"police", "first_aid", "restroom"},
		},
		{
			Name:       "City Hospital Emergency",
			Type:       "hospital",
			Location:   models.Location{Latitude: 28.6280, Longitude: 77.2197},
			Address:    "Kasturba Gandhi Marg, New Delhi",
			Contact:    strPtr("+91-11-23345678"),
			Hours:      "24/7",
			Verified:   true,
			Facilities: []string{"emergency", "trauma_care", "counseling"},
		},
		{
			Name:       "Safe House - NGO Support Center",
			Type:       "safe_house",
			Location:   models.Location{Latitude: 28.6000, Longitude: 77.2300},
			Address:    "Lajpat Nagar, New Delhi",
			Contact:    strPtr("+91-11-23456789"),
			Hours:      "24/7",
			Verified:   true,
			Facilities: []string{"shelter", "counseling", "legal_aid"},
		},
	}
}
