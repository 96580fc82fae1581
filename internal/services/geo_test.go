package services

import (
	"testing"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zoneAt(name string, lat, lng float64) models.SafetyZone {
	return models.SafetyZone{Name: name, Location: models.Location{Latitude: lat, Longitude: lng}, Verified: true}
}

func TestFilterNearbyExactPoint(t *testing.T) {
	got := FilterNearby([]models.SafetyZone{zoneAt("here", 10, 20)}, 10, 20, 5000)

	require.Len(t, got, 1)
	assert.Equal(t, int64(0), got[0].Distance)
	assert.Equal(t, "here", got[0].Name)
}

func TestFilterNearbyZeroRadius(t *testing.T) {
	got := FilterNearby([]models.SafetyZone{zoneAt("a", 10.001, 20)}, 10, 20, 0)

	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestFilterNearbyRadiusInclusiveAndSorted(t *testing.T) {
	zones := []models.SafetyZone{
		zoneAt("far", 10.04, 20),   // ~4440 m
		zoneAt("out", 10.1, 20),    // ~11100 m
		zoneAt("near", 10.01, 20),  // ~1110 m
		zoneAt("near2", 10, 20.01), // ~1110 m, ties keep input order
	}

	got := FilterNearby(zones, 10, 20, 5000)
	require.Len(t, got, 3)
	assert.Equal(t, "near", got[0].Name)
	assert.Equal(t, "near2", got[1].Name)
	assert.Equal(t, "far", got[2].Name)
	assert.Equal(t, int64(1110), got[0].Distance)

	// a radius equal to the distance keeps the zone
	d := PlanarDistance(10.01, 20, 10, 20)
	assert.Len(t, FilterNearby(zones[2:3], 10, 20, d), 1)
}

func TestPlanarDistance(t *testing.T) {
	assert.InDelta(t, 111000.0, PlanarDistance(1, 0, 0, 0), 1e-6)
	assert.InDelta(t, 157*1000.0, PlanarDistance(1, 1, 0, 0), 1000)
	assert.Zero(t, PlanarDistance(5, 5, 5, 5))
}
