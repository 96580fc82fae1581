package services

import (
	"math"
	"sort"

	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/safeher-backend/internal/models"
)

const (
	DefaultNearbyRadius = 5000.0
	metersPerDegree     = 111000.0
)

// PlanarDistance treats degrees of latitude and longitude as equal lengths.
// It is only a rough figure in meters and degrades away from the equator.
func PlanarDistance(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := lat1 - lat2
	dLng := lng1 - lng2
	return math.Sqrt(dLat*dLat+dLng*dLng) * metersPerDegree
}

// FilterNearby keeps zones within radius meters of the point, closest first.
// Equal distances keep their input order.
func FilterNearby(zones []models.SafetyZone, lat, lng, radius float64) []dto.NearbyZone {
	nearby := make([]dto.NearbyZone, 0, len(zones))
	for _, zone := range zones {
		d := PlanarDistance(zone.Location.Latitude, zone.Location.Longitude, lat, lng)
		if d > radius {
			continue
		}
		nearby = append(nearby, dto.NearbyZone{
			SafetyZone: zone,
			Distance:   int64(math.RoundToEven(d)),
		})
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		return nearby[i].Distance < nearby[j].Distance
	})
	return nearby
}
