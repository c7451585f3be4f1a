package geo

import (
	"context"
	"errors"
	"math"

	"github.com/cmlabs-hris/hris-console-go/internal/pkg/validator"
)

var (
	// ErrLocationUnavailable means no location capability is configured or
	// the configured provider cannot be reached.
	ErrLocationUnavailable = errors.New("location capability is unavailable")

	// ErrPermissionDenied means the provider refused to share coordinates.
	ErrPermissionDenied = errors.New("location permission denied")

	ErrInvalidCoordinates = errors.New("coordinates out of range")
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Latitude  float64
	Longitude float64
}

func (p Point) Validate() error {
	if !validator.IsValidLatitude(p.Latitude) || !validator.IsValidLongitude(p.Longitude) {
		return ErrInvalidCoordinates
	}
	return nil
}

// Locator acquires the device position as a single-shot request.
// Implementations return ErrLocationUnavailable or ErrPermissionDenied so
// callers can show a specific message instead of a generic failure.
type Locator interface {
	Locate(ctx context.Context) (Point, error)
}

// Distance returns the haversine distance between two points in meters.
func Distance(a, b Point) float64 {
	const earthRadius = 6371000

	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1Rad := a.Latitude * (math.Pi / 180.0)
	lat2Rad := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
