package geo

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for geocoding outcomes. ErrNotFound and ErrNotCommercial
// are cached negatively with their own TTLs; ErrRateLimited surfaces to the
// caller, which should retry later or fall back to state matching.
var (
	ErrNotFound      = errors.New("location not found")
	ErrNotCommercial = errors.New("location is not a commercial area")
	ErrRateLimited   = errors.New("geocoding rate limit reached")
)

// Location is a resolved place.
type Location struct {
	Lat   float64
	Lng   float64
	City  string
	State string
}

// Geocoder resolves a city/state pair to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, city, state string) (*Location, error)
}

// NormalizeKey builds the cache key for a city/state pair.
func NormalizeKey(city, state string) string {
	return strings.ToLower(strings.TrimSpace(city)) + "," + strings.ToUpper(strings.TrimSpace(state))
}
