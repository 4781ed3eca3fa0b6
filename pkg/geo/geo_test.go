package geo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warehouse-exchange/wex/pkg/config"
)

func TestMiles(t *testing.T) {
	tests := []struct {
		name                   string
		lat1, lng1, lat2, lng2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: 40.0, lng1: -74.0, lat2: 40.0, lng2: -74.0,
			want: 0, tolerance: 0.001,
		},
		{
			name: "NYC to Philadelphia",
			lat1: 40.7128, lng1: -74.0060, lat2: 39.9526, lng2: -75.1652,
			want: 80.5, tolerance: 2,
		},
		{
			name: "one degree of latitude",
			lat1: 40.0, lng1: -74.0, lat2: 41.0, lng2: -74.0,
			want: 69.1, tolerance: 0.5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Miles(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestStateCentroid(t *testing.T) {
	loc, ok := StateCentroid("nj")
	require.True(t, ok)
	assert.InDelta(t, 40.19, loc.Lat, 0.01)

	_, ok = StateCentroid("ZZ")
	assert.False(t, ok)
}

// fakeGeocoder counts calls and returns a scripted result.
type fakeGeocoder struct {
	calls int
	loc   *Location
	err   error
}

func (f *fakeGeocoder) Geocode(_ context.Context, city, state string) (*Location, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.loc, nil
}

func newTestCache(t *testing.T, provider Geocoder) *CachingGeocoder {
	t.Helper()
	g, err := NewCachingGeocoder(provider, config.DefaultGeoConfig())
	require.NoError(t, err)
	return g
}

func TestCachingGeocoderHit(t *testing.T) {
	fake := &fakeGeocoder{loc: &Location{Lat: 40.0, Lng: -74.0, City: "Newark", State: "NJ"}}
	g := newTestCache(t, fake)

	ctx := context.Background()
	first, err := g.Geocode(ctx, "Newark", "NJ")
	require.NoError(t, err)

	// Key normalization makes these the same entry.
	second, err := g.Geocode(ctx, "  newark ", "nj")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls)
}

func TestCachingGeocoderNegativeCache(t *testing.T) {
	fake := &fakeGeocoder{err: ErrNotFound}
	g := newTestCache(t, fake)

	ctx := context.Background()
	_, err := g.Geocode(ctx, "Nowhere", "NJ")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = g.Geocode(ctx, "Nowhere", "NJ")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 1, fake.calls, "second miss should come from the negative cache")
}

func TestCachingGeocoderNegativeCacheExpiry(t *testing.T) {
	fake := &fakeGeocoder{err: ErrNotFound}
	g := newTestCache(t, fake)

	now := time.Now()
	g.now = func() time.Time { return now }

	ctx := context.Background()
	_, _ = g.Geocode(ctx, "Nowhere", "NJ")

	// Jump past the not-found TTL; the provider is asked again.
	now = now.Add(config.DefaultGeoConfig().NotFoundTTL + time.Second)
	_, err := g.Geocode(ctx, "Nowhere", "NJ")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, 2, fake.calls)
}

func TestCachingGeocoderTransientErrorNotCached(t *testing.T) {
	fake := &fakeGeocoder{err: errors.New("provider unreachable")}
	g := newTestCache(t, fake)

	ctx := context.Background()
	_, err := g.Geocode(ctx, "Newark", "NJ")
	require.Error(t, err)

	_, err = g.Geocode(ctx, "Newark", "NJ")
	require.Error(t, err)
	assert.Equal(t, 2, fake.calls, "transient errors must not be negatively cached")
}

func TestCachingGeocoderRateLimit(t *testing.T) {
	fake := &fakeGeocoder{loc: &Location{Lat: 40.0, Lng: -74.0}}
	cfg := config.DefaultGeoConfig()
	cfg.SearchRateLimitPerMinute = 2
	g, err := NewCachingGeocoder(fake, cfg)
	require.NoError(t, err)

	ctx := context.Background()
	_, err = g.Geocode(ctx, "City A", "NJ")
	require.NoError(t, err)
	_, err = g.Geocode(ctx, "City B", "NJ")
	require.NoError(t, err)

	_, err = g.Geocode(ctx, "City C", "NJ")
	require.ErrorIs(t, err, ErrRateLimited)

	// Cached entries bypass the limiter.
	_, err = g.Geocode(ctx, "City A", "NJ")
	require.NoError(t, err)
}
