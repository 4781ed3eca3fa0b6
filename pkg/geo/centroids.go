package geo

import (
	"context"
	"strings"
)

// stateCentroids maps a two-letter state code to the geographic center of the
// state. Centroid resolution is the degradation path when the provider cannot
// resolve a city: state-level matching beats no matching.
var stateCentroids = map[string]Location{
	"AL": {Lat: 32.7794, Lng: -86.8287},
	"AK": {Lat: 64.0685, Lng: -152.2782},
	"AZ": {Lat: 34.2744, Lng: -111.6602},
	"AR": {Lat: 34.8938, Lng: -92.4426},
	"CA": {Lat: 37.1841, Lng: -119.4696},
	"CO": {Lat: 38.9972, Lng: -105.5478},
	"CT": {Lat: 41.6219, Lng: -72.7273},
	"DE": {Lat: 38.9896, Lng: -75.5050},
	"FL": {Lat: 28.6305, Lng: -82.4497},
	"GA": {Lat: 32.6415, Lng: -83.4426},
	"HI": {Lat: 20.2927, Lng: -156.3737},
	"ID": {Lat: 44.3509, Lng: -114.6130},
	"IL": {Lat: 40.0417, Lng: -89.1965},
	"IN": {Lat: 39.8942, Lng: -86.2816},
	"IA": {Lat: 42.0751, Lng: -93.4960},
	"KS": {Lat: 38.4937, Lng: -98.3804},
	"KY": {Lat: 37.5347, Lng: -85.3021},
	"LA": {Lat: 31.0689, Lng: -91.9968},
	"ME": {Lat: 45.3695, Lng: -69.2428},
	"MD": {Lat: 39.0550, Lng: -76.7909},
	"MA": {Lat: 42.2596, Lng: -71.8083},
	"MI": {Lat: 44.3467, Lng: -85.4102},
	"MN": {Lat: 46.2807, Lng: -94.3053},
	"MS": {Lat: 32.7364, Lng: -89.6678},
	"MO": {Lat: 38.3566, Lng: -92.4580},
	"MT": {Lat: 47.0527, Lng: -109.6333},
	"NE": {Lat: 41.5378, Lng: -99.7951},
	"NV": {Lat: 39.3289, Lng: -116.6312},
	"NH": {Lat: 43.6805, Lng: -71.5811},
	"NJ": {Lat: 40.1907, Lng: -74.6728},
	"NM": {Lat: 34.4071, Lng: -106.1126},
	"NY": {Lat: 42.9538, Lng: -75.5268},
	"NC": {Lat: 35.5557, Lng: -79.3877},
	"ND": {Lat: 47.4501, Lng: -100.4659},
	"OH": {Lat: 40.2862, Lng: -82.7937},
	"OK": {Lat: 35.5889, Lng: -97.4943},
	"OR": {Lat: 43.9336, Lng: -120.5583},
	"PA": {Lat: 40.8781, Lng: -77.7996},
	"RI": {Lat: 41.6762, Lng: -71.5562},
	"SC": {Lat: 33.9169, Lng: -80.8964},
	"SD": {Lat: 44.4443, Lng: -100.2263},
	"TN": {Lat: 35.8580, Lng: -86.3505},
	"TX": {Lat: 31.4757, Lng: -99.3312},
	"UT": {Lat: 39.3055, Lng: -111.6703},
	"VT": {Lat: 44.0687, Lng: -72.6658},
	"VA": {Lat: 37.5215, Lng: -78.8537},
	"WA": {Lat: 47.3826, Lng: -120.4472},
	"WV": {Lat: 38.6409, Lng: -80.6227},
	"WI": {Lat: 44.6243, Lng: -89.9941},
	"WY": {Lat: 42.9957, Lng: -107.5512},
	"DC": {Lat: 38.9101, Lng: -77.0147},
}

// StateCentroid returns the centroid for a two-letter state code.
func StateCentroid(state string) (Location, bool) {
	loc, ok := stateCentroids[strings.ToUpper(strings.TrimSpace(state))]
	return loc, ok
}

// CentroidGeocoder resolves every city to its state's centroid. It is the
// built-in provider used when no external geocoding endpoint is configured,
// and the fallback path when the external provider fails.
type CentroidGeocoder struct{}

// Geocode implements Geocoder.
func (CentroidGeocoder) Geocode(_ context.Context, city, state string) (*Location, error) {
	loc, ok := StateCentroid(state)
	if !ok {
		return nil, ErrNotFound
	}
	return &Location{
		Lat:   loc.Lat,
		Lng:   loc.Lng,
		City:  strings.TrimSpace(city),
		State: strings.ToUpper(strings.TrimSpace(state)),
	}, nil
}
