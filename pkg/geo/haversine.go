// Package geo provides distance math and the geocoding client used by the
// clearing engine and the SMS search flow. The provider sits behind an
// interface; the built-in resolver falls back to state centroids so matching
// degrades to state-level rather than failing.
package geo

import "math"

// earthRadiusMiles is the mean Earth radius.
const earthRadiusMiles = 3958.8

// Miles returns the haversine great-circle distance between two coordinate
// pairs, in miles.
func Miles(lat1, lng1, lat2, lng2 float64) float64 {
	const degToRad = math.Pi / 180

	dLat := (lat2 - lat1) * degToRad
	dLng := (lng2 - lng1) * degToRad

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*degToRad)*math.Cos(lat2*degToRad)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}
