package domain

import "math"

// Earth radius used for great-circle distance, in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinates in decimal degrees (latitude, longitude).
type Coordinates struct {
	Lat float64
	Lon float64
}

// Depot is the fixed origin of every route: Oslo City Hall.
var Depot = Coordinates{Lat: 59.9114, Lon: 10.7343}

// HaversineKm returns the great-circle distance between a and b in kilometers.
// Symmetric, non-negative, and zero for identical points. Road geometry and
// elevation are deliberately ignored.
func HaversineKm(a, b Coordinates) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusKm * math.Asin(math.Sqrt(h))
}
