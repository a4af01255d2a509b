package domain

import (
	"math"
	"testing"
)

func TestHaversineKmZeroForSamePoint(t *testing.T) {
	if d := HaversineKm(Depot, Depot); d != 0 {
		t.Fatalf("distance depot->depot = %v, want 0", d)
	}
}

func TestHaversineKmSymmetric(t *testing.T) {
	a := Coordinates{Lat: 59.9139, Lon: 10.7522}
	b := Coordinates{Lat: 59.95, Lon: 10.65}

	ab := HaversineKm(a, b)
	ba := HaversineKm(b, a)

	if ab != ba {
		t.Fatalf("distance not symmetric: a->b = %v, b->a = %v", ab, ba)
	}
	if ab <= 0 {
		t.Fatalf("distance a->b = %v, want > 0", ab)
	}
}

func TestHaversineKmOneDegreeLatitude(t *testing.T) {
	// One degree of latitude on a 6371 km sphere is 6371 * pi/180 km.
	a := Coordinates{Lat: 59.0, Lon: 10.7}
	b := Coordinates{Lat: 60.0, Lon: 10.7}

	want := earthRadiusKm * math.Pi / 180
	got := HaversineKm(a, b)

	if math.Abs(got-want) > 0.01 {
		t.Fatalf("distance = %v, want %v (±0.01)", got, want)
	}
}
