package domain

import (
	"fmt"
	"strings"
)

type TransportMode string

const (
	ModeCar     TransportMode = "CAR"
	ModeBicycle TransportMode = "BICYCLE"
	ModeWalking TransportMode = "WALKING"
)

// TransportProfile holds the static speed, cost and emission rates for one
// mode. One instance per mode, never mutated after process start.
type TransportProfile struct {
	Mode          TransportMode
	SpeedKmh      float64
	CostPerKm     float64
	CO2GramsPerKm float64
}

// Closed registry of the three supported modes. A compile-time literal, so a
// case-insensitive lookup can never hit colliding definitions.
var profiles = map[TransportMode]TransportProfile{
	ModeCar:     {Mode: ModeCar, SpeedKmh: 50, CostPerKm: 4.0, CO2GramsPerKm: 120},
	ModeBicycle: {Mode: ModeBicycle, SpeedKmh: 15, CostPerKm: 0, CO2GramsPerKm: 0},
	ModeWalking: {Mode: ModeWalking, SpeedKmh: 5, CostPerKm: 0, CO2GramsPerKm: 0},
}

// ProfileFor resolves a transport mode by name, case-insensitively.
func ProfileFor(name string) (TransportProfile, error) {
	p, ok := profiles[TransportMode(strings.ToUpper(strings.TrimSpace(name)))]
	if !ok {
		return TransportProfile{}, fmt.Errorf("profile for: unknown transport mode %q", name)
	}
	return p, nil
}

// Criteria names the route metric the caller wants minimized.
type Criteria string

const (
	CriteriaFastest  Criteria = "FASTEST"
	CriteriaCheapest Criteria = "CHEAPEST"
	CriteriaGreenest Criteria = "GREENEST"
)

var criteriaSet = map[Criteria]struct{}{
	CriteriaFastest:  {},
	CriteriaCheapest: {},
	CriteriaGreenest: {},
}

// CriteriaFor resolves an optimization criteria by name, case-insensitively.
func CriteriaFor(name string) (Criteria, error) {
	c := Criteria(strings.ToUpper(strings.TrimSpace(name)))
	if _, ok := criteriaSet[c]; !ok {
		return "", fmt.Errorf("criteria for: unknown optimization criteria %q", name)
	}
	return c, nil
}
