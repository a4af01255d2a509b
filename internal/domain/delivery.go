package domain

import "unicode"

// Oslo service area bounds. Coordinates outside this box are not deliverable.
const (
	OsloLatMin = 59.8
	OsloLatMax = 60.0
	OsloLonMin = 10.6
	OsloLonMax = 10.9
)

// MaxWeightKg is the per-package weight ceiling.
const MaxWeightKg = 25.0

// Delivery urgency. Compared via Weight, never shown as a number.
type Priority string

const (
	PriorityHigh   Priority = "HIGH"
	PriorityMedium Priority = "MEDIUM"
	PriorityLow    Priority = "LOW"
)

// Valid reports whether p is one of the three known priorities.
// Matching is case-sensitive: input rows must carry the exact token.
func (p Priority) Valid() bool {
	return p == PriorityHigh || p == PriorityMedium || p == PriorityLow
}

// Weight returns the sort weight for p (HIGH sorts first).
func (p Priority) Weight() int {
	switch p {
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

// RawRecord is one input row exactly as parsed. Every field is untrusted text;
// typing and bounds are the validator's concern.
type RawRecord struct {
	Customer  string
	Latitude  string
	Longitude string
	Priority  string
	WeightKg  string
}

// Delivery is a fully validated record. Constructed only by the validator on
// full success, never partially valid, and immutable afterwards.
type Delivery struct {
	Customer   string
	Coordinate Coordinates
	Priority   Priority
	WeightKg   float64
}

// Rejection preserves a failed record verbatim together with one warning per
// violated rule, in rule order (customer, latitude, longitude, priority,
// weight).
type Rejection struct {
	Record   RawRecord
	Warnings []string
}

// Printable reports whether s contains only printable runes.
func Printable(s string) bool {
	for _, r := range s {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}
