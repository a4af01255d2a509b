package services

import (
	"courier-route-service/internal/domain"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ValidateDelivery checks one raw record against every business rule and
// returns either a typed Delivery or a Rejection, exactly one of them non-nil.
//
// Rules are evaluated unconditionally so a Rejection reports every violation,
// not just the first, in fixed order: customer, latitude, longitude, priority,
// weight. Unparseable numbers get distinct wording from out-of-range values.
// A bad record is a value, never an error: one malformed row must not abort
// the batch.
func ValidateDelivery(raw domain.RawRecord) (*domain.Delivery, *domain.Rejection) {
	var warnings []string

	customer := strings.TrimSpace(raw.Customer)
	if customer == "" || !domain.Printable(customer) {
		warnings = append(warnings, "customer name must be a non-empty printable string")
	}

	lat, latOK := parseFloat(raw.Latitude)
	switch {
	case !latOK:
		warnings = append(warnings, fmt.Sprintf("latitude %q is not a number", raw.Latitude))
	case lat < domain.OsloLatMin || lat > domain.OsloLatMax:
		warnings = append(warnings, fmt.Sprintf(
			"latitude %.4f is outside Oslo bounds [%.1f, %.1f]",
			lat, domain.OsloLatMin, domain.OsloLatMax,
		))
	}

	lon, lonOK := parseFloat(raw.Longitude)
	switch {
	case !lonOK:
		warnings = append(warnings, fmt.Sprintf("longitude %q is not a number", raw.Longitude))
	case lon < domain.OsloLonMin || lon > domain.OsloLonMax:
		warnings = append(warnings, fmt.Sprintf(
			"longitude %.4f is outside Oslo bounds [%.1f, %.1f]",
			lon, domain.OsloLonMin, domain.OsloLonMax,
		))
	}

	priority := domain.Priority(raw.Priority)
	if !priority.Valid() {
		warnings = append(warnings, fmt.Sprintf("priority %q must be one of HIGH, MEDIUM, LOW", raw.Priority))
	}

	weight, weightOK := parseFloat(raw.WeightKg)
	switch {
	case !weightOK:
		warnings = append(warnings, fmt.Sprintf("weight %q is not a number", raw.WeightKg))
	case weight < 0:
		warnings = append(warnings, fmt.Sprintf("weight %.1f kg must be non-negative", weight))
	case weight > domain.MaxWeightKg:
		warnings = append(warnings, fmt.Sprintf(
			"weight %.1f kg exceeds the %.0f kg maximum", weight, domain.MaxWeightKg,
		))
	}

	if len(warnings) > 0 {
		return nil, &domain.Rejection{Record: raw, Warnings: warnings}
	}

	return &domain.Delivery{
		Customer:   customer,
		Coordinate: domain.Coordinates{Lat: lat, Lon: lon},
		Priority:   priority,
		WeightKg:   weight,
	}, nil
}

// parseFloat accepts only finite numbers; NaN or infinity would slip past the
// range checks otherwise.
func parseFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
