package services

import (
	"courier-route-service/internal/domain"
	"slices"
)

// BuildRoute orders validated deliveries and computes per-leg metrics for one
// transport profile.
//
// Stops are sorted by priority (HIGH first) and, within equal priority, by
// great-circle distance from the depot, ascending. The depot distance is
// pre-computed once per delivery and used for ordering only. The sort is
// stable, so deliveries that tie on both keys keep their input order.
//
// Leg distances are then measured from the previous chosen stop, not from the
// depot: each step depends on the position the route has already reached.
// An empty input yields an empty plan with zero totals, not an error.
func BuildRoute(deliveries []domain.Delivery, profile domain.TransportProfile) *domain.RoutePlan {
	plan := &domain.RoutePlan{
		Mode:  profile.Mode,
		Stops: []domain.RouteStop{},
	}

	if len(deliveries) == 0 {
		return plan
	}

	type candidate struct {
		delivery  domain.Delivery
		fromDepot float64
	}

	cands := make([]candidate, 0, len(deliveries))
	for _, d := range deliveries {
		cands = append(cands, candidate{
			delivery:  d,
			fromDepot: domain.HaversineKm(domain.Depot, d.Coordinate),
		})
	}

	slices.SortStableFunc(cands, func(a, b candidate) int {
		if w := a.delivery.Priority.Weight() - b.delivery.Priority.Weight(); w != 0 {
			return w
		}
		if a.fromDepot < b.fromDepot {
			return -1
		}
		if a.fromDepot > b.fromDepot {
			return 1
		}
		return 0
	})

	position := domain.Depot
	cumulativeKm := 0.0

	for i, c := range cands {
		legKm := domain.HaversineKm(position, c.delivery.Coordinate)
		cumulativeKm += legKm

		plan.Stops = append(plan.Stops, domain.RouteStop{
			StopNumber:           i + 1,
			Delivery:             c.delivery,
			DistanceKm:           legKm,
			CumulativeDistanceKm: cumulativeKm,
			ETAHours:             cumulativeKm / profile.SpeedKmh,
			CostNOK:              legKm * profile.CostPerKm,
			CO2Grams:             legKm * profile.CO2GramsPerKm,
		})

		plan.TotalCostNOK += legKm * profile.CostPerKm
		plan.TotalCO2Grams += legKm * profile.CO2GramsPerKm

		position = c.delivery.Coordinate
	}

	plan.TotalDistanceKm = cumulativeKm
	plan.TotalTimeHours = cumulativeKm / profile.SpeedKmh

	return plan
}
