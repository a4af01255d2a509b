package ports

import "courier-route-service/internal/domain"

// Port: a boundary for serializing the artifacts of one optimization run.
type ResultWriter interface {
	// Write the ordered route and its totals.
	WriteRoute(plan *domain.RoutePlan) error
	// Write every rejected record together with its warnings. A rejected
	// record is never silently dropped.
	WriteRejected(rejections []domain.Rejection) error
}
