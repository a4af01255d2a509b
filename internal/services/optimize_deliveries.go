package services

import (
	"context"
	"courier-route-service/internal/domain"
	"courier-route-service/internal/ports"
	"fmt"
)

type OptimizeRequest struct {
	TransportMode string
	Criteria      string
}

// ResultSet carries everything one optimization run produced: the ordered
// route plus every rejected record with its reasons.
type ResultSet struct {
	Plan         *domain.RoutePlan
	Rejections   []domain.Rejection
	TotalRecords int
	ValidCount   int
}

// OptimizeDeliveries runs the full pipeline: read raw records, validate each
// one independently, then build the route over the valid set.
//
// Mode and criteria are resolved before any record is read, so a caller-input
// error never leaves partial state behind. Validation failures are collected
// as Rejections and never abort the batch; only source failures and unknown
// mode/criteria names surface as errors.
func OptimizeDeliveries(
	ctx context.Context,
	req OptimizeRequest,
	source ports.RecordSource,
) (*ResultSet, error) {
	profile, err := domain.ProfileFor(req.TransportMode)
	if err != nil {
		return nil, fmt.Errorf("optimize deliveries: %w", err)
	}

	criteria, err := domain.CriteriaFor(req.Criteria)
	if err != nil {
		return nil, fmt.Errorf("optimize deliveries: %w", err)
	}

	records, err := source.ListRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("optimize deliveries: list records: %w", err)
	}

	deliveries := make([]domain.Delivery, 0, len(records))
	rejections := make([]domain.Rejection, 0)

	for _, raw := range records {
		delivery, rejection := ValidateDelivery(raw)
		if rejection != nil {
			rejections = append(rejections, *rejection)
			continue
		}
		deliveries = append(deliveries, *delivery)
	}

	// With a single fixed mode the stop order is criteria-independent
	// (priority and depot distance govern); the criteria is recorded on the
	// plan for reporting.
	plan := BuildRoute(deliveries, profile)
	plan.Criteria = criteria

	return &ResultSet{
		Plan:         plan,
		Rejections:   rejections,
		TotalRecords: len(records),
		ValidCount:   len(deliveries),
	}, nil
}
