package ports

import (
	"context"
	"courier-route-service/internal/domain"
)

// Port: a boundary for retrieving raw delivery records from a data source.
type RecordSource interface {
	// Return all raw records available for validation and routing, in input order.
	ListRecords(ctx context.Context) ([]domain.RawRecord, error)
}
