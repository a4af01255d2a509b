package repositories

import (
	"context"
	"courier-route-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
)

// SQLite-backed implementation of the RecordSource port. Rows keep their
// insertion order so a seeded batch replays exactly as read.
type SqliteRecordSource struct{ DB *sql.DB }

func NewSqliteRecordSource(db *sql.DB) *SqliteRecordSource {
	return &SqliteRecordSource{DB: db}
}

// Return all raw records stored in the database, in insertion order.
func (s *SqliteRecordSource) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if s.DB == nil {
		return nil, errors.New("sqlite record source: DB is nil")
	}

	query := `
	SELECT
		customer,
		latitude,
		longitude,
		priority,
		weight_kg
	FROM deliveries
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list records: query deliveries table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawRecord, 0, 64)
	for rows.Next() {
		var rec domain.RawRecord
		err := rows.Scan(&rec.Customer, &rec.Latitude, &rec.Longitude, &rec.Priority, &rec.WeightKg)
		if err != nil {
			return nil, fmt.Errorf("list records: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list records: row iteration: %w", err)
	}

	return records, nil
}
