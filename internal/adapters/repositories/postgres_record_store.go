package repositories

import (
	"context"
	"courier-route-service/internal/adapters/csvio"
	"courier-route-service/internal/domain"
	"database/sql"
	"errors"
	"fmt"
)

// Postgres-backed implementation of the RecordSource port, for deployments
// that keep the delivery batch in a shared database instead of the per-run
// SQLite file. Same contract, Postgres placeholder dialect.
type PostgresRecordStore struct{ DB *sql.DB }

func NewPostgresRecordStore(db *sql.DB) *PostgresRecordStore {
	return &PostgresRecordStore{DB: db}
}

// Initialize the Postgres schema.
func (s *PostgresRecordStore) InitSchema(ctx context.Context) error {
	if s.DB == nil {
		return errors.New("postgres record store: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS deliveries (
		id BIGSERIAL PRIMARY KEY,
		customer TEXT NOT NULL,
		latitude TEXT NOT NULL,
		longitude TEXT NOT NULL,
		priority TEXT NOT NULL,
		weight_kg TEXT NOT NULL
	);
	`
	if _, err := s.DB.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("postgres record store: create deliveries table: %w", err)
	}

	return nil
}

// Replace the stored batch with the rows of a deliveries CSV file.
func (s *PostgresRecordStore) SeedFromCSV(ctx context.Context, csvPath string) error {
	records, err := csvio.NewFileRecordSource(csvPath).ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("postgres record store: seed: %w", err)
	}

	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("postgres record store: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE deliveries;`); err != nil {
		return fmt.Errorf("postgres record store: clear table: %w", err)
	}

	query := `
	INSERT INTO deliveries (
		customer,
		latitude,
		longitude,
		priority,
		weight_kg
	)
	VALUES ($1, $2, $3, $4, $5);
	`
	for i, rec := range records {
		if _, err := tx.ExecContext(ctx, query, rec.Customer, rec.Latitude, rec.Longitude, rec.Priority, rec.WeightKg); err != nil {
			return fmt.Errorf("postgres record store: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("postgres record store: commit tx: %w", err)
	}

	return nil
}

// Return all raw records stored in the database, in insertion order.
func (s *PostgresRecordStore) ListRecords(ctx context.Context) ([]domain.RawRecord, error) {
	if s.DB == nil {
		return nil, errors.New("postgres record store: DB is nil")
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
		return nil, fmt.Errorf("postgres record store: query deliveries table: %w", err)
	}
	defer rows.Close()

	records := make([]domain.RawRecord, 0, 64)
	for rows.Next() {
		var rec domain.RawRecord
		if err := rows.Scan(&rec.Customer, &rec.Latitude, &rec.Longitude, &rec.Priority, &rec.WeightKg); err != nil {
			return nil, fmt.Errorf("postgres record store: scan row: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres record store: row iteration: %w", err)
	}

	return records, nil
}
