package repositories

import (
	"context"
	"courier-route-service/internal/adapters/csvio"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the SQLite working schema. Fields stay TEXT on purpose: the
// store holds raw input rows, and typing them is the validator's job.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS deliveries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		customer TEXT NOT NULL,
		latitude TEXT NOT NULL,
		longitude TEXT NOT NULL,
		priority TEXT NOT NULL,
		weight_kg TEXT NOT NULL
	);
	`
	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("init schema: create deliveries table: %w", err)
	}

	return nil
}

// Populate the working store from a deliveries CSV file, replacing whatever a
// previous run left behind. The store lives for a single run only.
func SeedFromCSV(ctx context.Context, db *sql.DB, csvPath string) error {
	records, err := csvio.NewFileRecordSource(csvPath).ListRecords(ctx)
	if err != nil {
		return fmt.Errorf("seed deliveries: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM deliveries;`); err != nil {
		return fmt.Errorf("seed deliveries: clear table: %w", err)
	}

	query := `
	INSERT INTO deliveries (
		customer,
		latitude,
		longitude,
		priority,
		weight_kg
	)
	VALUES (?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed deliveries: prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, rec := range records {
		if _, err := stmt.Exec(rec.Customer, rec.Latitude, rec.Longitude, rec.Priority, rec.WeightKg); err != nil {
			return fmt.Errorf("seed deliveries: insert row %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed deliveries: commit tx: %w", err)
	}

	return nil
}
