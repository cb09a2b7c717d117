package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// Initialize the Postgres catalog schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createStationsQuery := `
	CREATE TABLE IF NOT EXISTS stations (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL
	);
	`

	createLinesQuery := `
	CREATE TABLE IF NOT EXISTS lines (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL UNIQUE,
		color TEXT NOT NULL DEFAULT '',
		surcharge_fare INTEGER NOT NULL DEFAULT 0 CHECK (surcharge_fare >= 0)
	);
	`

	createSectionsQuery := `
	CREATE TABLE IF NOT EXISTS sections (
		line_id BIGINT NOT NULL REFERENCES lines(id),
		up_station_id BIGINT NOT NULL REFERENCES stations(id),
		down_station_id BIGINT NOT NULL REFERENCES stations(id),
		distance INTEGER NOT NULL CHECK (distance > 0),
		duration INTEGER NOT NULL CHECK (duration > 0),
		PRIMARY KEY (line_id, up_station_id, down_station_id),
		CHECK (up_station_id <> down_station_id)
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_sections_down_up
	ON sections(down_station_id, up_station_id);
	`

	statements := []string{
		createStationsQuery,
		createLinesQuery,
		createSectionsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the catalog tables from a validated seed. Existing rows are upserted.
func SeedCatalog(ctx context.Context, db *sql.DB, seed *CatalogSeed) error {
	if db == nil {
		return errors.New("seed catalog: DB is nil")
	}

	c, err := seed.Build()
	if err != nil {
		return fmt.Errorf("seed catalog: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed catalog: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, s := range c.Stations {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO stations (id, name) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name;
		`, s.ID, s.Name); err != nil {
			return fmt.Errorf("seed catalog: insert station id=%d: %w", s.ID, err)
		}
	}

	for _, l := range c.Lines {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO lines (id, name, color, surcharge_fare) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
			color = EXCLUDED.color,
			surcharge_fare = EXCLUDED.surcharge_fare;
		`, l.ID, l.Name, l.Color, l.SurchargeFare); err != nil {
			return fmt.Errorf("seed catalog: insert line id=%d: %w", l.ID, err)
		}
	}

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO sections (line_id, up_station_id, down_station_id, distance, duration)
	VALUES ($1, $2, $3, $4, $5)
	ON CONFLICT (line_id, up_station_id, down_station_id) DO UPDATE
	SET distance = EXCLUDED.distance,
		duration = EXCLUDED.duration;
	`)
	if err != nil {
		return fmt.Errorf("seed catalog: prepare section insert: %w", err)
	}
	defer stmt.Close()

	for _, s := range c.Sections {
		if _, err := stmt.ExecContext(ctx, s.Line.ID, s.UpStation.ID, s.DownStation.ID, s.Distance, s.Duration); err != nil {
			return fmt.Errorf("seed catalog: insert section %d->%d on line %d: %w", s.UpStation.ID, s.DownStation.ID, s.Line.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed catalog: commit tx: %w", err)
	}

	return nil
}
