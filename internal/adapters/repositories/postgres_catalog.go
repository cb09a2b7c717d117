package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"subway-path-service/internal/domain"
	"subway-path-service/internal/platform/obs"
)

// Postgres-backed implementation of the catalog ports.
type PostgresCatalog struct {
	DB *sql.DB
}

func NewPostgresCatalog(db *sql.DB) *PostgresCatalog {
	return &PostgresCatalog{DB: db}
}

// Return all lines stored in the database.
func (p *PostgresCatalog) ListLines(ctx context.Context) (_ []domain.Line, err error) {
	defer obs.Time(ctx, "catalog.ListLines")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres catalog: db is nil")
	}

	rows, err := p.DB.QueryContext(ctx, `
	SELECT id, name, color, surcharge_fare
	FROM lines
	ORDER BY id;
	`)
	if err != nil {
		return nil, fmt.Errorf("list lines: query lines table: %w", err)
	}
	defer rows.Close()

	lines := make([]domain.Line, 0, 16)
	for rows.Next() {
		var l domain.Line
		if err := rows.Scan(&l.ID, &l.Name, &l.Color, &l.SurchargeFare); err != nil {
			return nil, fmt.Errorf("list lines: scan row: %w", err)
		}
		lines = append(lines, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list lines: row iteration: %w", err)
	}

	return lines, nil
}

// Fetch every stored section touching the requested hops in one query and
// assemble them in travel order.
func (p *PostgresCatalog) ResolveSections(ctx context.Context, stationIDs []int) (_ []domain.Section, err error) {
	defer obs.Time(ctx, "catalog.ResolveSections")(&err)

	if p.DB == nil {
		return nil, errors.New("postgres catalog: db is nil")
	}

	hops, err := hopsOf(stationIDs)
	if err != nil {
		return nil, err
	}

	froms := make([]int64, 0, len(hops))
	tos := make([]int64, 0, len(hops))
	for _, h := range hops {
		froms = append(froms, int64(h.from))
		tos = append(tos, int64(h.to))
	}

	q := `
	SELECT DISTINCT
		l.id, l.name, l.color, l.surcharge_fare,
		up.id, up.name,
		down.id, down.name,
		s.distance, s.duration
	FROM sections s
	JOIN unnest($1::bigint[], $2::bigint[]) AS hop(from_id, to_id)
		ON (s.up_station_id = hop.from_id AND s.down_station_id = hop.to_id)
		OR (s.up_station_id = hop.to_id AND s.down_station_id = hop.from_id)
	JOIN lines l ON l.id = s.line_id
	JOIN stations up ON up.id = s.up_station_id
	JOIN stations down ON down.id = s.down_station_id
	ORDER BY l.surcharge_fare, l.id;
	`

	rows, err := p.DB.QueryContext(ctx, q, froms, tos)
	if err != nil {
		return nil, fmt.Errorf("resolve sections: query sections table: %w", err)
	}
	defer rows.Close()

	candidates := make([]domain.Section, 0, len(hops))
	for rows.Next() {
		var s domain.Section
		if err := rows.Scan(
			&s.Line.ID, &s.Line.Name, &s.Line.Color, &s.Line.SurchargeFare,
			&s.UpStation.ID, &s.UpStation.Name,
			&s.DownStation.ID, &s.DownStation.Name,
			&s.Distance, &s.Duration,
		); err != nil {
			return nil, fmt.Errorf("resolve sections: scan row: %w", err)
		}
		candidates = append(candidates, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("resolve sections: row iteration: %w", err)
	}

	return assemble(hops, candidates)
}
