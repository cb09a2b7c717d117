package repositories

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"subway-path-service/internal/domain"
)

var errNilMemoryCatalog = errors.New("memory catalog: catalog is nil")

// In-memory implementation of the catalog ports. It is read-only after
// construction and safe for concurrent use.
type MemoryCatalog struct {
	lines    []domain.Line
	sections []domain.Section
}

func NewMemoryCatalog(seed *CatalogSeed) (*MemoryCatalog, error) {
	if seed == nil {
		return nil, fmt.Errorf("memory catalog: seed is nil")
	}

	c, err := seed.Build()
	if err != nil {
		return nil, fmt.Errorf("memory catalog: %w", err)
	}

	lines := slices.Clone(c.Lines)
	slices.SortFunc(lines, func(a, b domain.Line) int { return cmp.Compare(a.ID, b.ID) })

	// Cheapest line first, so a hop served by two lines resolves deterministically.
	sections := slices.Clone(c.Sections)
	slices.SortStableFunc(sections, compareSections)

	return &MemoryCatalog{lines: lines, sections: sections}, nil
}

func (m *MemoryCatalog) ListLines(ctx context.Context) ([]domain.Line, error) {
	if m == nil {
		return nil, errNilMemoryCatalog
	}
	return slices.Clone(m.lines), nil
}

func (m *MemoryCatalog) ResolveSections(ctx context.Context, stationIDs []int) ([]domain.Section, error) {
	if m == nil {
		return nil, errNilMemoryCatalog
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hops, err := hopsOf(stationIDs)
	if err != nil {
		return nil, err
	}
	return assemble(hops, m.sections)
}

func compareSections(a, b domain.Section) int {
	if c := cmp.Compare(a.Line.SurchargeFare, b.Line.SurchargeFare); c != 0 {
		return c
	}
	return cmp.Compare(a.Line.ID, b.Line.ID)
}
