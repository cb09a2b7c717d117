package ports

import (
	"context"
	"errors"
	"subway-path-service/internal/domain"
)

// Returned when two adjacent stops of a requested journey share no direct section.
var ErrSectionNotFound = errors.New("section not found")

// Port: a boundary for turning an already-chosen stop sequence into sections.
// Implementations look sections up by identity only; they never search for a path.
type SectionRepository interface {
	// Return the sections joining each pair of consecutive stations, in travel order.
	ResolveSections(ctx context.Context, stationIDs []int) ([]domain.Section, error)
}
