package ports

import (
	"context"
	"subway-path-service/internal/domain"
)

// Port: read-only access to the line catalog.
type LineRepository interface {
	// Retrieve all lines, ordered by ID.
	ListLines(ctx context.Context) ([]domain.Line, error)
}
