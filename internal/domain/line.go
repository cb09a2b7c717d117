package domain

import "fmt"

// Named route identity. SurchargeFare is the extra amount charged once per
// journey when any section of this line is traversed.
type Line struct {
	ID            int
	Name          string
	Color         string
	SurchargeFare int
}

func NewLine(id int, name string, color string, surchargeFare int) (Line, error) {
	if surchargeFare < 0 {
		return Line{}, fmt.Errorf("new line: line %q surcharge %d must be non-negative: %w", name, surchargeFare, ErrInvalidArgument)
	}

	return Line{
		ID:            id,
		Name:          name,
		Color:         color,
		SurchargeFare: surchargeFare,
	}, nil
}
