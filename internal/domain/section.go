package domain

import "fmt"

// Represents one direct hop between two adjacent stations on a single line.
// Distance is in kilometers and Duration in minutes; both are positive.
type Section struct {
	Line        Line
	UpStation   Station
	DownStation Station
	Distance    int
	Duration    int
}

func NewSection(line Line, up Station, down Station, distance int, duration int) (Section, error) {
	if up.Equal(down) {
		return Section{}, fmt.Errorf("new section: up and down station are both %q: %w", up.Name, ErrInvalidRoute)
	}

	if distance <= 0 {
		return Section{}, fmt.Errorf("new section: %q -> %q distance %d must be positive: %w", up.Name, down.Name, distance, ErrInvalidRoute)
	}

	if duration <= 0 {
		return Section{}, fmt.Errorf("new section: %q -> %q duration %d must be positive: %w", up.Name, down.Name, duration, ErrInvalidRoute)
	}

	return Section{
		Line:        line,
		UpStation:   up,
		DownStation: down,
		Distance:    distance,
		Duration:    duration,
	}, nil
}
