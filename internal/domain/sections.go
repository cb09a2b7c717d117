package domain

import "fmt"

// Ordered, connected chain of sections describing one continuous journey.
// The chain is never empty and is read-only once built.
type Sections struct {
	items []Section
}

func NewSections(items []Section) (Sections, error) {
	if len(items) == 0 {
		return Sections{}, fmt.Errorf("new sections: chain must contain at least one section: %w", ErrInvalidRoute)
	}

	for i := 1; i < len(items); i++ {
		prev, cur := items[i-1], items[i]
		if !cur.UpStation.Equal(prev.DownStation) {
			return Sections{}, fmt.Errorf(
				"new sections: section #%d starts at %q but previous ends at %q: %w",
				i+1, cur.UpStation.Name, prev.DownStation.Name, ErrInvalidRoute,
			)
		}
	}

	return Sections{items: append([]Section(nil), items...)}, nil
}

func (s Sections) Len() int { return len(s.items) }

// Return a copy of the underlying sections in travel order.
func (s Sections) Items() []Section {
	return append([]Section(nil), s.items...)
}

func (s Sections) TotalDistance() int {
	total := 0
	for _, sec := range s.items {
		total += sec.Distance
	}
	return total
}

func (s Sections) TotalDuration() int {
	total := 0
	for _, sec := range s.items {
		total += sec.Duration
	}
	return total
}

type lineKey struct {
	id   int
	name string
}

// DistinctLines returns each traversed line once, in first-seen order.
// A line is identified by its ID and name together.
func (s Sections) DistinctLines() []Line {
	seen := make(map[lineKey]struct{}, len(s.items))
	lines := make([]Line, 0, len(s.items))
	for _, sec := range s.items {
		key := lineKey{id: sec.Line.ID, name: sec.Line.Name}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		lines = append(lines, sec.Line)
	}
	return lines
}

func (s Sections) UpStation() Station {
	if len(s.items) == 0 {
		return Station{}
	}
	return s.items[0].UpStation
}

func (s Sections) DownStation() Station {
	if len(s.items) == 0 {
		return Station{}
	}
	return s.items[len(s.items)-1].DownStation
}

// Stations lists every stop of the journey, boundary stations included.
func (s Sections) Stations() []Station {
	if len(s.items) == 0 {
		return nil
	}

	stations := make([]Station, 0, len(s.items)+1)
	stations = append(stations, s.items[0].UpStation)
	for _, sec := range s.items {
		stations = append(stations, sec.DownStation)
	}
	return stations
}
