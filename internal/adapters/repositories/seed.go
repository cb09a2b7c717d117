package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"subway-path-service/internal/domain"
)

type StationSeed struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type LineSeed struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	Color         string `json:"color"`
	SurchargeFare int    `json:"surcharge_fare"`
}

type SectionSeed struct {
	LineID        int `json:"line_id"`
	UpStationID   int `json:"up_station_id"`
	DownStationID int `json:"down_station_id"`
	Distance      int `json:"distance"`
	Duration      int `json:"duration"`
}

// CatalogSeed is the on-disk layout of a station/line/section catalog.
type CatalogSeed struct {
	Stations []StationSeed `json:"stations"`
	Lines    []LineSeed    `json:"lines"`
	Sections []SectionSeed `json:"sections"`
}

func ReadSeed(jsonPath string) (*CatalogSeed, error) {
	b, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read seed: read %q: %w", jsonPath, err)
	}

	var seed CatalogSeed
	if err := json.Unmarshal(b, &seed); err != nil {
		return nil, fmt.Errorf("read seed: parse json: %w", err)
	}

	if _, err := seed.Build(); err != nil {
		return nil, fmt.Errorf("read seed: %w", err)
	}
	return &seed, nil
}

// Catalog is a validated, in-memory view of a seed.
type Catalog struct {
	Stations map[int]domain.Station
	Lines    []domain.Line
	Sections []domain.Section
}

// Build validates the seed through the domain constructors.
func (s *CatalogSeed) Build() (*Catalog, error) {
	c := &Catalog{
		Stations: make(map[int]domain.Station, len(s.Stations)),
		Lines:    make([]domain.Line, 0, len(s.Lines)),
		Sections: make([]domain.Section, 0, len(s.Sections)),
	}

	for i, st := range s.Stations {
		name := strings.TrimSpace(st.Name)
		if st.ID <= 0 || name == "" {
			return nil, fmt.Errorf("build catalog: invalid station at index %d", i+1)
		}
		if _, dup := c.Stations[st.ID]; dup {
			return nil, fmt.Errorf("build catalog: duplicate station id %d", st.ID)
		}
		c.Stations[st.ID] = domain.NewStation(st.ID, name)
	}

	lines := make(map[int]domain.Line, len(s.Lines))
	for i, l := range s.Lines {
		if l.ID <= 0 || strings.TrimSpace(l.Name) == "" {
			return nil, fmt.Errorf("build catalog: invalid line at index %d", i+1)
		}
		if _, dup := lines[l.ID]; dup {
			return nil, fmt.Errorf("build catalog: duplicate line id %d", l.ID)
		}
		line, err := domain.NewLine(l.ID, strings.TrimSpace(l.Name), l.Color, l.SurchargeFare)
		if err != nil {
			return nil, fmt.Errorf("build catalog: line at index %d: %w", i+1, err)
		}
		lines[l.ID] = line
		c.Lines = append(c.Lines, line)
	}

	for i, sec := range s.Sections {
		line, ok := lines[sec.LineID]
		if !ok {
			return nil, fmt.Errorf("build catalog: section at index %d: unknown line %d", i+1, sec.LineID)
		}
		up, ok := c.Stations[sec.UpStationID]
		if !ok {
			return nil, fmt.Errorf("build catalog: section at index %d: unknown station %d", i+1, sec.UpStationID)
		}
		down, ok := c.Stations[sec.DownStationID]
		if !ok {
			return nil, fmt.Errorf("build catalog: section at index %d: unknown station %d", i+1, sec.DownStationID)
		}
		built, err := domain.NewSection(line, up, down, sec.Distance, sec.Duration)
		if err != nil {
			return nil, fmt.Errorf("build catalog: section at index %d: %w", i+1, err)
		}
		c.Sections = append(c.Sections, built)
	}

	return c, nil
}
