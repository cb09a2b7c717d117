package repositories

import (
	"fmt"
	"subway-path-service/internal/domain"
	"subway-path-service/internal/ports"
)

type hop struct {
	from, to int
}

// Split a stop sequence into the consecutive hops that need a section.
func hopsOf(stationIDs []int) ([]hop, error) {
	if len(stationIDs) < 2 {
		return nil, fmt.Errorf("resolve sections: need at least two stations, got %d: %w", len(stationIDs), domain.ErrInvalidRoute)
	}

	hops := make([]hop, 0, len(stationIDs)-1)
	for i := 1; i < len(stationIDs); i++ {
		from, to := stationIDs[i-1], stationIDs[i]
		if from == to {
			return nil, fmt.Errorf("resolve sections: station %d repeated at position %d: %w", from, i+1, domain.ErrInvalidRoute)
		}
		hops = append(hops, hop{from: from, to: to})
	}
	return hops, nil
}

// Sections are stored once but ridden both ways; flip a stored section so that
// it starts at the requested station.
func orient(sec domain.Section, from int) domain.Section {
	if sec.UpStation.ID == from {
		return sec
	}
	sec.UpStation, sec.DownStation = sec.DownStation, sec.UpStation
	return sec
}

func connects(sec domain.Section, h hop) bool {
	return (sec.UpStation.ID == h.from && sec.DownStation.ID == h.to) ||
		(sec.UpStation.ID == h.to && sec.DownStation.ID == h.from)
}

// Pick, for each hop, the first candidate section that connects it.
// Candidates must already be in preference order.
func assemble(hops []hop, candidates []domain.Section) ([]domain.Section, error) {
	out := make([]domain.Section, 0, len(hops))
	for _, h := range hops {
		found := false
		for _, c := range candidates {
			if connects(c, h) {
				out = append(out, orient(c, h.from))
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("resolve sections: no section between station %d and %d: %w", h.from, h.to, ports.ErrSectionNotFound)
		}
	}
	return out, nil
}
