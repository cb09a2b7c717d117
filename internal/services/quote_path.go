package services

import (
	"context"
	"errors"
	"fmt"
	"subway-path-service/internal/domain"
	"subway-path-service/internal/platform/obs"
	"subway-path-service/internal/ports"
)

type QuotePathRequest struct {
	StationIDs []int
	Age        int
}

// Everything a client needs to present a priced journey.
type PathQuote struct {
	Stations  []domain.Station
	Lines     []domain.Line
	Distance  int
	Duration  int
	Breakdown domain.FareBreakdown
}

// QuotePath prices a journey whose stop sequence was already chosen by the caller.
//
// The repository only maps consecutive stops to their sections; no path search
// happens here. Distance, duration and fare are all derived from the same chain.
// repo must be a usable, non-nil implementation; a nil interface is rejected.
func QuotePath(
	ctx context.Context,
	req QuotePathRequest,
	repo ports.SectionRepository,
	policy domain.FarePolicy,
) (_ *PathQuote, err error) {
	defer obs.Time(ctx, "paths.QuotePath")(&err)

	if repo == nil {
		return nil, errors.New("quote path: repository must be non-nil")
	}

	if req.Age < 0 {
		return nil, fmt.Errorf("quote path: age %d must be non-negative: %w", req.Age, domain.ErrInvalidArgument)
	}

	items, err := repo.ResolveSections(ctx, req.StationIDs)
	if err != nil {
		return nil, fmt.Errorf("quote path: %w", err)
	}

	chain, err := domain.NewSections(items)
	if err != nil {
		return nil, fmt.Errorf("quote path: %w", err)
	}

	path, err := domain.NewPath(chain)
	if err != nil {
		return nil, fmt.Errorf("quote path: %w", err)
	}

	breakdown, err := path.Quote(policy, req.Age)
	if err != nil {
		return nil, fmt.Errorf("quote path: %w", err)
	}
	obs.CountFareQuote(string(breakdown.AgeGroup))

	return &PathQuote{
		Stations:  chain.Stations(),
		Lines:     chain.DistinctLines(),
		Distance:  path.ExtractDistance(),
		Duration:  path.ExtractDuration(),
		Breakdown: breakdown,
	}, nil
}
