package domain

import "fmt"

// Path is the derived-metrics view over a resolved section chain.
// Nothing is cached; every value is recomputed from the chain on demand.
type Path struct {
	sections Sections
}

// Itemized result of pricing a path for one rider.
type FareBreakdown struct {
	Distance     int
	DistanceFare int
	Surcharge    int
	PreDiscount  int
	AgeGroup     AgeGroup
	Fare         int
}

func NewPath(sections Sections) (Path, error) {
	if sections.Len() == 0 {
		return Path{}, fmt.Errorf("new path: %w", ErrInvalidRoute)
	}
	return Path{sections: sections}, nil
}

func (p Path) Sections() Sections { return p.sections }

func (p Path) ExtractDistance() int { return p.sections.TotalDistance() }

func (p Path) ExtractDuration() int { return p.sections.TotalDuration() }

// ExtractFare prices the path with DefaultFarePolicy.
func (p Path) ExtractFare(age int) (int, error) {
	return p.ExtractFareWith(DefaultFarePolicy(), age)
}

func (p Path) ExtractFareWith(policy FarePolicy, age int) (int, error) {
	b, err := p.Quote(policy, age)
	if err != nil {
		return 0, err
	}
	return b.Fare, nil
}

// Quote runs the full pricing pipeline: distance tier, highest line
// surcharge, then the age discount.
func (p Path) Quote(policy FarePolicy, age int) (FareBreakdown, error) {
	if err := policy.Validate(); err != nil {
		return FareBreakdown{}, fmt.Errorf("extract fare: %w", err)
	}

	group, err := policy.AgeGroupOf(age)
	if err != nil {
		return FareBreakdown{}, fmt.Errorf("extract fare: %w", err)
	}

	distance := p.ExtractDistance()
	distanceFare := policy.DistanceFare(distance)
	surcharge := p.maxSurcharge()
	pre := distanceFare + surcharge

	return FareBreakdown{
		Distance:     distance,
		DistanceFare: distanceFare,
		Surcharge:    surcharge,
		PreDiscount:  pre,
		AgeGroup:     group,
		Fare:         policy.Discount(pre, group),
	}, nil
}

// Surcharges never stack: only the most expensive line counts.
func (p Path) maxSurcharge() int {
	highest := 0
	for _, sec := range p.sections.items {
		if sec.Line.SurchargeFare > highest {
			highest = sec.Line.SurchargeFare
		}
	}
	return highest
}
