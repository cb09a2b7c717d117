package domain

import (
	"errors"
	"fmt"
)

type AgeGroup string

const (
	AgeGroupExempt AgeGroup = "exempt"
	AgeGroupChild  AgeGroup = "child"
	AgeGroupTeen   AgeGroup = "teen"
	AgeGroupAdult  AgeGroup = "adult"
)

// FarePolicy holds the distance tiers and age brackets used to price a path.
// Fares are in the smallest currency unit, distances in kilometers.
//
// Distance fare:
//   - up to BaseDistance: BaseFare
//   - up to MidDistance: one StepFare per started MidStep beyond BaseDistance
//   - beyond MidDistance: one StepFare per started LongStep beyond MidDistance
//
// Child and teen fares scale only the amount above Deduction.
type FarePolicy struct {
	BaseFare     int
	BaseDistance int
	MidDistance  int
	MidStep      int
	LongStep     int
	StepFare     int

	Deduction        int
	ExemptUnderAge   int
	ChildFromAge     int
	TeenFromAge      int
	AdultFromAge     int
	ChildRatePercent int
	TeenRatePercent  int
}

func DefaultFarePolicy() FarePolicy {
	return FarePolicy{
		BaseFare:     1250,
		BaseDistance: 10,
		MidDistance:  50,
		MidStep:      5,
		LongStep:     8,
		StepFare:     100,

		Deduction:        350,
		ExemptUnderAge:   6,
		ChildFromAge:     6,
		TeenFromAge:      13,
		AdultFromAge:     19,
		ChildRatePercent: 50,
		TeenRatePercent:  80,
	}
}

func (p FarePolicy) Validate() error {
	var errs []error

	if p.BaseFare < 0 || p.StepFare < 0 || p.Deduction < 0 {
		errs = append(errs, fmt.Errorf(
			"fares must be non-negative (base=%d step=%d deduction=%d)",
			p.BaseFare, p.StepFare, p.Deduction,
		))
	}

	if p.BaseDistance <= 0 || p.MidDistance <= p.BaseDistance {
		errs = append(errs, fmt.Errorf("distance tiers must satisfy 0 < base (%d) < mid (%d)", p.BaseDistance, p.MidDistance))
	}
	if p.MidStep <= 0 || p.LongStep <= 0 {
		errs = append(errs, fmt.Errorf("tier steps must be positive (mid=%d long=%d)", p.MidStep, p.LongStep))
	}

	if p.ExemptUnderAge < 0 ||
		p.ExemptUnderAge > p.ChildFromAge ||
		p.ChildFromAge > p.TeenFromAge ||
		p.TeenFromAge > p.AdultFromAge {
		errs = append(errs, fmt.Errorf(
			"age brackets overlap (exempt<%d child>=%d teen>=%d adult>=%d)",
			p.ExemptUnderAge, p.ChildFromAge, p.TeenFromAge, p.AdultFromAge,
		))
	}

	if p.ChildRatePercent < 0 || p.ChildRatePercent > 100 || p.TeenRatePercent < 0 || p.TeenRatePercent > 100 {
		errs = append(errs, fmt.Errorf("discount rates must be within 0..100 (child=%d teen=%d)", p.ChildRatePercent, p.TeenRatePercent))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("validate fare policy: %w: %w", ErrInvalidArgument, err)
	}
	return nil
}

// DistanceFare prices a travelled distance before surcharge and discount.
func (p FarePolicy) DistanceFare(distance int) int {
	if distance <= p.BaseDistance {
		return p.BaseFare
	}

	if distance <= p.MidDistance {
		return p.BaseFare + ceilDiv(distance-p.BaseDistance, p.MidStep)*p.StepFare
	}

	midFare := ceilDiv(p.MidDistance-p.BaseDistance, p.MidStep) * p.StepFare
	longFare := ceilDiv(distance-p.MidDistance, p.LongStep) * p.StepFare
	return p.BaseFare + midFare + longFare
}

// Classify an age into its bracket. Teen is checked before child.
func (p FarePolicy) AgeGroupOf(age int) (AgeGroup, error) {
	if age < 0 {
		return "", fmt.Errorf("age group: age %d must be non-negative: %w", age, ErrInvalidArgument)
	}

	switch {
	case age < p.ExemptUnderAge:
		return AgeGroupExempt, nil
	case age >= p.TeenFromAge && age < p.AdultFromAge:
		return AgeGroupTeen, nil
	case age >= p.ChildFromAge && age < p.TeenFromAge:
		return AgeGroupChild, nil
	default:
		return AgeGroupAdult, nil
	}
}

// Discount applies the age bracket rate to a pre-discount fare.
func (p FarePolicy) Discount(fare int, group AgeGroup) int {
	switch group {
	case AgeGroupExempt:
		return 0
	case AgeGroupChild:
		return p.scaleAboveDeduction(fare, p.ChildRatePercent)
	case AgeGroupTeen:
		return p.scaleAboveDeduction(fare, p.TeenRatePercent)
	default:
		return fare
	}
}

func (p FarePolicy) scaleAboveDeduction(fare int, ratePercent int) int {
	if fare <= p.Deduction {
		return fare
	}
	return (fare-p.Deduction)*ratePercent/100 + p.Deduction
}

func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}
