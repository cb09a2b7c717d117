package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"subway-path-service/internal/domain"

	"gopkg.in/yaml.v3"
)

// farePolicyFile mirrors the YAML layout. Absent keys keep the default value.
type farePolicyFile struct {
	Distance struct {
		BaseFare     *int `yaml:"base_fare"`
		BaseDistance *int `yaml:"base_km"`
		MidDistance  *int `yaml:"mid_km"`
		MidStep      *int `yaml:"mid_step_km"`
		LongStep     *int `yaml:"long_step_km"`
		StepFare     *int `yaml:"step_fare"`
	} `yaml:"distance"`

	Discount struct {
		Deduction        *int `yaml:"deduction"`
		ExemptUnderAge   *int `yaml:"exempt_under_age"`
		ChildFromAge     *int `yaml:"child_from_age"`
		TeenFromAge      *int `yaml:"teen_from_age"`
		AdultFromAge     *int `yaml:"adult_from_age"`
		ChildRatePercent *int `yaml:"child_rate_percent"`
		TeenRatePercent  *int `yaml:"teen_rate_percent"`
	} `yaml:"discount"`
}

// LoadFarePolicy returns the default policy when path is empty, otherwise the
// YAML file at path merged over the defaults.
func LoadFarePolicy(path string) (domain.FarePolicy, error) {
	if path == "" {
		return domain.DefaultFarePolicy(), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return domain.FarePolicy{}, fmt.Errorf("load fare policy: read %q: %w", path, err)
	}

	policy, err := ParseFarePolicy(b)
	if err != nil {
		return domain.FarePolicy{}, fmt.Errorf("load fare policy: %q: %w", path, err)
	}
	return policy, nil
}

func ParseFarePolicy(b []byte) (domain.FarePolicy, error) {
	var f farePolicyFile

	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return domain.FarePolicy{}, fmt.Errorf("parse fare policy: %w", err)
	}

	p := domain.DefaultFarePolicy()
	override(&p.BaseFare, f.Distance.BaseFare)
	override(&p.BaseDistance, f.Distance.BaseDistance)
	override(&p.MidDistance, f.Distance.MidDistance)
	override(&p.MidStep, f.Distance.MidStep)
	override(&p.LongStep, f.Distance.LongStep)
	override(&p.StepFare, f.Distance.StepFare)
	override(&p.Deduction, f.Discount.Deduction)
	override(&p.ExemptUnderAge, f.Discount.ExemptUnderAge)
	override(&p.ChildFromAge, f.Discount.ChildFromAge)
	override(&p.TeenFromAge, f.Discount.TeenFromAge)
	override(&p.AdultFromAge, f.Discount.AdultFromAge)
	override(&p.ChildRatePercent, f.Discount.ChildRatePercent)
	override(&p.TeenRatePercent, f.Discount.TeenRatePercent)

	if err := p.Validate(); err != nil {
		return domain.FarePolicy{}, fmt.Errorf("parse fare policy: %w", err)
	}
	return p, nil
}

func override(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}
