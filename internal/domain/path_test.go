package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pathFixture struct {
	suseo, bokjeong, gachon, ogeum, macheon, sanseong Station

	bundang, line3, line5, line8 Line
}

func newPathFixture(t *testing.T) pathFixture {
	t.Helper()

	f := pathFixture{
		suseo:    NewStation(1, "Suseo"),
		bokjeong: NewStation(2, "Bokjeong"),
		gachon:   NewStation(3, "Gachon Univ."),
		ogeum:    NewStation(4, "Ogeum"),
		macheon:  NewStation(5, "Macheon"),
		sanseong: NewStation(6, "Sanseong"),
	}

	var err error
	f.bundang, err = NewLine(1, "Bundang", "yellow", 0)
	require.NoError(t, err)
	f.line3, err = NewLine(2, "Line 3", "orange", 900)
	require.NoError(t, err)
	f.line5, err = NewLine(3, "Line 5", "purple", 1200)
	require.NoError(t, err)
	f.line8, err = NewLine(4, "Line 8", "pink", 0)
	require.NoError(t, err)

	return f
}

func mustSection(t *testing.T, line Line, up, down Station, distance, duration int) Section {
	t.Helper()
	s, err := NewSection(line, up, down, distance, duration)
	require.NoError(t, err)
	return s
}

func mustPath(t *testing.T, sections ...Section) Path {
	t.Helper()
	chain, err := NewSections(sections)
	require.NoError(t, err)
	p, err := NewPath(chain)
	require.NoError(t, err)
	return p
}

func TestPathExtractDistanceAndDuration(t *testing.T) {
	f := newPathFixture(t)
	p := mustPath(t,
		mustSection(t, f.bundang, f.suseo, f.bokjeong, 10, 5),
		mustSection(t, f.bundang, f.bokjeong, f.gachon, 8, 3),
	)

	assert.Equal(t, 18, p.ExtractDistance())
	assert.Equal(t, 8, p.ExtractDuration())
}

func TestPathExtractFareByAge(t *testing.T) {
	f := newPathFixture(t)
	plain := mustPath(t, mustSection(t, f.line8, f.bokjeong, f.sanseong, 10, 6))
	surcharged := mustPath(t, mustSection(t, f.line3, f.suseo, f.ogeum, 5, 4))

	tests := []struct {
		name string
		path Path
		age  int
		want int
	}{
		{"adult", plain, 20, 1250},
		{"teen", plain, 13, 1070},
		{"child", plain, 12, 800},
		{"infant", plain, 5, 0},
		{"first child year", plain, 6, 800},
		{"last teen year", plain, 18, 1070},
		{"first adult year", plain, 19, 1250},
		{"adult with surcharge", surcharged, 20, 2150},
		{"teen with surcharge", surcharged, 13, 1790},
		{"child with surcharge", surcharged, 12, 1250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.path.ExtractFare(tt.age)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathExtractFareAppliesHighestSurchargeOnly(t *testing.T) {
	f := newPathFixture(t)
	p := mustPath(t,
		mustSection(t, f.line3, f.suseo, f.ogeum, 5, 4),
		mustSection(t, f.line5, f.ogeum, f.macheon, 4, 2),
	)

	fare, err := p.ExtractFare(20)
	require.NoError(t, err)
	assert.Equal(t, 2450, fare)

	b, err := p.Quote(DefaultFarePolicy(), 20)
	require.NoError(t, err)
	assert.Equal(t, 1200, b.Surcharge)
	assert.Equal(t, 1250, b.DistanceFare)
	assert.Equal(t, AgeGroupAdult, b.AgeGroup)
}

func TestPathExtractFareRejectsNegativeAge(t *testing.T) {
	f := newPathFixture(t)
	p := mustPath(t, mustSection(t, f.line8, f.bokjeong, f.sanseong, 10, 6))

	_, err := p.ExtractFare(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPathExtractFareIsRepeatable(t *testing.T) {
	f := newPathFixture(t)
	p := mustPath(t,
		mustSection(t, f.line3, f.suseo, f.ogeum, 5, 4),
		mustSection(t, f.line5, f.ogeum, f.macheon, 4, 2),
	)

	first, err := p.ExtractFare(13)
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		again, err := p.ExtractFare(13)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
	assert.Equal(t, 9, p.ExtractDistance())
}

func TestNewPathRejectsZeroValueChain(t *testing.T) {
	_, err := NewPath(Sections{})
	require.ErrorIs(t, err, ErrInvalidRoute)
}

func TestPathExtractFareWithRejectsUnvalidatedPolicy(t *testing.T) {
	f := newPathFixture(t)
	p := mustPath(t, mustSection(t, f.line8, f.bokjeong, f.sanseong, 60, 20))

	assert.NotPanics(t, func() {
		_, err := p.ExtractFareWith(FarePolicy{}, 20)
		require.ErrorIs(t, err, ErrInvalidArgument)
	})

	partial := DefaultFarePolicy()
	partial.LongStep = 0
	_, err := p.ExtractFareWith(partial, 20)
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestPathExtractFareWithCustomPolicy(t *testing.T) {
	f := newPathFixture(t)
	p := mustPath(t, mustSection(t, f.line3, f.suseo, f.ogeum, 12, 4))

	policy := DefaultFarePolicy()
	policy.BaseFare = 1400
	policy.StepFare = 150
	policy.TeenRatePercent = 70

	// 1400 + ceil(2/5)*150 + 900 surcharge
	adult, err := p.ExtractFareWith(policy, 30)
	require.NoError(t, err)
	assert.Equal(t, 2450, adult)

	// (2450-350)*0.7 + 350
	teen, err := p.ExtractFareWith(policy, 15)
	require.NoError(t, err)
	assert.Equal(t, 1820, teen)
}

func TestPathExtractFareSharedLineIDKeepsHighestSurcharge(t *testing.T) {
	f := newPathFixture(t)
	line3, err := NewLine(0, "Line 3", "orange", 900)
	require.NoError(t, err)
	line5, err := NewLine(0, "Line 5", "purple", 1200)
	require.NoError(t, err)

	p := mustPath(t,
		mustSection(t, line3, f.suseo, f.ogeum, 5, 4),
		mustSection(t, line5, f.ogeum, f.macheon, 4, 2),
	)

	fare, err := p.ExtractFare(20)
	require.NoError(t, err)
	assert.Equal(t, 2450, fare)
	assert.Equal(t, []Line{line3, line5}, p.Sections().DistinctLines())
}

func TestPathExtractFareIsMonotonicForDiscountedAges(t *testing.T) {
	f := newPathFixture(t)

	for _, age := range []int{8, 15} {
		prev := -1
		for d := 1; d <= 120; d++ {
			p := mustPath(t, mustSection(t, f.line3, f.suseo, f.ogeum, d, 1))
			fare, err := p.ExtractFare(age)
			require.NoError(t, err)
			require.GreaterOrEqual(t, fare, prev, "age=%d distance=%d", age, d)
			prev = fare
		}
	}
}
