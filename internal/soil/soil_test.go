package soil

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultModel(t *testing.T) *Model {
	t.Helper()
	m, err := NewModel(DefaultParams())
	require.NoError(t, err)
	return m
}

func mustSample(t *testing.T, st tables.SoilType, q, d, wt float64) Sample {
	t.Helper()
	s, err := NewSample(st, q, d, wt)
	require.NoError(t, err)
	return s
}

func TestAllowableBearingClay(t *testing.T) {
	m := defaultModel(t)
	r, err := m.Analyze(mustSample(t, tables.Clay, 200, 2, 3))
	require.NoError(t, err)

	assert.Equal(t, 1.2, r.LoadFactor)
	assert.InDelta(t, 160.0, r.AllowableBearing, 1e-9)
	assert.Equal(t, TierMedium, r.Tier)
	assert.Empty(t, r.Warnings)
}

func TestLoadFactorNonClay(t *testing.T) {
	for _, st := range []tables.SoilType{tables.Sand, tables.Silt, tables.Loam} {
		assert.Equal(t, 1.0, LoadFactor(st), string(st))
		s := mustSample(t, st, 300, 2, 3)
		assert.InDelta(t, 200.0, AllowableBearing(s), 1e-9)
	}
	assert.Equal(t, 1.2, LoadFactor(tables.Clay))
}

func TestClassifyCapacityBoundaries(t *testing.T) {
	tests := []struct {
		q    float64
		want Tier
	}{
		{99.9, TierLow},
		{100, TierMedium},
		{300, TierMedium},
		{300.1, TierHigh},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyCapacity(tt.q), "q=%v", tt.q)
	}
	assert.Equal(t, "High soil bearing capacity", TierHigh.Label())
}

func TestWaterTableBoundary(t *testing.T) {
	m := defaultModel(t)

	r, err := m.Analyze(mustSample(t, tables.Loam, 400, 1, 2.0))
	require.NoError(t, err)
	assert.True(t, r.WaterTableAdequate)
	assert.Equal(t, WaterTableAdequate, r.WaterTableEffect)
	assert.NotContains(t, r.Warnings, WarnWaterTable)

	r, err = m.Analyze(mustSample(t, tables.Loam, 400, 1, 1.99))
	require.NoError(t, err)
	assert.False(t, r.WaterTableAdequate)
	assert.Equal(t, WaterTableTooHigh, r.WaterTableEffect)
	assert.Contains(t, r.Warnings, WarnWaterTable)
}

func TestSettlementAndLateralAreConstant(t *testing.T) {
	m := defaultModel(t)
	wantSettlement := 150.0 * 1.0 / (1.0e7 * (1 - 0.3*0.3))
	wantK := 1 - (math.Pi*30)/(1+math.Pi*30)

	samples := []Sample{
		mustSample(t, tables.Clay, 50, 0.5, 0.5),
		mustSample(t, tables.Sand, 1000, 10, 20),
		mustSample(t, tables.Silt, 150, 3, 2),
	}
	for _, s := range samples {
		r, err := m.Analyze(s)
		require.NoError(t, err)
		assert.InDelta(t, wantSettlement, r.Settlement, 1e-15)
		assert.InDelta(t, wantK, r.LateralCoefficient, 1e-12)
	}
	assert.InDelta(t, 1.6483516e-5, wantSettlement, 1e-12)
	assert.InDelta(t, 0.0104993, wantK, 1e-6)
}

func TestAlternateYoungModulus(t *testing.T) {
	p := DefaultParams()
	p.YoungModulus = 1.0e5
	assert.InDelta(t, 1.6483516e-3, Settlement(p), 1e-9)

	p.YoungModulus = 1.0e4
	m, err := NewModel(p)
	require.NoError(t, err)
	r, err := m.Analyze(mustSample(t, tables.Sand, 500, 3, 5))
	require.NoError(t, err)
	assert.Equal(t, []Warning{WarnSettlement}, r.Warnings)
}

func TestWarningsOrder(t *testing.T) {
	p := DefaultParams()
	p.YoungModulus = 1.0e4
	m, err := NewModel(p)
	require.NoError(t, err)

	r, err := m.Analyze(mustSample(t, tables.Sand, 50, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, []Warning{WarnLowBearing, WarnSettlement, WarnWaterTable}, r.Warnings)
	assert.True(t, r.HasWarnings())
	assert.Equal(t, TierLow, r.Tier)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	m := defaultModel(t)
	s := mustSample(t, tables.Silt, 120, 1.5, 1.2)
	a, err := m.Analyze(s)
	require.NoError(t, err)
	b, err := m.Analyze(s)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleValidation(t *testing.T) {
	_, err := NewSample(tables.SoilType("Peat"), 100, 1, 1)
	assert.ErrorIs(t, err, tables.ErrUnknown)

	_, err = NewSample(tables.Clay, 0, 1, 1)
	var verr *tables.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "soil bearing capacity", verr.Field)

	_, err = NewSample(tables.Clay, 100, -1, 1)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "depth of soil layer", verr.Field)

	_, err = defaultModel(t).Analyze(Sample{})
	assert.Error(t, err)
}

func TestParseSample(t *testing.T) {
	s, err := ParseSample("clay", "200", "2", "3")
	require.NoError(t, err)
	assert.Equal(t, tables.Clay, s.Type)

	_, err = ParseSample("clay", "two hundred", "2", "3")
	assert.ErrorIs(t, err, tables.ErrNotNumeric)

	_, err = ParseSample("clay", "200", "2", "0")
	var verr *tables.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "water table depth", verr.Field)
}

func TestParamsValidate(t *testing.T) {
	assert.NoError(t, DefaultParams().Validate())

	p := DefaultParams()
	p.PoissonRatio = 0.5
	assert.Error(t, p.Validate())

	p = DefaultParams()
	p.YoungModulus = 0
	_, err := NewModel(p)
	assert.Error(t, err)
}

func TestAnalyzeRejectsOverflow(t *testing.T) {
	r, err := defaultModel(t).Analyze(mustSample(t, tables.Clay, 1e308, 10, 3))
	assert.Nil(t, r)
	var verr *tables.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "soil bearing capacity", verr.Field)
	assert.ErrorIs(t, err, tables.ErrOutOfRange)

	m, err := NewModel(Params{AppliedPressure: 150, FoundationWidth: 1, YoungModulus: math.SmallestNonzeroFloat64, PoissonRatio: 0.3})
	require.NoError(t, err)
	r, err = m.Analyze(mustSample(t, tables.Sand, 200, 2, 3))
	assert.Nil(t, r)
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "young modulus", verr.Field)
}
