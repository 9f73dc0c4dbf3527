package wind

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func referenceInput() Input {
	return Input{
		Speed:    "10",
		Exposure: "B",
		Shape:    "rectangular",
		Category: "commercial",
		Subtype:  "retail",
		Area:     "50",
	}
}

func TestComputeReferenceCase(t *testing.T) {
	s, err := referenceInput().Parse()
	require.NoError(t, err)

	r, err := Compute(s)
	require.NoError(t, err)

	assert.InDelta(t, 61.3, r.DynamicPressure, 1e-9)
	assert.Equal(t, 1.0, r.Gust)
	assert.Equal(t, 1.3, r.Drag)
	assert.InDelta(t, 3984.5, r.Load, 1e-9)
	assert.Equal(t, 2800.0, r.Limit)
	assert.Equal(t, Exceeds, r.Advisory)
	assert.InDelta(t, 3984.5/2800, r.Ratio, 1e-12)
}

func TestClassifyBoundaries(t *testing.T) {
	const limit = 1300.0
	tests := []struct {
		name string
		load float64
		want Advisory
	}{
		{"well below", 100, Safe},
		{"exactly at caution threshold", 0.75 * limit, Safe},
		{"just above caution threshold", 0.75*limit + 0.001, Caution},
		{"exactly at limit", limit, Caution},
		{"just above limit", limit + 0.001, Exceeds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.load, limit))
		})
	}
}

func TestComputeAdvisoryTiers(t *testing.T) {
	base := Scenario{
		Speed:    10,
		Exposure: tables.ExposureA,
		Shape:    tables.Airfoil,
		Category: tables.Residential,
		Subtype:  "single-family",
		Area:     10,
	}
	r, err := Compute(base)
	require.NoError(t, err)
	assert.Equal(t, Safe, r.Advisory)
	assert.Empty(t, r.Advisory.Recommendation())

	// 0.613·v²·1.8·1.5·50 puts the load between 75% and 100% of 6000 at v=8
	caution := Scenario{
		Speed:    8,
		Exposure: tables.ExposureF,
		Shape:    tables.Irregular,
		Category: tables.Industrial,
		Subtype:  "power plant",
		Area:     50,
	}
	r, err = Compute(caution)
	require.NoError(t, err)
	assert.InDelta(t, 5296.32, r.Load, 1e-6)
	assert.Equal(t, Caution, r.Advisory)
	assert.Contains(t, r.Advisory.Message("industrial"), "approaching")
}

func TestInvalidInputsProduceNoResult(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Input)
		field  string
	}{
		{"unknown shape", func(in *Input) { in.Shape = "pyramid" }, "structural shape"},
		{"unknown exposure", func(in *Input) { in.Exposure = "G" }, "exposure category"},
		{"subtype from another category", func(in *Input) { in.Subtype = "duplex" }, "specific commercial type"},
		{"missing subtype", func(in *Input) { in.Subtype = "" }, "specific commercial type"},
		{"unknown category", func(in *Input) { in.Category = "military" }, "structure type"},
		{"non-numeric speed", func(in *Input) { in.Speed = "fast" }, "wind speed"},
		{"zero area", func(in *Input) { in.Area = "0" }, "area"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := referenceInput()
			tt.mutate(&in)
			s, err := in.Parse()
			var verr *tables.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, Scenario{}, s)
		})
	}
}

func TestComputeRejectsUnvalidatedScenario(t *testing.T) {
	r, err := Compute(Scenario{Speed: 10, Exposure: "B", Shape: "rectangular", Category: "residential", Subtype: "castle", Area: 5})
	assert.Nil(t, r)
	assert.ErrorIs(t, err, tables.ErrUnknown)

	_, err = NewScenario(-1, tables.ExposureB, tables.Rectangular, tables.Residential, "duplex", 5)
	assert.ErrorIs(t, err, tables.ErrNotPositive)
}

func TestComputeRejectsOverflow(t *testing.T) {
	tests := []struct {
		name        string
		speed, area float64
		field       string
	}{
		{"speed squared overflows", 1e200, 50, "wind speed"},
		{"load overflows", 1e150, 1e10, "area"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScenario(tt.speed, tables.ExposureB, tables.Rectangular, tables.Residential, "duplex", tt.area)
			require.NoError(t, err)

			r, err := Compute(s)
			assert.Nil(t, r)
			var verr *tables.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.ErrorIs(t, err, tables.ErrOutOfRange)
		})
	}
}

func TestCriticalSpeed(t *testing.T) {
	s, err := referenceInput().Parse()
	require.NoError(t, err)

	v, err := CriticalSpeed(s)
	require.NoError(t, err)

	s.Speed = v
	r, err := Compute(s)
	require.NoError(t, err)
	assert.InDelta(t, r.Limit, r.Load, 1e-6)
	assert.InDelta(t, math.Sqrt(2800/(0.613*1.3*50)), v, 1e-12)
}

func TestLoadCurve(t *testing.T) {
	s, err := referenceInput().Parse()
	require.NoError(t, err)

	pts, err := LoadCurve(s, 20, 5)
	require.NoError(t, err)
	require.Len(t, pts, 5)
	assert.Zero(t, pts[0].Load)
	assert.Equal(t, 20.0, pts[4].Speed)
	assert.InDelta(t, 3984.5, pts[2].Load, 1e-9)
	for i := 1; i < len(pts); i++ {
		assert.Greater(t, pts[i].Load, pts[i-1].Load)
	}

	_, err = LoadCurve(s, 20, 1)
	assert.Error(t, err)
}
