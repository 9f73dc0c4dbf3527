package soil

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosite/internal/tables"
)

// Fixed screening constants
const (
	SafetyFactor   = 3.0
	ClayLoadFactor = 1.2
	BaseLoadFactor = 1.0

	// Friction angle used literally (degrees) in the simplified K expression
	FrictionAngle = 30.0

	// Qualitative bearing capacity bounds (kN/m²)
	LowCapacityBound  = 100.0
	HighCapacityBound = 300.0

	// Water table depth below which the site is flagged (m)
	MinWaterTableDepth = 2.0

	// Warning thresholds
	MinAllowableBearing   = 100.0 // kN
	MaxSettlement         = 0.01  // m
	MaxLateralCoefficient = 1.5
)

// Water table effect messages
const (
	WaterTableTooHigh  = "Water table is too high. This may reduce the bearing capacity significantly."
	WaterTableAdequate = "Water table depth is adequate for construction."
)

// Params holds the standard foundation parameters used for settlement
type Params struct {
	AppliedPressure float64 // kN/m²
	FoundationWidth float64 // m
	YoungModulus    float64 // kN/m²
	PoissonRatio    float64 // dimensionless
}

// DefaultParams returns the standard settlement parameters (E = 1.0e7 kN/m²)
func DefaultParams() Params {
	return Params{
		AppliedPressure: 150,
		FoundationWidth: 1,
		YoungModulus:    1.0e7,
		PoissonRatio:    0.3,
	}
}

// Validate checks the settlement parameters
func (p Params) Validate() error {
	if p.AppliedPressure <= 0 || p.FoundationWidth <= 0 || p.YoungModulus <= 0 {
		return fmt.Errorf("invalid settlement parameters: p=%.2f, B=%.2f, E=%.3g", p.AppliedPressure, p.FoundationWidth, p.YoungModulus)
	}
	if p.PoissonRatio < 0 || p.PoissonRatio >= 0.5 {
		return fmt.Errorf("invalid Poisson ratio: ν=%.3f (must be in [0, 0.5))", p.PoissonRatio)
	}
	return nil
}

// Sample is a validated soil site description
type Sample struct {
	Type            tables.SoilType `json:"soil_type"`
	BearingCapacity float64         `json:"bearing_capacity"`  // kN/m²
	LayerDepth      float64         `json:"layer_depth"`       // m
	WaterTableDepth float64         `json:"water_table_depth"` // m
}

// NewSample validates the inputs and returns a Sample
func NewSample(soilType tables.SoilType, bearingCapacity, layerDepth, waterTableDepth float64) (Sample, error) {
	s := Sample{
		Type:            soilType,
		BearingCapacity: bearingCapacity,
		LayerDepth:      layerDepth,
		WaterTableDepth: waterTableDepth,
	}
	if err := s.Validate(); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// ParseSample validates raw text fields, reporting the first offending field
func ParseSample(soilType, bearingCapacity, layerDepth, waterTableDepth string) (Sample, error) {
	t, err := tables.ParseSoilType(soilType)
	if err != nil {
		return Sample{}, err
	}
	qa, err := tables.ParsePositive("soil bearing capacity", bearingCapacity)
	if err != nil {
		return Sample{}, err
	}
	d, err := tables.ParsePositive("depth of soil layer", layerDepth)
	if err != nil {
		return Sample{}, err
	}
	wt, err := tables.ParsePositive("water table depth", waterTableDepth)
	if err != nil {
		return Sample{}, err
	}
	return NewSample(t, qa, d, wt)
}

// Validate checks the soil type and that all measurements are positive
func (s Sample) Validate() error {
	if !s.Type.Valid() {
		return &tables.ValidationError{Field: "soil type", Value: string(s.Type), Err: tables.ErrUnknown, Hint: "Clay, Sand, Silt, Loam"}
	}
	if err := tables.CheckPositive("soil bearing capacity", s.BearingCapacity); err != nil {
		return err
	}
	if err := tables.CheckPositive("depth of soil layer", s.LayerDepth); err != nil {
		return err
	}
	return tables.CheckPositive("water table depth", s.WaterTableDepth)
}

// Model evaluates soil samples with a fixed set of settlement parameters
type Model struct {
	Params Params
}

// NewModel creates a soil model. Use DefaultParams for the standard parameters.
func NewModel(p Params) (*Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Model{Params: p}, nil
}

// Analyze evaluates a sample. The result is recomputed on every call.
func (m *Model) Analyze(s Sample) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	result := &Result{
		Sample:      s,
		Description: s.Type.Description(),
		LoadFactor:  LoadFactor(s.Type),
		Warnings:    []Warning{},
	}

	result.AllowableBearing = AllowableBearing(s)
	if err := tables.CheckFinite("soil bearing capacity", s.BearingCapacity, result.AllowableBearing); err != nil {
		return nil, err
	}
	result.Settlement = Settlement(m.Params)
	if err := tables.CheckFinite("young modulus", m.Params.YoungModulus, result.Settlement); err != nil {
		return nil, err
	}
	result.LateralCoefficient = LateralCoefficient(FrictionAngle)
	result.Tier = ClassifyCapacity(s.BearingCapacity)

	result.WaterTableAdequate = s.WaterTableDepth >= MinWaterTableDepth
	result.WaterTableEffect = WaterTableAdequate
	if !result.WaterTableAdequate {
		result.WaterTableEffect = WaterTableTooHigh
	}

	// All checks are independent; order is fixed
	if result.AllowableBearing < MinAllowableBearing {
		result.Warnings = append(result.Warnings, WarnLowBearing)
	}
	if result.Settlement > MaxSettlement {
		result.Warnings = append(result.Warnings, WarnSettlement)
	}
	if result.LateralCoefficient > MaxLateralCoefficient {
		result.Warnings = append(result.Warnings, WarnLateralPressure)
	}
	if !result.WaterTableAdequate {
		result.Warnings = append(result.Warnings, WarnWaterTable)
	}

	return result, nil
}

// LoadFactor is 1.2 for clay and 1.0 for every other soil
func LoadFactor(t tables.SoilType) float64 {
	if t == tables.Clay {
		return ClayLoadFactor
	}
	return BaseLoadFactor
}

// AllowableBearing = qa × load factor × depth / FS (kN)
func AllowableBearing(s Sample) float64 {
	total := s.BearingCapacity * LoadFactor(s.Type) * s.LayerDepth
	return total / SafetyFactor
}

// Settlement = p·B / (E·(1 − ν²)). It uses only the standard parameters, never the sample.
func Settlement(p Params) float64 {
	return (p.AppliedPressure * p.FoundationWidth) / (p.YoungModulus * (1 - p.PoissonRatio*p.PoissonRatio))
}

// LateralCoefficient = 1 − πφ/(1 + πφ) with φ in degrees.
// This is a simplified screening expression, not the Rankine coefficient.
func LateralCoefficient(phiDegrees float64) float64 {
	x := math.Pi * phiDegrees
	return 1 - x/(1+x)
}

// ClassifyCapacity maps a bearing capacity (kN/m²) to its qualitative tier
func ClassifyCapacity(q float64) Tier {
	switch {
	case q < LowCapacityBound:
		return TierLow
	case q <= HighCapacityBound:
		return TierMedium
	default:
		return TierHigh
	}
}
