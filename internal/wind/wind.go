package wind

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/gosite/internal/tables"
)

const (
	// PressureCoefficient converts wind speed (m/s) to dynamic pressure: q = 0.613·v²
	PressureCoefficient = 0.613

	// CautionRatio is the fraction of the limit above which a load is flagged
	CautionRatio = 0.75
)

// Scenario is a validated wind load case
type Scenario struct {
	Speed    float64         `json:"speed"` // m/s
	Exposure tables.Exposure `json:"exposure"`
	Shape    tables.Shape    `json:"shape"`
	Category tables.Category `json:"category"`
	Subtype  string          `json:"subtype"`
	Area     float64         `json:"area"` // m²
}

// NewScenario validates a scenario built from already-typed values
func NewScenario(speed float64, exposure tables.Exposure, shape tables.Shape, category tables.Category, subtype string, area float64) (Scenario, error) {
	s := Scenario{
		Speed:    speed,
		Exposure: exposure,
		Shape:    shape,
		Category: category,
		Subtype:  subtype,
		Area:     area,
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}
	return s, nil
}

// Input is the raw, untrusted text form of a scenario as received from a front end
type Input struct {
	Speed    string `json:"speed"`
	Exposure string `json:"exposure"`
	Shape    string `json:"shape"`
	Category string `json:"category"`
	Subtype  string `json:"subtype"`
	Area     string `json:"area"`
}

// Parse validates every raw field in entry order and reports the first failure
func (in Input) Parse() (Scenario, error) {
	speed, err := tables.ParsePositive("wind speed", in.Speed)
	if err != nil {
		return Scenario{}, err
	}
	exposure, err := tables.ParseExposure(in.Exposure)
	if err != nil {
		return Scenario{}, err
	}
	shape, err := tables.ParseShape(in.Shape)
	if err != nil {
		return Scenario{}, err
	}
	area, err := tables.ParsePositive("area", in.Area)
	if err != nil {
		return Scenario{}, err
	}
	category, err := tables.ParseCategory(in.Category)
	if err != nil {
		return Scenario{}, err
	}
	subtype, err := tables.ParseSubtype(category, in.Subtype)
	if err != nil {
		return Scenario{}, err
	}
	return NewScenario(speed, exposure, shape, category, subtype, area)
}

// Validate checks every field against its table or domain
func (s Scenario) Validate() error {
	if err := tables.CheckPositive("wind speed", s.Speed); err != nil {
		return err
	}
	if !s.Exposure.Valid() {
		return &tables.ValidationError{Field: "exposure category", Value: string(s.Exposure), Err: tables.ErrUnknown, Hint: "A, B, C, D, E, F"}
	}
	if !s.Shape.Valid() {
		return &tables.ValidationError{Field: "structural shape", Value: string(s.Shape), Err: tables.ErrUnknown}
	}
	if err := tables.CheckPositive("area", s.Area); err != nil {
		return err
	}
	_, err := tables.Limit(s.Category, s.Subtype)
	return err
}

// DynamicPressure returns q = 0.613·v²
func DynamicPressure(speed float64) float64 {
	return PressureCoefficient * speed * speed
}

// Load returns q·G·Cd·A (N)
func Load(q, gust, drag, area float64) float64 {
	return q * gust * drag * area
}

// Compute evaluates the scenario against its acceptable limit
func Compute(s Scenario) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	limit, err := tables.Limit(s.Category, s.Subtype)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Scenario:        s,
		DynamicPressure: DynamicPressure(s.Speed),
		Gust:            s.Exposure.Gust(),
		Drag:            s.Shape.Drag(),
		Limit:           limit,
	}
	if err := tables.CheckFinite("wind speed", s.Speed, result.DynamicPressure); err != nil {
		return nil, err
	}
	result.Load = Load(result.DynamicPressure, result.Gust, result.Drag, s.Area)
	if err := tables.CheckFinite("area", s.Area, result.Load); err != nil {
		return nil, err
	}
	result.Ratio = result.Load / limit
	result.Advisory = Classify(result.Load, limit)

	return result, nil
}

// Classify compares a load to its limit. Both thresholds are strict.
func Classify(load, limit float64) Advisory {
	switch {
	case load > limit:
		return Exceeds
	case load > CautionRatio*limit:
		return Caution
	default:
		return Safe
	}
}

// CriticalSpeed returns the wind speed at which the scenario's load reaches its limit
func CriticalSpeed(s Scenario) (float64, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	limit, err := tables.Limit(s.Category, s.Subtype)
	if err != nil {
		return 0, err
	}
	k := PressureCoefficient * s.Exposure.Gust() * s.Shape.Drag() * s.Area
	return math.Sqrt(limit / k), nil
}

// CurvePoint is one sample of a load-versus-speed curve
type CurvePoint struct {
	Speed float64 `json:"speed"` // m/s
	Load  float64 `json:"load"`  // N
}

// LoadCurve samples the scenario's load at n evenly spaced speeds from 0 to maxSpeed
func LoadCurve(s Scenario, maxSpeed float64, n int) ([]CurvePoint, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	if maxSpeed <= 0 || n < 2 {
		return nil, fmt.Errorf("invalid curve range: max speed=%.2f, points=%d", maxSpeed, n)
	}

	gust, drag := s.Exposure.Gust(), s.Shape.Drag()
	step := maxSpeed / float64(n-1)
	points := make([]CurvePoint, n)
	for i := range points {
		v := float64(i) * step
		points[i] = CurvePoint{Speed: v, Load: Load(DynamicPressure(v), gust, drag, s.Area)}
	}
	return points, nil
}
