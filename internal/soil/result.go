package soil

// Tier is the qualitative bearing capacity evaluation
type Tier string

const (
	TierLow    Tier = "Low"
	TierMedium Tier = "Medium"
	TierHigh   Tier = "High"
)

// Label returns the evaluation sentence, e.g. "Medium soil bearing capacity"
func (t Tier) Label() string {
	return string(t) + " soil bearing capacity"
}

// WarningCode identifies a soil warning independently of its wording
type WarningCode string

// Warning is a non-fatal finding of a soil analysis
type Warning struct {
	Code    WarningCode `json:"code"`
	Message string      `json:"message"`
}

func (w Warning) String() string {
	return w.Message
}

var (
	WarnLowBearing = Warning{
		Code:    "S001",
		Message: "The allowable soil bearing capacity is too low for safe construction!",
	}
	WarnSettlement = Warning{
		Code:    "S002",
		Message: "Settlement exceeds acceptable limits! Consider revising the foundation design.",
	}
	WarnLateralPressure = Warning{
		Code:    "S003",
		Message: "Lateral earth pressure is high. Consider reinforcing structures like retaining walls.",
	}
	WarnWaterTable = Warning{
		Code:    "S004",
		Message: "High water table detected. This may reduce soil stability and bearing capacity!",
	}
)

// Result holds a soil analysis
type Result struct {
	Sample      Sample `json:"sample"`
	Description string `json:"description"`

	LoadFactor         float64 `json:"load_factor"`
	AllowableBearing   float64 `json:"allowable_bearing"`   // kN
	Settlement         float64 `json:"settlement"`          // m
	LateralCoefficient float64 `json:"lateral_coefficient"` // dimensionless

	Tier               Tier      `json:"tier"`
	WaterTableAdequate bool      `json:"water_table_adequate"`
	WaterTableEffect   string    `json:"water_table_effect"`
	Warnings           []Warning `json:"warnings"`
}

// HasWarnings reports whether any check failed
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}
