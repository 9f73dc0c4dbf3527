package wind

// Advisory is the three-tier verdict on a computed wind load
type Advisory string

const (
	Safe    Advisory = "Safe"
	Caution Advisory = "Caution"
	Exceeds Advisory = "Exceeds"
)

// Message returns the verdict sentence for a structure category
func (a Advisory) Message(category string) string {
	switch a {
	case Exceeds:
		return "Wind load exceeds the acceptable limit for " + category + " structures!"
	case Caution:
		return "Wind load is approaching the limit for " + category + " structures."
	default:
		return "Wind load is within safe limits for " + category + " structures."
	}
}

// Recommendation returns the follow-up action, empty for Safe
func (a Advisory) Recommendation() string {
	switch a {
	case Exceeds:
		return "Consider reinforcing the structure to withstand higher loads."
	case Caution:
		return "Monitor the structure for any signs of damage or strain."
	default:
		return ""
	}
}

// Result holds a computed wind load and its evaluation
type Result struct {
	Scenario Scenario `json:"scenario"`

	DynamicPressure float64 `json:"dynamic_pressure"` // q
	Gust            float64 `json:"gust"`             // G
	Drag            float64 `json:"drag"`             // Cd
	Load            float64 `json:"load"`             // N

	Limit    float64  `json:"limit"` // N
	Ratio    float64  `json:"ratio"` // load / limit
	Advisory Advisory `json:"advisory"`
}
