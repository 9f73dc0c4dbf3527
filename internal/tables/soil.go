package tables

import "strings"

// SoilType is the closed set of soil classifications accepted by the soil model
type SoilType string

const (
	Clay SoilType = "Clay"
	Sand SoilType = "Sand"
	Silt SoilType = "Silt"
	Loam SoilType = "Loam"
)

// UnknownSoilDescription is returned by Description for values outside the enum
const UnknownSoilDescription = "Unknown soil type"

var soilTypes = []SoilType{Clay, Sand, Silt, Loam}

var soilDescriptions = map[SoilType]string{
	Clay: "Clay soils are cohesive, sticky, and often have poor drainage.",
	Sand: "Sand soils are loose, non-cohesive, and drain quickly.",
	Silt: "Silt soils are smooth, slippery, and drain moderately.",
	Loam: "Loam soils are a mixture of sand, silt, and clay and have good drainage.",
}

// SoilTypes returns the accepted soil types in display order
func SoilTypes() []SoilType {
	return append([]SoilType(nil), soilTypes...)
}

// Valid reports whether t is one of the enumerated soil types
func (t SoilType) Valid() bool {
	_, ok := soilDescriptions[t]
	return ok
}

// Description returns the fixed descriptive sentence for the soil type
func (t SoilType) Description() string {
	if d, ok := soilDescriptions[t]; ok {
		return d
	}
	return UnknownSoilDescription
}

// ParseSoilType matches raw input case-insensitively ("clay", " CLAY ")
func ParseSoilType(raw string) (SoilType, error) {
	key := normalize(raw)
	for _, t := range soilTypes {
		if strings.ToLower(string(t)) == key {
			return t, nil
		}
	}
	return "", &ValidationError{Field: "soil type", Value: raw, Err: ErrUnknown, Hint: soilHint()}
}

func soilHint() string {
	names := make([]string, len(soilTypes))
	for i, t := range soilTypes {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}
