package tables

import "strings"

// Exposure is the terrain exposure category used to select the gust factor
type Exposure string

const (
	ExposureA Exposure = "A"
	ExposureB Exposure = "B"
	ExposureC Exposure = "C"
	ExposureD Exposure = "D"
	ExposureE Exposure = "E"
	ExposureF Exposure = "F"
)

type exposureEntry struct {
	Exposure    Exposure
	Label       string // short label used by the web form
	Description string
	Gust        float64
}

// Gust factor table (G)
var exposureTable = []exposureEntry{
	{ExposureA, "Open water or flat terrain (A)", "Open water or flat terrain", 0.8},
	{ExposureB, "Suburban terrain (B)", "Suburban terrain", 1.0},
	{ExposureC, "Urban areas (C)", "Urban areas with buildings and trees", 1.2},
	{ExposureD, "Open terrain (D)", "Open terrain with no obstructions", 1.4},
	{ExposureE, "Moderate density (E)", "Intermediate category for areas with moderate density", 1.4},
	{ExposureF, "High density (F)", "Areas with very high density and tall structures", 1.8},
}

// Shape is the structural shape used to select the drag coefficient
type Shape string

const (
	Rectangular Shape = "rectangular"
	Cylindrical Shape = "cylindrical"
	Triangular  Shape = "triangular"
	Hexagonal   Shape = "hexagonal"
	Octagonal   Shape = "octagonal"
	Dome        Shape = "dome"
	Parabolic   Shape = "parabolic"
	Irregular   Shape = "irregular"
	Sphere      Shape = "sphere"
	Cone        Shape = "cone"
	Airfoil     Shape = "airfoil"
)

type shapeEntry struct {
	Shape Shape
	Drag  float64
}

// Drag coefficient table (Cd)
var shapeTable = []shapeEntry{
	{Rectangular, 1.3},
	{Cylindrical, 0.6},
	{Triangular, 1.2},
	{Hexagonal, 1.1},
	{Octagonal, 1.05},
	{Dome, 0.4},
	{Parabolic, 0.9},
	{Irregular, 1.5},
	{Sphere, 0.47},
	{Cone, 0.5},
	{Airfoil, 0.04},
}

// ExposureInfo is a read-only view of one gust table row
type ExposureInfo struct {
	Exposure    Exposure `json:"exposure"`
	Label       string   `json:"label"`
	Description string   `json:"description"`
	Gust        float64  `json:"gust"`
}

// ShapeInfo is a read-only view of one drag table row
type ShapeInfo struct {
	Shape Shape   `json:"shape"`
	Drag  float64 `json:"drag"`
}

// Exposures returns the gust table in category order
func Exposures() []ExposureInfo {
	out := make([]ExposureInfo, len(exposureTable))
	for i, e := range exposureTable {
		out[i] = ExposureInfo(e)
	}
	return out
}

// Shapes returns the drag table in display order
func Shapes() []ShapeInfo {
	out := make([]ShapeInfo, len(shapeTable))
	for i, s := range shapeTable {
		out[i] = ShapeInfo(s)
	}
	return out
}

// Gust returns the gust factor G for the exposure, or 0 if unknown
func (e Exposure) Gust() float64 {
	for _, row := range exposureTable {
		if row.Exposure == e {
			return row.Gust
		}
	}
	return 0
}

// Valid reports whether e is one of A-F
func (e Exposure) Valid() bool {
	return e.Gust() > 0
}

// Description returns the terrain description for the exposure
func (e Exposure) Description() string {
	for _, row := range exposureTable {
		if row.Exposure == e {
			return row.Description
		}
	}
	return ""
}

// ParseExposure accepts a category letter ("b") or a web form label ("Suburban terrain (B)")
func ParseExposure(raw string) (Exposure, error) {
	key := normalize(raw)
	for _, row := range exposureTable {
		if key == strings.ToLower(string(row.Exposure)) || key == strings.ToLower(row.Label) {
			return row.Exposure, nil
		}
	}
	return "", &ValidationError{Field: "exposure category", Value: raw, Err: ErrUnknown, Hint: "A, B, C, D, E, F"}
}

// Drag returns the drag coefficient Cd for the shape, or 0 if unknown
func (s Shape) Drag() float64 {
	for _, row := range shapeTable {
		if row.Shape == s {
			return row.Drag
		}
	}
	return 0
}

// Valid reports whether s is one of the tabulated shapes
func (s Shape) Valid() bool {
	return s.Drag() > 0
}

// ParseShape matches a shape name case-insensitively
func ParseShape(raw string) (Shape, error) {
	key := normalize(raw)
	for _, row := range shapeTable {
		if key == string(row.Shape) {
			return row.Shape, nil
		}
	}
	names := make([]string, len(shapeTable))
	for i, row := range shapeTable {
		names[i] = string(row.Shape)
	}
	return "", &ValidationError{Field: "structural shape", Value: raw, Err: ErrUnknown, Hint: strings.Join(names, ", ")}
}
