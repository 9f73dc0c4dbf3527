package tables

import (
	"errors"
	"fmt"
	"strings"
)

// Category is the building-use category of a structure
type Category string

const (
	Residential     Category = "residential"
	Commercial      Category = "commercial"
	Industrial      Category = "industrial"
	Infrastructural Category = "infrastructural"
	Institutional   Category = "institutional"
	Agricultural    Category = "agricultural"
	Recreational    Category = "recreational"
	MixedUse        Category = "mixed use"
	Civic           Category = "civic"
	Transportation  Category = "transportation"
	Hospitality     Category = "hospitality"
)

// Subtype is one specific building type within a category and its acceptable wind load (N)
type Subtype struct {
	Name  string  `json:"name"`
	Limit float64 `json:"limit"`
}

type categoryEntry struct {
	Category Category
	Subtypes []Subtype
}

// Acceptable wind load limits (N) by building use, shared by every front end
var limitTable = []categoryEntry{
	{Residential, []Subtype{{"single-family", 1200}, {"duplex", 1300}, {"apartment", 1400}}},
	{Commercial, []Subtype{{"retail", 2800}, {"office", 2900}, {"shopping mall", 3000}}},
	{Industrial, []Subtype{{"factory", 5000}, {"warehouse", 4000}, {"power plant", 6000}}},
	{Infrastructural, []Subtype{{"bridge", 5000}, {"tower", 6000}, {"dam", 5000}}},
	{Institutional, []Subtype{{"school", 2300}, {"university", 2400}, {"hospital", 2500}}},
	{Agricultural, []Subtype{{"barn", 1800}, {"silo", 1900}, {"greenhouse", 2000}}},
	{Recreational, []Subtype{{"sports complex", 2800}, {"fitness center", 2900}, {"recreation center", 3000}}},
	{MixedUse, []Subtype{{"live-work", 3300}, {"mixed development", 3500}}},
	{Civic, []Subtype{{"community center", 2200}, {"library", 2300}, {"cultural facility", 2400}}},
	{Transportation, []Subtype{{"airport", 3900}, {"train station", 4000}, {"bus terminal", 4100}}},
	{Hospitality, []Subtype{{"hotel", 2800}, {"motel", 2900}, {"resort", 3000}}},
}

// Categories returns the structure categories in display order
func Categories() []Category {
	out := make([]Category, len(limitTable))
	for i, c := range limitTable {
		out[i] = c.Category
	}
	return out
}

func (c Category) entry() (categoryEntry, bool) {
	for _, e := range limitTable {
		if e.Category == c {
			return e, true
		}
	}
	return categoryEntry{}, false
}

// Valid reports whether c is a catalogued category
func (c Category) Valid() bool {
	_, ok := c.entry()
	return ok
}

// Title returns the category name capitalized for display ("Mixed use")
func (c Category) Title() string {
	s := string(c)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Subtypes returns the valid specific types for a category, nil if the category is unknown
func Subtypes(c Category) []Subtype {
	e, ok := c.entry()
	if !ok {
		return nil
	}
	return append([]Subtype(nil), e.Subtypes...)
}

// Limit returns the acceptable load for the (category, subtype) pair
func Limit(c Category, subtype string) (float64, error) {
	e, ok := c.entry()
	if !ok {
		return 0, &ValidationError{Field: "structure type", Value: string(c), Err: ErrUnknown, Hint: categoryHint()}
	}
	for _, s := range e.Subtypes {
		if s.Name == subtype {
			return s.Limit, nil
		}
	}
	return 0, &ValidationError{
		Field: fmt.Sprintf("specific %s type", c),
		Value: subtype,
		Err:   ErrUnknown,
		Hint:  subtypeHint(e),
	}
}

// ParseCategory matches a category name case-insensitively. "mixed-use" is accepted for "mixed use".
func ParseCategory(raw string) (Category, error) {
	key := strings.ReplaceAll(normalize(raw), "-", " ")
	for _, e := range limitTable {
		if key == string(e.Category) {
			return e.Category, nil
		}
	}
	return "", &ValidationError{Field: "structure type", Value: raw, Err: ErrUnknown, Hint: categoryHint()}
}

// ParseSubtype validates a specific type against the subtype set of its category
func ParseSubtype(c Category, raw string) (string, error) {
	key := normalize(raw)
	if _, err := Limit(c, key); err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			verr.Value = raw
		}
		return "", err
	}
	return key, nil
}

func categoryHint() string {
	names := make([]string, len(limitTable))
	for i, e := range limitTable {
		names[i] = string(e.Category)
	}
	return strings.Join(names, ", ")
}

func subtypeHint(e categoryEntry) string {
	names := make([]string, len(e.Subtypes))
	for i, s := range e.Subtypes {
		names[i] = s.Name
	}
	return strings.Join(names, ", ")
}
