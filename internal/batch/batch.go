package batch

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/xuri/excelize/v2"
)

// Sheet names read from a batch workbook
const (
	WindSheet = "Wind"
	SoilSheet = "Soil"
)

// ErrNoSheets is returned when a workbook has neither a Wind nor a Soil sheet
var ErrNoSheets = errors.New("workbook has no Wind or Soil sheet")

// Column layouts, header row first
var (
	WindColumns = []string{"Speed (m/s)", "Exposure", "Shape", "Category", "Subtype", "Area (m^2)"}
	SoilColumns = []string{"Soil Type", "Bearing Capacity (kN/m^2)", "Layer Depth (m)", "Water Table Depth (m)"}
)

// RowError reports a rejected row. Row is the 1-based spreadsheet row number.
type RowError struct {
	Sheet string `json:"sheet"`
	Row   int    `json:"row"`
	Err   error  `json:"-"`
}

func (e *RowError) Error() string {
	return fmt.Sprintf("%s row %d: %v", e.Sheet, e.Row, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// WindOutcome is one computed wind row
type WindOutcome struct {
	Row    int
	Result *wind.Result
}

// SoilOutcome is one analyzed soil row
type SoilOutcome struct {
	Row    int
	Result *soil.Result
}

// Report collects the outcome of every non-empty row
type Report struct {
	Wind   []WindOutcome
	Soil   []SoilOutcome
	Errors []*RowError
}

// Processed returns the number of rows that produced a result
func (r *Report) Processed() int {
	return len(r.Wind) + len(r.Soil)
}

// Runner evaluates batch workbooks with one soil model
type Runner struct {
	Soil *soil.Model
}

// NewRunner creates a runner. A nil model uses the default soil parameters.
func NewRunner(m *soil.Model) (*Runner, error) {
	if m == nil {
		var err error
		if m, err = soil.NewModel(soil.DefaultParams()); err != nil {
			return nil, err
		}
	}
	return &Runner{Soil: m}, nil
}

// RunFile opens the workbook at path and evaluates it
func (b *Runner) RunFile(path string) (*Report, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()
	return b.run(f)
}

// Run reads a workbook from r and evaluates it
func (b *Runner) Run(r io.Reader) (*Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("reading workbook: %w", err)
	}
	defer f.Close()
	return b.run(f)
}

func (b *Runner) run(f *excelize.File) (*Report, error) {
	windRows, hasWind, err := sheetRows(f, WindSheet)
	if err != nil {
		return nil, err
	}
	soilRows, hasSoil, err := sheetRows(f, SoilSheet)
	if err != nil {
		return nil, err
	}
	if !hasWind && !hasSoil {
		return nil, ErrNoSheets
	}

	rep := &Report{}

	// Row 0 is the header
	for i := 1; i < len(windRows); i++ {
		row := windRows[i]
		if blank(row) {
			continue
		}
		res, err := windRow(row)
		if err != nil {
			rep.Errors = append(rep.Errors, &RowError{Sheet: WindSheet, Row: i + 1, Err: err})
			continue
		}
		rep.Wind = append(rep.Wind, WindOutcome{Row: i + 1, Result: res})
	}

	for i := 1; i < len(soilRows); i++ {
		row := soilRows[i]
		if blank(row) {
			continue
		}
		res, err := b.soilRow(row)
		if err != nil {
			rep.Errors = append(rep.Errors, &RowError{Sheet: SoilSheet, Row: i + 1, Err: err})
			continue
		}
		rep.Soil = append(rep.Soil, SoilOutcome{Row: i + 1, Result: res})
	}

	return rep, nil
}

func sheetRows(f *excelize.File, sheet string) ([][]string, bool, error) {
	idx, err := f.GetSheetIndex(sheet)
	if err != nil {
		return nil, false, err
	}
	if idx < 0 {
		return nil, false, nil
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, true, fmt.Errorf("reading sheet %s: %w", sheet, err)
	}
	return rows, true, nil
}

func windRow(row []string) (*wind.Result, error) {
	in := wind.Input{
		Speed:    cell(row, 0),
		Exposure: cell(row, 1),
		Shape:    cell(row, 2),
		Category: cell(row, 3),
		Subtype:  cell(row, 4),
		Area:     cell(row, 5),
	}
	s, err := in.Parse()
	if err != nil {
		return nil, err
	}
	return wind.Compute(s)
}

func (b *Runner) soilRow(row []string) (*soil.Result, error) {
	s, err := soil.ParseSample(cell(row, 0), cell(row, 1), cell(row, 2), cell(row, 3))
	if err != nil {
		return nil, err
	}
	return b.Soil.Analyze(s)
}

// cell returns column i, or "" when excelize trimmed trailing empty cells
func cell(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// WriteTemplate saves an empty batch workbook with the expected headers
func WriteTemplate(path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", WindSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(SoilSheet); err != nil {
		return err
	}
	if err := setHeader(f, WindSheet, WindColumns); err != nil {
		return err
	}
	if err := setHeader(f, SoilSheet, SoilColumns); err != nil {
		return err
	}
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving template %s: %w", path, err)
	}
	return nil
}

func setHeader(f *excelize.File, sheet string, cols []string) error {
	row := make([]interface{}, len(cols))
	for i, c := range cols {
		row[i] = c
	}
	return f.SetSheetRow(sheet, "A1", &row)
}
