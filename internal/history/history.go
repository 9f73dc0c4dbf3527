package history

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/wind"
)

// Default file names, relative to the history directory
const (
	DefaultSoilFile = "soil_analysis_history.csv"
	DefaultWindFile = "wind_load_history.csv"
)

// SoilHeader is the header row of the soil analysis log
var SoilHeader = []string{
	"Soil Type",
	"Soil Bearing Capacity (kN/m^2)",
	"Depth of Soil layer (m)",
	"Water table Depth (m)",
	"Allowable Bearing Capacity (kN)",
	"Settlement (m)",
	"Lateral Earth Pressure",
	"Water Table Effect",
}

// WindHeader is the header row of the wind load log
var WindHeader = []string{
	"Wind Load Calculation",
	"Structure Type",
	"Specific Type",
	"Acceptable Limits",
}

// Log is an append-only CSV file with a fixed header.
// Appends are serialized and each one opens, writes and closes the file.
type Log struct {
	mu     sync.Mutex
	path   string
	header []string
}

// NewLog creates a log at path with the given header. Nothing is written until the first append.
func NewLog(path string, header []string) *Log {
	return &Log{path: path, header: slices.Clone(header)}
}

// Path returns the file backing the log
func (l *Log) Path() string {
	return l.path
}

// Header returns a copy of the log's header row
func (l *Log) Header() []string {
	return slices.Clone(l.header)
}

// Append writes one row, preceded by the header if the file is new or empty
func (l *Log) Append(row []string) error {
	if len(row) != len(l.header) {
		return fmt.Errorf("history row has %d fields, want %d", len(row), len(l.header))
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if dir := filepath.Dir(l.path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating history directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("opening history %s: %w", l.path, err)
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return fmt.Errorf("reading history %s: %w", l.path, err)
	}

	w := csv.NewWriter(f)
	if info.Size() == 0 {
		w.Write(l.header)
	}
	w.Write(row)
	w.Flush()

	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("writing history %s: %w", l.path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing history %s: %w", l.path, err)
	}
	return nil
}

// Read returns all data rows (header excluded). A missing file yields no rows.
func (l *Log) Read() ([][]string, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.Open(l.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening history %s: %w", l.path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = len(l.header)

	var rows [][]string
	first := true
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parsing history %s: %w", l.path, err)
		}
		if first {
			first = false
			if slices.Equal(rec, l.header) {
				continue
			}
		}
		rows = append(rows, rec)
	}
	return rows, nil
}

// SoilRow converts a soil result to a log row in header order
func SoilRow(r *soil.Result) []string {
	return []string{
		string(r.Sample.Type),
		formatFloat(r.Sample.BearingCapacity),
		formatFloat(r.Sample.LayerDepth),
		formatFloat(r.Sample.WaterTableDepth),
		formatFloat(r.AllowableBearing),
		formatFloat(r.Settlement),
		formatFloat(r.LateralCoefficient),
		r.WaterTableEffect,
	}
}

// WindRow converts a wind result to a log row in header order
func WindRow(r *wind.Result) []string {
	return []string{
		formatFloat(r.Load),
		string(r.Scenario.Category),
		r.Scenario.Subtype,
		formatFloat(r.Limit),
	}
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
