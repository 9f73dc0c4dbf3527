package history

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func soilResult(t *testing.T) *soil.Result {
	t.Helper()
	m, err := soil.NewModel(soil.DefaultParams())
	require.NoError(t, err)
	s, err := soil.NewSample(tables.Clay, 200, 2, 3)
	require.NoError(t, err)
	r, err := m.Analyze(s)
	require.NoError(t, err)
	return r
}

func windResult(t *testing.T) *wind.Result {
	t.Helper()
	s, err := wind.NewScenario(10, tables.ExposureB, tables.Rectangular, tables.Residential, "duplex", 50)
	require.NoError(t, err)
	r, err := wind.Compute(s)
	require.NoError(t, err)
	return r
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	recs, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return recs
}

func TestSoilLogHeaderWrittenOnce(t *testing.T) {
	rec := NewRecorder(t.TempDir(), "", "")
	r := soilResult(t)

	require.NoError(t, rec.RecordSoil(r))
	require.NoError(t, rec.RecordSoil(r))

	recs := readAll(t, rec.Soil.Path())
	require.Len(t, recs, 3)
	assert.Equal(t, SoilHeader, recs[0])
	assert.Equal(t, recs[1], recs[2])

	row := recs[1]
	assert.Equal(t, "Clay", row[0])
	assert.Equal(t, "200", row[1])
	assert.Equal(t, "2", row[2])
	assert.Equal(t, "3", row[3])
	assert.Equal(t, soil.WaterTableAdequate, row[7])
}

func TestSoilHeaderText(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(dir, "", "")
	require.NoError(t, rec.RecordSoil(soilResult(t)))

	data, err := os.ReadFile(filepath.Join(dir, DefaultSoilFile))
	require.NoError(t, err)
	firstLine := strings.SplitN(string(data), "\n", 2)[0]
	assert.Equal(t, "Soil Type,Soil Bearing Capacity (kN/m^2),Depth of Soil layer (m),Water table Depth (m),"+
		"Allowable Bearing Capacity (kN),Settlement (m),Lateral Earth Pressure,Water Table Effect", firstLine)
}

func TestWindLogRow(t *testing.T) {
	rec := NewRecorder(t.TempDir(), "", "wind.csv")
	require.NoError(t, rec.RecordWind(windResult(t)))

	recs := readAll(t, rec.Wind.Path())
	require.Len(t, recs, 2)
	assert.Equal(t, []string{"Wind Load Calculation", "Structure Type", "Specific Type", "Acceptable Limits"}, recs[0])
	assert.Equal(t, "residential", recs[1][1])
	assert.Equal(t, "duplex", recs[1][2])
	assert.Equal(t, "1300", recs[1][3])
	assert.True(t, strings.HasPrefix(recs[1][0], "3984.5"), recs[1][0])
}

func TestExistingFileKeepsSingleHeader(t *testing.T) {
	dir := t.TempDir()
	first := NewRecorder(dir, "", "")
	require.NoError(t, first.RecordWind(windResult(t)))

	// A second process opening the same file must not repeat the header
	second := NewRecorder(dir, "", "")
	require.NoError(t, second.RecordWind(windResult(t)))

	recs := readAll(t, second.Wind.Path())
	require.Len(t, recs, 3)
	assert.Equal(t, WindHeader, recs[0])
	assert.NotEqual(t, WindHeader, recs[2])
}

func TestConcurrentAppendsStayWellFormed(t *testing.T) {
	rec := NewRecorder(t.TempDir(), "", "")
	r := windResult(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, rec.RecordWind(r))
		}()
	}
	wg.Wait()

	rows, err := rec.Wind.Read()
	require.NoError(t, err)
	assert.Len(t, rows, 50)
	for _, row := range rows {
		assert.Equal(t, WindRow(r), row)
	}
}

func TestAppendFailureIsReported(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	rec := NewRecorder(blocker, "", "")
	err := rec.RecordSoil(soilResult(t))
	assert.Error(t, err)
}

func TestAppendRejectsWrongWidth(t *testing.T) {
	l := NewLog(filepath.Join(t.TempDir(), "x.csv"), WindHeader)
	assert.Error(t, l.Append([]string{"1"}))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var rec *Recorder
	assert.NoError(t, rec.RecordSoil(soilResult(t)))
	assert.NoError(t, rec.RecordWind(windResult(t)))
	assert.Error(t, rec.ExportXLSX(filepath.Join(t.TempDir(), "x.xlsx")))
}

func TestReadMissingFile(t *testing.T) {
	rows, err := NewLog(filepath.Join(t.TempDir(), "none.csv"), SoilHeader).Read()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestExportXLSX(t *testing.T) {
	dir := t.TempDir()
	rec := NewRecorder(dir, "", "")
	require.NoError(t, rec.RecordSoil(soilResult(t)))
	require.NoError(t, rec.RecordWind(windResult(t)))
	require.NoError(t, rec.RecordWind(windResult(t)))

	out := filepath.Join(dir, "history.xlsx")
	require.NoError(t, rec.ExportXLSX(out))

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SoilSheet, WindSheet}, f.GetSheetList())

	soilRows, err := f.GetRows(SoilSheet)
	require.NoError(t, err)
	require.Len(t, soilRows, 2)
	assert.Equal(t, SoilHeader, soilRows[0])
	assert.Equal(t, "Clay", soilRows[1][0])

	windRows, err := f.GetRows(WindSheet)
	require.NoError(t, err)
	require.Len(t, windRows, 3)
	assert.Equal(t, "duplex", windRows[2][2])
	assert.Equal(t, "1300", windRows[2][3])
}
