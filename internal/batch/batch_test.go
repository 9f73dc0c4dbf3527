package batch

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeRows(t *testing.T, f *excelize.File, sheet string, rows [][]interface{}) {
	t.Helper()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		require.NoError(t, err)
		row := r
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
}

func workbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenarios.xlsx")
	require.NoError(t, WriteTemplate(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	writeRows(t, f, WindSheet, [][]interface{}{
		{10, "B", "rectangular", "commercial", "retail", 50},
		{},
		{10, "Z", "rectangular", "commercial", "retail", 50},
		{8, "F", "irregular", "industrial", "power plant", 50},
		{10, "B", "rectangular", "commercial", "warehouse", 50},
	})
	writeRows(t, f, SoilSheet, [][]interface{}{
		{"clay", 200, 2, 3},
		{"gravel", 200, 2, 3},
		{"sand", 50, 1},
	})
	require.NoError(t, f.Save())
	return path
}

func TestRunFile(t *testing.T) {
	r, err := NewRunner(nil)
	require.NoError(t, err)

	rep, err := r.RunFile(workbook(t))
	require.NoError(t, err)

	require.Len(t, rep.Wind, 2)
	assert.Equal(t, 2, rep.Wind[0].Row)
	assert.InDelta(t, 3984.5, rep.Wind[0].Result.Load, 1e-9)
	assert.Equal(t, wind.Exceeds, rep.Wind[0].Result.Advisory)
	assert.Equal(t, 5, rep.Wind[1].Row)
	assert.Equal(t, wind.Caution, rep.Wind[1].Result.Advisory)

	require.Len(t, rep.Soil, 1)
	assert.InDelta(t, 160.0, rep.Soil[0].Result.AllowableBearing, 1e-9)

	assert.Equal(t, 3, rep.Processed())

	require.Len(t, rep.Errors, 4)
	var got []string
	for _, e := range rep.Errors {
		var verr *tables.ValidationError
		require.True(t, errors.As(e, &verr), e.Error())
		got = append(got, e.Sheet+":"+verr.Field)
	}
	assert.Equal(t, []string{
		"Wind:exposure category",
		"Wind:specific commercial type",
		"Soil:soil type",
		"Soil:water table depth",
	}, got)
	assert.Equal(t, 4, rep.Errors[0].Row)
	assert.Contains(t, rep.Errors[0].Error(), "Wind row 4")
}

func TestRunReader(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetName("Sheet1", SoilSheet))
	writeRows(t, f, SoilSheet, [][]interface{}{{"loam", 600, 1, 5}})

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	m, err := soil.NewModel(soil.Params{AppliedPressure: 150, FoundationWidth: 1, YoungModulus: 1e4, PoissonRatio: 0.3})
	require.NoError(t, err)
	r, err := NewRunner(m)
	require.NoError(t, err)

	rep, err := r.Run(&buf)
	require.NoError(t, err)
	assert.Empty(t, rep.Wind)
	require.Len(t, rep.Soil, 1)
	assert.Equal(t, soil.TierHigh, rep.Soil[0].Result.Tier)
	assert.Contains(t, rep.Soil[0].Result.Warnings, soil.WarnSettlement)
}

func TestRunNoSheets(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	r, err := NewRunner(nil)
	require.NoError(t, err)
	_, err = r.Run(&buf)
	assert.ErrorIs(t, err, ErrNoSheets)
}

func TestRunFileMissing(t *testing.T) {
	r, err := NewRunner(nil)
	require.NoError(t, err)
	_, err = r.RunFile(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
