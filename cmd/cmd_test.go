package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gosite/internal/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// execute runs the command tree. Flag values persist between calls, so each
// test passes every flag it depends on.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestWindComputeAndHistory(t *testing.T) {
	dir := t.TempDir()
	pdf := filepath.Join(dir, "wind.pdf")

	out, err := execute(t, "wind", "compute", "--history-dir", dir,
		"--speed", "10", "--exposure", "b", "--shape", "Rectangular", "--area", "50",
		"--category", "commercial", "--subtype", "retail", "--chart", "--pdf", pdf)
	require.NoError(t, err)
	assert.Contains(t, out, "3984.50 N")
	assert.Contains(t, out, "WIND LOAD VS SPEED")
	assert.FileExists(t, pdf)

	out, err = execute(t, "history", "show", "wind", "--history-dir", dir, "--last", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "3984.5")
	assert.Contains(t, out, "Acceptable Limits")

	xlsx := filepath.Join(dir, "history.xlsx")
	_, err = execute(t, "history", "export", "--history-dir", dir, "--out", xlsx)
	require.NoError(t, err)
	assert.FileExists(t, xlsx)
}

func TestWindComputeRejectsSubtype(t *testing.T) {
	_, err := execute(t, "wind", "compute", "--history-dir", t.TempDir(),
		"--speed", "10", "--exposure", "B", "--shape", "dome", "--area", "5",
		"--category", "residential", "--subtype", "castle", "--chart=false", "--pdf", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid specific residential type "castle"`)
}

func TestSoilAnalyze(t *testing.T) {
	dir := t.TempDir()

	_, err := execute(t, "soil", "analyze", "--history-dir", dir,
		"--type", "gravel", "--capacity", "200", "--depth", "2", "--water-table", "3")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "soil type")

	out, err := execute(t, "soil", "analyze", "--history-dir", dir,
		"--type", "clay", "--capacity", "200", "--depth", "2", "--water-table", "3",
		"--young-modulus", "1e4")
	require.NoError(t, err)
	assert.Contains(t, out, "160.00 kN")
	assert.Contains(t, out, "[S002]")

	data, err := os.ReadFile(filepath.Join(dir, "soil_analysis_history.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Clay,200,2,3,160,")
}

func TestWindTables(t *testing.T) {
	out, err := execute(t, "wind", "tables")
	require.NoError(t, err)
	assert.Contains(t, out, "bus terminal")
	assert.Contains(t, out, "airfoil")
}

func TestBatch(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenarios.xlsx")
	require.NoError(t, batch.WriteTemplate(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	row := []interface{}{10, "B", "rectangular", "commercial", "retail", 50}
	require.NoError(t, f.SetSheetRow(batch.WindSheet, "A2", &row))
	bad := []interface{}{0, "B", "rectangular", "commercial", "retail", 50}
	require.NoError(t, f.SetSheetRow(batch.WindSheet, "A3", &bad))
	require.NoError(t, f.Save())
	require.NoError(t, f.Close())

	out, err := execute(t, "batch", "--history-dir", dir, "--file", path)
	require.Error(t, err)
	assert.Contains(t, out, "Exceeds")
	assert.Contains(t, out, "Wind row 3")
	assert.Contains(t, out, "1 row(s) evaluated, 1 rejected")
}
