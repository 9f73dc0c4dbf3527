package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/tables"
	"github.com/alexiusacademia/gosite/internal/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSoil(t *testing.T) {
	m, err := soil.NewModel(soil.DefaultParams())
	require.NoError(t, err)
	s, err := soil.NewSample(tables.Sand, 50, 1, 1)
	require.NoError(t, err)
	r, err := m.Analyze(s)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteSoil(&buf, r, Meta{Project: "Site A", Author: "QA", Date: time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
	assert.Greater(t, buf.Len(), 500)
}

func TestWriteWind(t *testing.T) {
	sc, err := wind.NewScenario(10, tables.ExposureB, tables.Rectangular, tables.Residential, "duplex", 50)
	require.NoError(t, err)
	r, err := wind.Compute(sc)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteWind(&buf, r, Meta{}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
