package history

import (
	"path/filepath"

	"github.com/alexiusacademia/gosite/internal/soil"
	"github.com/alexiusacademia/gosite/internal/wind"
)

// Recorder owns the soil and wind logs of one history directory.
// A nil *Recorder records nothing, which is how history is switched off.
type Recorder struct {
	Soil *Log
	Wind *Log
}

// NewRecorder opens (lazily) the two logs under dir
func NewRecorder(dir, soilFile, windFile string) *Recorder {
	if soilFile == "" {
		soilFile = DefaultSoilFile
	}
	if windFile == "" {
		windFile = DefaultWindFile
	}
	return &Recorder{
		Soil: NewLog(filepath.Join(dir, soilFile), SoilHeader),
		Wind: NewLog(filepath.Join(dir, windFile), WindHeader),
	}
}

// RecordSoil appends a completed soil analysis
func (rec *Recorder) RecordSoil(r *soil.Result) error {
	if rec == nil {
		return nil
	}
	return rec.Soil.Append(SoilRow(r))
}

// RecordWind appends a completed wind load computation
func (rec *Recorder) RecordWind(r *wind.Result) error {
	if rec == nil {
		return nil
	}
	return rec.Wind.Append(WindRow(r))
}
