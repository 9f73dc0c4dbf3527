package history

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by ExportXLSX
const (
	SoilSheet = "Soil"
	WindSheet = "Wind"
)

// ExportXLSX writes both logs to one workbook, one sheet per log, with numeric cells as numbers
func (rec *Recorder) ExportXLSX(path string) error {
	if rec == nil {
		return fmt.Errorf("history is disabled")
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SoilSheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(WindSheet); err != nil {
		return err
	}

	if err := writeSheet(f, SoilSheet, rec.Soil); err != nil {
		return err
	}
	if err := writeSheet(f, WindSheet, rec.Wind); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving workbook %s: %w", path, err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet string, l *Log) error {
	rows, err := l.Read()
	if err != nil {
		return err
	}

	header := make([]interface{}, len(l.header))
	for i, h := range l.header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, v := range row {
			if n, err := strconv.ParseFloat(v, 64); err == nil {
				cells[j] = n
			} else {
				cells[j] = v
			}
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}
	return nil
}
