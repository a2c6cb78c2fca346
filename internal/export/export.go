// Package export renders blood-pressure records as downloadable files.
package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/MKhiriev/bpl-web-backend/models"
	"github.com/tealeg/xlsx/v3"
)

//go:generate mockgen -source=export.go -destination=../mock/export_mock.go -package=mock

const (
	SheetName   = "Blood Pressure Logs"
	Filename    = "blood_pressure_logs.xlsx"
	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Header is the first row of the sheet, one column per record field.
var Header = []string{"id", "record_datetime", "systolic", "diastolic", "heart_rate", "notes"}

// Formatter serializes records into a file body.
type Formatter interface {
	Format(records []models.BloodPressureRecord) ([]byte, error)
}

type xlsxFormatter struct{}

// NewXLSXFormatter returns a [Formatter] that writes one sheet named
// [SheetName] with a [Header] row followed by one row per record, in the
// order given.
func NewXLSXFormatter() Formatter {
	return xlsxFormatter{}
}

func (xlsxFormatter) Format(records []models.BloodPressureRecord) ([]byte, error) {
	file := xlsx.NewFile()
	sh, err := file.AddSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("error adding sheet: %w", err)
	}

	header := sh.AddRow()
	for _, column := range Header {
		header.AddCell().SetValue(column)
	}

	for _, record := range records {
		row := sh.AddRow()
		row.AddCell().SetValue(record.ID)
		row.AddCell().SetValue(record.RecordDatetime.UTC().Format(time.RFC3339))
		row.AddCell().SetValue(record.Systolic)
		row.AddCell().SetValue(record.Diastolic)
		row.AddCell().SetValue(record.HeartRate)
		if record.Notes != nil {
			row.AddCell().SetValue(*record.Notes)
		} else {
			row.AddCell()
		}
	}

	var buf bytes.Buffer
	if err = file.Write(&buf); err != nil {
		return nil, fmt.Errorf("error writing workbook: %w", err)
	}

	return buf.Bytes(), nil
}
