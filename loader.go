package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrInputNotFound means the source spreadsheet does not exist.
	ErrInputNotFound = errors.New("input not found")
	// ErrFormatMismatch means the source sheet does not have the expected shape.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrOutputWrite means the report could not be written.
	ErrOutputWrite = errors.New("output write failure")
)

// loadSpreadsheet reads the data block of the source sheet. The first
// cfg.SkipRows rows are titles and notes; everything after them is mapped
// positionally onto cfg.Columns. Values are not parsed here.
func loadSpreadsheet(path string, cfg LoaderConfig) ([]rawRecord, error) {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("error opening spreadsheet (%s): %w", path, err)
	}
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening spreadsheet (%s): %v", ErrFormatMismatch, path, err)
	}
	defer f.Close()

	sheet := cfg.Sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("%w: error reading sheet %q: %v", ErrFormatMismatch, sheet, err)
	}
	if len(rows) < cfg.SkipRows {
		return nil, fmt.Errorf("%w: sheet %q has %d rows, expected at least %d", ErrFormatMismatch, sheet, len(rows), cfg.SkipRows)
	}
	data := rows[cfg.SkipRows:]

	// Trailing empty cells are not returned, so a row is only as wide as its
	// last filled cell. The widest row tells whether the columns are there.
	width := 0
	for _, row := range data {
		if len(row) > width {
			width = len(row)
		}
	}
	if len(data) > 0 && width < len(cfg.Columns) {
		return nil, fmt.Errorf("%w: sheet %q has %d columns, expected %d", ErrFormatMismatch, sheet, width, len(cfg.Columns))
	}

	records := make([]rawRecord, 0, len(data))
	for _, row := range data {
		records = append(records, newRawRecord(row))
	}
	slog.Info("spreadsheet loaded",
		slog.String("path", path),
		slog.String("sheet", sheet),
		slog.Int("records", len(records)))
	return records, nil
}

func newRawRecord(row []string) rawRecord {
	cell := func(i int) string {
		if i < len(row) {
			return row[i]
		}
		return ""
	}
	return rawRecord{
		RowIndex:                  cell(0),
		CensusYear:                cell(1),
		Region:                    cell(2),
		State:                     cell(3),
		Dependency:                cell(4),
		Category:                  cell(5),
		TeacherCount:              cell(6),
		FullTimePercentage:        cell(7),
		MinPay:                    cell(8),
		MedianPay:                 cell(9),
		MeanPay:                   cell(10),
		Pay75thPercentile:         cell(11),
		PayStdDev:                 cell(12),
		PayCoefficientOfVariation: cell(13),
		MeanPay40h:                cell(14),
	}
}
