package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// Sheet names, in the order they appear in the workbook.
const (
	sheetFullData    = "Dados_Completos"
	sheetByRegion    = "Resumo_Regiao"
	sheetByState     = "Resumo_UF"
	sheetByNetwork   = "Resumo_Tipo_Rede"
	sheetByEducation = "Resumo_Escolaridade"
	sheetPayGap      = "Diferenca_Salarial"
	sheetMetadata    = "Metadados"
)

// Column names used by the aggregate sheets.
const (
	colRegion       = "REGIAO"
	colState        = "UF"
	colDependency   = "DEPENDENCIA"
	colCategory     = "CATEGORIA"
	colNetworkType  = "TIPO_REDE"
	colPayGap       = "DIFERENCA_SALARIAL"
	colTeacherCount = "NUMERO_DOCENTES"
	colMeanPay      = "REMUNERACAO_MEDIA"
	colMedianPay    = "REMUNERACAO_MEDIANA"
	colMinPay       = "REMUNERACAO_MINIMA"
)

const (
	minColWidth = 10
	maxColWidth = 60
)

// table is the content of one sheet.
type table struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// buildReport lays out the seven sheets of the report. columns are the names
// of the loaded columns, used as headers of the full data sheet.
func buildReport(records []Record, columns []string) []table {
	full := table{
		Name:   sheetFullData,
		Header: append(append([]string(nil), columns...), colNetworkType, colPayGap),
	}
	for _, r := range records {
		full.Rows = append(full.Rows, r.cells())
	}

	notTotal := func(r Record) bool { return r.Category != CategoryTotal }
	tables := []table{
		full,
		summaryTable(sheetByRegion, []string{colRegion},
			summarize(records, func(r Record) []string { return []string{r.Region} }, nil)),
		summaryTable(sheetByState, []string{colRegion, colState},
			summarize(records, func(r Record) []string { return []string{r.Region, r.State} }, nil)),
		summaryTable(sheetByNetwork, []string{colNetworkType, colDependency},
			summarize(records, func(r Record) []string { return []string{r.NetworkType, r.Dependency} }, nil)),
		summaryTable(sheetByEducation, []string{colCategory},
			summarize(records, func(r Record) []string { return []string{r.Category} }, notTotal)),
	}

	gaps := table{
		Name:   sheetPayGap,
		Header: []string{colRegion, colState, colDependency, colPayGap},
	}
	for _, g := range summarizePayGaps(records) {
		gaps.Rows = append(gaps.Rows, g.cells())
	}

	meta := table{
		Name:   sheetMetadata,
		Header: []string{"Coluna", "Descrição"},
	}
	for _, d := range columnDescriptions {
		meta.Rows = append(meta.Rows, []interface{}{d.Column, d.Description})
	}
	return append(tables, gaps, meta)
}

func summaryTable(name string, keyColumns []string, rows []summaryRow) table {
	t := table{
		Name:   name,
		Header: append(append([]string(nil), keyColumns...), colTeacherCount, colMeanPay, colMedianPay, colMinPay),
	}
	for _, r := range rows {
		t.Rows = append(t.Rows, r.cells())
	}
	return t
}

// writeWorkbook saves the tables as sheets of a new workbook at path. The
// workbook is written next to its destination and renamed into place, so a
// failed write leaves nothing behind.
func writeWorkbook(path string, tables []table) error {
	f := excelize.NewFile()
	defer f.Close()

	header, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("error creating header style: %w", err)
	}
	for i, t := range tables {
		if i == 0 {
			err = f.SetSheetName(f.GetSheetName(0), t.Name)
		} else {
			_, err = f.NewSheet(t.Name)
		}
		if err != nil {
			return fmt.Errorf("error creating sheet %s: %w", t.Name, err)
		}
		if err := writeTable(f, t, header); err != nil {
			return fmt.Errorf("error writing sheet %s: %w", t.Name, err)
		}
	}
	f.SetActiveSheet(0)

	if err := saveWorkbook(f, path); err != nil {
		return err
	}
	slog.Info("report saved", slog.String("path", path), slog.Int("sheets", len(tables)))
	return nil
}

func writeTable(f *excelize.File, t table, headerStyle int) error {
	header := t.Header
	if err := f.SetSheetRow(t.Name, "A1", &header); err != nil {
		return err
	}
	last, err := excelize.ColumnNumberToName(len(header))
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(t.Name, "A1", last+"1", headerStyle); err != nil {
		return err
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(t.Name, cell, &row); err != nil {
			return err
		}
		for j, v := range row {
			if v == nil || j >= len(widths) {
				continue
			}
			if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[j] {
				widths[j] = n
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		w = max(minColWidth, min(w, maxColWidth))
		if err := f.SetColWidth(t.Name, col, col, float64(w+2)); err != nil {
			return err
		}
	}
	return nil
}

func saveWorkbook(f *excelize.File, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: error creating output folder (%s): %v", ErrOutputWrite, dir, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: error creating %s: %v", ErrOutputWrite, path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := f.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: error writing %s: %v", ErrOutputWrite, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: error writing %s: %v", ErrOutputWrite, path, err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("%w: error writing %s: %v", ErrOutputWrite, path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: error writing %s: %v", ErrOutputWrite, path, err)
	}
	return nil
}
