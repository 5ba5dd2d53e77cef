package main

import (
	"fmt"

	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/known/structpb"
)

// RunResult describes a successful run. It is printed on stdout so the next
// step of a pipeline can pick the outputs up.
type RunResult struct {
	RunID       string   // Identifier also attached to every log line.
	Input       string   // Spreadsheet that was read.
	Output      string   // Workbook that was written.
	Records     int      // Rows in the cleaned table.
	DroppedRows int      // Rows removed for lacking grouping labels.
	Sheets      []string // Sheet names, in workbook order.
	CSVPackage  string   // Zip with the CSV dump; empty when not requested.
}

// MarshalText encodes the result as a prototext google.protobuf.Struct.
func (r RunResult) MarshalText() ([]byte, error) {
	sheets := make([]interface{}, 0, len(r.Sheets))
	for _, s := range r.Sheets {
		sheets = append(sheets, s)
	}
	fields := map[string]interface{}{
		"run_id":       r.RunID,
		"input":        r.Input,
		"output":       r.Output,
		"records":      r.Records,
		"dropped_rows": r.DroppedRows,
		"sheets":       sheets,
	}
	if r.CSVPackage != "" {
		fields["csv_package"] = r.CSVPackage
	}
	s, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, fmt.Errorf("error building run result: %w", err)
	}
	return prototext.Marshal(s)
}
