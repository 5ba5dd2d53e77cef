package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/prototext"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestRunResultMarshalText(t *testing.T) {
	res := RunResult{
		RunID:       "3f1c",
		Input:       "datasets/in.xlsx",
		Output:      "datasets/out.xlsx",
		Records:     42,
		DroppedRows: 3,
		Sheets:      []string{sheetFullData, sheetMetadata},
	}

	b, err := res.MarshalText()
	require.NoError(t, err)

	var s structpb.Struct
	require.NoError(t, prototext.Unmarshal(b, &s))
	got := s.AsMap()
	assert.Equal(t, "3f1c", got["run_id"])
	assert.Equal(t, "datasets/out.xlsx", got["output"])
	assert.Equal(t, 42.0, got["records"])
	assert.Equal(t, 3.0, got["dropped_rows"])
	assert.Equal(t, []interface{}{sheetFullData, sheetMetadata}, got["sheets"])
	assert.NotContains(t, got, "csv_package")

	res.CSVPackage = "datasets/pacote.zip"
	b, err = res.MarshalText()
	require.NoError(t, err)
	require.NoError(t, prototext.Unmarshal(b, &s))
	assert.Equal(t, "datasets/pacote.zip", s.AsMap()["csv_package"])
}
