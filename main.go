package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dadosjusbr/status"
	"github.com/google/uuid"
)

// Exit codes for failures found before anything is written.
const (
	codeInvalidConfig  = 3
	codeInputNotFound  = 4
	codeFormatMismatch = 5
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		status.ExitFromError(status.NewError(codeInvalidConfig, err))
	}
	runID := uuid.NewString()
	slog.SetDefault(newLogger(os.Stderr, cfg.LogLevel, cfg.LogFormat).With(slog.String("run_id", runID)))

	res, err := run(cfg)
	if err != nil {
		slog.Error("run failed", slog.String("error", err.Error()))
		status.ExitFromError(exitError(err))
	}
	res.RunID = runID

	b, err := res.MarshalText()
	if err != nil {
		status.ExitFromError(status.NewError(status.Unknown, fmt.Errorf("error marshalling run result (%s):%q", res.Output, err)))
	}
	fmt.Printf("%s", b)
}

// run loads the spreadsheet, cleans it and writes the report.
func run(cfg Config) (RunResult, error) {
	slog.Info("loading spreadsheet", slog.String("path", cfg.InputFile))
	raw, err := loadSpreadsheet(cfg.InputFile, cfg.LoaderConfig)
	if err != nil {
		return RunResult{}, err
	}

	records, dropped := cleanRecords(raw)

	tables := buildReport(records, cfg.Columns)
	output := cfg.OutputPath()
	if err := writeWorkbook(output, tables); err != nil {
		return RunResult{}, err
	}

	res := RunResult{
		Input:       cfg.InputFile,
		Output:      output,
		Records:     len(records),
		DroppedRows: dropped,
	}
	for _, t := range tables {
		res.Sheets = append(res.Sheets, t.Name)
	}
	if cfg.CSVPackage {
		if res.CSVPackage, err = packageCSV(records, cfg.OutputFolder); err != nil {
			// A run either produces all of its outputs or none of them.
			os.Remove(output)
			return RunResult{}, err
		}
	}
	return res, nil
}

// exitError attaches the process exit code matching the failure.
func exitError(err error) error {
	switch {
	case errors.Is(err, ErrInputNotFound):
		return status.NewError(codeInputNotFound, err)
	case errors.Is(err, ErrFormatMismatch):
		return status.NewError(codeFormatMismatch, err)
	case errors.Is(err, ErrOutputWrite):
		return status.NewError(status.SystemError, err)
	default:
		return status.NewError(status.Unknown, err)
	}
}

func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
