package main

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

const (
	csvFileName    = "dados_completos.csv"
	csvPackageName = "dados_remuneracao_tratados.zip"
)

// packageCSV dumps the cleaned table into a CSV file inside folder, zips it
// and removes the CSV. It returns the path of the zip file. On failure
// neither the CSV nor a partial zip is left behind.
func packageCSV(records []Record, folder string) (string, error) {
	csvPath := filepath.Join(folder, csvFileName)
	if err := toCSVFile(&records, csvPath); err != nil {
		os.Remove(csvPath)
		return "", fmt.Errorf("%w: %v", ErrOutputWrite, err)
	}
	zipPath := filepath.Join(folder, csvPackageName)
	if err := zipFiles(zipPath, []string{csvPath}); err != nil {
		os.Remove(csvPath)
		return "", fmt.Errorf("%w: error zipping %s: %v", ErrOutputWrite, csvPath, err)
	}
	// Only the zip is kept.
	if err := os.Remove(csvPath); err != nil {
		return "", fmt.Errorf("%w: error removing %s: %v", ErrOutputWrite, csvPath, err)
	}
	slog.Info("csv package saved", slog.String("path", zipPath), slog.Int("records", len(records)))
	return zipPath, nil
}

func toCSVFile(in interface{}, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating CSV file(%s):%q", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing CSV file(%s):%q", path, cerr)
		}
	}()

	csvWriter := csv.NewWriter(f)
	csvWriter.Comma = ';'
	csvWriter.UseCRLF = true

	return gocsv.MarshalCSV(in, csvWriter)
}

// zipFiles creates filename holding files, each stored under its base name.
// A partially written zip is removed.
func zipFiles(filename string, files []string) (err error) {
	newfile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := newfile.Close(); cerr != nil && err == nil {
			err = cerr
		}
		if err != nil {
			os.Remove(filename)
		}
	}()
	return writeZip(newfile, files)
}

// writeZip writes files as a zip archive to w. Closing the zip writer flushes
// the entries and the central directory, so its error is part of the result.
func writeZip(w io.Writer, files []string) error {
	zipWriter := zip.NewWriter(w)
	for _, file := range files {
		if err := addToZip(zipWriter, file); err != nil {
			zipWriter.Close()
			return err
		}
	}
	return zipWriter.Close()
}

func addToZip(zipWriter *zip.Writer, file string) error {
	zipfile, err := os.Open(file)
	if err != nil {
		return err
	}
	defer zipfile.Close()
	info, err := zipfile.Stat()
	if err != nil {
		return err
	}
	header, err := zip.FileInfoHeader(info)
	if err != nil {
		return err
	}

	header.Name = filepath.Base(file)
	header.Method = zip.Deflate
	writer, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}
	_, err = io.Copy(writer, zipfile)
	return err
}
