// Package ingest reads the account activity exports of an address into raw
// rows.
//
// Three CSV exports of a block explorer are supported: token transfers,
// transactions and internal transactions. The kind of a CSV file is detected
// from its header. Saved JSON responses of the explorer API (tokentx, txlist
// and txlistinternal) are supported as well.
//
// Rows of failed transactions moved no value and are skipped.
package ingest

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/etnz/arbfolio"
)

// ReadFile reads the rows of a single export file, CSV or JSON depending on
// its extension.
func ReadFile(path, observed string) ([]arbfolio.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []arbfolio.Row
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		rows, err = ReadJSON(f, observed)
	default:
		rows, err = ReadCSV(f)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %q: %w", path, err)
	}
	slog.Info("export read", "path", path, "rows", len(rows))
	return rows, nil
}

// ReadDir reads every CSV and JSON export in dir, in file name order.
func ReadDir(dir, observed string) ([]arbfolio.Row, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, e := range entries {
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if e.IsDir() || (ext != ".csv" && ext != ".json") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	slices.Sort(files)

	var rows []arbfolio.Row
	for _, file := range files {
		r, err := ReadFile(file, observed)
		if err != nil {
			return nil, err
		}
		rows = append(rows, r...)
	}
	return rows, nil
}

// failed reports whether a row carries an error code, and logs it.
func failed(hash, errCode string) bool {
	if strings.TrimSpace(errCode) == "" {
		return false
	}
	slog.Debug("skip failed transaction", "hash", hash, "error", errCode)
	return true
}
