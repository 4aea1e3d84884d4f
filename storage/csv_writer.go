package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WriteSheetUTF8BOM writes sheet to path as UTF-8 with a byte order mark,
// the form spreadsheet tools open without guessing. The file is written
// next to path and renamed over it, so a failed write leaves the old
// file untouched.
func WriteSheetUTF8BOM(path string, sheet *Sheet) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("csv: create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("csv: create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	tw := transform.NewWriter(tmp, unicode.UTF8BOM.NewEncoder())
	w := csv.NewWriter(tw)
	if err := w.Write(sheet.Header); err != nil {
		return fmt.Errorf("csv: write header: %w", err)
	}
	if err := w.WriteAll(sheet.Records); err != nil {
		return fmt.Errorf("csv: write rows: %w", err)
	}
	if err := tw.Close(); err != nil {
		return fmt.Errorf("csv: flush encoder: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("csv: close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("csv: replace %q: %w", path, err)
	}
	return nil
}
