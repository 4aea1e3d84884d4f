package storage

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// LoadStatus tags how a load attempt ended.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	// LoadMissing means no candidate path existed.
	LoadMissing
	// LoadUnreadable means a file existed but no encoding produced the
	// required columns.
	LoadUnreadable
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadUnreadable:
		return "unreadable"
	}
	return fmt.Sprintf("LoadStatus(%d)", int(s))
}

// LoadResult is what the loader hands back. Table is never nil: failed
// loads carry an empty table typed with the required columns.
type LoadResult struct {
	Table    *Table
	Status   LoadStatus
	Path     string
	Encoding string
	Reason   string
}

// ErrMissingColumns reports a parse that lacked required headers.
var ErrMissingColumns = errors.New("missing required columns")

// LoadDataset resolves the first existing candidate and reads it.
func LoadDataset(candidates, required []string, encodings []Encoding) LoadResult {
	path, ok := PickExistingPath(candidates)
	if !ok {
		return LoadResult{
			Table:  EmptyTable(required),
			Status: LoadMissing,
			Reason: "no candidate path exists",
		}
	}
	return ReadTable(path, required, encodings)
}

// ReadTable reads path trying each encoding in order. The first attempt that
// parses and carries every required column wins; the returned table holds
// exactly the required columns in the required order.
func ReadTable(path string, required []string, encodings []Encoding) LoadResult {
	sheet, enc, err := ReadSheet(path, encodings, func(s *Sheet) error {
		return checkColumns(s, required)
	})
	if err != nil {
		return LoadResult{
			Table:  EmptyTable(required),
			Status: LoadUnreadable,
			Path:   path,
			Reason: err.Error(),
		}
	}
	return LoadResult{
		Table:    project(sheet, required),
		Status:   LoadOK,
		Path:     path,
		Encoding: enc,
	}
}

// ReadSheet parses a whole CSV or XLSX file. For CSV every encoding is tried
// in order until one decodes, parses and passes accept (which may be nil).
// It returns the name of the winning encoding.
func ReadSheet(path string, encodings []Encoding, accept func(*Sheet) error) (*Sheet, string, error) {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		sheet, err := readXLSX(path)
		if err == nil && accept != nil {
			err = accept(sheet)
		}
		if err != nil {
			return nil, "", fmt.Errorf("xlsx %q: %w", path, err)
		}
		return sheet, "xlsx", nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %q: %w", path, err)
	}

	var errs []error
	for _, enc := range encodings {
		decoded, err := enc.Decode(raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		sheet, err := parseCSV(decoded)
		if err == nil && accept != nil {
			err = accept(sheet)
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", enc.Name, err))
			continue
		}
		return sheet, enc.Name, nil
	}
	if len(errs) == 0 {
		return nil, "", fmt.Errorf("read %q: no encodings to try", path)
	}
	return nil, "", fmt.Errorf("read %q: %w", path, errors.Join(errs...))
}

func parseCSV(decoded []byte) (*Sheet, error) {
	r := csv.NewReader(bytes.NewReader(decoded))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		if err == io.EOF {
			return nil, errors.New("empty file")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	sheet := &Sheet{Header: trimHeader(header)}
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		sheet.Records = append(sheet.Records, record)
	}
	return sheet, nil
}

func readXLSX(path string) (*Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, errors.New("empty sheet")
	}
	return &Sheet{Header: trimHeader(rows[0]), Records: rows[1:]}, nil
}

func trimHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = strings.TrimSpace(h)
	}
	return out
}

func checkColumns(s *Sheet, required []string) error {
	var missing []string
	for _, col := range required {
		if s.Column(col) < 0 {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(missing, ", "))
	}
	return nil
}

func project(s *Sheet, columns []string) *Table {
	idx := make([]int, len(columns))
	for i, col := range columns {
		idx[i] = s.Column(col)
	}
	t := EmptyTable(columns)
	t.Rows = make([]Row, 0, len(s.Records))
	for pos, record := range s.Records {
		fields := make(map[string]string, len(columns))
		for i, col := range columns {
			if j := idx[i]; j >= 0 && j < len(record) {
				fields[col] = record[j]
			}
		}
		t.Rows = append(t.Rows, Row{Index: pos, Fields: fields})
	}
	return t
}
