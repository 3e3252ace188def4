package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/davidolu/elector-registry/constants"
	"github.com/davidolu/elector-registry/internal/common"
)

// Row is one parsed upload row, keyed by column name.
type Row map[string]string

// RowSource is a lazy, ordered sequence of upload rows. The column set is
// validated before the first row is yielded, so a bad file fails before any
// elector is written.
type RowSource interface {
	Next() bool
	Row() Row
	Err() error
	Close() error
}

// Parse opens a byte stream of the declared extension as a RowSource.
// Unrecognized extensions fail with ErrUnsupportedFormat; a wrong column set
// fails with ErrSchemaMismatch.
func Parse(r io.Reader, ext string) (RowSource, error) {
	switch constants.NormalizeExt(ext) {
	case "csv":
		return newCSVSource(r)
	case "xls", "xlsx":
		return newExcelSource(r)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ext)
	}
}

// checkHeader enforces exact set equality with the required columns,
// order-independent. Returns the header's column order for row mapping.
func checkHeader(header []string) ([]string, error) {
	cols := make([]string, 0, len(header))
	seen := map[string]struct{}{}
	for _, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF"))
		cols = append(cols, h)
		seen[h] = struct{}{}
	}

	ok := len(seen) == len(constants.RequiredColumns)
	if ok {
		for _, want := range constants.RequiredColumns {
			if _, found := seen[want]; !found {
				ok = false
				break
			}
		}
	}
	if !ok {
		expected := append([]string(nil), constants.RequiredColumns...)
		sort.Strings(expected)
		return nil, fmt.Errorf("%w: expected columns: %s", common.ErrSchemaMismatch, strings.Join(expected, ", "))
	}
	return cols, nil
}

func mapRow(cols, record []string) Row {
	row := make(Row, len(cols))
	for i, c := range cols {
		if i < len(record) {
			row[c] = record[i]
		} else {
			row[c] = ""
		}
	}
	return row
}

type csvSource struct {
	reader *csv.Reader
	cols   []string
	cur    Row
	err    error
}

func newCSVSource(r io.Reader) (*csvSource, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%w: empty or unreadable file", common.ErrSchemaMismatch)
	}
	cols, err := checkHeader(header)
	if err != nil {
		return nil, err
	}
	return &csvSource{reader: cr, cols: cols}, nil
}

func (s *csvSource) Next() bool {
	record, err := s.reader.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		s.err = err
		return false
	}
	s.cur = mapRow(s.cols, record)
	return true
}

func (s *csvSource) Row() Row     { return s.cur }
func (s *csvSource) Err() error   { return s.err }
func (s *csvSource) Close() error { return nil }

type excelSource struct {
	file *excelize.File
	rows *excelize.Rows
	cols []string
	cur  Row
	err  error
}

func newExcelSource(r io.Reader) (*excelSource, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}

	sheet := f.GetSheetName(0)
	rows, err := f.Rows(sheet)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if !rows.Next() {
		_ = rows.Close()
		_ = f.Close()
		return nil, fmt.Errorf("%w: empty or unreadable file", common.ErrSchemaMismatch)
	}
	header, err := rows.Columns()
	if err != nil {
		_ = rows.Close()
		_ = f.Close()
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := checkHeader(header)
	if err != nil {
		_ = rows.Close()
		_ = f.Close()
		return nil, err
	}
	return &excelSource{file: f, rows: rows, cols: cols}, nil
}

func (s *excelSource) Next() bool {
	if !s.rows.Next() {
		return false
	}
	record, err := s.rows.Columns()
	if err != nil {
		s.err = err
		return false
	}
	s.cur = mapRow(s.cols, record)
	return true
}

func (s *excelSource) Row() Row   { return s.cur }
func (s *excelSource) Err() error { return s.err }

func (s *excelSource) Close() error {
	_ = s.rows.Close()
	return s.file.Close()
}
