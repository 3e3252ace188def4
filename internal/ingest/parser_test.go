package ingest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/davidolu/elector-registry/internal/common"
)

func collectRows(t *testing.T, src RowSource) []Row {
	t.Helper()
	var rows []Row
	for src.Next() {
		rows = append(rows, src.Row())
	}
	require.NoError(t, src.Err())
	require.NoError(t, src.Close())
	return rows
}

func TestParseCSV(t *testing.T) {
	data := strings.Join([]string{
		"email,gender,full_name,department,matriculation_number",
		"ada@example.edu,F,Ada Obi,Physics,1000001",
		"bayo@example.edu,M,Bayo Ade,Biology,1000002",
	}, "\n")

	src, err := Parse(strings.NewReader(data), "csv")
	require.NoError(t, err)

	rows := collectRows(t, src)
	require.Len(t, rows, 2)
	require.Equal(t, "ada@example.edu", rows[0]["email"])
	require.Equal(t, "1000002", rows[1]["matriculation_number"])
}

func TestParseCSVHeaderOrderIndependent(t *testing.T) {
	data := strings.Join([]string{
		"matriculation_number,department,full_name,gender,email",
		"1000001,Physics,Ada Obi,F,ada@example.edu",
	}, "\n")

	src, err := Parse(strings.NewReader(data), "csv")
	require.NoError(t, err)

	rows := collectRows(t, src)
	require.Len(t, rows, 1)
	require.Equal(t, "ada@example.edu", rows[0]["email"])
	require.Equal(t, "1000001", rows[0]["matriculation_number"])
}

func TestParseUnsupportedExtension(t *testing.T) {
	_, err := Parse(strings.NewReader("whatever"), "pdf")
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)
}

func TestParseSchemaMismatch(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"renamed column", "email,gender,full_name,department,mat_number"},
		{"missing column", "email,gender,full_name,department"},
		{"extra column", "email,gender,full_name,department,matriculation_number,phone"},
		{"empty file", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.header), "csv")
			require.Error(t, err)
			require.ErrorIs(t, err, common.ErrSchemaMismatch)
		})
	}
}

// The schema error names every expected column so the uploader can fix the
// file without guessing.
func TestParseSchemaMismatchMessage(t *testing.T) {
	header := "email,gender,full_name,department,mat_number\n"
	_, err := Parse(strings.NewReader(header), "csv")
	require.Error(t, err)
	require.Contains(t, err.Error(), "matriculation_number")
	require.Contains(t, err.Error(), "expected columns")
}

func TestParseCSVShortRecordPadded(t *testing.T) {
	data := strings.Join([]string{
		"email,gender,full_name,department,matriculation_number",
		"ada@example.edu,F,Ada Obi",
	}, "\n")

	src, err := Parse(strings.NewReader(data), "csv")
	require.NoError(t, err)

	rows := collectRows(t, src)
	require.Len(t, rows, 1)
	require.Equal(t, "", rows[0]["matriculation_number"])
}

func buildWorkbook(t *testing.T, header []string, records [][]any) *strings.Reader {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, h := range header {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(sheet, cell, h))
	}
	for r, record := range records {
		for c, v := range record {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return strings.NewReader(buf.String())
}

func TestParseXLSX(t *testing.T) {
	r := buildWorkbook(t,
		[]string{"email", "gender", "full_name", "department", "matriculation_number"},
		[][]any{
			{"ada@example.edu", "F", "Ada Obi", "Physics", 1000001},
			{"bayo@example.edu", "M", "Bayo Ade", "Biology", "1000002"},
		},
	)

	src, err := Parse(r, "xlsx")
	require.NoError(t, err)

	rows := collectRows(t, src)
	require.Len(t, rows, 2)
	require.Equal(t, "1000001", rows[0]["matriculation_number"])
	require.Equal(t, "Bayo Ade", rows[1]["full_name"])
}

func TestParseXLSXSchemaMismatch(t *testing.T) {
	r := buildWorkbook(t,
		[]string{"email", "gender", "name", "department", "matriculation_number"},
		nil,
	)
	_, err := Parse(r, "xlsx")
	require.ErrorIs(t, err, common.ErrSchemaMismatch)
}

func TestParseXLSXGarbageBytes(t *testing.T) {
	_, err := Parse(strings.NewReader("not a zip archive"), "xlsx")
	require.Error(t, err)
	require.False(t, errors.Is(err, common.ErrUnsupportedFormat))
}
