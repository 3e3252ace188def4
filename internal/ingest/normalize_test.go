package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidolu/elector-registry/internal/common"
)

func validRow() Row {
	return Row{
		"email":                "ada@example.edu",
		"gender":               "F",
		"full_name":            "Ada Obi",
		"department":           "Physics",
		"matriculation_number": "1000001",
	}
}

func TestNormalizeRow(t *testing.T) {
	e, err := NormalizeRow(validRow(), "admin_abc")
	require.NoError(t, err)

	require.Equal(t, "admin_abc", e.AdminID)
	require.Equal(t, "ada@example.edu", e.Email)
	require.Equal(t, "1000001", e.MatriculationNumber)
	require.Equal(t, "F", e.Gender)
	require.True(t, strings.HasPrefix(e.ID, "elector_"))
}

func TestNormalizeRowAssignsUniqueIDs(t *testing.T) {
	a, err := NormalizeRow(validRow(), "admin_abc")
	require.NoError(t, err)
	b, err := NormalizeRow(validRow(), "admin_abc")
	require.NoError(t, err)
	require.NotEqual(t, a.ID, b.ID)
}

func TestNormalizeRowMissingCells(t *testing.T) {
	for _, col := range []string{"email", "gender", "full_name", "department", "matriculation_number"} {
		t.Run(col, func(t *testing.T) {
			row := validRow()
			row[col] = "  "
			_, err := NormalizeRow(row, "admin_abc")
			require.ErrorIs(t, err, common.ErrRowRejected)
			require.Contains(t, err.Error(), col)
		})
	}
}

func TestNormalizeRowGender(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{"M", "M", true},
		{"f", "F", true},
		{"male", "M", true},
		{" Female ", "F", true},
		{"other", "O", true},
		{"x", "", false},
		{"12", "", false},
	}
	for _, tc := range tests {
		row := validRow()
		row["gender"] = tc.in
		e, err := NormalizeRow(row, "admin_abc")
		if !tc.ok {
			require.ErrorIs(t, err, common.ErrRowRejected, "gender %q", tc.in)
			continue
		}
		require.NoError(t, err, "gender %q", tc.in)
		require.Equal(t, tc.want, e.Gender)
	}
}

func TestCoerceMatricNumber(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1000001", "1000001"},
		{"1000001.0", "1000001"},
		{"1000001.000", "1000001"},
		{" 1000001.0 ", "1000001"},
		{"1000001.5", "1000001.5"},   // real fraction kept as-is
		{"ENG/2021/044", "ENG/2021/044"},
		{"A123.0B", "A123.0B"},
		{"007", "007"}, // leading zeros preserved
		{".0", ".0"},
		{"", ""},
	}
	for _, tc := range tests {
		require.Equal(t, tc.want, CoerceMatricNumber(tc.in), "input %q", tc.in)
	}
}
