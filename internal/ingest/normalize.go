package ingest

import (
	"fmt"
	"strings"

	"github.com/davidolu/elector-registry/constants"
	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/entity"
)

// NormalizeRow maps one raw row to a candidate elector owned by adminID, or
// rejects it with ErrRowRejected. Rejection is never fatal to the upload.
func NormalizeRow(row Row, adminID string) (*entity.Elector, error) {
	for _, col := range constants.RequiredColumns {
		if strings.TrimSpace(row[col]) == "" {
			return nil, fmt.Errorf("%w: missing %s", common.ErrRowRejected, col)
		}
	}

	gender := normalizeGender(row["gender"])
	if gender == "" {
		return nil, fmt.Errorf("%w: unrecognized gender %q", common.ErrRowRejected, strings.TrimSpace(row["gender"]))
	}

	return &entity.Elector{
		ID:                  constants.NewElectorID(),
		AdminID:             adminID,
		Email:               strings.TrimSpace(row["email"]),
		MatriculationNumber: CoerceMatricNumber(row["matriculation_number"]),
		FullName:            strings.TrimSpace(row["full_name"]),
		Gender:              gender,
		Department:          strings.TrimSpace(row["department"]),
	}, nil
}

// CoerceMatricNumber coerces a matriculation number to text. Spreadsheet
// tooling renders numeric cells with float formatting ("10345.0"); strip a
// zero fraction without touching anything else, so no digits are lost.
func CoerceMatricNumber(raw string) string {
	s := strings.TrimSpace(raw)
	intPart, frac, found := strings.Cut(s, ".")
	if !found || intPart == "" || frac == "" {
		return s
	}
	if strings.Trim(frac, "0") != "" {
		return s
	}
	for _, r := range intPart {
		if r < '0' || r > '9' {
			return s
		}
	}
	return intPart
}

// normalizeGender reduces a gender cell to its single-letter code.
func normalizeGender(raw string) string {
	s := strings.ToUpper(strings.TrimSpace(raw))
	if s == "" {
		return ""
	}
	switch s[:1] {
	case "M", "F", "O":
		return s[:1]
	default:
		return ""
	}
}
