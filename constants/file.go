package constants

import "strings"

// AllowedExtensions holds the accepted file extensions for elector uploads.
var AllowedExtensions = map[string]struct{}{
	"csv":  {},
	"xls":  {},
	"xlsx": {},
}

// RequiredColumns is the exact column set an upload must carry, order-independent.
var RequiredColumns = []string{"email", "gender", "full_name", "department", "matriculation_number"}

// Batching defaults for the upload pipeline.
const (
	DefaultBatchSize     = 1000 // electors per bulk insert
	DefaultProgressEvery = 20   // rows between processed_records writes
)

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}
