package constants

import "github.com/lithammer/shortuuid/v4"

// Identifier prefixes for externally visible IDs. Assigned once at creation,
// never reused.
const (
	AdminIDPrefix   = "admin_"
	UploadIDPrefix  = "upload_"
	ElectorIDPrefix = "elector_"
)

func NewAdminID() string   { return AdminIDPrefix + shortuuid.New() }
func NewUploadID() string  { return UploadIDPrefix + shortuuid.New() }
func NewElectorID() string { return ElectorIDPrefix + shortuuid.New() }
