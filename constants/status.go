package constants

// UploadStatus is the canonical status for rows in voter_uploads.
type UploadStatus string

// Stable values (store these exact strings in DB).
const (
	UploadStatusPending    UploadStatus = "pending"    // created, not yet claimed by a sweep
	UploadStatusProcessing UploadStatus = "processing" // claimed, rows streaming through the pipeline
	UploadStatusCompleted  UploadStatus = "completed"  // terminal success
	UploadStatusFailed     UploadStatus = "failed"     // terminal failure, reason populated
)

// UploadStatuses holds the allowed values for the status field in VoterUpload.
var UploadStatuses = []string{
	string(UploadStatusPending),
	string(UploadStatusProcessing),
	string(UploadStatusCompleted),
	string(UploadStatusFailed),
}

// Terminal reports whether no further transitions are allowed from s.
func (s UploadStatus) Terminal() bool {
	return s == UploadStatusCompleted || s == UploadStatusFailed
}
