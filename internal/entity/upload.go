package entity

import (
	"path/filepath"
	"time"

	"github.com/davidolu/elector-registry/constants"
)

// VoterUpload represents one uploaded file and its processing lifecycle
// for data transfer between layers.
type VoterUpload struct {
	ID               string                 `json:"id"`
	AdminID          string                 `json:"admin_id"`
	FilePath         string                 `json:"file_path"`
	FileExt          string                 `json:"file_ext"`
	Status           constants.UploadStatus `json:"status"`
	TotalRecords     *int                   `json:"total_records,omitempty"`
	ProcessedRecords int                    `json:"processed_records"`
	FailureCode      *string                `json:"failure_code,omitempty"`
	Reason           string                 `json:"reason,omitempty"`
	CreatedAt        time.Time              `json:"created_at"`
	UpdatedAt        time.Time              `json:"updated_at"`
}

// Filename returns the stored file's base name, path stripped, for display.
func (u *VoterUpload) Filename() string {
	return filepath.Base(u.FilePath)
}
