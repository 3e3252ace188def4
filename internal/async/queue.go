package async

import (
	"context"
	"time"
)

// Job is one claimed upload handed off for processing.
type Job struct {
	UploadID    string
	SubmittedAt time.Time
	// NotBefore delays processing briefly so the claiming status write
	// settles before the processor re-reads the row.
	NotBefore time.Time
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// UploadProcessor runs one upload to a terminal state.
type UploadProcessor interface {
	Process(ctx context.Context, uploadID string) error
}
