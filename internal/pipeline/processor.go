package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/entity"
	"github.com/davidolu/elector-registry/internal/ingest"
	"github.com/davidolu/elector-registry/internal/notify"
	"github.com/davidolu/elector-registry/internal/repository"
)

// FileOpener opens a stored upload for reading.
type FileOpener func(path string) (io.ReadCloser, error)

// Processor drives one claimed upload end-to-end: parse, normalize, batch
// commit, progress bookkeeping, terminal state, notification.
type Processor struct {
	logger        *slog.Logger
	uploads       repository.VoterUploadRepository
	admins        repository.AdminRepository
	electors      ingest.ElectorSink
	mailer        notify.Mailer
	open          FileOpener
	batchSize     int
	progressEvery int
	notifyTimeout time.Duration
}

func NewProcessor(
	logger *slog.Logger,
	uploads repository.VoterUploadRepository,
	admins repository.AdminRepository,
	electors ingest.ElectorSink,
	mailer notify.Mailer,
	batchSize int,
	progressEvery int,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	if batchSize <= 0 {
		batchSize = 1000
	}
	if progressEvery <= 0 {
		progressEvery = 20
	}
	return &Processor{
		logger:        logger,
		uploads:       uploads,
		admins:        admins,
		electors:      electors,
		mailer:        mailer,
		open:          func(path string) (io.ReadCloser, error) { return os.Open(path) },
		batchSize:     batchSize,
		progressEvery: progressEvery,
		notifyTimeout: 30 * time.Second,
	}
}

// SetFileOpener overrides how stored files are opened.
func (p *Processor) SetFileOpener(open FileOpener) { p.open = open }

// Process runs one upload to a terminal state. The upload must already be in
// processing; callers claim it through the scheduler's pending flip.
//
// Failure semantics: parse-stage and storage errors are fatal and recorded on
// the upload; row rejections and duplicate-key drops are absorbed. Progress
// persisted before a mid-stream failure is kept as the last-known-good count.
func (p *Processor) Process(ctx context.Context, uploadID string) error {
	p.logger.Info("processing upload", "upload_id", uploadID)

	up, err := p.uploads.GetByID(ctx, uploadID)
	if err != nil {
		p.logger.Error("failed to load upload", "upload_id", uploadID, "error", err)
		return err
	}

	f, err := p.open(up.FilePath)
	if err != nil {
		return p.fail(ctx, up.ID, fmt.Errorf("open upload file: %w", err))
	}
	src, err := ingest.Parse(f, up.FileExt)
	if err != nil {
		_ = f.Close()
		return p.fail(ctx, up.ID, err)
	}
	defer func() {
		_ = src.Close()
		_ = f.Close()
	}()

	committer := ingest.NewBatchCommitter(p.electors, p.batchSize)
	total := 0
	committed := 0

	for src.Next() {
		total++
		rec, rejErr := ingest.NormalizeRow(src.Row(), up.AdminID)
		if rejErr != nil {
			p.logger.Warn("invalid row skipped", "upload_id", up.ID, "row", total, "reason", rejErr)
			continue
		}

		n, err := committer.Add(ctx, rec)
		if err != nil {
			return p.fail(ctx, up.ID, err)
		}
		committed += n

		if total%p.progressEvery == 0 {
			p.logger.Info("upload progress", "upload_id", up.ID, "rows", total, "committed", committed)
			if err := p.uploads.SetProcessedRecords(ctx, up.ID, committed); err != nil {
				return p.fail(ctx, up.ID, fmt.Errorf("%w: persist progress: %w", common.ErrStorageFailure, err))
			}
		}
	}
	if err := src.Err(); err != nil {
		return p.fail(ctx, up.ID, fmt.Errorf("read rows: %w", err))
	}

	n, err := committer.Flush(ctx)
	if err != nil {
		return p.fail(ctx, up.ID, err)
	}
	committed += n

	if err := p.uploads.SetTotalRecords(ctx, up.ID, total); err != nil {
		return p.fail(ctx, up.ID, fmt.Errorf("%w: persist total: %w", common.ErrStorageFailure, err))
	}
	if err := p.uploads.Complete(ctx, up.ID, committed); err != nil {
		return p.fail(ctx, up.ID, fmt.Errorf("%w: persist completion: %w", common.ErrStorageFailure, err))
	}

	p.logger.Info("completed processing upload",
		"upload_id", up.ID, "total_records", total, "valid_records", committed)

	p.dispatchNotification(up, notify.UploadSummary{
		UploadID:     up.ID,
		Filename:     up.Filename(),
		TotalRecords: total,
		ValidRecords: committed,
	})
	return nil
}

// fail records the terminal failed state with a structured code and the
// error's message, and hands the cause back to the caller.
func (p *Processor) fail(ctx context.Context, uploadID string, cause error) error {
	p.logger.Error("upload processing failed", "upload_id", uploadID, "error", cause)
	if err := p.uploads.Fail(ctx, uploadID, common.FailureCode(cause), cause.Error()); err != nil {
		p.logger.Error("failed to persist failure state", "upload_id", uploadID, "error", err)
	}
	return cause
}

// dispatchNotification sends the completion email on its own goroutine so a
// slow mail transport never delays completion accounting.
func (p *Processor) dispatchNotification(up *entity.VoterUpload, summary notify.UploadSummary) {
	if p.mailer == nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), p.notifyTimeout)
		defer cancel()

		admin, err := p.admins.GetByID(ctx, up.AdminID)
		if err != nil {
			p.logger.Error("failed to resolve notification recipient", "upload_id", up.ID, "admin_id", up.AdminID, "error", err)
			return
		}
		html := notify.RenderUploadProcessed(summary)
		if err := p.mailer.Send(ctx, []string{admin.Email}, notify.UploadProcessedSubject, html); err != nil {
			p.logger.Error("upload notification failed", "upload_id", up.ID, "error", err)
		}
	}()
}
