package scheduler

import (
	"context"
	"log/slog"
	"time"

	"github.com/davidolu/elector-registry/internal/async"
	"github.com/davidolu/elector-registry/internal/repository"
)

// SweepLockKey names the mutual-exclusion lock serializing sweeps.
const SweepLockKey = "uploads-sweep"

// Scheduler periodically scans for pending uploads and hands each claimed
// one to the processing queue exactly once.
type Scheduler struct {
	logger        *slog.Logger
	uploads       repository.VoterUploadRepository
	lock          repository.SweepLock
	queue         async.Queue
	interval      time.Duration
	dispatchDelay time.Duration
}

func New(
	logger *slog.Logger,
	uploads repository.VoterUploadRepository,
	lock repository.SweepLock,
	queue async.Queue,
	interval time.Duration,
	dispatchDelay time.Duration,
) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		logger:        logger,
		uploads:       uploads,
		lock:          lock,
		queue:         queue,
		interval:      interval,
		dispatchDelay: dispatchDelay,
	}
}

// Run drives sweeps on a fixed period until ctx is cancelled. A failed sweep
// never stops the loop.
func (s *Scheduler) Run(ctx context.Context) {
	s.logger.Info("upload scheduler started", "interval", s.interval)
	t := time.NewTicker(s.interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("upload scheduler stopped")
			return
		case <-t.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep scans for pending uploads and dispatches each one it claims. If the
// sweep lock is already held the tick is skipped entirely; there is no
// queuing or retry within the same tick.
func (s *Scheduler) Sweep(ctx context.Context) {
	release, acquired, err := s.lock.TryAcquire(ctx, SweepLockKey)
	if err != nil {
		s.logger.Error("sweep lock acquisition failed", "error", err)
		return
	}
	if !acquired {
		s.logger.Debug("sweep already in progress, skipping tick")
		return
	}
	defer release()

	pending, err := s.uploads.ListPending(ctx)
	if err != nil {
		s.logger.Error("failed to scan pending uploads", "error", err)
		return
	}

	for _, up := range pending {
		claimed, err := s.uploads.ClaimPending(ctx, up.ID)
		if err != nil {
			s.logger.Error("failed to claim upload", "upload_id", up.ID, "error", err)
			continue
		}
		if !claimed {
			// another claimant won the race; the job is no longer pending
			continue
		}

		s.logger.Info("initiating processing for upload", "upload_id", up.ID)
		now := time.Now()
		if err := s.queue.Enqueue(ctx, async.Job{
			UploadID:    up.ID,
			SubmittedAt: now,
			NotBefore:   now.Add(s.dispatchDelay),
		}); err != nil {
			s.logger.Error("failed to enqueue upload", "upload_id", up.ID, "error", err)
		}
	}
}
