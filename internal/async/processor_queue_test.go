package async

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type recordingProcessor struct {
	mu        sync.Mutex
	processed []string
	started   map[string]time.Time
}

func newRecordingProcessor() *recordingProcessor {
	return &recordingProcessor{started: map[string]time.Time{}}
}

func (p *recordingProcessor) Process(_ context.Context, uploadID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.processed = append(p.processed, uploadID)
	p.started[uploadID] = time.Now()
	return nil
}

func (p *recordingProcessor) ids() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.processed...)
}

func TestProcessorQueueProcessesJobs(t *testing.T) {
	proc := newRecordingProcessor()
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(2), WithQueueSize(8))

	now := time.Now()
	for _, id := range []string{"upload_a", "upload_b", "upload_c"} {
		require.NoError(t, q.Enqueue(context.Background(), Job{UploadID: id, SubmittedAt: now, NotBefore: now}))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	require.ElementsMatch(t, []string{"upload_a", "upload_b", "upload_c"}, proc.ids())
}

func TestProcessorQueueHonorsDispatchDelay(t *testing.T) {
	proc := newRecordingProcessor()
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	now := time.Now()
	notBefore := now.Add(100 * time.Millisecond)
	require.NoError(t, q.Enqueue(context.Background(), Job{UploadID: "upload_a", SubmittedAt: now, NotBefore: notBefore}))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	q.Shutdown(ctx)

	proc.mu.Lock()
	started := proc.started["upload_a"]
	proc.mu.Unlock()
	require.False(t, started.IsZero())
	require.False(t, started.Before(notBefore))
}

func TestProcessorQueueEnqueueAfterShutdown(t *testing.T) {
	proc := newRecordingProcessor()
	q := NewProcessorQueue(proc, slog.Default(), WithWorkers(1))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	q.Shutdown(ctx)

	// must not panic on a closed queue
	require.NoError(t, q.Enqueue(context.Background(), Job{UploadID: "upload_late"}))
	require.Empty(t, proc.ids())
}
