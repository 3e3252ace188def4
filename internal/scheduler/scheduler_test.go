package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidolu/elector-registry/constants"
	"github.com/davidolu/elector-registry/internal/async"
	"github.com/davidolu/elector-registry/internal/entity"
)

type fakeUploadStore struct {
	mu            sync.Mutex
	uploads       map[string]*entity.VoterUpload
	listErr       error
	claimOverride func(id string) (bool, error)
}

func newFakeUploadStore(ups ...*entity.VoterUpload) *fakeUploadStore {
	s := &fakeUploadStore{uploads: map[string]*entity.VoterUpload{}}
	for _, up := range ups {
		s.uploads[up.ID] = up
	}
	return s
}

func (s *fakeUploadStore) Create(context.Context, string, string, string) (*entity.VoterUpload, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeUploadStore) GetByID(_ context.Context, id string) (*entity.VoterUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	up, ok := s.uploads[id]
	if !ok {
		return nil, errors.New("not found")
	}
	cp := *up
	return &cp, nil
}

func (s *fakeUploadStore) ListPending(context.Context) ([]*entity.VoterUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []*entity.VoterUpload
	for _, up := range s.uploads {
		if up.Status == constants.UploadStatusPending {
			cp := *up
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeUploadStore) ListByAdmin(context.Context, string) ([]*entity.VoterUpload, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeUploadStore) ClaimPending(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.claimOverride != nil {
		return s.claimOverride(id)
	}
	up, ok := s.uploads[id]
	if !ok || up.Status != constants.UploadStatusPending {
		return false, nil
	}
	up.Status = constants.UploadStatusProcessing
	return true, nil
}

func (s *fakeUploadStore) SetTotalRecords(context.Context, string, int) error     { return nil }
func (s *fakeUploadStore) SetProcessedRecords(context.Context, string, int) error { return nil }
func (s *fakeUploadStore) Complete(context.Context, string, int) error            { return nil }
func (s *fakeUploadStore) Fail(context.Context, string, string, string) error     { return nil }

type fakeLock struct {
	mu       sync.Mutex
	held     bool
	acquires int
	err      error
}

func (l *fakeLock) TryAcquire(_ context.Context, _ string) (func(), bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return nil, false, l.err
	}
	l.acquires++
	if l.held {
		return nil, false, nil
	}
	l.held = true
	return func() {
		l.mu.Lock()
		defer l.mu.Unlock()
		l.held = false
	}, true, nil
}

type recordingQueue struct {
	mu   sync.Mutex
	jobs []async.Job
}

func (q *recordingQueue) Enqueue(_ context.Context, job async.Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.jobs = append(q.jobs, job)
	return nil
}

func (q *recordingQueue) Shutdown(context.Context) {}

func (q *recordingQueue) ids() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.jobs))
	for _, j := range q.jobs {
		out = append(out, j.UploadID)
	}
	return out
}

func pendingUpload(id string) *entity.VoterUpload {
	return &entity.VoterUpload{
		ID:       id,
		AdminID:  "admin_test1",
		FilePath: "/var/uploads/" + id + ".csv",
		FileExt:  "csv",
		Status:   constants.UploadStatusPending,
	}
}

func TestSweepClaimsAndDispatchesPendingUploads(t *testing.T) {
	store := newFakeUploadStore(pendingUpload("upload_a"), pendingUpload("upload_b"))
	queue := &recordingQueue{}
	s := New(slog.Default(), store, &fakeLock{}, queue, 0, 0)

	s.Sweep(context.Background())

	require.ElementsMatch(t, []string{"upload_a", "upload_b"}, queue.ids())
	for _, id := range []string{"upload_a", "upload_b"} {
		up, err := store.GetByID(context.Background(), id)
		require.NoError(t, err)
		require.Equal(t, constants.UploadStatusProcessing, up.Status)
	}
}

// re-running a sweep while jobs are already processing must not re-dispatch
// them
func TestSweepIsIdempotent(t *testing.T) {
	store := newFakeUploadStore(pendingUpload("upload_a"))
	queue := &recordingQueue{}
	s := New(slog.Default(), store, &fakeLock{}, queue, 0, 0)

	s.Sweep(context.Background())
	s.Sweep(context.Background())
	s.Sweep(context.Background())

	require.Equal(t, []string{"upload_a"}, queue.ids())
}

func TestSweepSkipsTickWhenLockHeld(t *testing.T) {
	store := newFakeUploadStore(pendingUpload("upload_a"))
	queue := &recordingQueue{}
	lock := &fakeLock{held: true}
	s := New(slog.Default(), store, lock, queue, 0, 0)

	s.Sweep(context.Background())

	require.Empty(t, queue.ids())
	up, err := store.GetByID(context.Background(), "upload_a")
	require.NoError(t, err)
	require.Equal(t, constants.UploadStatusPending, up.Status)
}

func TestSweepReleasesLock(t *testing.T) {
	store := newFakeUploadStore()
	lock := &fakeLock{}
	s := New(slog.Default(), store, lock, &recordingQueue{}, 0, 0)

	s.Sweep(context.Background())
	require.False(t, lock.held)

	// a scan failure must still release the lock
	store.listErr = errors.New("db down")
	s.Sweep(context.Background())
	require.False(t, lock.held)
}

func TestSweepSkipsJobsClaimedElsewhere(t *testing.T) {
	store := newFakeUploadStore(pendingUpload("upload_a"))
	queue := &recordingQueue{}
	s := New(slog.Default(), store, &fakeLock{}, queue, 0, 0)

	// simulate a concurrent claimant winning between scan and claim
	store.claimOverride = func(string) (bool, error) { return false, nil }

	s.Sweep(context.Background())
	require.Empty(t, queue.ids())
}

func TestSweepLockErrorDoesNotPanic(t *testing.T) {
	store := newFakeUploadStore(pendingUpload("upload_a"))
	queue := &recordingQueue{}
	s := New(slog.Default(), store, &fakeLock{err: errors.New("lock backend down")}, queue, 0, 0)

	s.Sweep(context.Background())
	require.Empty(t, queue.ids())
}
