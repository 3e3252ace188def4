package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/davidolu/elector-registry/constants"
	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/entity"
)

type fakeUploadStore struct {
	mu       sync.Mutex
	uploads  map[string]*entity.VoterUpload
	progress []int // SetProcessedRecords history
}

func newFakeUploadStore(ups ...*entity.VoterUpload) *fakeUploadStore {
	s := &fakeUploadStore{uploads: map[string]*entity.VoterUpload{}}
	for _, up := range ups {
		s.uploads[up.ID] = up
	}
	return s
}

func (s *fakeUploadStore) get(id string) *entity.VoterUpload {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.uploads[id]
}

func (s *fakeUploadStore) Create(_ context.Context, adminID, filePath, fileExt string) (*entity.VoterUpload, error) {
	up := &entity.VoterUpload{
		ID:       constants.NewUploadID(),
		AdminID:  adminID,
		FilePath: filePath,
		FileExt:  fileExt,
		Status:   constants.UploadStatusPending,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[up.ID] = up
	return up, nil
}

func (s *fakeUploadStore) GetByID(_ context.Context, id string) (*entity.VoterUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	up, ok := s.uploads[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	cp := *up
	return &cp, nil
}

func (s *fakeUploadStore) ListPending(_ context.Context) ([]*entity.VoterUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.VoterUpload
	for _, up := range s.uploads {
		if up.Status == constants.UploadStatusPending {
			cp := *up
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeUploadStore) ListByAdmin(_ context.Context, adminID string) ([]*entity.VoterUpload, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.VoterUpload
	for _, up := range s.uploads {
		if up.AdminID == adminID {
			cp := *up
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (s *fakeUploadStore) ClaimPending(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	up, ok := s.uploads[id]
	if !ok || up.Status != constants.UploadStatusPending {
		return false, nil
	}
	up.Status = constants.UploadStatusProcessing
	return true, nil
}

func (s *fakeUploadStore) SetTotalRecords(_ context.Context, id string, total int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := total
	s.uploads[id].TotalRecords = &t
	return nil
}

func (s *fakeUploadStore) SetProcessedRecords(_ context.Context, id string, processed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.uploads[id].ProcessedRecords = processed
	s.progress = append(s.progress, processed)
	return nil
}

func (s *fakeUploadStore) Complete(_ context.Context, id string, processed int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	up := s.uploads[id]
	up.Status = constants.UploadStatusCompleted
	up.ProcessedRecords = processed
	return nil
}

func (s *fakeUploadStore) Fail(_ context.Context, id string, code, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	up := s.uploads[id]
	up.Status = constants.UploadStatusFailed
	up.FailureCode = &code
	up.Reason = reason
	return nil
}

type fakeAdminStore struct {
	admins map[string]*entity.Admin
}

func (s *fakeAdminStore) Create(_ context.Context, email string) (*entity.Admin, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeAdminStore) GetByID(_ context.Context, id string) (*entity.Admin, error) {
	a, ok := s.admins[id]
	if !ok {
		return nil, common.ErrNotFound
	}
	return a, nil
}

func (s *fakeAdminStore) Exists(_ context.Context, id string) (bool, error) {
	_, ok := s.admins[id]
	return ok, nil
}

// memorySink mimics collision-tolerant storage with unique email and
// matriculation number keys.
type memorySink struct {
	mu         sync.Mutex
	emails     map[string]struct{}
	matrics    map[string]struct{}
	calls      int
	failOnCall int // 1-based call number that starts failing, 0 = never
}

func newMemorySink() *memorySink {
	return &memorySink{emails: map[string]struct{}{}, matrics: map[string]struct{}{}}
}

func (s *memorySink) BulkInsert(_ context.Context, electors []*entity.Elector) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.failOnCall > 0 && s.calls >= s.failOnCall {
		return 0, fmt.Errorf("%w: connection refused", common.ErrStorageFailure)
	}
	inserted := 0
	for _, e := range electors {
		if _, dup := s.emails[e.Email]; dup {
			continue
		}
		if _, dup := s.matrics[e.MatriculationNumber]; dup {
			continue
		}
		s.emails[e.Email] = struct{}{}
		s.matrics[e.MatriculationNumber] = struct{}{}
		inserted++
	}
	return inserted, nil
}

func (s *memorySink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.emails)
}

type sentMail struct {
	to      []string
	subject string
	html    string
}

type fakeMailer struct {
	ch   chan sentMail
	fail bool
}

func newFakeMailer() *fakeMailer { return &fakeMailer{ch: make(chan sentMail, 4)} }

func (m *fakeMailer) Send(_ context.Context, to []string, subject, html string) error {
	m.ch <- sentMail{to: to, subject: subject, html: html}
	if m.fail {
		return common.ErrNotificationFailure
	}
	return nil
}

func (m *fakeMailer) wait(t *testing.T) sentMail {
	t.Helper()
	select {
	case sent := <-m.ch:
		return sent
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for notification")
		return sentMail{}
	}
}

type env struct {
	store  *fakeUploadStore
	sink   *memorySink
	mailer *fakeMailer
	proc   *Processor
	upload *entity.VoterUpload
}

func newEnv(t *testing.T, ext, content string, batchSize, progressEvery int) *env {
	t.Helper()
	upload := &entity.VoterUpload{
		ID:       "upload_test1",
		AdminID:  "admin_test1",
		FilePath: "/var/uploads/electors." + ext,
		FileExt:  ext,
		Status:   constants.UploadStatusProcessing,
	}
	store := newFakeUploadStore(upload)
	sink := newMemorySink()
	mailer := newFakeMailer()
	admins := &fakeAdminStore{admins: map[string]*entity.Admin{
		"admin_test1": {ID: "admin_test1", Email: "chair@example.edu"},
	}}

	proc := NewProcessor(slog.Default(), store, admins, sink, mailer, batchSize, progressEvery)
	proc.SetFileOpener(func(string) (io.ReadCloser, error) {
		return io.NopCloser(strings.NewReader(content)), nil
	})
	return &env{store: store, sink: sink, mailer: mailer, proc: proc, upload: upload}
}

const header = "email,gender,full_name,department,matriculation_number"

func csvFile(rows ...string) string {
	return strings.Join(append([]string{header}, rows...), "\n")
}

func TestProcessAllRowsValid(t *testing.T) {
	e := newEnv(t, "csv", csvFile(
		"a@example.edu,F,Ada Obi,Physics,1000001",
		"b@example.edu,M,Bayo Ade,Biology,1000002",
		"c@example.edu,F,Chidi Eze,Mathematics,1000003",
	), 1000, 20)

	require.NoError(t, e.proc.Process(context.Background(), "upload_test1"))

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusCompleted, up.Status)
	require.NotNil(t, up.TotalRecords)
	require.Equal(t, 3, *up.TotalRecords)
	require.Equal(t, 3, up.ProcessedRecords)
	require.Empty(t, up.Reason)
	require.Equal(t, 3, e.sink.count())

	sent := e.mailer.wait(t)
	require.Equal(t, []string{"chair@example.edu"}, sent.to)
	require.Contains(t, sent.html, "upload_test1")
	require.Contains(t, sent.html, "electors.csv")
	require.Contains(t, sent.html, "<strong>Total Records:</strong> 3")
	require.Contains(t, sent.html, "<strong>Valid Records Processed:</strong> 3")
}

func TestProcessSkipsMalformedRow(t *testing.T) {
	e := newEnv(t, "csv", csvFile(
		"a@example.edu,F,Ada Obi,Physics,1000001",
		",M,Bayo Ade,Biology,1000002", // empty email
		"c@example.edu,F,Chidi Eze,Mathematics,1000003",
	), 1000, 20)

	require.NoError(t, e.proc.Process(context.Background(), "upload_test1"))

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusCompleted, up.Status)
	require.Equal(t, 3, *up.TotalRecords)
	require.Equal(t, 2, up.ProcessedRecords)
}

func TestProcessSchemaMismatch(t *testing.T) {
	content := strings.Join([]string{
		"email,gender,full_name,department,mat_number",
		"a@example.edu,F,Ada Obi,Physics,1000001",
	}, "\n")
	e := newEnv(t, "csv", content, 1000, 20)

	err := e.proc.Process(context.Background(), "upload_test1")
	require.ErrorIs(t, err, common.ErrSchemaMismatch)

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusFailed, up.Status)
	require.NotNil(t, up.FailureCode)
	require.Equal(t, common.CodeSchemaMismatch, *up.FailureCode)
	require.Contains(t, up.Reason, "matriculation_number")
	require.Zero(t, up.ProcessedRecords)
	require.Zero(t, e.sink.count())
	require.Zero(t, e.sink.calls)
}

func TestProcessUnsupportedFormat(t *testing.T) {
	e := newEnv(t, "pdf", "%PDF-1.4", 1000, 20)

	err := e.proc.Process(context.Background(), "upload_test1")
	require.ErrorIs(t, err, common.ErrUnsupportedFormat)

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusFailed, up.Status)
	require.Equal(t, common.CodeUnsupportedFormat, *up.FailureCode)
	require.Zero(t, e.sink.count())
}

func TestProcessDuplicateMatricNumber(t *testing.T) {
	e := newEnv(t, "csv", csvFile(
		"a@example.edu,F,Ada Obi,Physics,1000001",
		"b@example.edu,M,Bayo Ade,Biology,1000001", // same matric number
	), 1000, 20)

	require.NoError(t, e.proc.Process(context.Background(), "upload_test1"))

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusCompleted, up.Status)
	require.Equal(t, 2, *up.TotalRecords)
	require.Equal(t, 1, up.ProcessedRecords)
	require.Equal(t, 1, e.sink.count())
}

func TestProcessStorageFailureMidStream(t *testing.T) {
	rows := make([]string, 0, 50)
	for i := 0; i < 50; i++ {
		rows = append(rows, fmt.Sprintf("u%d@example.edu,F,Elector %d,Physics,10%05d", i, i, i))
	}
	// batches of 10; the third bulk insert fails after 20 rows were committed
	e := newEnv(t, "csv", csvFile(rows...), 10, 20)
	e.sink.failOnCall = 3

	err := e.proc.Process(context.Background(), "upload_test1")
	require.ErrorIs(t, err, common.ErrStorageFailure)

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusFailed, up.Status)
	require.Equal(t, common.CodeStorageFailure, *up.FailureCode)
	require.Contains(t, up.Reason, "connection refused")
	require.Equal(t, 20, up.ProcessedRecords) // last persisted progress kept
}

func TestProcessProgressIsPersistedPeriodically(t *testing.T) {
	rows := make([]string, 0, 45)
	for i := 0; i < 45; i++ {
		rows = append(rows, fmt.Sprintf("u%d@example.edu,F,Elector %d,Physics,10%05d", i, i, i))
	}
	e := newEnv(t, "csv", csvFile(rows...), 10, 20)

	require.NoError(t, e.proc.Process(context.Background(), "upload_test1"))

	// two interim writes (after rows 20 and 40), committed counts at batch
	// boundaries
	require.Equal(t, []int{20, 40}, e.store.progress)

	up := e.store.get("upload_test1")
	require.Equal(t, 45, up.ProcessedRecords)
	require.Equal(t, 45, *up.TotalRecords)
}

// processed_records never exceeds total_records at any observed point.
func TestProcessProgressNeverExceedsTotal(t *testing.T) {
	rows := make([]string, 0, 100)
	for i := 0; i < 100; i++ {
		rows = append(rows, fmt.Sprintf("u%d@example.edu,M,Elector %d,Biology,20%05d", i, i, i))
	}
	e := newEnv(t, "csv", csvFile(rows...), 7, 5)

	require.NoError(t, e.proc.Process(context.Background(), "upload_test1"))

	up := e.store.get("upload_test1")
	require.NotNil(t, up.TotalRecords)
	for _, p := range e.store.progress {
		require.LessOrEqual(t, p, *up.TotalRecords)
	}
	require.LessOrEqual(t, up.ProcessedRecords, *up.TotalRecords)
}

func TestProcessNotificationFailureDoesNotAffectStatus(t *testing.T) {
	e := newEnv(t, "csv", csvFile("a@example.edu,F,Ada Obi,Physics,1000001"), 1000, 20)
	e.mailer.fail = true

	require.NoError(t, e.proc.Process(context.Background(), "upload_test1"))
	e.mailer.wait(t)

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusCompleted, up.Status)
}

func TestProcessFileOpenError(t *testing.T) {
	e := newEnv(t, "csv", "", 1000, 20)
	e.proc.SetFileOpener(func(string) (io.ReadCloser, error) {
		return nil, errors.New("no such file")
	})

	err := e.proc.Process(context.Background(), "upload_test1")
	require.Error(t, err)

	up := e.store.get("upload_test1")
	require.Equal(t, constants.UploadStatusFailed, up.Status)
	require.Contains(t, up.Reason, "no such file")
}
