package ingest

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/entity"
)

// memorySink mimics collision-tolerant bulk-insert storage: rows whose email
// or matriculation number was already seen are dropped from the count.
type memorySink struct {
	batches    [][]*entity.Elector
	emails     map[string]struct{}
	matrics    map[string]struct{}
	failOnCall int // 1-based call number that fails, 0 = never
	calls      int
}

func newMemorySink() *memorySink {
	return &memorySink{
		emails:  map[string]struct{}{},
		matrics: map[string]struct{}{},
	}
}

func (s *memorySink) BulkInsert(_ context.Context, electors []*entity.Elector) (int, error) {
	s.calls++
	if s.failOnCall > 0 && s.calls >= s.failOnCall {
		return 0, fmt.Errorf("%w: connection refused", common.ErrStorageFailure)
	}
	s.batches = append(s.batches, electors)
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

func elector(i int) *entity.Elector {
	return &entity.Elector{
		ID:                  fmt.Sprintf("elector_%d", i),
		AdminID:             "admin_abc",
		Email:               fmt.Sprintf("e%d@example.edu", i),
		MatriculationNumber: fmt.Sprintf("10%05d", i),
		FullName:            "Test Elector",
		Gender:              "F",
		Department:          "Physics",
	}
}

func TestBatchCommitterFlushesFullBuffers(t *testing.T) {
	sink := newMemorySink()
	c := NewBatchCommitter(sink, 3)
	ctx := context.Background()

	total := 0
	for i := 0; i < 7; i++ {
		n, err := c.Add(ctx, elector(i))
		require.NoError(t, err)
		total += n
	}
	require.Len(t, sink.batches, 2) // two full buffers of 3
	require.Equal(t, 6, total)
	require.Equal(t, 1, c.Buffered())

	n, err := c.Flush(ctx)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, 0, c.Buffered())
	require.Len(t, sink.batches, 3)
}

func TestBatchCommitterFlushEmpty(t *testing.T) {
	sink := newMemorySink()
	c := NewBatchCommitter(sink, 3)

	n, err := c.Flush(context.Background())
	require.NoError(t, err)
	require.Zero(t, n)
	require.Zero(t, sink.calls)
}

func TestBatchCommitterCountsOnlyPersistedRows(t *testing.T) {
	sink := newMemorySink()
	c := NewBatchCommitter(sink, 10)
	ctx := context.Background()

	a := elector(1)
	dup := elector(2)
	dup.MatriculationNumber = a.MatriculationNumber

	total := 0
	for _, e := range []*entity.Elector{a, dup, elector(3)} {
		n, err := c.Add(ctx, e)
		require.NoError(t, err)
		total += n
	}
	n, err := c.Flush(ctx)
	require.NoError(t, err)
	total += n

	require.Equal(t, 2, total) // duplicate dropped, not an error
}

func TestBatchCommitterPropagatesStorageErrors(t *testing.T) {
	sink := newMemorySink()
	sink.failOnCall = 1
	c := NewBatchCommitter(sink, 2)
	ctx := context.Background()

	_, err := c.Add(ctx, elector(1))
	require.NoError(t, err)
	_, err = c.Add(ctx, elector(2))
	require.ErrorIs(t, err, common.ErrStorageFailure)
}
