package ingest

import (
	"context"

	"github.com/davidolu/elector-registry/internal/entity"
)

// ElectorSink persists one batch of electors and reports how many rows were
// actually written (duplicate-key collisions are dropped, not errors).
type ElectorSink interface {
	BulkInsert(ctx context.Context, electors []*entity.Elector) (int, error)
}

// BatchCommitter buffers normalized electors and commits each full buffer as
// one bulk insert. Not safe for concurrent use; each upload gets its own.
type BatchCommitter struct {
	sink ElectorSink
	size int
	buf  []*entity.Elector
}

func NewBatchCommitter(sink ElectorSink, size int) *BatchCommitter {
	if size <= 0 {
		size = 1
	}
	return &BatchCommitter{
		sink: sink,
		size: size,
		buf:  make([]*entity.Elector, 0, size),
	}
}

// Add buffers one elector, flushing if the buffer is full. It returns the
// number of rows persisted by any flush it triggered.
func (c *BatchCommitter) Add(ctx context.Context, e *entity.Elector) (int, error) {
	c.buf = append(c.buf, e)
	if len(c.buf) < c.size {
		return 0, nil
	}
	return c.Flush(ctx)
}

// Flush commits whatever is buffered and returns the persisted row count.
// On error the buffer is dropped; the upload is failing anyway.
func (c *BatchCommitter) Flush(ctx context.Context) (int, error) {
	if len(c.buf) == 0 {
		return 0, nil
	}
	batch := c.buf
	c.buf = make([]*entity.Elector, 0, c.size)
	return c.sink.BulkInsert(ctx, batch)
}

// Buffered returns the number of electors waiting for the next commit.
func (c *BatchCommitter) Buffered() int { return len(c.buf) }
