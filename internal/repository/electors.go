package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/davidolu/elector-registry/gen/ent"
	entelector "github.com/davidolu/elector-registry/gen/ent/elector"
	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/entity"
)

type ElectorRepository interface {
	// BulkInsert persists a batch in one statement and returns the number of
	// rows actually written. Rows colliding on email or matriculation number,
	// against existing rows or within the batch, are dropped silently.
	BulkInsert(ctx context.Context, electors []*entity.Elector) (int, error)
	ListByAdmin(ctx context.Context, adminID string, limit, offset int) ([]*entity.Elector, error)
	CountByAdmin(ctx context.Context, adminID string) (int, error)
}

type electorRepo struct {
	ent    *ent.Client
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewElectorRepository uses ent for reads and the raw pool for bulk writes;
// pgx reports rows affected for INSERT .. ON CONFLICT DO NOTHING, which is
// how the persisted count is obtained.
func NewElectorRepository(entc *ent.Client, pool *pgxpool.Pool, logger *slog.Logger) ElectorRepository {
	return &electorRepo{ent: entc, pool: pool, logger: logger}
}

func (r *electorRepo) BulkInsert(ctx context.Context, electors []*entity.Elector) (int, error) {
	if len(electors) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO electors (id, admin_id, email, matriculation_number, full_name, gender, department, created_at) VALUES ")
	args := make([]any, 0, len(electors)*8)
	for i, e := range electors {
		if i > 0 {
			sb.WriteString(", ")
		}
		base := i * 8
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d, $%d, $%d, $%d, $%d)",
			base+1, base+2, base+3, base+4, base+5, base+6, base+7, base+8)
		createdAt := e.CreatedAt
		if createdAt.IsZero() {
			createdAt = time.Now().UTC()
		}
		args = append(args, e.ID, e.AdminID, e.Email, e.MatriculationNumber, e.FullName, e.Gender, e.Department, createdAt)
	}
	sb.WriteString(" ON CONFLICT DO NOTHING")

	tag, err := r.pool.Exec(ctx, sb.String(), args...)
	if err != nil {
		r.logger.Error("bulk insert electors failed", "batch_size", len(electors), "error", err)
		return 0, fmt.Errorf("%w: bulk insert electors: %w", common.ErrStorageFailure, err)
	}

	inserted := int(tag.RowsAffected())
	if dropped := len(electors) - inserted; dropped > 0 {
		r.logger.Warn("duplicate electors dropped from batch", "batch_size", len(electors), "dropped", dropped)
	}
	return inserted, nil
}

func (r *electorRepo) ListByAdmin(ctx context.Context, adminID string, limit, offset int) ([]*entity.Elector, error) {
	q := r.ent.Elector.Query().
		Where(entelector.AdminID(adminID)).
		Order(ent.Desc(entelector.FieldCreatedAt)).
		Offset(offset)
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		r.logger.Error("failed to list electors", "admin_id", adminID, "error", err)
		return nil, err
	}
	out := make([]*entity.Elector, 0, len(rows))
	for _, e := range rows {
		out = append(out, toElector(e))
	}
	return out, nil
}

func (r *electorRepo) CountByAdmin(ctx context.Context, adminID string) (int, error) {
	return r.ent.Elector.Query().
		Where(entelector.AdminID(adminID)).
		Count(ctx)
}

func toElector(e *ent.Elector) *entity.Elector {
	return &entity.Elector{
		ID:                  e.ID,
		AdminID:             e.AdminID,
		Email:               e.Email,
		MatriculationNumber: e.MatriculationNumber,
		FullName:            e.FullName,
		Gender:              e.Gender,
		Department:          e.Department,
		CreatedAt:           e.CreatedAt,
	}
}
