package repository

import (
	"context"
	"log/slog"

	"github.com/davidolu/elector-registry/gen/ent"
	entadmin "github.com/davidolu/elector-registry/gen/ent/admin"
	"github.com/davidolu/elector-registry/internal/entity"
)

type AdminRepository interface {
	Create(ctx context.Context, email string) (*entity.Admin, error)
	GetByID(ctx context.Context, id string) (*entity.Admin, error)
	Exists(ctx context.Context, id string) (bool, error)
}

type adminRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewAdminRepository(entc *ent.Client, logger *slog.Logger) AdminRepository {
	return &adminRepo{ent: entc, logger: logger}
}

func (r *adminRepo) Create(ctx context.Context, email string) (*entity.Admin, error) {
	row, err := r.ent.Admin.Create().
		SetEmail(email).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create admin", "email", email, "error", err)
		return nil, err
	}
	return toAdmin(row), nil
}

func (r *adminRepo) GetByID(ctx context.Context, id string) (*entity.Admin, error) {
	row, err := r.ent.Admin.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toAdmin(row), nil
}

func (r *adminRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.ent.Admin.Query().Where(entadmin.ID(id)).Exist(ctx)
}

func toAdmin(e *ent.Admin) *entity.Admin {
	return &entity.Admin{
		ID:        e.ID,
		Email:     e.Email,
		CreatedAt: e.CreatedAt,
	}
}
