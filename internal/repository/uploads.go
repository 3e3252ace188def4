package repository

import (
	"context"
	"log/slog"

	"github.com/davidolu/elector-registry/constants"
	"github.com/davidolu/elector-registry/gen/ent"
	entupload "github.com/davidolu/elector-registry/gen/ent/voterupload"
	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/entity"
)

type VoterUploadRepository interface {
	Create(ctx context.Context, adminID, filePath, fileExt string) (*entity.VoterUpload, error)
	GetByID(ctx context.Context, id string) (*entity.VoterUpload, error)
	ListPending(ctx context.Context) ([]*entity.VoterUpload, error)
	ListByAdmin(ctx context.Context, adminID string) ([]*entity.VoterUpload, error)
	// ClaimPending flips pending -> processing for exactly one row; the claim
	// succeeds only if the row was still pending. This is the single-flight
	// guard over upload jobs.
	ClaimPending(ctx context.Context, id string) (bool, error)
	SetTotalRecords(ctx context.Context, id string, total int) error
	SetProcessedRecords(ctx context.Context, id string, processed int) error
	Complete(ctx context.Context, id string, processed int) error
	Fail(ctx context.Context, id string, code, reason string) error
}

type voterUploadRepo struct {
	ent    *ent.Client
	logger *slog.Logger
}

func NewVoterUploadRepository(entc *ent.Client, logger *slog.Logger) VoterUploadRepository {
	return &voterUploadRepo{ent: entc, logger: logger}
}

func (r *voterUploadRepo) Create(ctx context.Context, adminID, filePath, fileExt string) (*entity.VoterUpload, error) {
	row, err := r.ent.VoterUpload.Create().
		SetAdminID(adminID).
		SetFilePath(filePath).
		SetFileExt(fileExt).
		SetStatus(string(constants.UploadStatusPending)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create voter upload", "admin_id", adminID, "file_path", filePath, "error", err)
		return nil, common.WrapError(err, "create upload")
	}
	r.logger.Info("voter upload created", "upload_id", row.ID, "admin_id", adminID)
	return toUpload(row), nil
}

func (r *voterUploadRepo) GetByID(ctx context.Context, id string) (*entity.VoterUpload, error) {
	row, err := r.ent.VoterUpload.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toUpload(row), nil
}

func (r *voterUploadRepo) ListPending(ctx context.Context) ([]*entity.VoterUpload, error) {
	rows, err := r.ent.VoterUpload.Query().
		Where(entupload.Status(string(constants.UploadStatusPending))).
		Order(ent.Asc(entupload.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list pending uploads", "error", err)
		return nil, err
	}
	return toUploads(rows), nil
}

func (r *voterUploadRepo) ListByAdmin(ctx context.Context, adminID string) ([]*entity.VoterUpload, error) {
	rows, err := r.ent.VoterUpload.Query().
		Where(entupload.AdminID(adminID)).
		Order(ent.Desc(entupload.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list uploads", "admin_id", adminID, "error", err)
		return nil, err
	}
	return toUploads(rows), nil
}

func (r *voterUploadRepo) ClaimPending(ctx context.Context, id string) (bool, error) {
	n, err := r.ent.VoterUpload.Update().
		Where(
			entupload.ID(id),
			entupload.Status(string(constants.UploadStatusPending)),
		).
		SetStatus(string(constants.UploadStatusProcessing)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to claim upload", "upload_id", id, "error", err)
		return false, err
	}
	return n == 1, nil
}

func (r *voterUploadRepo) SetTotalRecords(ctx context.Context, id string, total int) error {
	_, err := r.ent.VoterUpload.UpdateOneID(id).
		SetTotalRecords(total).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set total records", "upload_id", id, "error", err)
	}
	return err
}

func (r *voterUploadRepo) SetProcessedRecords(ctx context.Context, id string, processed int) error {
	_, err := r.ent.VoterUpload.UpdateOneID(id).
		SetProcessedRecords(processed).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to set processed records", "upload_id", id, "error", err)
	}
	return err
}

func (r *voterUploadRepo) Complete(ctx context.Context, id string, processed int) error {
	_, err := r.ent.VoterUpload.UpdateOneID(id).
		SetStatus(string(constants.UploadStatusCompleted)).
		SetProcessedRecords(processed).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to complete upload", "upload_id", id, "error", err)
		return err
	}
	r.logger.Info("voter upload completed", "upload_id", id, "processed_records", processed)
	return nil
}

func (r *voterUploadRepo) Fail(ctx context.Context, id string, code, reason string) error {
	_, err := r.ent.VoterUpload.UpdateOneID(id).
		SetStatus(string(constants.UploadStatusFailed)).
		SetFailureCode(code).
		SetReason(reason).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to mark upload failed", "upload_id", id, "error", err)
		return err
	}
	r.logger.Warn("voter upload failed", "upload_id", id, "code", code, "reason", reason)
	return nil
}

func toUpload(e *ent.VoterUpload) *entity.VoterUpload {
	return &entity.VoterUpload{
		ID:               e.ID,
		AdminID:          e.AdminID,
		FilePath:         e.FilePath,
		FileExt:          e.FileExt,
		Status:           constants.UploadStatus(e.Status),
		TotalRecords:     e.TotalRecords,
		ProcessedRecords: e.ProcessedRecords,
		FailureCode:      e.FailureCode,
		Reason:           e.Reason,
		CreatedAt:        e.CreatedAt,
		UpdatedAt:        e.UpdatedAt,
	}
}

func toUploads(rows []*ent.VoterUpload) []*entity.VoterUpload {
	out := make([]*entity.VoterUpload, 0, len(rows))
	for _, e := range rows {
		out = append(out, toUpload(e))
	}
	return out
}
