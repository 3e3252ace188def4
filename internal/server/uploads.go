package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/davidolu/elector-registry/constants"
	v1 "github.com/davidolu/elector-registry/gen/proto/registry/v1"
	"github.com/davidolu/elector-registry/internal/entity"
	"github.com/davidolu/elector-registry/internal/repository"
)

type UploadService struct {
	v1.UnimplementedUploadServiceServer
	uploads  repository.VoterUploadRepository
	admins   repository.AdminRepository
	spoolDir string
	logger   *slog.Logger
}

func NewUploadService(uploads repository.VoterUploadRepository, admins repository.AdminRepository, spoolDir string, logger *slog.Logger) *UploadService {
	return &UploadService{
		uploads:  uploads,
		admins:   admins,
		spoolDir: spoolDir,
		logger:   logger,
	}
}

// SubmitUpload stores the uploaded bytes and creates the pending upload row.
// The scheduler picks it up on its next sweep.
func (s *UploadService) SubmitUpload(ctx context.Context, req *v1.SubmitUploadRequest) (*v1.SubmitUploadResponse, error) {
	adminID := strings.TrimSpace(req.GetAdminId())
	if adminID == "" {
		s.logger.Error("submit upload request missing admin_id")
		return nil, status.Error(codes.InvalidArgument, "admin_id is required")
	}
	filename := filepath.Base(strings.TrimSpace(req.GetFilename()))
	if filename == "" || filename == "." {
		s.logger.Error("submit upload request missing filename", "admin_id", adminID)
		return nil, status.Error(codes.InvalidArgument, "filename is required")
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		s.logger.Error("submit upload with unsupported extension", "admin_id", adminID, "filename", filename)
		return nil, status.Errorf(codes.InvalidArgument, "unsupported file extension %q", ext)
	}
	if len(req.GetContent()) == 0 {
		return nil, status.Error(codes.InvalidArgument, "content is required")
	}

	if exists, _ := s.admins.Exists(ctx, adminID); !exists {
		s.logger.Error("admin not found for upload", "admin_id", adminID)
		return nil, status.Error(codes.InvalidArgument, "admin not found")
	}

	path, err := s.spool(adminID, filename, req.GetContent())
	if err != nil {
		s.logger.Error("failed to store upload file", "admin_id", adminID, "filename", filename, "error", err)
		return nil, status.Error(codes.Internal, "store upload failed")
	}

	up, err := s.uploads.Create(ctx, adminID, path, ext)
	if err != nil {
		return nil, status.Error(codes.Internal, "create upload failed")
	}

	s.logger.Info("upload submitted", "upload_id", up.ID, "admin_id", adminID, "filename", filename)
	return &v1.SubmitUploadResponse{Upload: toPBUpload(up)}, nil
}

func (s *UploadService) GetUpload(ctx context.Context, req *v1.GetUploadRequest) (*v1.GetUploadResponse, error) {
	id := strings.TrimSpace(req.GetId())
	if id == "" {
		return nil, status.Error(codes.InvalidArgument, "id is required")
	}
	up, err := s.uploads.GetByID(ctx, id)
	if err != nil {
		return nil, status.Error(codes.NotFound, "upload not found")
	}
	return &v1.GetUploadResponse{Upload: toPBUpload(up)}, nil
}

func (s *UploadService) ListUploads(ctx context.Context, req *v1.ListUploadsRequest) (*v1.ListUploadsResponse, error) {
	adminID := strings.TrimSpace(req.GetAdminId())
	if adminID == "" {
		return nil, status.Error(codes.InvalidArgument, "admin_id is required")
	}
	ups, err := s.uploads.ListByAdmin(ctx, adminID)
	if err != nil {
		return nil, status.Error(codes.Internal, "list uploads failed")
	}
	out := make([]*v1.Upload, 0, len(ups))
	for _, up := range ups {
		out = append(out, toPBUpload(up))
	}
	return &v1.ListUploadsResponse{Uploads: out}, nil
}

// spool writes the upload under the spool directory with a unique name.
func (s *UploadService) spool(adminID, filename string, content []byte) (string, error) {
	if err := os.MkdirAll(s.spoolDir, 0o755); err != nil {
		return "", fmt.Errorf("create spool dir: %w", err)
	}
	name := fmt.Sprintf("%s_%s_%s", adminID, uuid.NewString(), filename)
	path := filepath.Join(s.spoolDir, name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("write upload: %w", err)
	}
	return path, nil
}

func toPBUpload(up *entity.VoterUpload) *v1.Upload {
	pb := &v1.Upload{
		Id:               up.ID,
		AdminId:          up.AdminID,
		Filename:         up.Filename(),
		Status:           string(up.Status),
		ProcessedRecords: int64(up.ProcessedRecords),
		Reason:           up.Reason,
		CreatedAt:        up.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:        up.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if up.TotalRecords != nil {
		pb.TotalRecords = int64(*up.TotalRecords)
		pb.TotalKnown = true
	}
	if up.FailureCode != nil {
		pb.FailureCode = *up.FailureCode
	}
	return pb
}
