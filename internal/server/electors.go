package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	v1 "github.com/davidolu/elector-registry/gen/proto/registry/v1"
	"github.com/davidolu/elector-registry/internal/repository"
)

type ElectorService struct {
	v1.UnimplementedElectorServiceServer
	electors repository.ElectorRepository
	logger   *slog.Logger
}

func NewElectorService(electors repository.ElectorRepository, logger *slog.Logger) *ElectorService {
	return &ElectorService{electors: electors, logger: logger}
}

func (s *ElectorService) ListElectors(ctx context.Context, req *v1.ListElectorsRequest) (*v1.ListElectorsResponse, error) {
	adminID := strings.TrimSpace(req.GetAdminId())
	if adminID == "" {
		return nil, status.Error(codes.InvalidArgument, "admin_id is required")
	}

	limit := int(req.GetLimit())
	if limit <= 0 {
		limit = 100
	}
	if limit > 500 {
		limit = 500
	}
	offset := int(req.GetOffset())
	if offset < 0 {
		offset = 0
	}

	rows, err := s.electors.ListByAdmin(ctx, adminID, limit, offset)
	if err != nil {
		s.logger.Error("list electors failed", "admin_id", adminID, "error", err)
		return nil, status.Error(codes.Internal, "list electors failed")
	}
	total, err := s.electors.CountByAdmin(ctx, adminID)
	if err != nil {
		s.logger.Error("count electors failed", "admin_id", adminID, "error", err)
		return nil, status.Error(codes.Internal, "list electors failed")
	}

	out := make([]*v1.Elector, 0, len(rows))
	for _, e := range rows {
		out = append(out, &v1.Elector{
			Id:                  e.ID,
			AdminId:             e.AdminID,
			Email:               e.Email,
			MatriculationNumber: e.MatriculationNumber,
			FullName:            e.FullName,
			Gender:              e.Gender,
			Department:          e.Department,
			CreatedAt:           e.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return &v1.ListElectorsResponse{Electors: out, Total: int64(total)}, nil
}
