package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	v1 "github.com/davidolu/elector-registry/gen/proto/registry/v1"
	"github.com/davidolu/elector-registry/internal/async"
	"github.com/davidolu/elector-registry/internal/common"
	"github.com/davidolu/elector-registry/internal/notify"
	"github.com/davidolu/elector-registry/internal/pipeline"
	repo "github.com/davidolu/elector-registry/internal/repository"
	"github.com/davidolu/elector-registry/internal/scheduler"
	svc "github.com/davidolu/elector-registry/internal/server"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.Mail.ResendAPIKey == "" {
		logger.Warn("RESEND_API_KEY not set, upload notifications disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	adminsRepo := repo.NewAdminRepository(entc, logger)
	uploadsRepo := repo.NewVoterUploadRepository(entc, logger)
	electorsRepo := repo.NewElectorRepository(entc, pool, logger)
	sweepLock := repo.NewAdvisoryLock(pool, logger)

	var mailer notify.Mailer
	if cfg.Mail.ResendAPIKey != "" {
		mailer = notify.NewResendMailer(cfg.Mail.ResendAPIKey, cfg.Mail.FromAddress, cfg.Mail.Timeout, logger)
	}

	proc := pipeline.NewProcessor(
		logger,
		uploadsRepo,
		adminsRepo,
		electorsRepo,
		mailer,
		cfg.Ingest.BatchSize,
		cfg.Ingest.ProgressEvery,
	)
	queue := async.NewProcessorQueue(proc, logger, async.WithWorkers(cfg.Scheduler.Workers))

	sched := scheduler.New(logger, uploadsRepo, sweepLock, queue, cfg.Scheduler.SweepInterval, cfg.Scheduler.DispatchDelay)
	go sched.Run(ctx)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	hs := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	v1.RegisterUploadServiceServer(grpcServer, svc.NewUploadService(uploadsRepo, adminsRepo, cfg.Ingest.SpoolDir, logger))
	v1.RegisterElectorServiceServer(grpcServer, svc.NewElectorService(electorsRepo, logger))

	go func() {
		logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr)
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	grpcServer.GracefulStop()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	logger.Info("stopped")
}
