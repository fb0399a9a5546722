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

	cardspb "github.com/slabworks/cardscan/gen/proto/cards/v1"
	"github.com/slabworks/cardscan/internal/common"
	"github.com/slabworks/cardscan/internal/export"
	"github.com/slabworks/cardscan/internal/jobs"
	"github.com/slabworks/cardscan/internal/pairing"
	repo "github.com/slabworks/cardscan/internal/repository"
	svc "github.com/slabworks/cardscan/internal/server"
	"github.com/slabworks/cardscan/internal/uploads"
	"github.com/slabworks/cardscan/internal/vision"
	"github.com/slabworks/cardscan/internal/vision/openai"
	"github.com/slabworks/cardscan/internal/vision/tesseract"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}

	batchRepo := repo.NewBatchRepository(entc, logger)
	uploadRepo := repo.NewUploadRepository(entc, logger)
	pairRepo := repo.NewPairRepository(entc, logger)
	jobRepo := repo.NewJobRepository(entc, logger)
	eventRepo := repo.NewJobEventRepository(entc, logger)

	// Vision providers
	registry := vision.NewRegistry()
	if err := registry.Register(tesseract.NewProvider(cfg.OCR)); err != nil {
		logger.Error("register tesseract provider", "error", err)
		os.Exit(1)
	}
	if cfg.Vision.APIKey != "" {
		p := openai.NewProvider(openai.Config{
			APIKey:      cfg.Vision.APIKey,
			BaseURL:     cfg.Vision.BaseURL,
			Model:       cfg.Vision.Model,
			Temperature: cfg.Vision.Temperature,
			Timeout:     cfg.Vision.Timeout,
		}, logger)
		if err := registry.Register(p); err != nil {
			logger.Error("register openai provider", "error", err)
			os.Exit(1)
		}
	}

	signer := uploads.NewSigner(cfg.Signer)
	images := uploads.NewRegistry(uploadRepo, signer, logger)

	session := pairing.NewSession(batchRepo, uploadRepo, pairRepo, logger)
	jobsSvc := jobs.NewService(batchRepo, pairRepo, jobRepo, eventRepo, logger)
	exportSvc := export.NewService(batchRepo, uploadRepo, pairRepo, logger)

	dispatcher := jobs.NewDispatcher(cfg.Dispatcher, pairRepo, jobRepo, eventRepo, registry, images, logger)
	supervisor := jobs.NewSupervisor(jobRepo, eventRepo, cfg.Dispatcher.JobTimeout, logger)

	go dispatcher.Run(ctx)
	go supervisor.Run(ctx)

	// gRPC server
	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	cardspb.RegisterPairingServiceServer(grpcServer, svc.NewPairingServer(session, logger))
	cardspb.RegisterJobsServiceServer(grpcServer, svc.NewJobsServer(jobsSvc, logger))
	cardspb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("cardscand listening", "addr", cfg.Server.GRPCAddr, "provider", cfg.Dispatcher.Provider)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	grpcServer.GracefulStop()
}
