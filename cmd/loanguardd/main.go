package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/loanguard/loanguard/gen/ent"
	compliancepb "github.com/loanguard/loanguard/gen/proto/compliance/v1"
	"github.com/loanguard/loanguard/internal/common"
	"github.com/loanguard/loanguard/internal/export"
	"github.com/loanguard/loanguard/internal/extract"
	"github.com/loanguard/loanguard/internal/llm/anthropic"
	processor "github.com/loanguard/loanguard/internal/pipeline"
	repo "github.com/loanguard/loanguard/internal/repository"
	svc "github.com/loanguard/loanguard/internal/server"
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
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Postgres when a DSN is configured, embedded sqlite otherwise.
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if cfg.Database.DSN != "" {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	} else {
		entc, err = repo.OpenSQLite(ctx, cfg.Database.SQLitePath, logger)
		if err != nil {
			logger.Error("failed to open sqlite database", "error", err)
			os.Exit(1)
		}
	}
	defer repo.Close(entc, pool, logger)

	loansRepo := repo.NewLoanRepository(entc, logger)

	// Extraction: LLM when configured, deterministic fallback otherwise.
	var primary extract.RequirementExtractor
	client, err := anthropic.NewClient(anthropic.Config{
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		Model:     cfg.LLM.Model,
		MaxTokens: cfg.LLM.MaxTokens,
		Timeout:   cfg.LLM.Timeout,
	}, logger)
	if err != nil {
		logger.Warn("extraction service unconfigured, sample mode only", "error", err)
		primary = extract.NewFixtureExtractor()
	} else {
		primary = client
	}
	proc := processor.NewProcessor(logger, primary, extract.NewFixtureExtractor())

	exporter := export.NewService(logger)

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

	complianceService := svc.NewComplianceService(loansRepo, proc, exporter, logger)
	compliancepb.RegisterComplianceServiceServer(grpcServer, complianceService)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("loanguardd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	grpcServer.GracefulStop()
}
