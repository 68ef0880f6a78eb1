package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	mediafetchv1 "mediafetch/gen/mediafetch/v1"
	"mediafetch/internal/async"
	"mediafetch/internal/common"
	"mediafetch/internal/core"
	"mediafetch/internal/export"
	"mediafetch/internal/fetch"
	"mediafetch/internal/merge"
	"mediafetch/internal/repository"
	"mediafetch/internal/server"
	"mediafetch/internal/tool"
	"mediafetch/internal/workspace"
)

func main() {
	// .env is optional; environment variables may be set directly.
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if err := tool.CheckDependencies(cfg.Tools.YtDlpPath, cfg.Tools.FFmpegPath); err != nil {
		logger.Error("dependency check failed", "error", err)
		os.Exit(1)
	}
	for _, dir := range []string{cfg.Pipeline.StorageRoot, cfg.ScratchDir(), cfg.DownloadDir(), cfg.CookiesDir()} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			logger.Error("storage setup failed", "dir", dir, "error", err)
			os.Exit(1)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("database open failed", "error", err)
		os.Exit(1)
	}
	defer repository.Close(entc, pool, logger)
	if err := repository.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
		logger.Error("database health failed", "error", err)
		os.Exit(1)
	}
	if err := repository.Migrate(ctx, entc, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	jobsRepo := repository.NewJobRepository(entc, logger)
	keysRepo := repository.NewAPIKeyRepository(entc, logger)

	runner := tool.ExecRunner{}
	fetcher := fetch.NewFetcher(runner, cfg.Tools.YtDlpPath,
		fetch.Options{CookiesDir: cfg.CookiesDir()},
		cfg.Pipeline.FetchTimeout, logger)
	merger := merge.NewExecutor(runner, cfg.Tools.FFmpegPath, cfg.Tools.FFprobePath,
		cfg.Pipeline.MergeTimeout, logger)

	registry := core.NewRegistry()
	workspaces := workspace.NewManager(cfg.ScratchDir(), logger)
	orch := core.NewOrchestrator(registry, workspaces, fetcher, merger, jobsRepo, core.OrchestratorConfig{
		DownloadDir:   cfg.DownloadDir(),
		RetryAttempts: cfg.Pipeline.RetryAttempts,
		BackoffBase:   cfg.Pipeline.BackoffBase,
		ProbeTimeout:  cfg.Pipeline.ProbeTimeout,
	}, logger)

	queue := async.NewJobQueue(orch, logger,
		async.WithWorkers(cfg.Pipeline.Workers),
		async.WithQueueSize(cfg.Pipeline.QueueSize),
	)
	orch.SetQueue(queue)

	janitor := core.NewJanitor(registry, jobsRepo, cfg.DownloadDir(), cfg.Retention.Window, cfg.Retention.Archive, cfg.Retention.Sweep, logger)
	go janitor.Run(ctx)

	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(server.UnaryAuthInterceptor(keysRepo, logger)),
		grpc.StreamInterceptor(server.StreamAuthInterceptor(keysRepo, logger)),
	)
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	exportSvc := export.NewService(jobsRepo, logger)
	admin := server.NewAdminService(keysRepo, cfg.Server.MasterKey, logger)
	svc := server.NewMediaFetchService(orch, exportSvc, admin, logger)
	mediafetchv1.RegisterMediaFetchServiceServer(grpcServer, svc)

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("listen failed", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	logger.Info("gRPC serving", "addr", cfg.Server.GRPCAddr, "workers", cfg.Pipeline.Workers)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			logger.Error("grpc serve failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	grpcServer.GracefulStop()
	logger.Info("stopped")
}
