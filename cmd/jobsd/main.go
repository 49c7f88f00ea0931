package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/campuspass/campuspass/gen/ent"
	jobspb "github.com/campuspass/campuspass/gen/proto/jobs/v1"
	"github.com/campuspass/campuspass/internal/artifact"
	"github.com/campuspass/campuspass/internal/bulk"
	"github.com/campuspass/campuspass/internal/common"
	"github.com/campuspass/campuspass/internal/jobs"
	"github.com/campuspass/campuspass/internal/notify"
	repo "github.com/campuspass/campuspass/internal/repository"
	"github.com/campuspass/campuspass/internal/scheduler"
	svc "github.com/campuspass/campuspass/internal/server"
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if dsn, ok := strings.CutPrefix(cfg.Database.DSN, "sqlite:"); ok {
		// embedded database for local development
		entc, err = repo.OpenSQLite(dsn, logger)
	} else {
		entc, pool, err = repo.Open(ctx, repo.Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
	}
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	if pool != nil {
		if err := repo.HealthCheck(ctx, pool, cfg.Database.DialTimeout, logger); err != nil {
			logger.Error("failed to ping database", "error", err)
			os.Exit(1)
		}
	}
	if err := repo.Migrate(ctx, entc, logger); err != nil {
		logger.Error("failed to migrate schema", "error", err)
		os.Exit(1)
	}

	jobStore := repo.NewJobRecordRepository(entc, logger)
	taskQueue := repo.NewQueueTaskRepository(entc, logger)
	appStore := repo.NewApplicationRepository(entc, logger)
	passStore := repo.NewPassRepository(entc, logger)

	// Notifications go to Redis pub/sub when configured, logs otherwise.
	var notifier notify.Notifier = notify.NewLogNotifier(logger)
	if cfg.Redis.Addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Error("failed to ping redis", "addr", cfg.Redis.Addr, "error", err)
			os.Exit(1)
		}
		notifier = notify.NewRedisNotifier(rdb, logger)
		defer func() {
			if err := rdb.Close(); err != nil {
				logger.Error("failed to close redis client", "error", err)
			}
		}()
	}

	var artifacts artifact.Store
	switch cfg.Artifact.Backend {
	case "s3":
		artifacts, err = artifact.NewS3Store(ctx, artifact.S3Config{
			Endpoint:  cfg.Artifact.Endpoint,
			AccessKey: cfg.Artifact.AccessKey,
			SecretKey: cfg.Artifact.SecretKey,
			Bucket:    cfg.Artifact.Bucket,
			UseSSL:    cfg.Artifact.UseSSL,
		}, logger)
	default:
		artifacts, err = artifact.NewFSStore(cfg.Artifact.Dir, logger)
	}
	if err != nil {
		logger.Error("failed to open artifact store", "backend", cfg.Artifact.Backend, "error", err)
		os.Exit(1)
	}

	importHandler, err := bulk.NewImportHandler(appStore, artifacts, logger)
	if err != nil {
		logger.Error("failed to build import handler", "error", err)
		os.Exit(1)
	}
	execs := jobs.Executors{
		Import:         importHandler,
		Export:         bulk.NewExportHandler(appStore, artifacts, logger),
		GeneratePasses: bulk.NewGenerateHandler(appStore, passStore, 0, logger),
		UpdateStatus:   bulk.NewStatusHandler(passStore, logger),
		Cleanup:        bulk.NewCleanupHandler(appStore, passStore, cfg.Scheduler.RetentionDays, logger),
	}

	runner := jobs.NewRunner(jobStore, taskQueue, execs, notifier, cfg.Queue.ProgressEvery, logger)
	manager := jobs.NewManager(jobStore, taskQueue, runner, jobs.ManagerOptions{
		PollInterval:  cfg.Queue.PollInterval,
		LeaseTTL:      cfg.Queue.LeaseTTL,
		MaxAttempts:   cfg.Queue.MaxAttempts,
		BackoffBase:   cfg.Queue.BackoffBase,
		ProgressEvery: cfg.Queue.ProgressEvery,
	}, logger)
	for lane, concurrency := range cfg.Queue.Concurrency {
		if err := manager.CreateLane(lane, concurrency); err != nil {
			logger.Error("failed to create lane", "lane", lane, "error", err)
			os.Exit(1)
		}
	}
	if err := manager.Start(ctx); err != nil {
		logger.Error("failed to start job manager", "error", err)
		os.Exit(1)
	}

	var sched *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		systemUser, err := uuid.Parse(cfg.Scheduler.SystemUserID)
		if err != nil {
			logger.Error("invalid SCHEDULER_SYSTEM_USER", "error", err)
			os.Exit(1)
		}
		sched = scheduler.New(manager, systemUser, logger)
		if err := sched.RegisterDefaults(
			cfg.Scheduler.CleanupSpec,
			cfg.Scheduler.DigestSpec,
			cfg.Scheduler.ExpirySpec,
			cfg.Scheduler.RetentionDays,
		); err != nil {
			logger.Error("failed to register scheduled jobs", "error", err)
			os.Exit(1)
		}
		sched.Start()
	}

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", cfg.Server.GRPCAddr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()
	jobspb.RegisterJobsServiceServer(grpcServer, svc.NewJobServer(manager, jobStore, logger))

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("jobsd listening", "addr", cfg.Server.GRPCAddr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	// Stop accepting new RPCs, then drain workers, then release resources.
	grpcServer.GracefulStop()
	var trigger jobs.Trigger
	if sched != nil {
		trigger = sched
	}
	coord := jobs.NewCoordinator(trigger, manager, cfg.Queue.ShutdownGrace, logger)
	if err := coord.Shutdown(context.Background()); err != nil {
		logger.Warn("shutdown incomplete", "error", err)
	}
}
