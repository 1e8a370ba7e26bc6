package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtroode/files-manager/internal/config"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
	queue "github.com/dtroode/files-manager/internal/queue/redis"
	"github.com/dtroode/files-manager/internal/redisconn"
	"github.com/dtroode/files-manager/internal/repository/postgres"
	"github.com/dtroode/files-manager/internal/storage/local"
	"github.com/dtroode/files-manager/internal/storage/minio"
	"github.com/dtroode/files-manager/internal/worker"
)

const failedJobsReported = 10

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize database", "error", err)
	}
	defer db.Close()

	rdb, err := redisconn.NewConnection(ctx, redisconn.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		logger.Fatal("failed to initialize redis", "error", err)
	}
	defer rdb.Close()

	storage, err := newStorage(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "backend", cfg.Storage.Backend)
	}

	jobs := queue.NewQueue(rdb.Client, cfg.Worker.QueueName)
	reportFailedJobs(ctx, jobs, logger)

	processor := worker.NewProcessor(postgres.NewFileRepository(db), storage, logger.With("component", "processor"))
	pool := worker.NewPool(jobs, processor, worker.Options{
		Concurrency: cfg.Worker.Concurrency,
		JobTimeout:  cfg.Worker.JobTimeout,
		PollTimeout: cfg.Worker.PollTimeout,
	}, logger.With("component", "pool", "queue", cfg.Worker.QueueName))

	logAppVersion()
	logger.Info("Starting thumbnail worker",
		"queue", cfg.Worker.QueueName,
		"concurrency", cfg.Worker.Concurrency)

	if err := pool.Run(ctx); err != nil {
		logger.Error("worker stopped with error", "error", err)
		return
	}

	logger.Info("shutdown complete")
}

// reportFailedJobs logs the most recent failures left by earlier runs.
func reportFailedJobs(ctx context.Context, jobs *queue.Queue, logger *logger.Logger) {
	failed, err := jobs.Failed(ctx, failedJobsReported)
	if err != nil {
		logger.Warn("failed to read failed jobs", "error", err)
		return
	}

	for _, job := range failed {
		logger.Warn("thumbnail job previously failed",
			"payload", job.Payload,
			"error", job.Error,
			"failed_at", job.FailedAt)
	}
}

func newStorage(ctx context.Context, cfg *config.Config) (model.Storage, error) {
	if cfg.Storage.Backend == config.StorageBackendMinio {
		return minio.NewStore(ctx, minio.Options{
			Endpoint:  cfg.Minio.Endpoint,
			AccessKey: cfg.Minio.AccessKey,
			SecretKey: cfg.Minio.SecretKey,
			Bucket:    cfg.Minio.Bucket,
			UseSSL:    cfg.Minio.UseSSL,
		})
	}
	return local.NewStore(cfg.Storage.FolderPath)
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
