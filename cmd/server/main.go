package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	httpctx "github.com/dtroode/files-manager/internal/api/http/context"
	"github.com/dtroode/files-manager/internal/api/http/router"
	httpServer "github.com/dtroode/files-manager/internal/api/http/server"
	"github.com/dtroode/files-manager/internal/config"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
	queue "github.com/dtroode/files-manager/internal/queue/redis"
	"github.com/dtroode/files-manager/internal/redisconn"
	"github.com/dtroode/files-manager/internal/repository/postgres"
	"github.com/dtroode/files-manager/internal/security"
	"github.com/dtroode/files-manager/internal/server"
	"github.com/dtroode/files-manager/internal/service"
	session "github.com/dtroode/files-manager/internal/session/redis"
	"github.com/dtroode/files-manager/internal/storage/local"
	"github.com/dtroode/files-manager/internal/storage/minio"
	"github.com/dtroode/files-manager/internal/token"
)

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

	userRepo := postgres.NewUserRepository(db)
	fileRepo := postgres.NewFileRepository(db)
	sessions := session.NewStore(rdb.Client)
	jobs := queue.NewQueue(rdb.Client, cfg.Worker.QueueName)
	hasher := security.NewBcrypt(security.DefaultCost)

	authService := service.NewAuth(userRepo, sessions, newTokenMinter(cfg), hasher, cfg.Session.TTL, logger)
	userService := service.NewUsers(userRepo, hasher, logger)
	fileService := service.NewFiles(fileRepo, storage, jobs, logger)
	appService := service.NewApp(rdb, db, userRepo, fileRepo, logger)

	if cfg.LogLevel > 0 {
		gin.SetMode(gin.ReleaseMode)
	}

	r := router.New(authService, userService, fileService, appService, httpctx.NewManager(), cfg.HTTP.CORSOrigins, logger)
	srv := httpServer.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(srv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", srv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func newTokenMinter(cfg *config.Config) model.TokenMinter {
	if cfg.Token.Scheme == config.TokenSchemeJWT {
		return token.NewJWT(cfg.Token.Secret)
	}
	return token.NewOpaque()
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
