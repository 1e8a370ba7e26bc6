package service

import (
	"context"
	"fmt"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

// App reports backend health and record counts.
type App struct {
	redis     model.Pinger
	db        model.Pinger
	userStore model.UserStore
	fileStore model.FileStore
	logger    *logger.Logger
}

func NewApp(redis, db model.Pinger, userStore model.UserStore, fileStore model.FileStore, logger *logger.Logger) *App {
	return &App{
		redis:     redis,
		db:        db,
		userStore: userStore,
		fileStore: fileStore,
		logger:    logger,
	}
}

func alive(ctx context.Context, p model.Pinger) bool {
	return p != nil && p.Ping(ctx) == nil
}

func (a *App) Status(ctx context.Context) model.Status {
	return model.Status{
		Redis: alive(ctx, a.redis),
		DB:    alive(ctx, a.db),
	}
}

func (a *App) Stats(ctx context.Context) (model.Stats, error) {
	users, err := a.userStore.Count(ctx)
	if err != nil {
		a.logger.Error("App service: failed to count users",
			"error", err.Error())
		return model.Stats{}, apierr.NewErrInternal(fmt.Errorf("failed to count users: %w", err))
	}

	files, err := a.fileStore.Count(ctx)
	if err != nil {
		a.logger.Error("App service: failed to count files",
			"error", err.Error())
		return model.Stats{}, apierr.NewErrInternal(fmt.Errorf("failed to count files: %w", err))
	}

	return model.Stats{Users: users, Files: files}, nil
}
