package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/files-manager/internal/apierr"
	"github.com/dtroode/files-manager/internal/mocks"
	"github.com/dtroode/files-manager/internal/model"
	"github.com/dtroode/files-manager/internal/testutil"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestApp_Status(t *testing.T) {
	ok := pingerFunc(func(context.Context) error { return nil })
	down := pingerFunc(func(context.Context) error { return errors.New("down") })

	tests := []struct {
		name  string
		redis model.Pinger
		db    model.Pinger
		want  model.Status
	}{
		{name: "all up", redis: ok, db: ok, want: model.Status{Redis: true, DB: true}},
		{name: "redis down", redis: down, db: ok, want: model.Status{Redis: false, DB: true}},
		{name: "db missing", redis: ok, db: nil, want: model.Status{Redis: true, DB: false}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewApp(tt.redis, tt.db, nil, nil, testutil.MakeNoopLogger())
			assert.Equal(t, tt.want, app.Status(context.Background()))
		})
	}
}

func TestApp_Stats(t *testing.T) {
	ctx := context.Background()

	t.Run("counts", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		files := mocks.NewFileStore(t)
		users.On("Count", mock.Anything).Return(int64(4), nil)
		files.On("Count", mock.Anything).Return(int64(30), nil)

		stats, err := NewApp(nil, nil, users, files, testutil.MakeNoopLogger()).Stats(ctx)
		require.NoError(t, err)
		assert.Equal(t, model.Stats{Users: 4, Files: 30}, stats)
	})

	t.Run("store error", func(t *testing.T) {
		users := mocks.NewUserStore(t)
		users.On("Count", mock.Anything).Return(int64(0), errors.New("db down"))

		_, err := NewApp(nil, nil, users, mocks.NewFileStore(t), testutil.MakeNoopLogger()).Stats(ctx)
		assert.True(t, apierr.IsKind(err, apierr.KindInternal))
	})
}
