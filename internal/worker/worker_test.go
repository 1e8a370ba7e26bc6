package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtroode/files-manager/internal/model"
	queue "github.com/dtroode/files-manager/internal/queue/redis"
	"github.com/dtroode/files-manager/internal/testutil"
)

type fakeConsumer struct {
	deliveries chan model.Delivery
	recoverErr error

	mu     sync.Mutex
	acked  []string
	failed map[string]error
}

func newFakeConsumer(jobs ...model.ThumbnailJob) *fakeConsumer {
	c := &fakeConsumer{
		deliveries: make(chan model.Delivery, len(jobs)),
		failed:     make(map[string]error),
	}
	for _, j := range jobs {
		c.deliveries <- model.Delivery{Job: j, Raw: j.FileID}
	}
	return c
}

func (c *fakeConsumer) Dequeue(ctx context.Context, _ time.Duration) (model.Delivery, error) {
	select {
	case d := <-c.deliveries:
		return d, nil
	case <-ctx.Done():
		return model.Delivery{}, ctx.Err()
	case <-time.After(10 * time.Millisecond):
		return model.Delivery{}, model.ErrQueueEmpty
	}
}

func (c *fakeConsumer) Ack(_ context.Context, d model.Delivery) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.acked = append(c.acked, d.Raw)
	return nil
}

func (c *fakeConsumer) Fail(_ context.Context, d model.Delivery, cause error) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.failed[d.Raw] = cause
	return nil
}

func (c *fakeConsumer) Recover(context.Context) (int, error) {
	return 0, c.recoverErr
}

func (c *fakeConsumer) settled() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.acked) + len(c.failed)
}

type processorFunc func(ctx context.Context, job model.ThumbnailJob) error

func (f processorFunc) Process(ctx context.Context, job model.ThumbnailJob) error { return f(ctx, job) }

func runPool(t *testing.T, p *Pool) (context.CancelFunc, <-chan error) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Run(ctx) }()
	t.Cleanup(cancel)
	return cancel, done
}

func TestPool_AcksAndFails(t *testing.T) {
	consumer := newFakeConsumer(
		model.ThumbnailJob{UserID: "u", FileID: "ok-1"},
		model.ThumbnailJob{UserID: "u", FileID: "bad"},
		model.ThumbnailJob{UserID: "u", FileID: "ok-2"},
	)
	processor := processorFunc(func(_ context.Context, job model.ThumbnailJob) error {
		if job.FileID == "bad" {
			return stageErr(stageLoad, ErrFileNotFound)
		}
		return nil
	})

	pool := NewPool(consumer, processor, Options{Concurrency: 2}, testutil.MakeNoopLogger())
	cancel, done := runPool(t, pool)

	require.Eventually(t, func() bool { return consumer.settled() == 3 }, 5*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.ElementsMatch(t, []string{"ok-1", "ok-2"}, consumer.acked)
	require.Contains(t, consumer.failed, "bad")
	assert.ErrorIs(t, consumer.failed["bad"], ErrFileNotFound)
}

func TestPool_JobTimeout(t *testing.T) {
	consumer := newFakeConsumer(model.ThumbnailJob{UserID: "u", FileID: "slow"})
	processor := processorFunc(func(ctx context.Context, _ model.ThumbnailJob) error {
		<-ctx.Done()
		return ctx.Err()
	})

	pool := NewPool(consumer, processor, Options{Concurrency: 1, JobTimeout: 50 * time.Millisecond}, testutil.MakeNoopLogger())
	cancel, done := runPool(t, pool)

	require.Eventually(t, func() bool { return consumer.settled() == 1 }, 5*time.Second, 10*time.Millisecond)
	cancel()
	require.NoError(t, <-done)
	assert.ErrorIs(t, consumer.failed["slow"], context.DeadlineExceeded)
}

func TestPool_FinishesInFlightJobOnShutdown(t *testing.T) {
	consumer := newFakeConsumer(model.ThumbnailJob{UserID: "u", FileID: "f"})
	started := make(chan struct{})
	release := make(chan struct{})
	processor := processorFunc(func(ctx context.Context, _ model.ThumbnailJob) error {
		close(started)
		<-release
		return ctx.Err()
	})

	pool := NewPool(consumer, processor, Options{Concurrency: 1}, testutil.MakeNoopLogger())
	cancel, done := runPool(t, pool)

	<-started
	cancel()
	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, []string{"f"}, consumer.acked)
}

func TestPool_RecoverError(t *testing.T) {
	consumer := newFakeConsumer()
	consumer.recoverErr = errors.New("redis down")

	pool := NewPool(consumer, processorFunc(func(context.Context, model.ThumbnailJob) error { return nil }), Options{}, testutil.MakeNoopLogger())
	assert.Error(t, pool.Run(context.Background()))
}

func TestNewPool_Defaults(t *testing.T) {
	pool := NewPool(nil, nil, Options{}, testutil.MakeNoopLogger())
	assert.Equal(t, 1, pool.opts.Concurrency)
	assert.Equal(t, 5*time.Minute, pool.opts.JobTimeout)
	assert.Equal(t, time.Second, pool.opts.PollTimeout)
}

func TestPool_RedisQueue(t *testing.T) {
	srv := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	q := queue.NewQueue(client, "fileQueue")

	ctx := context.Background()
	// A job abandoned by a previous run is picked up again.
	require.NoError(t, q.Enqueue(ctx, model.ThumbnailJob{UserID: "u", FileID: "abandoned"}))
	_, err := q.Dequeue(ctx, time.Second)
	require.NoError(t, err)
	require.NoError(t, q.Enqueue(ctx, model.ThumbnailJob{UserID: "", FileID: "f"}))

	var mu sync.Mutex
	var seen []string
	processor := processorFunc(func(_ context.Context, job model.ThumbnailJob) error {
		mu.Lock()
		seen = append(seen, job.FileID)
		mu.Unlock()
		if job.UserID == "" {
			return stageErr(stageValidate, ErrMissingUserID)
		}
		return nil
	})

	pool := NewPool(q, processor, Options{Concurrency: 2, PollTimeout: time.Second}, testutil.MakeNoopLogger())
	cancel, done := runPool(t, pool)

	require.Eventually(t, func() bool {
		failed, err := q.Failed(ctx, 10)
		return err == nil && len(failed) == 1 && !srv.Exists("fileQueue:processing") && !srv.Exists("fileQueue")
	}, 5*time.Second, 20*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	assert.ElementsMatch(t, []string{"abandoned", "f"}, seen)
	mu.Unlock()

	failed, err := q.Failed(ctx, 10)
	require.NoError(t, err)
	assert.Equal(t, "Missing userId", failed[0].Error)
}
