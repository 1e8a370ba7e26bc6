package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dtroode/files-manager/internal/model"
)

var (
	_ model.JobQueue    = (*Queue)(nil)
	_ model.JobConsumer = (*Queue)(nil)
)

// Queue is a reliable list-based job queue. Dequeued jobs are parked on a
// processing list until acknowledged, so a crashed consumer loses nothing:
// Recover puts them back.
type Queue struct {
	client     goredis.Cmdable
	name       string
	processing string
	failed     string
	now        func() time.Time
}

// FailedJob is what gets recorded on the failed list.
type FailedJob struct {
	Payload  string    `json:"payload"`
	Error    string    `json:"error"`
	FailedAt time.Time `json:"failedAt"`
}

// NewQueue creates a queue stored under the given list name.
func NewQueue(client goredis.Cmdable, name string) *Queue {
	return &Queue{
		client:     client,
		name:       name,
		processing: name + ":processing",
		failed:     name + ":failed",
		now:        time.Now,
	}
}

// Enqueue pushes a job onto the queue.
func (q *Queue) Enqueue(ctx context.Context, job model.ThumbnailJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := q.client.LPush(ctx, q.name, payload).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}

	return nil
}

// Dequeue blocks up to timeout for the next job and moves it to the
// processing list. A payload that is not valid JSON is still delivered with
// a zero Job so the consumer can fail it visibly.
func (q *Queue) Dequeue(ctx context.Context, timeout time.Duration) (model.Delivery, error) {
	raw, err := q.client.BRPopLPush(ctx, q.name, q.processing, timeout).Result()
	if errors.Is(err, goredis.Nil) {
		return model.Delivery{}, model.ErrQueueEmpty
	}
	if err != nil {
		return model.Delivery{}, fmt.Errorf("failed to dequeue job: %w", err)
	}

	delivery := model.Delivery{Raw: raw}
	_ = json.Unmarshal([]byte(raw), &delivery.Job)

	return delivery, nil
}

// Ack marks a delivery completed.
func (q *Queue) Ack(ctx context.Context, d model.Delivery) error {
	if err := q.client.LRem(ctx, q.processing, 1, d.Raw).Err(); err != nil {
		return fmt.Errorf("failed to ack job: %w", err)
	}
	return nil
}

// Fail marks a delivery failed and records it with its cause.
func (q *Queue) Fail(ctx context.Context, d model.Delivery, cause error) error {
	msg := ""
	if cause != nil {
		msg = cause.Error()
	}

	record, err := json.Marshal(FailedJob{Payload: d.Raw, Error: msg, FailedAt: q.now().UTC()})
	if err != nil {
		return fmt.Errorf("failed to marshal failed job: %w", err)
	}

	_, err = q.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		pipe.LRem(ctx, q.processing, 1, d.Raw)
		pipe.LPush(ctx, q.failed, record)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to record failed job: %w", err)
	}

	return nil
}

// Recover moves jobs left on the processing list back onto the queue and
// returns how many were moved.
func (q *Queue) Recover(ctx context.Context) (int, error) {
	moved := 0
	for {
		err := q.client.RPopLPush(ctx, q.processing, q.name).Err()
		if errors.Is(err, goredis.Nil) {
			return moved, nil
		}
		if err != nil {
			return moved, fmt.Errorf("failed to recover jobs: %w", err)
		}
		moved++
	}
}

// Failed returns up to limit most recent failed jobs.
func (q *Queue) Failed(ctx context.Context, limit int64) ([]FailedJob, error) {
	raws, err := q.client.LRange(ctx, q.failed, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list failed jobs: %w", err)
	}

	jobs := make([]FailedJob, 0, len(raws))
	for _, raw := range raws {
		var job FailedJob
		if err := json.Unmarshal([]byte(raw), &job); err != nil {
			return nil, fmt.Errorf("malformed failed job: %w", err)
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
