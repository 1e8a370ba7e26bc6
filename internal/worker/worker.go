package worker

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/dtroode/files-manager/internal/logger"
	"github.com/dtroode/files-manager/internal/model"
)

const (
	retryDelay    = time.Second
	settleTimeout = 10 * time.Second
)

// JobProcessor handles a single thumbnail job.
type JobProcessor interface {
	Process(ctx context.Context, job model.ThumbnailJob) error
}

// Options tunes the pool.
type Options struct {
	Concurrency int
	JobTimeout  time.Duration
	PollTimeout time.Duration
}

// Pool runs a fixed number of consumers over a job queue.
type Pool struct {
	consumer  model.JobConsumer
	processor JobProcessor
	opts      Options
	logger    *logger.Logger
}

func NewPool(consumer model.JobConsumer, processor JobProcessor, opts Options, logger *logger.Logger) *Pool {
	if opts.Concurrency < 1 {
		opts.Concurrency = 1
	}
	if opts.JobTimeout <= 0 {
		opts.JobTimeout = 5 * time.Minute
	}
	if opts.PollTimeout < time.Second {
		opts.PollTimeout = time.Second
	}

	return &Pool{
		consumer:  consumer,
		processor: processor,
		opts:      opts,
		logger:    logger,
	}
}

// Run requeues jobs abandoned by a previous run, then consumes until ctx is
// cancelled. Jobs already in progress are finished before Run returns.
func (p *Pool) Run(ctx context.Context) error {
	recovered, err := p.consumer.Recover(ctx)
	if err != nil {
		return err
	}
	if recovered > 0 {
		p.logger.Info("Worker: requeued abandoned jobs",
			"count", recovered)
	}

	p.logger.Info("Worker: started",
		"concurrency", p.opts.Concurrency)

	g, gctx := errgroup.WithContext(ctx)
	for i := 0; i < p.opts.Concurrency; i++ {
		i := i
		g.Go(func() error {
			p.consume(gctx, i)
			return nil
		})
	}

	err = g.Wait()
	p.logger.Info("Worker: stopped")

	return err
}

func (p *Pool) consume(ctx context.Context, slot int) {
	for ctx.Err() == nil {
		d, err := p.consumer.Dequeue(ctx, p.opts.PollTimeout)
		if errors.Is(err, model.ErrQueueEmpty) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			p.logger.Error("Worker: failed to dequeue",
				"slot", slot,
				"error", err.Error())
			select {
			case <-ctx.Done():
				return
			case <-time.After(retryDelay):
			}
			continue
		}

		p.handle(ctx, d)
	}
}

// handle runs one delivery under the job timeout. Shutdown does not cut an
// in-flight job short.
func (p *Pool) handle(ctx context.Context, d model.Delivery) {
	jobCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.opts.JobTimeout)
	defer cancel()

	started := time.Now()
	err := p.processor.Process(jobCtx, d.Job)

	settleCtx, settleCancel := context.WithTimeout(context.WithoutCancel(ctx), settleTimeout)
	defer settleCancel()

	if err == nil {
		if ackErr := p.consumer.Ack(settleCtx, d); ackErr != nil {
			p.logger.Error("Worker: failed to ack job",
				"file_id", d.Job.FileID,
				"user_id", d.Job.UserID,
				"error", ackErr.Error())
		}
		p.logger.Debug("Worker: job completed",
			"file_id", d.Job.FileID,
			"duration", time.Since(started))
		return
	}

	stage := "unknown"
	var se *StageError
	if errors.As(err, &se) {
		stage = se.Stage
	}
	if errors.Is(err, context.DeadlineExceeded) {
		stage = "timeout"
	}

	p.logger.Error("Worker: job failed",
		"file_id", d.Job.FileID,
		"user_id", d.Job.UserID,
		"stage", stage,
		"error", err.Error())

	if failErr := p.consumer.Fail(settleCtx, d, err); failErr != nil {
		p.logger.Error("Worker: failed to record failed job",
			"file_id", d.Job.FileID,
			"error", failErr.Error())
	}
}
