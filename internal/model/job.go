package model

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// ThumbnailWidths are the widths generated for every uploaded image.
var ThumbnailWidths = []int{500, 250, 100}

// ThumbnailJob is the payload carried on the thumbnail queue.
type ThumbnailJob struct {
	UserID string `json:"userId"`
	FileID string `json:"fileId"`
}

// JobQueue is the producer side of the thumbnail queue.
type JobQueue interface {
	Enqueue(ctx context.Context, job ThumbnailJob) error
}

// ErrQueueEmpty is returned by JobConsumer.Dequeue when nothing arrived
// before the poll timeout.
var ErrQueueEmpty = errors.New("queue is empty")

// JobConsumer is the worker side of the thumbnail queue.
type JobConsumer interface {
	Dequeue(ctx context.Context, timeout time.Duration) (Delivery, error)
	Ack(ctx context.Context, d Delivery) error
	Fail(ctx context.Context, d Delivery, cause error) error
	// Recover requeues deliveries left unacknowledged by a previous run.
	Recover(ctx context.Context) (int, error)
}

// Delivery is a job handed to a consumer. Raw is the payload as stored in
// the queue and is used to acknowledge or fail it.
type Delivery struct {
	Job ThumbnailJob
	Raw string
}

// ThumbnailLocation is where the thumbnail of the given width is stored,
// next to the original at location.
func ThumbnailLocation(location string, width int) string {
	return location + "_" + strconv.Itoa(width)
}
