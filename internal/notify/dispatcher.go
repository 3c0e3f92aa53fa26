package notify

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/blues/adagency/internal/logger"
	"github.com/panjf2000/ants/v2"
)

const publishTimeout = 5 * time.Second

// Notifier accepts events without blocking the caller on the broker.
type Notifier interface {
	Notify(evt Event)
}

// Dispatcher publishes events from a bounded goroutine pool. When every worker
// is busy the event is dropped so callers never wait on the broker.
type Dispatcher struct {
	publisher Publisher
	pool      *ants.Pool
}

func NewDispatcher(publisher Publisher, size int) (*Dispatcher, error) {
	if size <= 0 {
		size = 1
	}
	pool, err := ants.NewPool(size, ants.WithNonblocking(true))
	if err != nil {
		return nil, fmt.Errorf("failed to create notification pool: %w", err)
	}
	return &Dispatcher{publisher: publisher, pool: pool}, nil
}

// Notify hands the event to an idle worker and returns immediately.
// Publish errors and overload drops are logged only.
func (d *Dispatcher) Notify(evt Event) {
	err := d.pool.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()

		if err := d.publisher.Publish(ctx, evt); err != nil {
			logger.Error("Failed to publish %s: %v", evt.Type, err)
		}
	})
	if errors.Is(err, ants.ErrPoolOverload) {
		logger.Warn("Notification pool is full, dropped %s", evt.Type)
		return
	}
	if err != nil {
		logger.Error("Failed to queue %s: %v", evt.Type, err)
	}
}

// Close waits for queued events up to timeout, then closes the publisher.
func (d *Dispatcher) Close(timeout time.Duration) error {
	if err := d.pool.ReleaseTimeout(timeout); err != nil {
		logger.Warn("Notification pool did not drain: %v", err)
	}
	return d.publisher.Close()
}
