package events

import (
	"context"
	"log/slog"

	"github.com/panjf2000/ants/v2"
	"github.com/venturelink-platform/internal/platform/messaging/producers"
)

// Dispatcher publishes events through a bounded worker pool so the engines
// never block on the broker. Submission failures and publish failures are
// logged, not returned; the request that produced the event has already
// committed.
type Dispatcher struct {
	publisher producers.MessagePublisher
	pool      *ants.Pool
	logger    *slog.Logger
}

// NewDispatcher creates a dispatcher backed by a worker pool of the given size
func NewDispatcher(logger *slog.Logger, publisher producers.MessagePublisher, poolSize int) (*Dispatcher, error) {
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	return &Dispatcher{
		publisher: publisher,
		pool:      pool,
		logger:    logger,
	}, nil
}

// Dispatch submits the event for asynchronous publishing. The event id is the
// partition key so replays of the same event land on the same partition.
func (d *Dispatcher) Dispatch(event *Event) {
	evt := *event

	err := d.pool.Submit(func() {
		if err := d.publisher.Publish(context.Background(), evt.ID.String(), &evt); err != nil {
			d.logger.Error("Failed to publish platform event",
				"event_id", evt.ID.String(),
				"kind", string(evt.Kind),
				"error", err,
			)
			return
		}
		d.logger.Debug("Published platform event",
			"event_id", evt.ID.String(),
			"kind", string(evt.Kind),
		)
	})
	if err != nil {
		d.logger.Error("Failed to submit event to dispatcher pool",
			"event_id", evt.ID.String(),
			"kind", string(evt.Kind),
			"error", err,
		)
	}
}

// Running returns the number of busy workers
func (d *Dispatcher) Running() int {
	return d.pool.Running()
}

// Close releases the worker pool and the underlying publisher
func (d *Dispatcher) Close() error {
	d.logger.Info("Shutting down event dispatcher", "running_workers", d.pool.Running())
	d.pool.Release()
	return d.publisher.Close()
}

// NoopPublisher drops every message; used when Kafka publishing is disabled
type NoopPublisher struct{}

// Publish discards the message
func (NoopPublisher) Publish(_ context.Context, _ string, _ interface{}) error { return nil }

// Close is a no-op
func (NoopPublisher) Close() error { return nil }

// Sink is the engines' view of the dispatcher
type Sink interface {
	Dispatch(event *Event)
}
