// Package publisher drives the fixed-rate sample publish loop.
package publisher

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/bitvane/sensorcast/internal/msgs"
	"github.com/bitvane/sensorcast/internal/pubsub"
)

// Metadata key carrying the per-process run identifier.
const MetaKeyRunID = "run_id"

// record binds a prepared sample to its publish call. The sample itself is
// captured at construction and never mutated afterwards.
type record struct {
	topic   string
	publish func(ctx context.Context) error
}

// Runner publishes every sample record once per interval until its context
// is canceled.
type Runner struct {
	pub      pubsub.Publisher
	interval time.Duration
	log      *slog.Logger
	runID    string
	records  []record
	stopped  atomic.Bool
}

// New builds a Runner with all eight sample records prepared up front. Every
// message published by the runner carries the same run ID in its metadata.
func New(pub pubsub.Publisher, interval time.Duration, log *slog.Logger) *Runner {
	r := &Runner{
		interval: interval,
		log:      log,
		runID:    uuid.NewString(),
	}
	r.pub = &runPublisher{next: pub, runID: r.runID}

	header := msgs.SampleHeader()
	str := msgs.SampleString()
	quaternion := msgs.SampleQuaternion()
	vector3 := msgs.SampleVector3()
	image := msgs.SampleImage()
	imu := msgs.SampleIMU()
	scan := msgs.SampleLaserScan()
	magnetic := msgs.SampleMagnetometer()

	r.records = []record{
		bind(r, msgs.TopicHeader, header),
		bind(r, msgs.TopicString, str),
		bind(r, msgs.TopicQuaternion, quaternion),
		bind(r, msgs.TopicVector3, vector3),
		bind(r, msgs.TopicImage, image),
		bind(r, msgs.TopicIMU, imu),
		bind(r, msgs.TopicLaserScan, scan),
		bind(r, msgs.TopicMagnetometer, magnetic),
	}

	return r
}

// bind captures one sample and its event as a publish closure.
func bind[T any](r *Runner, event pubsub.Event[T], sample T) record {
	return record{
		topic: event.Name(),
		publish: func(ctx context.Context) error {
			return pubsub.Publish(ctx, r.pub, event, sample)
		},
	}
}

// RunID returns the identifier stamped into every published message.
func (r *Runner) RunID() string {
	return r.runID
}

// Stopped reports whether the loop has observed cancellation and exited.
func (r *Runner) Stopped() bool {
	return r.stopped.Load()
}

// Topics returns the topic names the runner publishes on, in publish order.
func (r *Runner) Topics() []string {
	names := make([]string, len(r.records))
	for i, rec := range r.records {
		names[i] = rec.topic
	}
	return names
}

// Run publishes every record immediately and then once per interval. It
// returns nil when ctx is canceled; the loop exits within one interval of
// cancellation. Publish errors are logged and skipped, never retried.
func (r *Runner) Run(ctx context.Context) error {
	if r.interval <= 0 {
		return fmt.Errorf("publish interval must be positive, got %s", r.interval)
	}

	r.log.Info("Starting sample publisher",
		"run_id", r.runID,
		"interval", r.interval,
		"topics", len(r.records))

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.publishAll(ctx)

	for {
		select {
		case <-ctx.Done():
			r.stopped.Store(true)
			r.log.Info("Sample publisher stopped", "run_id", r.runID)
			return nil
		case <-ticker.C:
			r.publishAll(ctx)
		}
	}
}

// publishAll sends every prepared record exactly once.
func (r *Runner) publishAll(ctx context.Context) {
	for _, rec := range r.records {
		if err := rec.publish(ctx); err != nil {
			r.log.Warn("Failed to publish sample", "topic", rec.topic, "error", err)
		}
	}
}

// runPublisher stamps the run ID into every outgoing message.
type runPublisher struct {
	next  pubsub.Publisher
	runID string
}

func (p *runPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	if msg.Metadata == nil {
		msg.Metadata = make(map[string]string)
	}
	msg.Metadata[MetaKeyRunID] = p.runID
	return p.next.Publish(ctx, msg)
}

func (p *runPublisher) Close() error {
	return p.next.Close()
}
