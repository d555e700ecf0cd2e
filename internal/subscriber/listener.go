// Package subscriber provides a logging listener for the sample topics, the
// counterpart used to eyeball a running publisher end to end.
package subscriber

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bitvane/sensorcast/internal/pubsub"
	"github.com/bitvane/sensorcast/internal/topics"
)

// Listener subscribes to every registered sample topic and logs each
// delivery.
type Listener struct {
	sub pubsub.Subscriber
	log *slog.Logger
}

// New builds a Listener over the given subscriber.
func New(sub pubsub.Subscriber, log *slog.Logger) *Listener {
	return &Listener{sub: sub, log: log}
}

// Run subscribes to all registered topics and blocks until ctx is canceled.
func (l *Listener) Run(ctx context.Context) error {
	names := topics.Names()
	if len(names) == 0 {
		return fmt.Errorf("no topics registered")
	}

	for _, name := range names {
		if err := l.sub.Subscribe(ctx, name, l.handle); err != nil {
			return fmt.Errorf("failed to subscribe to %q: %w", name, err)
		}
	}

	l.log.Info("Listening on sample topics", "topics", len(names))
	<-ctx.Done()
	return nil
}

// handle logs one delivery. Payloads are sample data, so only the size is
// reported.
func (l *Listener) handle(ctx context.Context, msg pubsub.Message) error {
	l.log.Info("Received sample",
		"topic", msg.Topic,
		"msg_id", msg.Metadata[pubsub.MetaKeyMessageID],
		"bytes", len(msg.Payload))
	return nil
}
