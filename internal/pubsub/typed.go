package pubsub

import (
	"context"
	"encoding/json"
	"reflect"

	"github.com/google/uuid"

	"github.com/bitvane/sensorcast/internal/topics"
)

// Metadata key carrying the message identifier assigned at publish time.
const MetaKeyMessageID = "message_id"

// Event[T] binds a topic name to a payload type and provides type-safe
// publishing. Defining an event registers its topic with the registry.
type Event[T any] struct {
	topicName string
}

// NewEvent creates a typed event and auto-registers its topic. Events are
// defined at package level, so a duplicate name panics at startup.
func NewEvent[T any](name string, description string) Event[T] {
	var zero T
	t := reflect.TypeOf(zero)
	if t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	payload := ""
	if t != nil {
		payload = t.Name()
	}

	topics.MustRegister(topics.Descriptor{
		Name:        name,
		Description: description,
		Payload:     payload,
	})

	return Event[T]{topicName: name}
}

// Name returns the topic name.
func (e Event[T]) Name() string {
	return e.topicName
}

// Publish sends a typed event. The compiler ensures 'payload' matches 'T'.
// The payload is JSON-encoded and stamped with a fresh message ID.
func Publish[T any](ctx context.Context, p Publisher, event Event[T], payload T) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	return p.Publish(ctx, Message{
		Topic:   event.Name(),
		Payload: data,
		Metadata: map[string]string{
			MetaKeyMessageID: uuid.NewString(),
		},
	})
}
