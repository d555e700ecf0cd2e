package pubsub

import (
	"context"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// Metadata key used to carry the topic name through watermill's message.
const metaKeyTopic = "topic"

// MemoryBridge implements Bridge using watermill's in-process GoChannel.
// It is the default backend: a publisher started with an empty environment
// runs entirely in memory.
type MemoryBridge struct {
	pub    message.Publisher
	sub    message.Subscriber
	logger watermill.LoggerAdapter
}

// NewMemoryBridge initializes the in-memory Pub/Sub backend.
func NewMemoryBridge() *MemoryBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{},
		logger,
	)

	return &MemoryBridge{
		pub:    goChannel,
		sub:    goChannel,
		logger: logger,
	}
}

// toWatermillMessage converts our Message to a watermill message.
func toWatermillMessage(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}

	return wmMsg
}

// fromWatermillMessage converts a watermill message back to our Message.
func fromWatermillMessage(wmMsg *message.Message) Message {
	topic := wmMsg.Metadata.Get(metaKeyTopic)

	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyTopic {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    topic,
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (mb *MemoryBridge) Publish(ctx context.Context, msg Message) error {
	return mb.pub.Publish(msg.Topic, toWatermillMessage(msg))
}

// Subscribe implements the Subscriber interface.
func (mb *MemoryBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := mb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go consume(ctx, topic, messages, handler)
	return nil
}

// Close shuts down the bridge and stops message consumption.
func (mb *MemoryBridge) Close() error {
	return mb.sub.Close()
}

// consume drains a watermill subscription, acking messages the handler
// accepts and nacking the rest. Shared by all bridge implementations.
func consume(ctx context.Context, topic string, messages <-chan *message.Message, handler Handler) {
	for wmMsg := range messages {
		msg := fromWatermillMessage(wmMsg)

		if err := handler(ctx, msg); err != nil {
			slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
			wmMsg.Nack()
		} else {
			wmMsg.Ack()
		}
	}
	slog.Debug("Subscription message loop ended", "topic", topic)
}
