package pubsub

import (
	"context"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/redis/go-redis/v9"
)

// RedisConfig holds the connection settings for the Redis Streams backend.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	// ConsumerGroup names the group subscribers join. Publish-only processes
	// can leave it empty.
	ConsumerGroup string
}

// RedisBridge implements Bridge over Redis Streams. It lets several demo
// processes on different hosts share the same topics.
type RedisBridge struct {
	pub    *redisstream.Publisher
	sub    *redisstream.Subscriber
	client *redis.Client
}

// NewRedisBridge connects to Redis and builds the stream publisher and
// subscriber. The connection is verified with a ping before any stream is
// touched.
func NewRedisBridge(ctx context.Context, cfg RedisConfig) (*RedisBridge, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger := watermill.NewStdLogger(false, false)

	pub, err := redisstream.NewPublisher(
		redisstream.PublisherConfig{
			Client: client,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create publisher: %w", err)
	}

	sub, err := redisstream.NewSubscriber(
		redisstream.SubscriberConfig{
			Client:        client,
			ConsumerGroup: cfg.ConsumerGroup,
		},
		logger,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create subscriber: %w", err)
	}

	return &RedisBridge{
		pub:    pub,
		sub:    sub,
		client: client,
	}, nil
}

// Publish implements the Publisher interface.
func (rb *RedisBridge) Publish(ctx context.Context, msg Message) error {
	return rb.pub.Publish(msg.Topic, toWatermillMessage(msg))
}

// Subscribe implements the Subscriber interface.
func (rb *RedisBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := rb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	go consume(ctx, topic, messages, handler)
	return nil
}

// Close shuts down the publisher, subscriber and the underlying client.
func (rb *RedisBridge) Close() error {
	if err := rb.pub.Close(); err != nil {
		return fmt.Errorf("failed to close publisher: %w", err)
	}
	if err := rb.sub.Close(); err != nil {
		return fmt.Errorf("failed to close subscriber: %w", err)
	}
	if err := rb.client.Close(); err != nil {
		return fmt.Errorf("failed to close redis client: %w", err)
	}
	return nil
}
