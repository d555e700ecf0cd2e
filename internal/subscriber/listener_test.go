package subscriber

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/bitvane/sensorcast/internal/msgs" // registers the sample topics
	"github.com/bitvane/sensorcast/internal/pubsub"
)

// recordingSubscriber implements pubsub.Subscriber, recording topic names.
type recordingSubscriber struct {
	mu     sync.Mutex
	topics []string
	err    error
}

func (s *recordingSubscriber) Subscribe(ctx context.Context, topic string, handler pubsub.Handler) error {
	if s.err != nil {
		return s.err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.topics = append(s.topics, topic)
	return nil
}

func (s *recordingSubscriber) Close() error {
	return nil
}

func TestListenerSubscribesToAllSampleTopics(t *testing.T) {
	sub := &recordingSubscriber{}
	listener := New(sub, slog.Default())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- listener.Run(ctx) }()

	assert.Eventually(t, func() bool {
		sub.mu.Lock()
		defer sub.mu.Unlock()
		return len(sub.topics) == 8
	}, 2*time.Second, 10*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []string{
		"header", "image", "imu", "laserscan",
		"magnetic", "quaternion", "string", "vector3",
	}, sub.topics)
}

func TestListenerReturnsSubscribeError(t *testing.T) {
	sub := &recordingSubscriber{err: fmt.Errorf("backend down")}
	listener := New(sub, slog.Default())

	err := listener.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "backend down")
}
