package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitvane/sensorcast/internal/msgs"
	"github.com/bitvane/sensorcast/internal/pubsub"
)

// Publishes through the real in-memory bridge and checks that what arrives
// on the wire decodes back to the untouched fixtures.
func TestRunnerOverMemoryBridge(t *testing.T) {
	bridge := pubsub.NewMemoryBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	scans := make(chan pubsub.Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "laserscan", func(ctx context.Context, msg pubsub.Message) error {
		select {
		case scans <- msg:
		default:
		}
		return nil
	}))

	images := make(chan pubsub.Message, 1)
	require.NoError(t, bridge.Subscribe(ctx, "image", func(ctx context.Context, msg pubsub.Message) error {
		select {
		case images <- msg:
		default:
		}
		return nil
	}))

	runner := New(bridge, 10*time.Millisecond, slog.Default())
	done := make(chan error, 1)
	go func() { done <- runner.Run(ctx) }()

	select {
	case msg := <-scans:
		var scan msgs.LaserScan
		require.NoError(t, json.Unmarshal(msg.Payload, &scan))
		assert.Equal(t, msgs.SampleLaserScan(), scan)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for laserscan")
	}

	select {
	case msg := <-images:
		var img msgs.Image
		require.NoError(t, json.Unmarshal(msg.Payload, &img))
		assert.Equal(t, msgs.SampleImage(), img)
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for image")
	}

	cancel()
	require.NoError(t, <-done)
}
