package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/bitvane/sensorcast/internal/config"
	"github.com/bitvane/sensorcast/internal/logging"
	"github.com/bitvane/sensorcast/internal/pubsub"
)

var rootCmd = &cobra.Command{
	Use:   "sensorcast",
	Short: "Test publisher for robotics sample messages",
	Long: `sensorcast publishes a fixed set of sensor sample messages
(header, string, quaternion, vector3, image, imu, laserscan, magnetic)
on a pub/sub bus at a fixed rate until interrupted.

Available commands:
  publish      Run the fixed-rate sample publisher
  subscribe    Log every message published on the sample topics
  topics       Inspect the registered sample topics

Use "sensorcast [command] --help" for more information about a specific command.`,
	SilenceUsage: true,
}

// Execute executes the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// setup loads config and logging, then opens the configured transport
// backend. Shared by the publish and subscribe commands.
func setup(ctx context.Context, consumerGroup string) (*config.Config, pubsub.Bridge, error) {
	logging.New()

	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	switch cfg.Backend {
	case config.BackendRedis:
		bridge, err := pubsub.NewRedisBridge(ctx, pubsub.RedisConfig{
			Addr:          cfg.RedisAddr,
			Password:      cfg.RedisPassword,
			DB:            cfg.RedisDB,
			ConsumerGroup: consumerGroup,
		})
		if err != nil {
			return nil, nil, err
		}
		return cfg, bridge, nil
	default:
		return cfg, pubsub.NewMemoryBridge(), nil
	}
}
