package cmd

import (
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bitvane/sensorcast/internal/publisher"
)

var publishInterval time.Duration

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Run the fixed-rate sample publisher",
	Long: `Publish one record of each sample message type on its topic, once per
interval, until SIGINT or SIGTERM is received. With an empty environment the
publisher uses the in-memory backend and a 100ms interval.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		cfg, bridge, err := setup(ctx, "")
		if err != nil {
			return err
		}
		defer bridge.Close()

		interval, err := resolveInterval(cfg.PublishInterval,
			cmd.Flags().Changed("interval"), publishInterval)
		if err != nil {
			return err
		}

		runner := publisher.New(bridge, interval, slog.Default())
		return runner.Run(ctx)
	},
}

// resolveInterval picks the effective publish interval: the flag wins over
// the configured value when set, and is held to the same positive-duration
// rule config enforces on PUBLISH_INTERVAL.
func resolveInterval(configured time.Duration, flagSet bool, flag time.Duration) (time.Duration, error) {
	if !flagSet {
		return configured, nil
	}
	if flag <= 0 {
		return 0, fmt.Errorf("interval must be positive, got %s", flag)
	}
	return flag, nil
}

func init() {
	publishCmd.Flags().DurationVar(&publishInterval, "interval", 100*time.Millisecond,
		"time between publish iterations (overrides PUBLISH_INTERVAL)")
	rootCmd.AddCommand(publishCmd)
}
