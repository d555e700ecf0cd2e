package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	_ "github.com/bitvane/sensorcast/internal/msgs" // registers the sample topics
	"github.com/bitvane/sensorcast/internal/subscriber"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Log every message published on the sample topics",
	Long: `Subscribe to all sample topics and log each delivery until SIGINT or
SIGTERM is received. Use the redis backend to observe a publisher running in
another process; the in-memory backend only sees messages from the same
process.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		_, bridge, err := setup(ctx, "sensorcast-subscribe")
		if err != nil {
			return err
		}
		defer bridge.Close()

		listener := subscriber.New(bridge, slog.Default())
		return listener.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(subscribeCmd)
}
