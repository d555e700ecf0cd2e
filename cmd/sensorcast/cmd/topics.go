package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	_ "github.com/bitvane/sensorcast/internal/msgs" // registers the sample topics
	"github.com/bitvane/sensorcast/internal/topics"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Inspect the registered sample topics",
}

var topicsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all registered topics",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tPAYLOAD\tDESCRIPTION")
		fmt.Fprintln(w, "----\t-------\t-----------")

		for _, topic := range topics.List() {
			fmt.Fprintf(w, "%s\t%s\t%s\n",
				topic.Name,
				topic.Payload,
				topic.Description)
		}
		w.Flush()
	},
}

var topicsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Get details about a specific topic",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, exists := topics.Get(args[0])
		if !exists {
			return fmt.Errorf("topic not found: %s", args[0])
		}

		fmt.Printf("Name:        %s\n", topic.Name)
		fmt.Printf("Payload:     %s\n", topic.Payload)
		fmt.Printf("Description: %s\n", topic.Description)
		return nil
	},
}

func init() {
	topicsCmd.AddCommand(topicsListCmd)
	topicsCmd.AddCommand(topicsGetCmd)
	rootCmd.AddCommand(topicsCmd)
}
