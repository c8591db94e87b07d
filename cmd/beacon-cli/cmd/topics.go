package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/beaconhouse/beacon/internal/leads"
	"github.com/beaconhouse/beacon/internal/topicmgr"
	"github.com/spf13/cobra"
)

var (
	topicsModule string
	topicsFormat string
)

// Referencing the event keeps the leads topics registered in this binary.
var _ = leads.LeadRequested

// topicsCmd represents the topics command
var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the message bus topics",
	Long: `List every topic the application publishes on its message bus.

Examples:
  beacon-cli topics                    # All topics in table format
  beacon-cli topics --module leads     # Only topics owned by the leads module
  beacon-cli topics --format json      # Machine-readable output`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return printTopics(cmd.OutOrStdout(), topicmgr.Default(), topicsModule, topicsFormat)
	},
}

func printTopics(w io.Writer, manager *topicmgr.Manager, module, format string) error {
	list := manager.List()
	if module != "" {
		list = manager.ListByModule(module)
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "table", "":
		if len(list) == 0 {
			fmt.Fprintln(w, "No topics found.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "NAME\tMODULE\tPAYLOAD\tDESCRIPTION")
		for _, t := range list {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", t.Name, t.Module, t.Payload, t.Description)
		}
		return tw.Flush()
	default:
		return fmt.Errorf("invalid format %q: valid formats are table, json", format)
	}
}

func init() {
	rootCmd.AddCommand(topicsCmd)
	topicsCmd.Flags().StringVarP(&topicsModule, "module", "m", "", "Only list topics owned by this module")
	topicsCmd.Flags().StringVarP(&topicsFormat, "format", "f", "table", "Output format: table or json")
}
