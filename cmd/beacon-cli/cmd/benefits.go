package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/beaconhouse/beacon/internal/content"
	"github.com/beaconhouse/beacon/internal/domain"
	"github.com/spf13/cobra"
)

var (
	benefitsFile   string
	benefitsFormat string
)

// benefitsCmd represents the benefits command
var benefitsCmd = &cobra.Command{
	Use:   "benefits",
	Short: "List the benefits catalog",
	Long: `List the benefits shown in the bridge section, in display order.
The catalog is validated the same way the server validates it at startup.

Examples:
  beacon-cli benefits                         # Embedded catalog as a table
  beacon-cli benefits --file benefits.yaml    # Validate and list a custom catalog
  beacon-cli benefits --format json           # Machine-readable output

Output formats:
  table - Human-readable table format (default)
  json  - JSON array of benefits`,
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := content.Load(benefitsFile)
		if err != nil {
			return err
		}
		return printBenefits(cmd.OutOrStdout(), catalog.Benefits(), benefitsFormat)
	},
}

func printBenefits(w io.Writer, benefits []domain.Benefit, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(benefits)
	case "table", "":
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tICON\tTITLE")
		for i, b := range benefits {
			fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, b.Icon, b.Title)
		}
		fmt.Fprintf(tw, "\n%d benefits\n", len(benefits))
		return tw.Flush()
	default:
		return fmt.Errorf("invalid format %q: valid formats are table, json", format)
	}
}

func init() {
	rootCmd.AddCommand(benefitsCmd)
	benefitsCmd.Flags().StringVar(&benefitsFile, "file", "", "Benefits catalog YAML file (default embedded catalog)")
	benefitsCmd.Flags().StringVarP(&benefitsFormat, "format", "f", "table", "Output format: table or json")
}
