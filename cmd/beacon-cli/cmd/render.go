package cmd

import (
	"bytes"
	"context"
	"fmt"

	"github.com/beaconhouse/beacon/internal/actions"
	"github.com/beaconhouse/beacon/internal/config"
	"github.com/beaconhouse/beacon/internal/content"
	"github.com/beaconhouse/beacon/internal/page"
	"github.com/beaconhouse/beacon/internal/rendering"
	"github.com/beaconhouse/beacon/internal/storage"
	"github.com/spf13/cobra"
)

var (
	renderOut         string
	renderContentFile string
)

// renderCmd represents the render command
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the landing page to static HTML",
	Long: `Render the landing page with the current configuration and the benefits catalog.

Buttons post to /actions/..., so the snapshot only works when served next to
the server that owns those actions.

Examples:
  beacon-cli render                          # Write the page to stdout
  beacon-cli render --out dist/index.html    # Write the page to a file
  beacon-cli render --file benefits.yaml     # Use a custom benefits catalog`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Parse()
		if err != nil {
			return err
		}
		if renderContentFile != "" {
			cfg.ContentFile = renderContentFile
		}
		return runRender(cmd, cfg, rendering.NewUniversalRenderer(), storage.NewOSStore(), renderOut)
	},
}

func runRender(cmd *cobra.Command, cfg config.Provider, renderer rendering.Renderer, store storage.Store, out string) error {
	catalog, err := content.Load(cfg.GetContentFile())
	if err != nil {
		return err
	}
	landing, err := page.NewLanding(actions.NewRegistry(), catalog, page.DefaultCallbacks(cfg))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	html, err := renderer.RenderComponent(ctx, landing.Node(nil))
	if err != nil {
		return fmt.Errorf("render landing page: %w", err)
	}

	if out == "" {
		_, err := cmd.OutOrStdout().Write(html)
		return err
	}
	n, err := store.Save(ctx, out, bytes.NewReader(html))
	if err != nil {
		return fmt.Errorf("write %s: %w", out, err)
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d bytes to %s\n", n, out)
	return nil
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "File to write the page to (default stdout)")
	renderCmd.Flags().StringVar(&renderContentFile, "file", "", "Benefits catalog YAML file (default embedded catalog)")
}
