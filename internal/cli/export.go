package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navtree/pkg/config"
)

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	output string // output file path (stdout if empty)
}

// newExportCmd creates the export command, which loads a tree file and emits
// its sorted JSON export.
func newExportCmd() *cobra.Command {
	var opts exportOpts

	cmd := &cobra.Command{
		Use:   "export <tree-file>",
		Short: "Emit the sorted JSON export of a navigation tree",
		Long: `Emit a navigation tree as JSON, with pages in traversal order.

The export round-trips: feeding it back to show or export produces the same
tree. Use -o to write to a file instead of stdout.

Examples:
  navtree export site.toml
  navtree export site.yaml -o site.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := config.Load(args[0])
			if err != nil {
				return err
			}

			data, err := json.MarshalIndent(map[string]any{"pages": tree.Export()}, "", "  ")
			if err != nil {
				return fmt.Errorf("encode: %w", err)
			}
			data = append(data, '\n')

			if opts.output == "" {
				fmt.Fprint(cmd.OutOrStdout(), string(data))
				return nil
			}
			if err := os.WriteFile(opts.output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", opts.output, err)
			}
			loggerFromContext(cmd.Context()).Infof("Wrote %s", opts.output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	return cmd
}
