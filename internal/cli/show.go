package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navtree/pkg/config"
)

// newShowCmd creates the show command, which loads a tree file and prints
// the full tree in traversal order.
func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <tree-file>",
		Short: "Print a navigation tree in traversal order",
		Long: `Print a navigation tree in traversal order.

Pages with an explicit order value sort by it; the rest keep file order.
Invisible pages are shown dimmed with a "(hidden)" marker.

Examples:
  navtree show site.toml
  navtree show nav.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			tree, err := config.Load(args[0])
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Loaded %d top-level pages", tree.Count()))

			fmt.Fprint(cmd.OutOrStdout(), renderTree(tree))
			return nil
		},
	}
}
