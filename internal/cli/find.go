package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/navtree/pkg/config"
	"github.com/matzehuels/navtree/pkg/nav"
)

// findOpts holds the command-line flags for the find command.
type findOpts struct {
	all bool // collect every match instead of stopping at the first
}

// newFindCmd creates the find command, which searches a tree file for pages
// whose property equals a value.
func newFindCmd() *cobra.Command {
	var opts findOpts

	cmd := &cobra.Command{
		Use:   "find <tree-file> <property> <value>",
		Short: "Search a navigation tree for pages matching a property value",
		Long: `Search a navigation tree for pages whose property equals a value.

The search is a pre-order depth-first traversal over the full tree, so an
ancestor is reported before its descendants. Values are compared as strings.

Examples:
  navtree find site.toml label Home
  navtree find site.toml section docs --all`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			file, property, value := args[0], args[1], args[2]

			tree, err := config.Load(file)
			if err != nil {
				return err
			}

			mode := nav.FindOne
			if opts.all {
				mode = nav.FindAll
			}
			matches := tree.Find(mode, property, value)
			logger.Debugf("found %d pages with %s=%q", len(matches), property, value)

			if len(matches) == 0 {
				return fmt.Errorf("no page with %s=%q", property, value)
			}
			for _, p := range matches {
				fmt.Fprintln(cmd.OutOrStdout(), renderMatch(p))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "report every match instead of the first")
	return cmd
}
