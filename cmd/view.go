package cmd

import (
	"github.com/spf13/cobra"

	"ztar.dev/pkg/ztar/internal/domain"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "view <map>",
		Short:   "Decompile a single map and show its source",
		Long:    "Decompile a single map and show its source, in a scrollable viewer when attached to a terminal.",
		Args:    cobra.ExactArgs(1),
		PreRunE: bindDecompileFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			decompile, err := decompileArgs(nil)
			if err != nil {
				return err
			}

			return workflow.View(cmd.Context(), domain.ViewArgs{DecompileArgs: decompile, Map: args[0]})
		},
	}

	configureDecompileFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
