package cmd

import (
	"github.com/spf13/cobra"
)

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "diff [maps...]",
		Short:   "Compare fresh decompilations with stored sources",
		Long:    "Decompile the selected maps and print unified diffs against the sources stored in the output directory.",
		PreRunE: bindDecompileFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			decompile, err := decompileArgs(args)
			if err != nil {
				return err
			}

			return workflow.Diff(cmd.Context(), decompile)
		},
	}

	configureDecompileFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
