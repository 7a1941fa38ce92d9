package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var runParallelFlag int
var maxPassesFlag int
var unresolvedPolicyFlag string

const decompileLongDescription = `Decompile the selected maps (default: every map in the map table,
minus --exclude matches) and write each source to <output>/<area>/<map>.ztar.

Maps that fail to decode or type-check are reported and skipped; the command
exits non-zero if any map failed.`

// decompileCmd represents the decompile command.
var decompileCmd = newDecompileCmd()

func newDecompileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "decompile [maps...]",
		Short:   "Decompile maps to source files",
		Long:    decompileLongDescription,
		PreRunE: bindDecompileFlags,
		RunE: func(cmd *cobra.Command, args []string) error {
			decompile, err := decompileArgs(args)
			if err != nil {
				return err
			}

			return workflow.Decompile(cmd.Context(), decompile)
		},
	}

	configureDecompileFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(decompileCmd)
}

// configureDecompileFlags adds the flags shared by decompile, diff and view.
// They are bound to the config when the command runs, so each command feeds
// the same keys.
func configureDecompileFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of maps decompiled in parallel")
	cmd.Flags().IntVar(&maxPassesFlag, maxPassesFlagName, viper.GetInt(maxPassesConfigKey), "maximum type inference passes per block")
	cmd.Flags().StringVar(&unresolvedPolicyFlag, unresolvedPolicyFlagName, viper.GetString(unresolvedPolicyKey), "how a pass treats untyped candidates: skip-batch or skip-one")
}

func bindDecompileFlags(cmd *cobra.Command, _ []string) error {
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(maxPassesFlagName), maxPassesConfigKey)
	bindFlagToConfig(cmd.Flags().Lookup(unresolvedPolicyFlagName), unresolvedPolicyKey)

	return nil
}
