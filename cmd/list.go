package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ztar.dev/pkg/ztar/internal/domain"
	m "ztar.dev/pkg/ztar/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the maps of the map table",
		Long:  "List the maps of the configured map table with their area, main script address and segment size.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.List(cmd.Context(), domain.ListArgs{
				MapTable: m.Path(viper.GetString(mapsFlagName)),
				Exclude:  viper.GetStringSlice(excludeConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
