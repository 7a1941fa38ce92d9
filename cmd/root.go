// Package cmd provides the root command and CLI setup for ztar.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"ztar.dev/pkg/ztar/internal/adapter"
	"ztar.dev/pkg/ztar/internal/controller"
	"ztar.dev/pkg/ztar/internal/domain"
	"ztar.dev/pkg/ztar/internal/domain/bytecode"
	m "ztar.dev/pkg/ztar/internal/model"
)

// Process exit codes.
const (
	exitFailure  = 1
	exitInternal = 70
)

var fsAdapter adapter.FSAdapter
var romAdapter adapter.RomAdapter
var catalogueAdapter adapter.CatalogueAdapter
var outputStore adapter.OutputStore
var workflow domain.Workflow
var ui controller.UI

// outputDirFlag is a root-level flag shared by commands that read/write sources.
var outputDirFlag string

// romPathFlag and mapsPathFlag locate the ROM image and its map table.
var romPathFlag string
var mapsPathFlag string

// excludePatterns is a root-level flag that filters maps for applicable commands.
var excludePatterns []string

var cataloguePathFlag string
var logFileFlag string
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalFSAdapter()
	romAdapter = adapter.NewLocalRomAdapter(fsAdapter)
	catalogueAdapter = adapter.NewLocalCatalogueAdapter(fsAdapter)
	outputStore = adapter.NewLocalOutputStore(fsAdapter)
	workflow = domain.NewWorkflow(
		romAdapter,
		catalogueAdapter,
		outputStore,
		ui,
		bytecode.NewDecoder(),
	)
}

const rootLongDescription = `ztar decompiles the event scripts of Paper Mario maps into typed,
readable source.

Maps are read from a ROM image using a map table; script types are
recovered from the engine entry points they call.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

// newRootCmd builds a root command with its persistent flags bound.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:           "ztar",
		Short:         "Paper Mario script decompiler",
		Long:          rootLongDescription,
		SilenceUsage:  true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&outputDirFlag, outputFlagName, "o", viper.GetString(outputFlagName), "output directory for decompiled sources")
	bindFlagToConfig(flags.Lookup(outputFlagName), outputFlagName)

	flags.StringVar(&romPathFlag, romFlagName, viper.GetString(romFlagName), "path to the ROM image")
	bindFlagToConfig(flags.Lookup(romFlagName), romFlagName)

	flags.StringVar(&mapsPathFlag, mapsFlagName, viper.GetString(mapsFlagName), "path to the YAML map table")
	bindFlagToConfig(flags.Lookup(mapsFlagName), mapsFlagName)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude maps matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringVar(&cataloguePathFlag, catalogueFlagName, viper.GetString(catalogueConfigKey), "extra entry-point table merged over the built-in one")
	bindFlagToConfig(flags.Lookup(catalogueFlagName), catalogueConfigKey)

	flags.StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(flags.Lookup(logFileFlagName), logFilenameKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(flags.Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(exitCode(err))
	}
}

// exitCode maps internal inconsistencies to a distinct exit status.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrInconsistency) {
		return exitInternal
	}

	return exitFailure
}

func parseMapNames(args []string) []string {
	names := make([]string, 0, len(args))

	return append(names, args...)
}

// decompileArgs collects the settings shared by decompile, diff and view.
func decompileArgs(args []string) (domain.DecompileArgs, error) {
	opts, err := inferenceOptions()
	if err != nil {
		return domain.DecompileArgs{}, err
	}

	return domain.DecompileArgs{
		Rom:       m.Path(viper.GetString(romFlagName)),
		MapTable:  m.Path(viper.GetString(mapsFlagName)),
		Maps:      parseMapNames(args),
		Exclude:   viper.GetStringSlice(excludeConfigKey),
		Output:    m.Path(viper.GetString(outputFlagName)),
		Catalogue: m.Path(viper.GetString(catalogueConfigKey)),
		Threads:   viper.GetInt(runParallelConfigKey),
		Inference: opts,
	}, nil
}
