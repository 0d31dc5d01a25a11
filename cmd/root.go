// Package cmd provides the root command and CLI setup for recase.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"recase.dev/pkg/recase/internal/adapter"
	"recase.dev/pkg/recase/internal/controller"
	"recase.dev/pkg/recase/internal/domain"
	m "recase.dev/pkg/recase/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var mappingStore adapter.MappingStore

var (
	mappingFlag     string
	inverseFlag     bool
	excludePatterns []string
	suffixesFlag    []string
	dryRunFlag      bool
	diffFlag        bool
	verboseFlag     bool
	logFileFlag     string
)

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	mappingStore = adapter.NewFileMappingStore()
}

const pathPatternsHelp = `Path entries may be:
  - src/...        every file under src, recursively
  - src            files directly inside src
  - "tests/*.ts"   a glob pattern
  - src/mod.ts     a single file (reported when missing)`

const rootLongDescription = `Recase rewrites identifier spellings across a code base, one textual
pattern at a time. It renames snake_case properties to camelCase through a
mapping file, prunes references to deleted functions and tidies
documentation comments. Every file is written only when its bytes change.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recase",
		Short: "Batch identifier rename and reference pruning tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

// newRootCmd builds a root command with its persistent flags, without
// subcommands.
func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()

	flags.StringVarP(&mappingFlag, mappingFlagName, "m", viper.GetString(mappingFileKey), "rename mapping file (JSON or YAML object of old to new spellings)")
	bindFlagToConfig(flags.Lookup(mappingFlagName), mappingFileKey)

	flags.BoolVar(&inverseFlag, inverseFlagName, viper.GetBool(mappingInverseKey), "apply the mapping in reverse (new to old)")
	bindFlagToConfig(flags.Lookup(inverseFlagName), mappingInverseKey)

	flags.StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(flags.Lookup(excludeFlagName), excludeConfigKey)

	flags.StringSliceVar(&suffixesFlag, suffixFlagName, viper.GetStringSlice(suffixesConfigKey), "file suffixes picked up from directories and globs")
	bindFlagToConfig(flags.Lookup(suffixFlagName), suffixesConfigKey)

	flags.BoolVarP(&dryRunFlag, dryRunFlagName, "n", viper.GetBool(dryRunConfigKey), "report changes without writing files")
	bindFlagToConfig(flags.Lookup(dryRunFlagName), dryRunConfigKey)

	flags.BoolVar(&diffFlag, diffFlagName, viper.GetBool(diffConfigKey), "print a unified diff for every changed file")
	bindFlagToConfig(flags.Lookup(diffFlagName), diffConfigKey)

	flags.BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	flags.StringVar(&logFileFlag, logFileFlagName, "", "log file path (default from "+logFilenameKey+")")
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
	defer stop()

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		stop()
		os.Exit(1)
	}
}

// newWorkflow wires a workflow whose UI prints to cmd's output.
func newWorkflow(cmd *cobra.Command) domain.Workflow {
	ui := controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))

	return domain.NewWorkflow(
		fsAdapter,
		ui,
		domain.NewSelector(fsAdapter),
		domain.NewCommitter(fsAdapter),
		domain.NewAuditor(fsAdapter),
	)
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

// targetSet builds a named target set carrying the shared suffix and exclude
// settings.
func targetSet(name string, paths []string) m.TargetSet {
	return m.TargetSet{
		Name:     name,
		Paths:    parsePaths(paths),
		Suffixes: viper.GetStringSlice(suffixesConfigKey),
		Exclude:  viper.GetStringSlice(excludeConfigKey),
	}
}

// targetsFor returns the positional paths as a single set when given, the
// configured set under key otherwise.
func targetsFor(args []string, name, key string) []m.TargetSet {
	if len(args) > 0 {
		return []m.TargetSet{targetSet("target", args)}
	}

	return []m.TargetSet{targetSet(name, viper.GetStringSlice(key))}
}

func runArgs(targets []m.TargetSet) domain.RunArgs {
	return domain.RunArgs{
		Targets: targets,
		DryRun:  viper.GetBool(dryRunConfigKey),
		Diff:    viper.GetBool(diffConfigKey),
	}
}

// loadMapping reads the configured mapping file, reversed with --inverse.
func loadMapping(ctx context.Context) (m.Mapping, error) {
	mapping, err := mappingStore.Load(ctx, m.Path(viper.GetString(mappingFileKey)))
	if err != nil {
		return nil, err
	}

	if viper.GetBool(mappingInverseKey) {
		return mapping.Inverse()
	}

	return mapping, nil
}
