package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recase.dev/pkg/recase/internal/domain"
	"recase.dev/pkg/recase/internal/domain/patterns"
	m "recase.dev/pkg/recase/internal/model"
)

const renameLongDescription = `Rename every mapped identifier in the given paths (default: the configured
test and source sets) through all pattern classes: member access, object
keys, destructuring, quoted keys, "in" checks and property declarations.

` + pathPatternsHelp

var renameClassesFlag []string

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename [paths...]",
		Short: "Rename identifiers through the mapping file",
		Long:  renameLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := patterns.ParseClasses(viper.GetStringSlice(renameClassesKey))
			if err != nil {
				return err
			}

			return runRename(cmd, renameTargets(args), classes)
		},
	}

	cmd.Flags().StringSliceVar(&renameClassesFlag, classesFlagName, viper.GetStringSlice(renameClassesKey), "pattern classes to apply (default: all)")
	bindFlagToConfig(cmd.Flags().Lookup(classesFlagName), renameClassesKey)

	return cmd
}

// renameTargets returns the positional paths, or the configured test and
// source sets.
func renameTargets(args []string) []m.TargetSet {
	if len(args) > 0 {
		return []m.TargetSet{targetSet("target", args)}
	}

	return []m.TargetSet{
		targetSet("test", viper.GetStringSlice(renameTestsKey)),
		targetSet("source", viper.GetStringSlice(renameSourcesKey)),
	}
}

func runRename(cmd *cobra.Command, targets []m.TargetSet, classes []m.PatternClass) error {
	mapping, err := loadMapping(cmd.Context())
	if err != nil {
		return err
	}

	_, err = newWorkflow(cmd).Rename(cmd.Context(), domain.RenameArgs{
		RunArgs: runArgs(targets),
		Mapping: mapping,
		Classes: classes,
	})

	return err
}

func init() {
	rootCmd.AddCommand(renameCmd)
}
