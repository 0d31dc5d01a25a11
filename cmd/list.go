package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recase.dev/pkg/recase/internal/domain"
	"recase.dev/pkg/recase/internal/domain/patterns"
)

var listClassesFlag []string

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [paths...]",
		Short: "List files and the renames pending in each",
		Long: `Run the rename in dry-run mode and show a table of pending conversions and
unconverted occurrences per file. Nothing is written.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			classes, err := patterns.ParseClasses(listClasses())
			if err != nil {
				return err
			}

			mapping, err := loadMapping(cmd.Context())
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd).Estimate(cmd.Context(), domain.RenameArgs{
				RunArgs: runArgs(renameTargets(args)),
				Mapping: mapping,
				Classes: classes,
			})

			return err
		},
	}

	cmd.Flags().StringSliceVar(&listClassesFlag, classesFlagName, viper.GetStringSlice(listClassesKey), "pattern classes to estimate (default: rename.classes)")
	bindFlagToConfig(cmd.Flags().Lookup(classesFlagName), listClassesKey)

	return cmd
}

// listClasses returns the classes configured for list, falling back to the
// rename ones so both commands agree unless told otherwise.
func listClasses() []string {
	if names := viper.GetStringSlice(listClassesKey); len(names) > 0 {
		return names
	}

	return viper.GetStringSlice(renameClassesKey)
}

func init() {
	rootCmd.AddCommand(listCmd)
}
