package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recase.dev/pkg/recase/internal/domain"
)

var (
	tidyRulesFlag []string
	tidyDropFlag  []string
)

// tidyCmd represents the tidy command.
var tidyCmd = newTidyCmd()

func newTidyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tidy [paths...]",
		Short: "Trim documentation comments",
		Long: `Remove @example blocks, @since/@version/@author tags, comment lines starting
with a configured prefix and empty doc lines, and collapse runs of blank
lines. Rules: ` + strings.Join(domain.DefaultTidyRules, ", ") + `.
Paths default to the ` + tidyPathsKey + ` setting.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Tidy(cmd.Context(), domain.TidyArgs{
				RunArgs: runArgs(targetsFor(args, "target", tidyPathsKey)),
				Options: domain.TidyOptions{
					Rules:        viper.GetStringSlice(tidyRulesKey),
					DropPrefixes: viper.GetStringSlice(tidyDropKey),
				},
			})

			return err
		},
	}

	cmd.Flags().StringSliceVar(&tidyRulesFlag, ruleFlagName, viper.GetStringSlice(tidyRulesKey), "rules to apply (default: all)")
	bindFlagToConfig(cmd.Flags().Lookup(ruleFlagName), tidyRulesKey)

	cmd.Flags().StringArrayVar(&tidyDropFlag, dropFlagName, viper.GetStringSlice(tidyDropKey), "drop comment lines starting with this text (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(dropFlagName), tidyDropKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(tidyCmd)
}
