package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recase.dev/pkg/recase/internal/domain"
)

var (
	pruneSymbolsFlag    []string
	pruneRegistrarsFlag []string
	pruneAnnotationFlag string
)

// pruneCmd represents the prune command.
var pruneCmd = newPruneCmd()

func newPruneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prune [paths...]",
		Short: "Remove references to deleted functions",
		Long: `For every removed symbol: drop it from import and export lists, replace
single-argument calls with their argument and comment out test blocks whose
title mentions it. Paths default to the ` + prunePathsKey + ` setting.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := newWorkflow(cmd).Prune(cmd.Context(), domain.PruneArgs{
				RunArgs: runArgs(targetsFor(args, "target", prunePathsKey)),
				Options: domain.PruneOptions{
					Symbols:    viper.GetStringSlice(pruneSymbolsKey),
					Registrars: viper.GetStringSlice(pruneRegistrarsKey),
					Annotation: viper.GetString(pruneAnnotationKey),
				},
			})

			return err
		},
	}

	configurePruneFlags(cmd)

	return cmd
}

func configurePruneFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVarP(&pruneSymbolsFlag, symbolFlagName, "s", viper.GetStringSlice(pruneSymbolsKey), "removed function names (can be repeated)")
	bindFlagToConfig(cmd.Flags().Lookup(symbolFlagName), pruneSymbolsKey)

	cmd.Flags().StringSliceVar(&pruneRegistrarsFlag, registrarFlagName, viper.GetStringSlice(pruneRegistrarsKey), "test registration calls whose blocks may be disabled")
	bindFlagToConfig(cmd.Flags().Lookup(registrarFlagName), pruneRegistrarsKey)

	cmd.Flags().StringVar(&pruneAnnotationFlag, annotateFlagName, viper.GetString(pruneAnnotationKey), "trailing note on disabled blocks; {symbol} is replaced")
	bindFlagToConfig(cmd.Flags().Lookup(annotateFlagName), pruneAnnotationKey)
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
