package cmd

import (
	"github.com/spf13/cobra"

	"recase.dev/pkg/recase/internal/domain/patterns"
)

// propsCmd represents the props command.
var propsCmd = newPropsCmd()

func newPropsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "props [paths...]",
		Short: "Rename interface and type property declarations only",
		Long: `Rename property declarations (documented or plain) in interface and type
bodies. Paths default to the ` + propsPathsKey + ` setting.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, targetsFor(args, "interface", propsPathsKey), patterns.Profiles["props"])
		},
	}
}

func init() {
	rootCmd.AddCommand(propsCmd)
}
