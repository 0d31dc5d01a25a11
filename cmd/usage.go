package cmd

import (
	"github.com/spf13/cobra"

	"recase.dev/pkg/recase/internal/domain/patterns"
)

// usageCmd represents the usage command.
var usageCmd = newUsageCmd()

func newUsageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "usage [paths...]",
		Short: "Rename property reads and key presence checks only",
		Long: `Rename member accesses (obj.old) and key presence checks ('old' in obj).
Paths default to the ` + usagePathsKey + ` setting.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRename(cmd, targetsFor(args, "implementation", usagePathsKey), patterns.Profiles["usage"])
		},
	}
}

func init() {
	rootCmd.AddCommand(usageCmd)
}
