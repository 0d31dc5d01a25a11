package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"recase.dev/pkg/recase/internal/domain"
)

var auditParallelFlag uint

// auditCmd represents the audit command.
var auditCmd = newAuditCmd()

func newAuditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "audit [paths...]",
		Short: "Report old spellings still present, next to their new ones or alone",
		Long: `Scan files for whole-word occurrences of old spellings from the mapping.
A file holding both spellings of a property is reported as mixed. Nothing is
rewritten. Paths default to the configured rename test and source sets.

` + pathPatternsHelp,
		RunE: func(cmd *cobra.Command, args []string) error {
			mapping, err := loadMapping(cmd.Context())
			if err != nil {
				return err
			}

			_, err = newWorkflow(cmd).Audit(cmd.Context(), domain.AuditArgs{
				Targets: renameTargets(args),
				Mapping: mapping,
				Threads: viper.GetUint(auditParallelKey),
			})

			return err
		},
	}

	cmd.Flags().UintVarP(&auditParallelFlag, parallelFlagName, "p", viper.GetUint(auditParallelKey), "number of files read concurrently")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), auditParallelKey)

	return cmd
}

func init() {
	rootCmd.AddCommand(auditCmd)
}
