package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "recase.dev/pkg/recase/internal/model"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Generate a default recase.yaml configuration file",
		Long: `Create a recase.yaml in the current working directory populated with the
current CLI defaults so it can be edited manually. An empty mapping file is
created next to it when the configured one does not exist yet.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			err := viper.SafeWriteConfigAs(targetPath)
			if err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			cmd.Printf("Wrote %s\n", targetPath)

			mappingPath := viper.GetString(mappingFileKey)
			if _, err := os.Stat(mappingPath); !errors.Is(err, fs.ErrNotExist) {
				return nil
			}

			if err := mappingStore.Save(cmd.Context(), m.Path(mappingPath), m.Mapping{}); err != nil {
				return fmt.Errorf("failed to write mapping file: %w", err)
			}

			cmd.Printf("Wrote %s\n", mappingPath)

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
