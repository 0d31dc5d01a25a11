package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Display the recase build version, its module path and Go version, and the
config schema this binary writes next to the one recase.yaml declares.`,
		Run: func(cmd *cobra.Command, _ []string) {
			if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
				cmd.Println("recase version\t", info.Main.Version)
				cmd.Println("module\t\t", info.Main.Path)
				cmd.Println("go version\t", info.GoVersion)
			} else {
				cmd.Println("recase version\t unknown")
			}

			cmd.Println("config schema\t", currentConfigVersion)

			if loaded := viper.GetInt(configVersionKey); loaded != currentConfigVersion {
				cmd.Println("config file\t", loaded, "(differs from this build)")
			}
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
