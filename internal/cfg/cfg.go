// Package cfg provides configuration and command-line interface setup for Grabarr.
package cfg

import (
	"strings"

	"grabarr/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "grabarr",
	Short: "Grabarr downloads and compresses media from supported sites.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil // Stop further execution if help is invoked
		}
		if len(args) == 1 {
			viper.Set(keys.URL, args[0])
		}
		viper.Set("execute", true)
		return nil
	},
}

// InitCommands initializes the root command and its flags.
func InitCommands() error {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "-"))

	initDownloadFlags()
	initProgramFlags()

	return nil
}

// Execute parses flags and marks the run for execution.
func Execute() error {
	return rootCmd.Execute()
}
