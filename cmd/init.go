package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/second-draft/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize seconddraft configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to pick a provider, model and form defaults, and writes them to the config file (.seconddraft.yml by default).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
