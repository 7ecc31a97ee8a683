package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docbrowser/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize docbrowser configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure where course markdown lives and generates a docbrowser.yml file seeded with the built-in module list.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
