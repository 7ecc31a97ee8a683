package cmd

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/docbrowser/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "docbrowser",
	Short: "Browse a curated set of markdown course modules",
	Long: `docbrowser serves a curated list of course modules as a single-page
documentation site. Module markdown is fetched on demand from the hosting
location, trying each candidate path under the deployment root until one
answers, then rendered with syntax highlighting and navigable heading anchors.
The same content is available in the terminal and to AI agents over MCP.`,
	SilenceUsage: true,
}

// Execute runs the root command with fang's styled help and errors.
func Execute() error {
	return fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(Version),
		fang.WithNotifySignal(os.Interrupt),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newLogger returns the stderr logger shared by all commands. Stdout is
// reserved for command output and the MCP protocol.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "docbrowser",
	})
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
