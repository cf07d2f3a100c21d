package cmd

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mfeng/zensync/internal/override"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "zensync",
	Short: "Maintenance tooling for the patched zen-mcp-server fork",
	Long: "Keeps the fork synchronized with its upstream source and verifies " +
		"that the fork's runtime patches survive every merge.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		override.LoadEnv()
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(overridesCmd)
}
