package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/mfeng/zensync/internal/override"
)

var (
	activeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	inactiveStyle = lipgloss.NewStyle().Faint(true)
)

var overridesCmd = &cobra.Command{
	Use:   "overrides",
	Short: "Show active provider endpoint overrides",
	Long: "Lists every provider the patch layer can redirect and the endpoint " +
		"override currently configured for it, if any.",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range override.Providers() {
			o, ok := override.For(id)
			if !ok {
				fmt.Println(inactiveStyle.Render(fmt.Sprintf("%-8s default endpoint", id)))
				continue
			}
			key := "no api key"
			if o.APIKey != "" {
				key = "api key set"
			}
			fmt.Println(activeStyle.Render(fmt.Sprintf("%-8s %s (%s)", id, o.BaseURL, key)))
		}
	},
}
