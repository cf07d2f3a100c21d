package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfeng/zensync/internal/syncer"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the fork's identity invariants",
	Long: "Checks that the patch module, its import in the server entry point, " +
		"and the fork's package identity are all intact in the working tree.",
	RunE: func(cmd *cobra.Command, args []string) error {
		failures := syncer.Verify(".")
		if hard := syncer.LogFailures(failures); hard > 0 {
			return fmt.Errorf("%d fork invariants violated", hard)
		}
		fmt.Println("fork identity intact")
		return nil
	},
}
