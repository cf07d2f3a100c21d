package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mfeng/zensync/internal/git"
	"github.com/mfeng/zensync/internal/syncer"
)

var (
	syncRemote string
	syncBranch string
	syncYes    bool
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Fetch upstream and merge it into the fork",
	Long: "Fetches the upstream remote, merges pending commits into the current " +
		"branch, auto-resolves known conflicts, and verifies the fork's identity " +
		"afterwards. Unrecognized conflicts are left in place for manual resolution.",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := git.New(".")
		s := syncer.New(repo, syncer.Options{
			Remote:    syncRemote,
			Branch:    syncBranch,
			AssumeYes: syncYes,
			Confirm:   confirmMerge,
		})

		ctx, err := s.Run()
		if err == nil || errors.Is(err, syncer.ErrUnresolvedConflicts) {
			syncer.Report(os.Stdout, ctx)
		}
		return err
	},
}

// confirmMerge shows the pending short log and asks before the destructive
// step. Declining is not an error.
func confirmMerge(pending int, shortLog []string) (bool, error) {
	fmt.Printf("%d upstream commits pending:\n", pending)
	for _, line := range shortLog {
		fmt.Println("  " + line)
	}
	if len(shortLog) < pending {
		fmt.Printf("  ... and %d more\n", pending-len(shortLog))
	}

	var proceed bool
	form := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title(fmt.Sprintf("Merge %d upstream commits into this branch?", pending)).
			Value(&proceed),
	))
	if err := form.Run(); err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}
	return proceed, nil
}

func init() {
	syncCmd.Flags().StringVar(&syncRemote, "remote", "upstream", "upstream remote name")
	syncCmd.Flags().StringVar(&syncBranch, "branch", "main", "upstream branch to merge")
	syncCmd.Flags().BoolVarP(&syncYes, "yes", "y", false, "skip the merge confirmation prompt")
}
