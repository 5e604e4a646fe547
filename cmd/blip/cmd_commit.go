package main

import (
	"context"
	"fmt"

	"github.com/blip-vcs/blip/cmd/ui"
	"github.com/blip-vcs/blip/pkg/commitmanager"
	"github.com/spf13/cobra"
)

func newCommitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Record staged changes as a new commit",
		Long: `Create a new commit from the staging area.
The commit snapshots every staged file, links to the previous commit on
the current branch, and becomes the new branch tip. The staging area is
cleared afterwards.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			mgr := commitmanager.NewManager(repo)
			result, err := mgr.CreateCommit(context.Background())
			if err != nil {
				return fmt.Errorf("failed to create commit: %w", err)
			}

			fmt.Printf("%s [%s] %d file(s) on %s\n",
				ui.Green(ui.IconCommit),
				ui.Yellow(result.Hash.Short().String()),
				result.Files,
				ui.Blue(result.Branch))
			if result.HasParent {
				fmt.Printf("  parent %s\n", ui.Cyan(result.Parent.Short().String()))
			}

			return nil
		},
	}

	return cmd
}
