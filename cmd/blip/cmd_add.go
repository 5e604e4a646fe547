package main

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/blip-vcs/blip/cmd/ui"
	"github.com/blip-vcs/blip/pkg/commitmanager"
	"github.com/spf13/cobra"
)

func newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add [file...]",
		Short: "Add file contents to the staging area",
		Long: `Add file contents to the staging area (index).
Each file is hashed, written into the object store, and recorded in the
index for the next commit.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			// Arguments are named relative to where the user ran the
			// command, not the repository root.
			paths := make([]string, 0, len(args))
			for _, arg := range args {
				abs, err := filepath.Abs(arg)
				if err != nil {
					return fmt.Errorf("failed to resolve %s: %w", arg, err)
				}
				paths = append(paths, abs)
			}

			mgr := commitmanager.NewManager(repo)
			staged, err := mgr.Stage(context.Background(), paths)
			if err != nil {
				return fmt.Errorf("failed to add files: %w", err)
			}

			for _, file := range staged {
				fmt.Println(ui.FormatStaged(file.Path.String(), file.Hash.Short().String()))
			}

			return nil
		},
	}

	return cmd
}
