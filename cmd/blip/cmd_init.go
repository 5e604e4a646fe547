package main

import (
	"fmt"
	"path/filepath"

	"github.com/blip-vcs/blip/cmd/ui"
	"github.com/blip-vcs/blip/pkg/repository/bliprepo"
	"github.com/blip-vcs/blip/pkg/repository/blippath"
	"github.com/spf13/cobra"
)

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Initialize a new blip repository",
		Long: `Initialize a new blip repository in the current directory or specified path.
This creates a .blip directory with the object store, the staging index,
and a HEAD pointing at the default branch.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("failed to resolve path: %w", err)
			}

			repoPath, err := blippath.NewRepositoryPath(absPath)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			repo := bliprepo.New()
			if err := repo.Initialize(repoPath); err != nil {
				return fmt.Errorf("failed to initialize repository: %w", err)
			}

			displayPath := fmt.Sprintf("%s/%s", absPath, blippath.BlipDir)
			fmt.Println(ui.SuccessMessage("Initialized empty blip repository in", displayPath))

			return nil
		},
	}

	return cmd
}
