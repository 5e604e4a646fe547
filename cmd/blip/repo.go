package main

import (
	"fmt"
	"os"

	"github.com/blip-vcs/blip/pkg/repository/bliprepo"
)

// findRepository resolves the working directory once, here at the CLI
// boundary, and walks upward from it. Everything below the command layer
// receives the repository explicitly and never consults process state.
func findRepository() (*bliprepo.BlipRepository, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get current directory: %w", err)
	}
	return bliprepo.Find(cwd)
}
