package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/blip-vcs/blip/cmd/ui"
	"github.com/blip-vcs/blip/pkg/commitmanager"
	"github.com/blip-vcs/blip/pkg/objects/commit"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newLogCmd() *cobra.Command {
	var limit int
	var useTable bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show commit history",
		Long: `Show the commit history of the current branch.
Walks backward from the branch tip through each commit's parent.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			mgr := commitmanager.NewManager(repo)
			history, err := mgr.History(context.Background(), limit)
			if err != nil {
				return fmt.Errorf("failed to get history: %w", err)
			}

			if len(history) == 0 {
				fmt.Println(ui.WarningMessage("No commits yet"))
				return nil
			}

			branch, err := repo.Refs().CurrentBranch()
			if err == nil {
				fmt.Println(ui.BranchInfo(branch))
				fmt.Println()
			}

			if useTable {
				displayCommitsAsTable(history)
			} else {
				displayCommitsDetailed(history)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Limit the number of commits to show")
	cmd.Flags().BoolVarP(&useTable, "table", "t", false, "Display commits in table format")

	return cmd
}

// displayCommitsDetailed shows each commit in a box with its manifest
func displayCommitsDetailed(history []*commit.Commit) {
	fmt.Println(ui.Header(" Commit History "))
	fmt.Println()

	for _, c := range history {
		hash, _ := c.Hash()

		info := ui.CommitInfo{
			Hash:  hash.String(),
			Files: manifestLines(c),
		}
		if parentHash, ok := c.Parent(); ok {
			info.Parent = parentHash.String()
		}

		fmt.Println(ui.FormatCommitDetailed(info))
	}
}

// displayCommitsAsTable shows commits in a compact table format
func displayCommitsAsTable(history []*commit.Commit) {
	fmt.Println(ui.Header(" Commit History "))
	fmt.Println()

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("Commit", "Parent", "Files")

	for _, c := range history {
		hash, _ := c.Hash()

		parent := "-"
		if parentHash, ok := c.Parent(); ok {
			parent = parentHash.Short().String()
		}

		table.Append(
			ui.Yellow(hash.Short().String()),
			ui.Cyan(parent),
			fmt.Sprintf("%d", c.Len()),
		)
	}

	table.Render()
}

// manifestLines renders a commit's manifest as "path (hash)" lines,
// sorted by path for stable output.
func manifestLines(c *commit.Commit) []string {
	lines := make([]string, 0, c.Len())
	for hash, path := range c.Manifest() {
		lines = append(lines, fmt.Sprintf("%s (%s)", path, hash.Short()))
	}
	sort.Strings(lines)
	return lines
}
