package main

import (
	"context"
	"fmt"

	"github.com/blip-vcs/blip/cmd/ui"
	"github.com/blip-vcs/blip/pkg/integrity"
	"github.com/spf13/cobra"
)

func newFsckCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "fsck",
		Short: "Verify repository integrity",
		Long: `Verify the integrity of the repository.
Re-hashes every stored object, checks commit parent linkage, and makes
sure the branch ref and the staging index only reference objects that
exist in the store.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			repo, err := findRepository()
			if err != nil {
				return err
			}

			checker := integrity.NewChecker(repo)
			checker.SetJobs(jobs)
			report, err := checker.Verify(context.Background())
			if err != nil {
				return fmt.Errorf("verification failed: %w", err)
			}

			fmt.Printf("Checked %d object(s), %d commit(s)\n", report.Objects, report.Commits)

			if report.OK() {
				fmt.Println(ui.SuccessMessage("Repository is consistent"))
				return nil
			}

			for _, issue := range report.Issues() {
				fmt.Println(ui.FormatIssue(issue.String()))
			}
			return fmt.Errorf("found %d issue(s)", len(report.Issues()))
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", 0, "number of objects to hash concurrently (default: number of CPUs)")

	return cmd
}
