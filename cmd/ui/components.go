package ui

import (
	"fmt"
	"strings"
)

// FormatStaged formats a newly staged file with its short hash.
func FormatStaged(path, shortHash string) string {
	return fmt.Sprintf("  %s  %s %s",
		StagedStyle.Render(IconAdded),
		StagedStyle.Render(path),
		HashStyle.Render("("+shortHash+")"))
}

// FormatIssue formats one integrity problem.
func FormatIssue(problem string) string {
	return fmt.Sprintf("  %s  %s", IssueStyle.Render(IconCross), problem)
}

// SuccessMessage creates a success message with a checkmark icon
func SuccessMessage(message string, details ...string) string {
	var parts []string
	parts = append(parts, Green(IconCheck), Green(message))

	for _, detail := range details {
		parts = append(parts, Blue(detail))
	}

	return strings.Join(parts, " ")
}

// BranchInfo formats branch information with an icon
func BranchInfo(branchName string) string {
	return fmt.Sprintf("%s Branch: %s", Cyan(IconBranch), Blue(branchName))
}

// CommitInfo represents the display form of one commit
type CommitInfo struct {
	Hash   string
	Parent string // empty for the first commit
	Files  []string
}

// FormatCommitDetailed formats a commit with full details in a box
func FormatCommitDetailed(info CommitInfo) string {
	var content strings.Builder

	content.WriteString(fmt.Sprintf("%s %s\n", Yellow(IconCommit), Yellow(info.Hash)))

	if info.Parent != "" {
		content.WriteString(fmt.Sprintf("%s parent %s\n", Cyan(IconCommit), Cyan(info.Parent)))
	} else {
		content.WriteString(Magenta("initial commit") + "\n")
	}

	for _, file := range info.Files {
		content.WriteString(fmt.Sprintf("%s %s\n", Blue(IconFile), file))
	}

	return CommitBox(strings.TrimRight(content.String(), "\n"))
}

// ErrorMessage formats an error message in red
func ErrorMessage(message string) string {
	return Red(message)
}

// WarningMessage formats a warning message in yellow
func WarningMessage(message string) string {
	return Yellow(message)
}
