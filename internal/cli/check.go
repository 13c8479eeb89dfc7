package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"submitcheck/internal/check"
)

func init() {
	cmd := &cobra.Command{
		Use:   "check ASSIGNMENT SUBMISSION",
		Short: "Check a submission with TODO markers against the original assignment",
		Args:  cobra.ExactArgs(2),
		Run:   runCheck,
	}

	RootCmd.AddCommand(cmd)
}

func runCheck(cmd *cobra.Command, args []string) {
	assignmentFile, submissionFile := args[0], args[1]

	fmt.Printf("Comparing the assignment `%s` with the submission `%s`\n", assignmentFile, submissionFile)

	if !isFile(assignmentFile) {
		fmt.Printf("ERROR: Assignment file %s does not exist.\n", assignmentFile)
		os.Exit(1)
	}
	if !isFile(submissionFile) {
		fmt.Printf("ERROR: Submission file %s does not exist.\n", submissionFile)
		os.Exit(1)
	}

	policy, err := loadPolicy()
	if err != nil {
		exitErr("config", err)
	}

	result, err := check.Files(assignmentFile, submissionFile, policy)
	if err != nil {
		exitErr("check", err)
	}

	for _, w := range result.Warnings {
		warnColor.Fprintln(os.Stderr, w)
	}

	printVerdict(result)
	fmt.Println()

	if !result.Accepted {
		os.Exit(1)
	}
}

// printVerdict colors the verdict headline but keeps the canonical text.
func printVerdict(result check.Result) {
	text := result.Verdict()
	if result.Accepted {
		acceptColor.Println(text)
		return
	}
	head, rest, _ := strings.Cut(text, "\n")
	rejectColor.Println(head)
	fmt.Println(rest)
}
