package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"submitcheck/internal/marker"
	"submitcheck/internal/merge"
)

func init() {
	cmd := &cobra.Command{
		Use:   "merge ASSIGNMENT SUBMISSION",
		Short: "Insert the submission's answers into the assignment",
		Long: "Reconstructs the assignment with each TODO region replaced by the\n" +
			"submission's answer. Intended for grading and inspection; it does not\n" +
			"run the accept/reject checks.",
		Args: cobra.ExactArgs(2),
		Run:  runMerge,
	}

	cmd.Flags().StringP("output", "o", "", "Write the merged document to a file instead of stdout")

	RootCmd.AddCommand(cmd)
}

func runMerge(cmd *cobra.Command, args []string) {
	assignmentFile, submissionFile := args[0], args[1]
	output, _ := cmd.Flags().GetString("output")

	assignmentText, err := os.ReadFile(assignmentFile)
	if err != nil {
		exitErr("read assignment", err)
	}
	submissionText, err := os.ReadFile(submissionFile)
	if err != nil {
		exitErr("read submission", err)
	}

	assignmentTags, err := marker.Extract(string(assignmentText))
	if err != nil {
		exitErr("assignment markers", err)
	}
	submissionTags, err := marker.Extract(string(submissionText))
	if err != nil {
		exitErr("submission markers", err)
	}

	merged, err := merge.Insert(string(assignmentText), string(submissionText), assignmentTags, submissionTags)
	if err != nil {
		exitErr("merge", err)
	}

	if output == "" {
		fmt.Println(merged)
		return
	}
	if err := os.WriteFile(output, []byte(merged+"\n"), 0o644); err != nil {
		exitErr("write output", err)
	}
}
