package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"submitcheck/internal/marker"
)

func init() {
	cmd := &cobra.Command{
		Use:   "tags FILE",
		Short: "List the TODO tags in a file with their line ranges",
		Args:  cobra.ExactArgs(1),
		Run:   runTags,
	}

	RootCmd.AddCommand(cmd)
}

func runTags(cmd *cobra.Command, args []string) {
	text, err := os.ReadFile(args[0])
	if err != nil {
		exitErr("read file", err)
	}

	tags, err := marker.Extract(string(text))
	if err != nil {
		exitErr("extract tags", err)
	}

	if tags.Len() == 0 {
		fmt.Println("no TODO tags found")
		return
	}

	for _, span := range tags.Spans() {
		fmt.Printf("%s: lines %d-%d\n", span.Tag, span.Begin, span.End)
	}
}
