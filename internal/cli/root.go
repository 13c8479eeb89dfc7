// Package cli implements the submitcheck CLI commands.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"submitcheck/internal/config"
	"submitcheck/internal/naming"
)

var (
	configPath      string
	noFilenameCheck bool
	noColor         bool
)

var (
	acceptColor = color.New(color.FgGreen, color.Bold)
	rejectColor = color.New(color.FgRed, color.Bold)
	warnColor   = color.New(color.FgYellow)
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "submitcheck",
	Short: "Check student submissions against TODO-marked assignments",
	Long: "Validates that a submission is a faithful copy of its assignment outside\n" +
		"the BEGIN-TODO/END-TODO marker regions. Text in, verdict out.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file (default: submitcheck.toml found upward from the working directory)")
	RootCmd.PersistentFlags().BoolVar(&noFilenameCheck, "no-filename-check", false, "Only warn when the submission filename does not match the assignment")
	RootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
}

// loadPolicy resolves the filename policy from flags and config.
func loadPolicy() (naming.Policy, error) {
	var cfg config.Config
	if configPath != "" {
		c, err := config.Load(configPath)
		if err != nil {
			return naming.Policy{}, err
		}
		cfg = c
	} else {
		c, found, err := config.Discover(".")
		if err != nil {
			return naming.Policy{}, err
		}
		if found {
			cfg = c
		}
	}

	policy := cfg.Policy()
	if noFilenameCheck {
		policy.Strict = false
	}
	return policy, nil
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
