// Package main implements the study CLI tool.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "study",
	Short: "Studyflow - plan study sessions and track productivity",
	Long: `Studyflow turns a plan file of subjects and tasks into a
time-boxed study schedule, and derives productivity metrics from the
sessions you complete.`,
	SilenceUsage: true,
}

// planFileArg returns the plan file path from args or the default.
func planFileArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "study.toml"
}
