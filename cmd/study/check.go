package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check [plan-file]",
	Short: "Validate the plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := planFileArg(args)
	p, err := loadPlanner(path, 0, time.Now)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	logged := 0
	for _, s := range p.Sessions() {
		if s.Completed {
			logged++
		}
	}

	fmt.Printf("%s: ok (%d subjects, %d tasks, %d logged sessions)\n",
		path, len(p.Subjects()), len(p.Tasks()), logged)
	return nil
}
