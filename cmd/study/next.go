package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/studyflow/internal/ui"
)

var nextCmd = &cobra.Command{
	Use:   "next [plan-file]",
	Short: "Show the next scheduled session",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runNext,
}

func init() {
	rootCmd.AddCommand(nextCmd)
}

func runNext(cmd *cobra.Command, args []string) error {
	p, err := loadPlanner(planFileArg(args), 0, time.Now)
	if err != nil {
		return err
	}

	next, ok := p.NextSession()
	if !ok {
		fmt.Println("No sessions scheduled.")
		return nil
	}

	fmt.Printf("%s  %s (%s, %s)\n",
		next.ScheduledTime.Format("Mon 15:04"),
		next.Title,
		next.Subject.Name,
		ui.FormatMinutes(next.Duration))
	return nil
}
