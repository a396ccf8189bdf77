package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/amonks/studyflow/internal/ui"
	"github.com/amonks/studyflow/schedule"
	"github.com/amonks/studyflow/session"
)

var planCmd = &cobra.Command{
	Use:   "plan [plan-file]",
	Short: "Generate a study schedule from the plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runPlan,
}

var (
	planHours float64
	planStart string
	planJSON  bool
)

func init() {
	planCmd.Flags().Float64Var(&planHours, "hours", 0, "daily time budget in hours (overrides plan file and config)")
	planCmd.Flags().StringVar(&planStart, "start", "", "schedule start time (e.g. \"2026-03-02 09:00\" or \"tomorrow 9am\")")
	planCmd.Flags().BoolVar(&planJSON, "json", false, "print the schedule as JSON")
	aliasBudgetFlag(planCmd)
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	start := time.Now()
	if planStart != "" {
		parsed, err := parseDate(newDateParser(), planStart, start)
		if err != nil {
			return err
		}
		start = parsed
	}

	p, err := loadPlanner(planFileArg(args), planHours, func() time.Time { return start })
	if err != nil {
		return err
	}

	var pending []session.StudySession
	for _, s := range p.Sessions() {
		if !s.Completed {
			pending = append(pending, s)
		}
	}
	sort.Slice(pending, func(i, j int) bool {
		return pending[i].ScheduledTime.Before(pending[j].ScheduledTime)
	})

	if planJSON {
		data, err := json.MarshalIndent(pending, "", "  ")
		if err != nil {
			return fmt.Errorf("encode schedule: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(pending) == 0 {
		fmt.Println("Nothing to schedule.")
		return nil
	}

	rows := make([][]string, 0, len(pending))
	totalMinutes := 0
	for _, s := range pending {
		rows = append(rows, []string{
			s.ScheduledTime.Format("Mon 15:04"),
			ui.FormatMinutes(s.Duration),
			s.Title,
			s.Subject.Name,
			renderPriority(s.Priority),
		})
		totalMinutes += s.Duration
	}

	fmt.Print(formatTable([]string{"TIME", "LENGTH", "TASK", "SUBJECT", "PRIORITY"}, rows))

	breaks := (len(pending) - 1) * schedule.BreakMinutes
	fmt.Printf("\n%d sessions, %s study", len(pending), ui.FormatMinutes(totalMinutes))
	if breaks > 0 {
		fmt.Printf(" + %s breaks", ui.FormatMinutes(breaks))
	}
	fmt.Println()
	return nil
}
