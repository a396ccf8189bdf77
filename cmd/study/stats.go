package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/amonks/studyflow/internal/ui"
)

var statsCmd = &cobra.Command{
	Use:   "stats [plan-file]",
	Short: "Show productivity score, streaks, and study totals",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStats,
}

var statsJSON bool

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "print analytics as JSON")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	p, err := loadPlanner(planFileArg(args), 0, time.Now)
	if err != nil {
		return err
	}

	stats := p.Analytics()

	if statsJSON {
		data, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("encode analytics: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Productivity score  %d/100\n", stats.ProductivityScore)
	fmt.Printf("Current streak      %s\n", formatDays(stats.Streak.Current))
	fmt.Printf("Longest streak      %s\n", formatDays(stats.Streak.Longest))
	if stats.Streak.LastStudyDate != nil {
		fmt.Printf("Last studied        %s\n", humanize.Time(*stats.Streak.LastStudyDate))
	}
	fmt.Printf("Total study time    %s\n", ui.FormatMinutes(stats.TotalStudyTime))
	fmt.Printf("Weekly goal         %s\n", ui.FormatMinutes(stats.WeeklyGoal))
	fmt.Printf("Daily average goal  %s\n", ui.FormatMinutes(stats.DailyAverage))

	if len(stats.SubjectBreakdown) == 0 {
		return nil
	}

	type entry struct {
		name    string
		minutes int
	}
	nameByID := make(map[string]string)
	for _, s := range p.Subjects() {
		nameByID[s.ID] = s.Name
	}
	entries := make([]entry, 0, len(stats.SubjectBreakdown))
	for id, minutes := range stats.SubjectBreakdown {
		name := nameByID[id]
		if name == "" {
			name = id
		}
		entries = append(entries, entry{name: name, minutes: minutes})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].minutes != entries[j].minutes {
			return entries[i].minutes > entries[j].minutes
		}
		return entries[i].name < entries[j].name
	})

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []string{e.name, ui.FormatMinutes(e.minutes)})
	}
	fmt.Println()
	fmt.Print(formatTable([]string{"SUBJECT", "TIME"}, rows))
	return nil
}

func formatDays(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
