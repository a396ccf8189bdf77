package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var subjectsCmd = &cobra.Command{
	Use:   "subjects [plan-file]",
	Short: "List subjects and their progress",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runSubjects,
}

var subjectsLong bool

func init() {
	subjectsCmd.Flags().BoolVar(&subjectsLong, "long", false, "show subject descriptions")
	rootCmd.AddCommand(subjectsCmd)
}

func runSubjects(cmd *cobra.Command, args []string) error {
	p, err := loadPlanner(planFileArg(args), 0, time.Now)
	if err != nil {
		return err
	}

	subjects := p.Subjects()
	if len(subjects) == 0 {
		fmt.Println("No subjects.")
		return nil
	}

	rows := make([][]string, 0, len(subjects))
	for _, s := range subjects {
		progress := "-"
		if s.TargetHours > 0 {
			progress = fmt.Sprintf("%.1fh of %.0fh (%.0f%%)",
				s.TotalHours, s.TargetHours, s.TargetProgress()*100)
		} else if s.TotalHours > 0 {
			progress = fmt.Sprintf("%.1fh", s.TotalHours)
		}
		rows = append(rows, []string{s.ID, s.Name, progress})
	}

	fmt.Print(formatTable([]string{"ID", "NAME", "PROGRESS"}, rows))

	if subjectsLong {
		for _, s := range subjects {
			if s.Description == "" {
				continue
			}
			fmt.Printf("\n%s\n%s\n", s.Name, reflowParagraphs(s.Description, descriptionWidth))
		}
	}
	return nil
}
