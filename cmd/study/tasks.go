package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/amonks/studyflow/internal/ids"
	"github.com/amonks/studyflow/internal/ui"
)

var tasksCmd = &cobra.Command{
	Use:   "tasks [plan-file]",
	Short: "List tasks in the plan file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runTasks,
}

var (
	tasksAll  bool
	tasksLong bool
)

func init() {
	tasksCmd.Flags().BoolVar(&tasksAll, "all", false, "include completed tasks")
	tasksCmd.Flags().BoolVar(&tasksLong, "long", false, "show task descriptions")
	rootCmd.AddCommand(tasksCmd)
}

func runTasks(cmd *cobra.Command, args []string) error {
	p, err := loadPlanner(planFileArg(args), 0, time.Now)
	if err != nil {
		return err
	}

	tasks := p.Tasks()
	if !tasksAll {
		filtered := tasks[:0]
		for _, t := range tasks {
			if !t.Completed {
				filtered = append(filtered, t)
			}
		}
		tasks = filtered
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks.")
		return nil
	}

	idList := make([]string, 0, len(tasks))
	for _, t := range tasks {
		idList = append(idList, t.ID)
	}
	prefixLengths := ids.UniquePrefixLengths(idList)

	rows := make([][]string, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, []string{
			ui.HighlightID(t.ID, prefixLengths[t.ID]),
			t.Title,
			t.Subject.Name,
			renderPriority(t.Priority),
			ui.FormatMinutes(t.EstimatedTime),
			humanize.Time(t.DueDate),
			renderDone(t.Completed),
		})
	}

	fmt.Print(formatTable([]string{"ID", "TASK", "SUBJECT", "PRIORITY", "EST", "DUE", "STATUS"}, rows))

	if tasksLong {
		for _, t := range tasks {
			if t.Description == "" {
				continue
			}
			fmt.Printf("\n%s\n%s\n", t.Title, reflowParagraphs(t.Description, descriptionWidth))
		}
	}
	return nil
}
