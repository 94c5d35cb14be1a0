package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/plan"
	"github.com/obralabs/truss/internal/schedule"
)

var ganttCmd = &cobra.Command{
	Use:   "gantt [plan.toml]",
	Short: "Project the schedule onto calendar dates",
	Long: `Computes the schedule and anchors each activity's early window to real
dates, starting from the plan's start_date (or --start). Prints a scaled bar
chart, or the date rows as JSON with --json.`,
	Args: cobra.ExactArgs(1),
	RunE: runGantt,
}

func init() {
	ganttCmd.Flags().String("start", "", "override the plan start date (YYYY-MM-DD)")
	ganttCmd.Flags().Bool("json", false, "output the timeline as JSON to stdout")
	rootCmd.AddCommand(ganttCmd)
}

func runGantt(cmd *cobra.Command, args []string) error {
	printer, _ := newPrinter()

	p, err := plan.Load(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	start := p.Start()
	if s, _ := cmd.Flags().GetString("start"); s != "" {
		start, err = time.Parse(schedule.DateLayout, s)
		if err != nil {
			return fmt.Errorf("parse --start: %w", err)
		}
	}
	if start.IsZero() {
		start = time.Now()
	}

	engine := p.Engine()
	res, err := engine.Calculate()
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	for _, w := range res.Warnings {
		printer.Warn(w)
	}

	rows := engine.GanttData(start)

	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	printer.GanttChart(rows, res.ProjectDuration)
	return nil
}
