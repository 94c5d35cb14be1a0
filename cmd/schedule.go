package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/plan"
	"github.com/obralabs/truss/internal/schedule"
	"github.com/obralabs/truss/internal/store"
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule [plan.toml]",
	Short: "Compute the critical-path schedule for a plan",
	Long: `Runs the CPM forward and backward passes over the plan's activity graph
and prints each activity's early/late windows, slack, and critical marker,
plus the overall project duration and critical path.`,
	Args: cobra.ExactArgs(1),
	RunE: runSchedule,
}

func init() {
	scheduleCmd.Flags().Bool("json", false, "output the schedule as JSON to stdout")
	scheduleCmd.Flags().Bool("save", false, "record this run in the history database")
	rootCmd.AddCommand(scheduleCmd)
}

func runSchedule(cmd *cobra.Command, args []string) error {
	printer, cfg := newPrinter()

	p, err := plan.Load(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	res, err := p.Engine().Calculate()
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	for _, w := range res.Warnings {
		printer.Warn(w)
	}

	if save, _ := cmd.Flags().GetBool("save"); save {
		if err := saveRun(cmd, cfg.HistoryPath, p.Project.Name, res); err != nil {
			return fmt.Errorf("save run: %w", err)
		}
		printer.Info("run saved to history")
	}

	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		return writeScheduleJSON(os.Stdout, p.Project.Name, res)
	}

	printer.ScheduleTable(p.Project.Name, res)
	return nil
}

func saveRun(cmd *cobra.Command, dbPath, planName string, res *schedule.Result) error {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return err
	}
	s, err := store.Open(cmd.Context(), dbPath)
	if err != nil {
		return err
	}
	defer s.Close()

	_, err = s.SaveRun(cmd.Context(), planName, len(res.Activities), res.ProjectDuration, res.CriticalPath)
	return err
}

// scheduleJSON is the structured representation of a schedule for --json output.
type scheduleJSON struct {
	Plan            string             `json:"plan"`
	ProjectDuration int                `json:"project_duration"`
	CriticalPath    []int              `json:"critical_path"`
	Warnings        []string           `json:"warnings,omitempty"`
	Activities      []scheduleActivity `json:"activities"`
}

type scheduleActivity struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Duration    int    `json:"duration"`
	EarlyStart  int    `json:"early_start"`
	EarlyFinish int    `json:"early_finish"`
	LateStart   int    `json:"late_start"`
	LateFinish  int    `json:"late_finish"`
	Slack       int    `json:"slack"`
	Critical    bool   `json:"is_critical"`
}

func writeScheduleJSON(w io.Writer, planName string, res *schedule.Result) error {
	out := scheduleJSON{
		Plan:            planName,
		ProjectDuration: res.ProjectDuration,
		CriticalPath:    res.CriticalPath,
		Warnings:        res.Warnings,
		Activities:      make([]scheduleActivity, len(res.Activities)),
	}
	for i, a := range res.Activities {
		out.Activities[i] = scheduleActivity{
			ID:          a.ID,
			Name:        a.Name,
			Duration:    a.Duration,
			EarlyStart:  a.EarlyStart,
			EarlyFinish: a.EarlyFinish,
			LateStart:   a.LateStart,
			LateFinish:  a.LateFinish,
			Slack:       a.Slack,
			Critical:    a.Critical,
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
