package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/plan"
	"github.com/obralabs/truss/internal/schedule"
	"github.com/obralabs/truss/internal/scurve"
)

var scurveCmd = &cobra.Command{
	Use:   "scurve [plan.toml]",
	Short: "Derive the cumulative cost curve from the schedule",
	Long: `Spreads each activity's cost evenly across its scheduled days and
accumulates the daily totals into an S-curve: date, daily cost, cumulative
cost, and percentage of the total budget.`,
	Args: cobra.ExactArgs(1),
	RunE: runSCurve,
}

func init() {
	scurveCmd.Flags().String("start", "", "override the plan start date (YYYY-MM-DD)")
	scurveCmd.Flags().Bool("json", false, "output the curve as JSON to stdout")
	rootCmd.AddCommand(scurveCmd)
}

func runSCurve(cmd *cobra.Command, args []string) error {
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

	res, err := p.Engine().Calculate()
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	for _, w := range res.Warnings {
		printer.Warn(w)
	}

	points := scurve.Curve(res.Activities, start)

	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(points)
	}

	printer.SCurveTable(points)
	return nil
}
