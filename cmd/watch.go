package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/plan"
	"github.com/obralabs/truss/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch [plan.toml]",
	Short: "Recompute the schedule whenever the plan file changes",
	Long: `Watches the plan file and reprints the schedule on every save. Parse
and scheduling errors are reported without stopping the watch, so the loop
survives transient bad states while the file is being edited.

Press Ctrl-C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	printer, _ := newPrinter()
	path := args[0]

	// Initial compute so the user sees output before the first save.
	recompute(printer, path)

	w, err := plan.NewWatcher(path)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := w.Start(); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Stop()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	printer.Info(fmt.Sprintf("watching %s", path))
	for {
		select {
		case <-ctx.Done():
			printer.Info("stopped")
			return nil
		case _, ok := <-w.Changes:
			if !ok {
				return nil
			}
			printer.Info("plan changed, recomputing")
			recompute(printer, path)
		}
	}
}

// recompute loads and schedules the plan, reporting errors without failing.
func recompute(printer *ui.Printer, path string) {
	p, err := plan.Load(path)
	if err != nil {
		printer.Error(err.Error())
		return
	}
	res, err := p.Engine().Calculate()
	if err != nil {
		printer.Error(err.Error())
		return
	}
	for _, warn := range res.Warnings {
		printer.Warn(warn)
	}
	printer.ScheduleTable(p.Project.Name, res)
}
