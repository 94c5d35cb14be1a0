package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved schedule runs",
	Long: `Lists schedule runs recorded with "truss schedule --save", newest
first. The history database location comes from the history_path config
value (default .truss/history.db).`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Bool("json", false, "output runs as JSON to stdout")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	printer, cfg := newPrinter()

	if _, err := os.Stat(cfg.HistoryPath); os.IsNotExist(err) {
		printer.Info("no saved runs")
		return nil
	}

	s, err := store.Open(cmd.Context(), cfg.HistoryPath)
	if err != nil {
		printer.Error(err.Error())
		return err
	}
	defer s.Close()

	runs, err := s.Runs(cmd.Context())
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(runs)
	}

	printer.HistoryTable(runs)
	return nil
}
