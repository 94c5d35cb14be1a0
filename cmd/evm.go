package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/evm"
)

var evmCmd = &cobra.Command{
	Use:   "evm",
	Short: "Compute earned-value metrics for a progress snapshot",
	Long: `Compares planned value, actual cost, and earned value at a point in
time and reports the standard earned-value indicators: cost and schedule
variance, CPI, SPI, and the efficiency percentages.`,
	RunE: runEVM,
}

func init() {
	evmCmd.Flags().Float64("planned", 0, "planned value (PV) at the status date")
	evmCmd.Flags().Float64("actual", 0, "actual cost (AC) incurred to date")
	evmCmd.Flags().Float64("earned", 0, "earned value (EV) of completed work")
	evmCmd.Flags().Bool("json", false, "output metrics as JSON to stdout")
	_ = evmCmd.MarkFlagRequired("planned")
	_ = evmCmd.MarkFlagRequired("actual")
	_ = evmCmd.MarkFlagRequired("earned")
	rootCmd.AddCommand(evmCmd)
}

func runEVM(cmd *cobra.Command, _ []string) error {
	printer, _ := newPrinter()

	planned, _ := cmd.Flags().GetFloat64("planned")
	actual, _ := cmd.Flags().GetFloat64("actual")
	earned, _ := cmd.Flags().GetFloat64("earned")

	m := evm.Progress(planned, actual, earned)

	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(m)
	}

	printer.EVMSummary(m)
	return nil
}
