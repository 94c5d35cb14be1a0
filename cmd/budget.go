package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obralabs/truss/internal/budget"
	"github.com/obralabs/truss/internal/plan"
)

var budgetCmd = &cobra.Command{
	Use:   "budget [budget.toml]",
	Short: "Price a budget from the composition catalogue",
	Long: `Prices each budget item against the service composition catalogue
(materials at catalogue prices plus labor and equipment hours at standard
rates), rolls the lines up into materials/labor/equipment totals, and applies
the profit margin.

Run with --compositions to list the catalogue keys instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBudget,
}

func init() {
	budgetCmd.Flags().Bool("json", false, "output the priced budget as JSON to stdout")
	budgetCmd.Flags().Bool("compositions", false, "list available composition keys and exit")
	rootCmd.AddCommand(budgetCmd)
}

func runBudget(cmd *cobra.Command, args []string) error {
	printer, _ := newPrinter()

	if list, _ := cmd.Flags().GetBool("compositions"); list {
		for _, key := range budget.Keys() {
			cost, err := budget.CompositionCost(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%-36s %-5s %10.2f  %s\n", key, cost.Unit, cost.TotalUnitCost, cost.Description)
		}
		return nil
	}

	if len(args) != 1 {
		return fmt.Errorf("budget file required (or use --compositions)")
	}

	bf, err := plan.LoadBudget(args[0])
	if err != nil {
		printer.Error(err.Error())
		return err
	}

	items := make([]budget.Item, 0, len(bf.Items))
	for _, spec := range bf.Items {
		item, err := budget.Line(spec.Composition, spec.Quantity)
		if err != nil {
			printer.Error(err.Error())
			return err
		}
		items = append(items, item)
	}

	totals := budget.Sum(items)
	margin := budget.ApplyMargin(totals.Subtotal, bf.Budget.MarginPercent)

	if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
		return writeBudgetJSON(bf.Budget.Name, items, totals, margin)
	}

	printer.BudgetReport(bf.Budget.Name, items, totals, margin)
	return nil
}

// budgetJSON is the structured representation of a priced budget for --json.
type budgetJSON struct {
	Name   string        `json:"name"`
	Items  []budget.Item `json:"items"`
	Totals budget.Totals `json:"totals"`
	Margin budget.Margin `json:"margin"`
}

func writeBudgetJSON(name string, items []budget.Item, totals budget.Totals, margin budget.Margin) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(budgetJSON{Name: name, Items: items, Totals: totals, Margin: margin})
}
