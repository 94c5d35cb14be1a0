package plan

import (
	"fmt"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// BudgetMeta holds the budget-level metadata.
type BudgetMeta struct {
	Name          string  `toml:"name"`
	MarginPercent float64 `toml:"margin_percent"`
}

// BudgetItemSpec is one budget line as written in the budget file.
type BudgetItemSpec struct {
	Composition string  `toml:"composition"`
	Quantity    float64 `toml:"quantity"`
}

// BudgetFile is a parsed and validated budget definition.
type BudgetFile struct {
	Budget BudgetMeta       `toml:"budget"`
	Items  []BudgetItemSpec `toml:"item"`
}

// LoadBudget reads and validates a budget file.
func LoadBudget(path string) (*BudgetFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading budget file: %w", err)
	}

	var b BudgetFile
	if err := toml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}

	for i, it := range b.Items {
		if it.Composition == "" {
			return nil, fmt.Errorf("%s: item %d: composition is required", filepath.Base(path), i+1)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%s: item %d (%s): quantity must be positive", filepath.Base(path), i+1, it.Composition)
		}
	}
	if b.Budget.MarginPercent < 0 {
		return nil, fmt.Errorf("%s: margin_percent must not be negative", filepath.Base(path))
	}
	return &b, nil
}
