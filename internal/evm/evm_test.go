package evm

import "testing"

func TestProgress(t *testing.T) {
	t.Parallel()
	m := Progress(1000, 900, 950)

	if m.CostVariance != 50 {
		t.Errorf("CostVariance = %.2f, want 50 (under budget)", m.CostVariance)
	}
	if m.ScheduleVariance != -50 {
		t.Errorf("ScheduleVariance = %.2f, want -50 (behind schedule)", m.ScheduleVariance)
	}
	if m.CPI != 1.056 {
		t.Errorf("CPI = %.3f, want 1.056", m.CPI)
	}
	if m.SPI != 0.95 {
		t.Errorf("SPI = %.3f, want 0.95", m.SPI)
	}
	if m.BudgetEfficiency != 5.6 {
		t.Errorf("BudgetEfficiency = %.1f, want 5.6", m.BudgetEfficiency)
	}
	if m.ScheduleEfficiency != -5.0 {
		t.Errorf("ScheduleEfficiency = %.1f, want -5.0", m.ScheduleEfficiency)
	}
}

func TestProgressZeroDenominators(t *testing.T) {
	t.Parallel()

	t.Run("zero actual cost", func(t *testing.T) {
		t.Parallel()
		m := Progress(1000, 0, 500)
		if m.CPI != 0 {
			t.Errorf("CPI = %.3f with AC=0, want 0", m.CPI)
		}
	})

	t.Run("zero planned value", func(t *testing.T) {
		t.Parallel()
		m := Progress(0, 900, 500)
		if m.SPI != 0 {
			t.Errorf("SPI = %.3f with PV=0, want 0", m.SPI)
		}
	})
}

func TestProgressOnPlan(t *testing.T) {
	t.Parallel()
	m := Progress(1000, 1000, 1000)
	if m.CostVariance != 0 || m.ScheduleVariance != 0 {
		t.Errorf("variances = %.2f/%.2f, want 0/0", m.CostVariance, m.ScheduleVariance)
	}
	if m.CPI != 1 || m.SPI != 1 {
		t.Errorf("indices = %.3f/%.3f, want 1/1", m.CPI, m.SPI)
	}
	if m.BudgetEfficiency != 0 || m.ScheduleEfficiency != 0 {
		t.Errorf("efficiencies = %.1f/%.1f, want 0/0", m.BudgetEfficiency, m.ScheduleEfficiency)
	}
}
