package budget

import (
	"errors"
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func TestCompositionCost(t *testing.T) {
	t.Parallel()

	t.Run("concreto_fck25", func(t *testing.T) {
		t.Parallel()
		c, err := CompositionCost("concreto_fck25")
		if err != nil {
			t.Fatalf("CompositionCost: %v", err)
		}
		// 350*0.85 + 0.55*65 + 0.9*80 + 180*0.005 = 406.15
		if !almostEqual(c.MaterialsCost, 406.15) {
			t.Errorf("MaterialsCost = %.2f, want 406.15", c.MaterialsCost)
		}
		if !almostEqual(c.LaborCost, 112.50) {
			t.Errorf("LaborCost = %.2f, want 112.50", c.LaborCost)
		}
		if !almostEqual(c.EquipmentCost, 18.00) {
			t.Errorf("EquipmentCost = %.2f, want 18.00", c.EquipmentCost)
		}
		if !almostEqual(c.TotalUnitCost, 536.65) {
			t.Errorf("TotalUnitCost = %.2f, want 536.65", c.TotalUnitCost)
		}
		if c.Unit != "m³" {
			t.Errorf("Unit = %q, want m³", c.Unit)
		}
	})

	t.Run("alvenaria_bloco", func(t *testing.T) {
		t.Parallel()
		c, err := CompositionCost("alvenaria_bloco")
		if err != nil {
			t.Fatalf("CompositionCost: %v", err)
		}
		// 13*1.25 + 0.012*180 + 1.5*6.80 = 28.61; labor 0.8*25 = 20; no equipment.
		if !almostEqual(c.TotalUnitCost, 48.61) {
			t.Errorf("TotalUnitCost = %.2f, want 48.61", c.TotalUnitCost)
		}
		if c.EquipmentCost != 0 {
			t.Errorf("EquipmentCost = %.2f, want 0", c.EquipmentCost)
		}
	})

	t.Run("unknown key", func(t *testing.T) {
		t.Parallel()
		_, err := CompositionCost("laje_protendida")
		if !errors.Is(err, ErrUnknownComposition) {
			t.Errorf("got %v, want ErrUnknownComposition", err)
		}
	})
}

func TestKeys(t *testing.T) {
	t.Parallel()
	keys := Keys()
	if len(keys) != 3 {
		t.Fatalf("got %d keys, want 3", len(keys))
	}
	for i := 1; i < len(keys); i++ {
		if keys[i] < keys[i-1] {
			t.Errorf("keys not sorted: %v", keys)
		}
	}
}

func TestSum(t *testing.T) {
	t.Parallel()
	concrete, err := Line("concreto_fck25", 10)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}
	masonry, err := Line("alvenaria_bloco", 100)
	if err != nil {
		t.Fatalf("Line: %v", err)
	}

	totals := Sum([]Item{concrete, masonry})
	if !almostEqual(totals.Materials, 406.15*10+28.61*100) {
		t.Errorf("Materials = %.2f, want %.2f", totals.Materials, 406.15*10+28.61*100)
	}
	if !almostEqual(totals.Subtotal, 536.65*10+48.61*100) {
		t.Errorf("Subtotal = %.2f, want %.2f", totals.Subtotal, 536.65*10+48.61*100)
	}
}

func TestApplyMargin(t *testing.T) {
	t.Parallel()
	m := ApplyMargin(10000, 15)
	if m.Profit != 1500 {
		t.Errorf("Profit = %.2f, want 1500", m.Profit)
	}
	if m.Total != 11500 {
		t.Errorf("Total = %.2f, want 11500", m.Total)
	}

	zero := ApplyMargin(10000, 0)
	if zero.Total != 10000 {
		t.Errorf("Total with 0%% margin = %.2f, want 10000", zero.Total)
	}
}
