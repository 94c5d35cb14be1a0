// Package budget implements unit-cost budget roll-ups over SINAPI-style
// service compositions: material take-offs plus labor and equipment hours
// per unit of service.
package budget

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrUnknownComposition is returned when a budget item references a
// composition key that is not in the catalogue.
var ErrUnknownComposition = errors.New("unknown composition")

// MaterialUsage is the quantity of one material consumed per unit of a
// composition.
type MaterialUsage struct {
	Quantity float64
	Unit     string
}

// Composition describes the inputs needed to produce one unit of a service
// (one m³ of concrete, one m² of masonry, ...).
type Composition struct {
	Description    string
	Unit           string
	Materials      map[string]MaterialUsage
	LaborHours     float64
	EquipmentHours float64
}

// Hourly rates applied to composition labor and equipment inputs (R$/h).
const (
	LaborRate     = 25.0
	EquipmentRate = 15.0
)

// Cost is the unit-cost breakdown of one composition.
type Cost struct {
	Key           string  `json:"key"`
	Description   string  `json:"description"`
	Unit          string  `json:"unit"`
	MaterialsCost float64 `json:"materials_cost"`
	LaborCost     float64 `json:"labor_cost"`
	EquipmentCost float64 `json:"equipment_cost"`
	TotalUnitCost float64 `json:"total_unit_cost"`
}

// CompositionCost prices one catalogue composition: material quantities at
// catalogue prices, plus labor and equipment hours at the standard rates.
func CompositionCost(key string) (Cost, error) {
	comp, ok := compositions[key]
	if !ok {
		return Cost{}, fmt.Errorf("%w: %q", ErrUnknownComposition, key)
	}

	materials := 0.0
	for name, usage := range comp.Materials {
		materials += usage.Quantity * materialPrices[name]
	}
	labor := comp.LaborHours * LaborRate
	equipment := comp.EquipmentHours * EquipmentRate

	return Cost{
		Key:           key,
		Description:   comp.Description,
		Unit:          comp.Unit,
		MaterialsCost: round2(materials),
		LaborCost:     round2(labor),
		EquipmentCost: round2(equipment),
		TotalUnitCost: round2(materials + labor + equipment),
	}, nil
}

// Keys returns the catalogue composition keys, sorted.
func Keys() []string {
	keys := make([]string, 0, len(compositions))
	for k := range compositions {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Item is one priced budget line: a composition applied at a quantity.
// The per-unit cost fields come from CompositionCost; TotalCost is the
// quantity-weighted line total.
type Item struct {
	Composition   string  `json:"composition"`
	Description   string  `json:"description"`
	Unit          string  `json:"unit"`
	Quantity      float64 `json:"quantity"`
	MaterialsCost float64 `json:"materials_cost"`
	LaborCost     float64 `json:"labor_cost"`
	EquipmentCost float64 `json:"equipment_cost"`
	UnitCost      float64 `json:"unit_cost"`
	TotalCost     float64 `json:"total_cost"`
}

// Line prices a composition at a quantity, producing a budget item.
func Line(key string, quantity float64) (Item, error) {
	c, err := CompositionCost(key)
	if err != nil {
		return Item{}, err
	}
	return Item{
		Composition:   key,
		Description:   c.Description,
		Unit:          c.Unit,
		Quantity:      quantity,
		MaterialsCost: c.MaterialsCost,
		LaborCost:     c.LaborCost,
		EquipmentCost: c.EquipmentCost,
		UnitCost:      c.TotalUnitCost,
		TotalCost:     round2(c.TotalUnitCost * quantity),
	}, nil
}

// Totals aggregates quantity-weighted costs across budget items.
type Totals struct {
	Materials float64 `json:"total_materials"`
	Labor     float64 `json:"total_labor"`
	Equipment float64 `json:"total_equipment"`
	Subtotal  float64 `json:"subtotal"`
}

// Sum rolls up the budget totals over all items.
func Sum(items []Item) Totals {
	var t Totals
	for _, it := range items {
		t.Materials += it.MaterialsCost * it.Quantity
		t.Labor += it.LaborCost * it.Quantity
		t.Equipment += it.EquipmentCost * it.Quantity
		t.Subtotal += it.TotalCost
	}
	t.Materials = round2(t.Materials)
	t.Labor = round2(t.Labor)
	t.Equipment = round2(t.Equipment)
	t.Subtotal = round2(t.Subtotal)
	return t
}

// Margin is the result of applying a profit margin to a subtotal.
type Margin struct {
	Subtotal      float64 `json:"subtotal"`
	MarginPercent float64 `json:"profit_margin"`
	Profit        float64 `json:"profit_value"`
	Total         float64 `json:"total"`
}

// ApplyMargin adds a percentage profit margin on top of the subtotal.
func ApplyMargin(subtotal, percent float64) Margin {
	profit := subtotal * (percent / 100)
	return Margin{
		Subtotal:      round2(subtotal),
		MarginPercent: round2(percent),
		Profit:        round2(profit),
		Total:         round2(subtotal + profit),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
