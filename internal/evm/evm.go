// Package evm computes Earned Value Management performance metrics from
// planned value, actual cost, and earned value.
package evm

import "math"

// Metrics holds EVM variances and performance indices for one reporting
// point. Variances are in currency units, indices are dimensionless ratios,
// and efficiencies are percentage deviations from plan.
type Metrics struct {
	CostVariance       float64 `json:"cost_variance"`
	ScheduleVariance   float64 `json:"schedule_variance"`
	CPI                float64 `json:"cost_performance_index"`
	SPI                float64 `json:"schedule_performance_index"`
	BudgetEfficiency   float64 `json:"budget_efficiency"`
	ScheduleEfficiency float64 `json:"schedule_efficiency"`
}

// Progress computes the standard EVM metrics: CV = EV-AC, SV = EV-PV,
// CPI = EV/AC, SPI = EV/PV. Indices are defined as zero when their
// denominator is zero.
func Progress(planned, actual, earned float64) Metrics {
	cpi := 0.0
	if actual > 0 {
		cpi = earned / actual
	}
	spi := 0.0
	if planned > 0 {
		spi = earned / planned
	}
	return Metrics{
		CostVariance:       round(earned-actual, 2),
		ScheduleVariance:   round(earned-planned, 2),
		CPI:                round(cpi, 3),
		SPI:                round(spi, 3),
		BudgetEfficiency:   round(cpi*100-100, 1),
		ScheduleEfficiency: round(spi*100-100, 1),
	}
}

func round(v float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.Round(v*scale) / scale
}
