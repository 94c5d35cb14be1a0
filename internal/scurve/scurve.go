// Package scurve derives the project S-curve: cumulative cost over calendar
// time, built from activity costs spread across their scheduled days.
package scurve

import (
	"math"
	"sort"
	"time"

	"github.com/obralabs/truss/internal/schedule"
)

// Point is one day of the S-curve series.
type Point struct {
	Date           string  `json:"date"`
	DailyCost      float64 `json:"daily_cost"`
	CumulativeCost float64 `json:"cumulative_cost"`
	Percentage     float64 `json:"percentage"`
}

// Curve spreads each activity's cost evenly across its duration's calendar
// days, starting at start plus the activity's early-start offset, and
// accumulates the daily totals into a cumulative series sorted by date.
// Activities must carry the offsets computed by Engine.Calculate. The final
// cumulative cost equals the sum of all activity costs up to rounding, and
// the series is non-decreasing.
func Curve(activities []*schedule.Activity, start time.Time) []Point {
	total := 0.0
	for _, a := range activities {
		total += a.Cost
	}

	daily := make(map[string]float64)
	for _, a := range activities {
		if a.Duration <= 0 {
			continue
		}
		perDay := a.Cost / float64(a.Duration)
		for day := 0; day < a.Duration; day++ {
			date := start.AddDate(0, 0, a.EarlyStart+day).Format(schedule.DateLayout)
			daily[date] += perDay
		}
	}

	dates := make([]string, 0, len(daily))
	for d := range daily {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]Point, 0, len(dates))
	cumulative := 0.0
	for _, d := range dates {
		cumulative += daily[d]
		pct := 0.0
		if total > 0 {
			pct = cumulative / total * 100
		}
		points = append(points, Point{
			Date:           d,
			DailyCost:      round2(daily[d]),
			CumulativeCost: round2(cumulative),
			Percentage:     round2(pct),
		})
	}
	return points
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
