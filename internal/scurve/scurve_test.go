package scurve

import (
	"math"
	"sort"
	"testing"
	"time"

	"github.com/obralabs/truss/internal/schedule"
)

func computedActivities(t *testing.T) []*schedule.Activity {
	t.Helper()
	e := schedule.NewEngine()
	e.Add(schedule.Activity{ID: 1, Name: "foundation", Duration: 4, Cost: 10000})
	e.Add(schedule.Activity{ID: 2, Name: "structure", Duration: 6, Predecessors: []int{1}, Cost: 24000})
	e.Add(schedule.Activity{ID: 3, Name: "drainage", Duration: 3, Predecessors: []int{1}, Cost: 4500})
	if _, err := e.Calculate(); err != nil {
		t.Fatalf("Calculate: %v", err)
	}
	return e.Activities()
}

func TestCurveConservation(t *testing.T) {
	t.Parallel()
	acts := computedActivities(t)
	start := time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)

	points := Curve(acts, start)
	if len(points) == 0 {
		t.Fatal("empty series")
	}

	wantTotal := 0.0
	for _, a := range acts {
		wantTotal += a.Cost
	}
	final := points[len(points)-1]
	if math.Abs(final.CumulativeCost-wantTotal) > 0.01 {
		t.Errorf("final cumulative = %.2f, want %.2f", final.CumulativeCost, wantTotal)
	}
	if math.Abs(final.Percentage-100) > 0.01 {
		t.Errorf("final percentage = %.2f, want 100", final.Percentage)
	}
}

func TestCurveMonotonic(t *testing.T) {
	t.Parallel()
	acts := computedActivities(t)
	points := Curve(acts, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))

	for i := 1; i < len(points); i++ {
		if points[i].CumulativeCost < points[i-1].CumulativeCost {
			t.Errorf("cumulative cost decreased at %s: %.2f < %.2f",
				points[i].Date, points[i].CumulativeCost, points[i-1].CumulativeCost)
		}
	}
	if !sort.SliceIsSorted(points, func(i, j int) bool { return points[i].Date < points[j].Date }) {
		t.Error("series dates are not ascending")
	}
}

func TestCurveSpansSchedule(t *testing.T) {
	t.Parallel()
	acts := computedActivities(t)
	points := Curve(acts, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))

	// Activities cover days 0..9 (foundation 0-4, structure 4-10), so the
	// series has one point per working day.
	if len(points) != 10 {
		t.Errorf("got %d points, want 10", len(points))
	}
	if points[0].Date != "2026-02-02" {
		t.Errorf("first date = %s, want 2026-02-02", points[0].Date)
	}
}

func TestCurveZeroTotal(t *testing.T) {
	t.Parallel()
	e := schedule.NewEngine()
	e.Add(schedule.Activity{ID: 1, Duration: 2})
	if _, err := e.Calculate(); err != nil {
		t.Fatalf("Calculate: %v", err)
	}

	points := Curve(e.Activities(), time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	for _, p := range points {
		if p.Percentage != 0 {
			t.Errorf("percentage = %.2f with zero total cost, want 0", p.Percentage)
		}
	}
}

func TestCurveEmpty(t *testing.T) {
	t.Parallel()
	if points := Curve(nil, time.Now()); len(points) != 0 {
		t.Errorf("got %d points for no activities, want 0", len(points))
	}
}
