// Package ui renders truss output. Data tables go to stdout; status and
// errors go to stderr.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/obralabs/truss/internal/budget"
	"github.com/obralabs/truss/internal/evm"
	"github.com/obralabs/truss/internal/schedule"
	"github.com/obralabs/truss/internal/scurve"
	"github.com/obralabs/truss/internal/store"
)

// Printer writes styled output. Construct with New.
type Printer struct {
	out   io.Writer
	errw  io.Writer
	color bool
}

// New creates a Printer writing data to stdout and status to stderr.
func New(color bool) *Printer {
	return &Printer{out: os.Stdout, errw: os.Stderr, color: color}
}

// NewWriters creates a Printer with explicit writers, for tests.
func NewWriters(out, errw io.Writer, color bool) *Printer {
	return &Printer{out: out, errw: errw, color: color}
}

func (p *Printer) render(st lipgloss.Style, s string) string {
	if !p.color {
		return s
	}
	return st.Render(s)
}

// Error prints an error line to stderr.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.errw, "%s %s\n", p.render(styleCritical, "error:"), msg)
}

// Warn prints a non-fatal warning line to stderr.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.errw, "%s %s\n", p.render(styleWarn, "warning:"), msg)
}

// Info prints a de-emphasized status line to stderr.
func (p *Printer) Info(msg string) {
	fmt.Fprintln(p.errw, p.render(styleMuted, msg))
}

// ScheduleTable prints the computed CPM schedule: one row per activity with
// its early/late windows, slack, and critical marker, followed by the
// project duration and critical path.
func (p *Printer) ScheduleTable(name string, res *schedule.Result) {
	if name != "" {
		fmt.Fprintln(p.out, p.render(styleTitle, name))
	}
	fmt.Fprintf(p.out, "%s\n", p.render(styleHeader,
		fmt.Sprintf("%-4s %-24s %5s %5s %5s %5s %5s %6s  %s",
			"ID", "ACTIVITY", "DUR", "ES", "EF", "LS", "LF", "SLACK", "CRIT")))

	for _, a := range res.Activities {
		crit := ""
		if a.Critical {
			crit = "*"
		}
		line := fmt.Sprintf("%-4d %-24s %5d %5d %5d %5d %5d %6d  %s",
			a.ID, truncate(a.Name, 24), a.Duration,
			a.EarlyStart, a.EarlyFinish, a.LateStart, a.LateFinish, a.Slack, crit)
		if a.Critical {
			line = p.render(styleCritical, line)
		}
		fmt.Fprintln(p.out, line)
	}

	fmt.Fprintf(p.out, "\n%s %d days\n", p.render(styleHeader, "project duration:"), res.ProjectDuration)
	ids := make([]string, len(res.CriticalPath))
	for i, id := range res.CriticalPath {
		ids[i] = fmt.Sprintf("%d", id)
	}
	fmt.Fprintf(p.out, "%s %s\n", p.render(styleHeader, "critical path:"),
		p.render(styleCritical, strings.Join(ids, " → ")))
}

// ganttBarWidth is the column budget for Gantt bars.
const ganttBarWidth = 40

// GanttChart prints one bar per activity, scaled so the full project
// duration spans ganttBarWidth columns. Critical activities are highlighted.
// The bar position is recovered from each row's start date relative to the
// earliest start date in the set.
func (p *Printer) GanttChart(rows []schedule.GanttRow, projectDuration int) {
	anchor := earliestStart(rows)
	for _, r := range rows {
		offset, length := barSpan(r, anchor, projectDuration, ganttBarWidth)
		bar := strings.Repeat(" ", offset) +
			strings.Repeat("█", length) +
			strings.Repeat(" ", ganttBarWidth-offset-length)
		if r.Critical {
			bar = p.render(styleCritical, bar)
		} else {
			bar = p.render(styleOK, bar)
		}
		fmt.Fprintf(p.out, "%-4d %-20s %s  %s %s %s\n",
			r.ID, truncate(r.Name, 20), bar,
			r.StartDate, p.render(styleMuted, "→"), r.EndDate)
	}
}

// earliestStart returns the minimum start date across rows.
func earliestStart(rows []schedule.GanttRow) time.Time {
	var min time.Time
	for _, r := range rows {
		t, err := time.Parse(schedule.DateLayout, r.StartDate)
		if err != nil {
			continue
		}
		if min.IsZero() || t.Before(min) {
			min = t
		}
	}
	return min
}

// barSpan maps an activity's day window onto a character span. The returned
// length is always at least 1 so short activities stay visible.
func barSpan(r schedule.GanttRow, anchor time.Time, projectDuration, width int) (offset, length int) {
	if projectDuration <= 0 || anchor.IsZero() {
		return 0, 1
	}
	start, err := time.Parse(schedule.DateLayout, r.StartDate)
	if err != nil {
		return 0, 1
	}
	startDay := int(start.Sub(anchor).Hours() / 24)

	offset = startDay * width / projectDuration
	length = r.Duration * width / projectDuration
	if length < 1 {
		length = 1
	}
	if offset >= width {
		offset = width - 1
	}
	if offset+length > width {
		length = width - offset
	}
	return offset, length
}

// SCurveTable prints the cumulative cost series.
func (p *Printer) SCurveTable(points []scurve.Point) {
	fmt.Fprintln(p.out, p.render(styleHeader,
		fmt.Sprintf("%-12s %14s %16s %8s", "DATE", "DAILY", "CUMULATIVE", "%")))
	for _, pt := range points {
		fmt.Fprintf(p.out, "%-12s %14.2f %16.2f %7.2f%%\n",
			pt.Date, pt.DailyCost, pt.CumulativeCost, pt.Percentage)
	}
}

// EVMSummary prints earned-value metrics with favorable values in green and
// unfavorable ones in red.
func (p *Printer) EVMSummary(m evm.Metrics) {
	fmt.Fprintln(p.out, p.render(styleTitle, "earned value metrics"))
	p.metricLine("cost variance (CV)", m.CostVariance, m.CostVariance >= 0)
	p.metricLine("schedule variance (SV)", m.ScheduleVariance, m.ScheduleVariance >= 0)
	p.metricLine("cost performance (CPI)", m.CPI, m.CPI >= 1)
	p.metricLine("schedule performance (SPI)", m.SPI, m.SPI >= 1)
	p.metricLine("budget efficiency %", m.BudgetEfficiency, m.BudgetEfficiency >= 0)
	p.metricLine("schedule efficiency %", m.ScheduleEfficiency, m.ScheduleEfficiency >= 0)
}

func (p *Printer) metricLine(label string, value float64, favorable bool) {
	v := fmt.Sprintf("%10.3f", value)
	if favorable {
		v = p.render(styleOK, v)
	} else {
		v = p.render(styleCritical, v)
	}
	fmt.Fprintf(p.out, "  %-28s %s\n", label, v)
}

// BudgetReport prints the itemized budget, roll-up totals, and margin.
func (p *Printer) BudgetReport(name string, items []budget.Item, totals budget.Totals, margin budget.Margin) {
	if name != "" {
		fmt.Fprintln(p.out, p.render(styleTitle, name))
	}
	fmt.Fprintln(p.out, p.render(styleHeader,
		fmt.Sprintf("%-36s %8s %-5s %12s %14s", "COMPOSITION", "QTY", "UNIT", "UNIT COST", "TOTAL")))
	for _, it := range items {
		fmt.Fprintf(p.out, "%-36s %8.2f %-5s %12.2f %14.2f\n",
			truncate(it.Description, 36), it.Quantity, it.Unit, it.UnitCost, it.TotalCost)
	}

	fmt.Fprintf(p.out, "\n  %-20s %14.2f\n", "materials", totals.Materials)
	fmt.Fprintf(p.out, "  %-20s %14.2f\n", "labor", totals.Labor)
	fmt.Fprintf(p.out, "  %-20s %14.2f\n", "equipment", totals.Equipment)
	fmt.Fprintf(p.out, "  %-20s %14.2f\n", "subtotal", totals.Subtotal)
	fmt.Fprintf(p.out, "  %-20s %14.2f (%.1f%%)\n", "profit", margin.Profit, margin.MarginPercent)
	fmt.Fprintf(p.out, "  %s %14.2f\n", p.render(styleHeader, fmt.Sprintf("%-20s", "total")), margin.Total)
}

// HistoryTable prints saved schedule runs, newest first.
func (p *Printer) HistoryTable(runs []store.Run) {
	if len(runs) == 0 {
		p.Info("no saved runs")
		return
	}
	fmt.Fprintln(p.out, p.render(styleHeader,
		fmt.Sprintf("%-5s %-24s %10s %9s  %-19s %s", "RUN", "PLAN", "ACTIVITIES", "DURATION", "SAVED AT", "CRITICAL PATH")))
	for _, r := range runs {
		ids := make([]string, len(r.CriticalPath))
		for i, id := range r.CriticalPath {
			ids[i] = fmt.Sprintf("%d", id)
		}
		fmt.Fprintf(p.out, "%-5d %-24s %10d %8dd  %-19s %s\n",
			r.ID, truncate(r.PlanName, 24), r.ActivityCount, r.ProjectDuration,
			r.CreatedAt.Format("2006-01-02 15:04:05"), strings.Join(ids, ","))
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 1 {
		return s[:max]
	}
	return s[:max-1] + "…"
}
