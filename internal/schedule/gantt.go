package schedule

import "time"

// DateLayout is the calendar date format used across plan files and output.
const DateLayout = "2006-01-02"

// GanttRow is a calendar-anchored projection of one activity.
type GanttRow struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Duration     int    `json:"duration"`
	Critical     bool   `json:"is_critical"`
	Slack        int    `json:"slack"`
	Predecessors []int  `json:"predecessors"`
}

// GanttData projects the computed schedule onto calendar dates, with start
// marking day zero. It reads the early start/finish offsets populated by
// Calculate and mutates nothing, so it may be called repeatedly with
// different start dates to re-anchor the same schedule.
func (e *Engine) GanttData(start time.Time) []GanttRow {
	rows := make([]GanttRow, 0, len(e.activities))
	for _, a := range e.activities {
		rows = append(rows, GanttRow{
			ID:           a.ID,
			Name:         a.Name,
			StartDate:    start.AddDate(0, 0, a.EarlyStart).Format(DateLayout),
			EndDate:      start.AddDate(0, 0, a.EarlyFinish).Format(DateLayout),
			Duration:     a.Duration,
			Critical:     a.Critical,
			Slack:        a.Slack,
			Predecessors: a.Predecessors,
		})
	}
	return rows
}
