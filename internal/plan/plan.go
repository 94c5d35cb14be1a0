// Package plan loads project plan and budget files in TOML format and
// validates them before they reach the scheduling engine.
package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/obralabs/truss/internal/schedule"
)

// Project holds the plan-level metadata.
type Project struct {
	Name      string `toml:"name"`
	StartDate string `toml:"start_date"` // 2006-01-02
}

// ActivitySpec is one activity as written in the plan file. Predecessors is
// a comma-separated list of activity IDs, matching how they are entered in
// the original project forms.
type ActivitySpec struct {
	ID           int     `toml:"id"`
	Name         string  `toml:"name"`
	Duration     int     `toml:"duration"`
	Predecessors string  `toml:"predecessors"`
	Cost         float64 `toml:"cost"`
}

// Plan is a parsed and validated project plan.
type Plan struct {
	Project    Project        `toml:"project"`
	Activities []ActivitySpec `toml:"activity"`
}

// Load reads and validates a plan file.
func Load(path string) (*Plan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var p Plan
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filepath.Base(path), err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return &p, nil
}

func (p *Plan) validate() error {
	seen := make(map[int]bool, len(p.Activities))
	for _, a := range p.Activities {
		if a.ID <= 0 {
			return fmt.Errorf("activity %q: id must be positive", a.Name)
		}
		if seen[a.ID] {
			return fmt.Errorf("duplicate activity id %d", a.ID)
		}
		seen[a.ID] = true
		if a.Duration < 1 {
			return fmt.Errorf("activity %d (%s): duration must be at least 1 day", a.ID, a.Name)
		}
		if _, err := ParsePredecessors(a.Predecessors); err != nil {
			return fmt.Errorf("activity %d (%s): %w", a.ID, a.Name, err)
		}
	}
	if p.Project.StartDate != "" {
		if _, err := time.Parse(schedule.DateLayout, p.Project.StartDate); err != nil {
			return fmt.Errorf("project start_date %q: want %s", p.Project.StartDate, schedule.DateLayout)
		}
	}
	return nil
}

// ParsePredecessors parses a comma-separated list of activity IDs as
// entered in the plan file ("1, 2,3"). An empty string means no
// predecessors. Non-numeric tokens are a validation error.
func ParsePredecessors(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid predecessor id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// Start returns the project start date, or the zero time if the plan does
// not set one.
func (p *Plan) Start() time.Time {
	if p.Project.StartDate == "" {
		return time.Time{}
	}
	t, err := time.Parse(schedule.DateLayout, p.Project.StartDate)
	if err != nil {
		// validate() rejects malformed dates at load time.
		return time.Time{}
	}
	return t
}

// Engine builds a scheduling engine loaded with the plan's activities.
func (p *Plan) Engine() *schedule.Engine {
	e := schedule.NewEngine()
	for _, a := range p.Activities {
		preds, _ := ParsePredecessors(a.Predecessors) // validated at load time
		e.Add(schedule.Activity{
			ID:           a.ID,
			Name:         a.Name,
			Duration:     a.Duration,
			Predecessors: preds,
			Cost:         a.Cost,
		})
	}
	return e
}
