// Package schedule implements Critical Path Method (CPM) analysis over a set
// of project activities with finish-to-start dependencies. It computes each
// activity's earliest/latest schedule window, float (slack), critical-path
// membership, and the total project duration.
package schedule

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCycle is returned when the predecessor relation contains a dependency cycle.
var ErrCycle = errors.New("cyclic dependency")

// ErrInvalidDuration is returned when an activity has a non-positive duration.
var ErrInvalidDuration = errors.New("invalid duration")

// Activity is a unit of project work. ID, Name, Duration, Predecessors and
// Cost are supplied by the caller; the remaining fields are populated by
// Calculate and derived fresh on every run.
type Activity struct {
	ID           int
	Name         string
	Duration     int // working days
	Predecessors []int
	Cost         float64

	// Computed by Calculate.
	EarlyStart  int
	EarlyFinish int
	LateStart   int
	LateFinish  int
	Slack       int
	Critical    bool
}

// Result is the outcome of one CPM computation.
type Result struct {
	// Activities holds the engine's activities, in insertion order, with
	// computed fields populated.
	Activities []*Activity

	// ProjectDuration is the minimum number of days the project needs,
	// i.e. max(EarlyFinish) over all activities.
	ProjectDuration int

	// CriticalPath lists the IDs of zero-slack activities in insertion order.
	CriticalPath []int

	// CriticalActivities holds the full records behind CriticalPath.
	CriticalActivities []*Activity

	// Warnings collects non-fatal schedule problems, currently references
	// to predecessor IDs that resolve to no known activity. Such references
	// are treated as satisfied at day zero.
	Warnings []string
}

// Engine accumulates activities for a single scheduling run. An Engine is
// not safe for concurrent use; construct one per computation.
type Engine struct {
	activities []*Activity
}

// NewEngine creates an empty scheduling engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Add appends an activity record in insertion order. No validation happens
// here; Calculate rejects invalid durations and cyclic dependencies.
func (e *Engine) Add(a Activity) {
	if a.Predecessors == nil {
		a.Predecessors = []int{}
	}
	e.activities = append(e.activities, &a)
}

// AddActivity appends an activity by its scalar fields. Predecessor IDs may
// be given in any order relative to the activities they reference; Calculate
// orders the graph itself.
func (e *Engine) AddActivity(id int, name string, duration int, predecessors ...int) {
	e.Add(Activity{ID: id, Name: name, Duration: duration, Predecessors: predecessors})
}

// Activities returns the engine's activity records in insertion order.
func (e *Engine) Activities() []*Activity {
	return e.activities
}

// Len returns the number of activities added so far.
func (e *Engine) Len() int {
	return len(e.activities)
}

// Calculate runs the CPM forward and backward passes and returns the
// computed schedule. The passes run over a topological ordering of the
// predecessor graph, so insertion order never affects correctness. An empty
// engine yields a well-formed empty result. Calculate is idempotent: every
// call derives the computed fields from the base inputs alone.
func (e *Engine) Calculate() (*Result, error) {
	if len(e.activities) == 0 {
		return &Result{Activities: []*Activity{}, CriticalPath: []int{}}, nil
	}

	byID := make(map[int]*Activity, len(e.activities))
	for _, a := range e.activities {
		if a.Duration <= 0 {
			return nil, fmt.Errorf("%w: activity %d (%s) has duration %d",
				ErrInvalidDuration, a.ID, a.Name, a.Duration)
		}
		byID[a.ID] = a
	}

	// successors maps an activity ID to the activities that list it as a
	// predecessor. Unknown predecessor IDs contribute nothing to the forward
	// pass and are surfaced as warnings rather than errors, so partially
	// valid schedules still compute.
	var warnings []string
	successors := make(map[int][]*Activity, len(e.activities))
	for _, a := range e.activities {
		for _, pred := range a.Predecessors {
			if _, ok := byID[pred]; !ok {
				warnings = append(warnings, fmt.Sprintf(
					"activity %d (%s) references unknown predecessor %d", a.ID, a.Name, pred))
				continue
			}
			successors[pred] = append(successors[pred], a)
		}
	}

	order, err := e.topoSort(byID, successors)
	if err != nil {
		return nil, err
	}

	// Forward pass: earliest start is the max early finish over resolved
	// predecessors, or zero for entry activities.
	for _, a := range order {
		es := 0
		for _, pred := range a.Predecessors {
			if p, ok := byID[pred]; ok && p.EarlyFinish > es {
				es = p.EarlyFinish
			}
		}
		a.EarlyStart = es
		a.EarlyFinish = es + a.Duration
	}

	duration := 0
	for _, a := range e.activities {
		if a.EarlyFinish > duration {
			duration = a.EarlyFinish
		}
	}

	// Backward pass in reverse topological order: latest finish is the min
	// late start over successors, clamped to the project duration for
	// activities with no successors.
	for i := len(order) - 1; i >= 0; i-- {
		a := order[i]
		succs := successors[a.ID]
		if len(succs) == 0 {
			a.LateFinish = duration
		} else {
			min := succs[0].LateStart
			for _, s := range succs[1:] {
				if s.LateStart < min {
					min = s.LateStart
				}
			}
			a.LateFinish = min
		}
		a.LateStart = a.LateFinish - a.Duration
		a.Slack = a.LateStart - a.EarlyStart
		a.Critical = a.Slack == 0
	}

	res := &Result{
		Activities:      e.activities,
		ProjectDuration: duration,
		CriticalPath:    []int{},
		Warnings:        warnings,
	}
	for _, a := range e.activities {
		if a.Critical {
			res.CriticalPath = append(res.CriticalPath, a.ID)
			res.CriticalActivities = append(res.CriticalActivities, a)
		}
	}
	return res, nil
}

// topoSort orders the activities with Kahn's algorithm. The ready queue is
// kept sorted by ascending ID so the ordering is deterministic. Returns
// ErrCycle if the predecessor relation is not acyclic.
func (e *Engine) topoSort(byID map[int]*Activity, successors map[int][]*Activity) ([]*Activity, error) {
	inDegree := make(map[int]int, len(e.activities))
	for _, a := range e.activities {
		for _, pred := range a.Predecessors {
			if _, ok := byID[pred]; ok {
				inDegree[a.ID]++
			}
		}
	}

	var queue []*Activity
	for _, a := range e.activities {
		if inDegree[a.ID] == 0 {
			queue = append(queue, a)
		}
	}
	sortByID(queue)

	order := make([]*Activity, 0, len(e.activities))
	for len(queue) > 0 {
		a := queue[0]
		queue = queue[1:]
		order = append(order, a)

		var freed []*Activity
		for _, s := range successors[a.ID] {
			inDegree[s.ID]--
			if inDegree[s.ID] == 0 {
				freed = append(freed, s)
			}
		}
		sortByID(freed)
		queue = append(queue, freed...)
	}

	if len(order) != len(e.activities) {
		return nil, fmt.Errorf("%w: only %d of %d activities could be ordered",
			ErrCycle, len(order), len(e.activities))
	}
	return order, nil
}

func sortByID(as []*Activity) {
	sort.Slice(as, func(i, j int) bool { return as[i].ID < as[j].ID })
}
