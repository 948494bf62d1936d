package allocation

import (
	"fmt"
	"strings"
)

// Strategy fills a set of room grids with students.  Implementations must
// consume the entire input or fail with a *ShortfallError; partially
// filled grids are never a valid outcome.
type Strategy interface {
	// Name identifies the strategy in results, logs and persisted plans.
	Name() string
	// Fill assigns every student to a seat across the given grids.
	Fill(grids []*Grid, students []Student) error
}

// Strategy names accepted by ParseStrategy and reported in results.
const (
	StrategyLane = "lane"
	StrategyRisk = "risk"
)

// ParseStrategy maps a request string onto a concrete strategy.  The lane
// filler is the default for an empty name because of its linear cost.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", StrategyLane, "lane_based", "lanebased":
		return LaneFill{}, nil
	case StrategyRisk, "risk_scored", "riskscored":
		return RiskFill{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Result is the outcome of a successful allocation run.
type Result struct {
	Strategy          string
	Assignments       []Assignment
	TotalStudents     int
	TotalCapacity     int
	RemainingCapacity int
}

// Allocate runs one complete allocation: capacity gate, grid construction,
// strategy fill, assignment collection.  It either returns a result
// covering every eligible student or an error with nothing assigned; there
// is no partial success.  Callers persist the returned assignments in a
// single transaction to keep that atomicity visible to readers.
func Allocate(rooms []Room, students []Student, strat Strategy) (*Result, error) {
	if err := ValidateCapacity(CountPairs(students), rooms); err != nil {
		return nil, err
	}
	grids := BuildGrids(rooms)
	if err := strat.Fill(grids, students); err != nil {
		return nil, err
	}
	capacity := TotalCapacity(rooms)
	res := &Result{
		Strategy:          strat.Name(),
		Assignments:       make([]Assignment, 0, len(students)),
		TotalStudents:     len(students),
		TotalCapacity:     capacity,
		RemainingCapacity: capacity - len(students),
	}
	for _, g := range grids {
		res.Assignments = append(res.Assignments, g.Assignments()...)
	}
	return res, nil
}
