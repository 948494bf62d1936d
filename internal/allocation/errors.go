package allocation

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoEligibleStudents is returned when an exam's (program, semester)
// scope matches nobody.  An exam with no one to seat is a configuration
// error upstream, not a valid allocation target.
var ErrNoEligibleStudents = errors.New("no eligible students for exam")

// ErrUnknownStrategy is returned by ParseStrategy for names that match
// no registered filling strategy.
var ErrUnknownStrategy = errors.New("unknown allocation strategy")

// CapacityError reports that the eligible students do not fit in the
// exam's rooms.  It carries both totals and a per-pair breakdown so the
// caller can see which cohorts drive the overflow.  The condition is
// recoverable (add rooms, narrow the scope); the engine never retries.
type CapacityError struct {
	Needed    int
	Available int
	Breakdown []PairCount
}

func (e *CapacityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "not enough seats: need %d, have %d (deficit %d)", e.Needed, e.Available, e.Deficit())
	for _, pc := range e.Breakdown {
		fmt.Fprintf(&b, "; program %d %s: %d", pc.ProgramCode, pc.Semester, pc.Count)
	}
	return b.String()
}

// Deficit is the number of students that cannot be seated.
func (e *CapacityError) Deficit() int { return e.Needed - e.Available }

// ShortfallError reports students left unplaced after a strategy consumed
// every seat.  With the capacity gate in front this is unreachable, so it
// always indicates an engine bug (grid sizing or traversal) and must be
// surfaced loudly rather than treated as user input error.
type ShortfallError struct {
	Strategy string
	Unplaced int
}

func (e *ShortfallError) Error() string {
	return fmt.Sprintf("%s: %d students left unplaced after traversal exhausted all seats", e.Strategy, e.Unplaced)
}
