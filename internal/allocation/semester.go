package allocation

import "fmt"

// Semester is an academic semester in the 1..8 range.  The zero value is
// not a valid semester; use ParseSemester to convert untrusted integers.
type Semester int

// The eight semesters of a program.  Values match the 1-based integers
// used in requests and stored in the database.
const (
	SemesterFirst Semester = iota + 1
	SemesterSecond
	SemesterThird
	SemesterFourth
	SemesterFifth
	SemesterSixth
	SemesterSeventh
	SemesterEighth
)

// MaxSemester is the highest valid semester number.
const MaxSemester = int(SemesterEighth)

// SemesterRangeError reports a semester number outside the valid 1..8 range.
type SemesterRangeError struct {
	Value int
}

func (e *SemesterRangeError) Error() string {
	return fmt.Sprintf("semester must be between 1 and %d, got %d", MaxSemester, e.Value)
}

// ParseSemester converts a 1-based integer into a Semester.  Out-of-range
// input yields a *SemesterRangeError rather than a panic, so handlers can
// reject bad requests cleanly.
func ParseSemester(n int) (Semester, error) {
	if n < 1 || n > MaxSemester {
		return 0, &SemesterRangeError{Value: n}
	}
	return Semester(n), nil
}

// Int returns the 1-based integer form of the semester.
func (s Semester) Int() int { return int(s) }

// Valid reports whether the semester is in the 1..8 range.
func (s Semester) Valid() bool { return s >= SemesterFirst && s <= SemesterEighth }

func (s Semester) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Semester(%d)", int(s))
	}
	return fmt.Sprintf("S%d", int(s))
}
