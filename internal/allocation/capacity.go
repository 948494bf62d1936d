package allocation

// PairCount is the eligible-student count for one (program, semester)
// pair of an exam's scope.
type PairCount struct {
	ProgramCode int
	Semester    Semester
	Count       int
}

// ValidateCapacity is the fail-fast gate in front of every allocation run.
// It is a pure function over pre-counted eligibility pairs and room
// dimensions: no seat is touched, no side effects, so it can also back a
// validation-only endpoint.
//
// It returns ErrNoEligibleStudents when the pairs sum to zero and a
// *CapacityError when they exceed the rooms' combined capacity.
func ValidateCapacity(pairs []PairCount, rooms []Room) error {
	totalStudents := 0
	for _, p := range pairs {
		totalStudents += p.Count
	}
	if totalStudents == 0 {
		return ErrNoEligibleStudents
	}
	totalCapacity := TotalCapacity(rooms)
	if totalStudents > totalCapacity {
		breakdown := make([]PairCount, len(pairs))
		copy(breakdown, pairs)
		return &CapacityError{Needed: totalStudents, Available: totalCapacity, Breakdown: breakdown}
	}
	return nil
}

// CountPairs derives eligibility pair counts from an already-loaded
// student list.  Pair order follows first appearance, which keeps error
// breakdowns deterministic for a given input order.
func CountPairs(students []Student) []PairCount {
	type key struct {
		program  int
		semester Semester
	}
	idx := make(map[key]int)
	var pairs []PairCount
	for _, s := range students {
		k := key{s.ProgramCode, s.Semester}
		if i, ok := idx[k]; ok {
			pairs[i].Count++
			continue
		}
		idx[k] = len(pairs)
		pairs = append(pairs, PairCount{ProgramCode: s.ProgramCode, Semester: s.Semester, Count: 1})
	}
	return pairs
}
