package allocation

import (
	"math/rand"
	"sort"
)

// programQueues partitions students into one FIFO queue per program,
// sorted by semester then roll so repeated runs over the same input are
// byte-for-byte reproducible.  The returned order slice preserves first
// appearance of each program in the input.
func programQueues(students []Student) (order []int, queues map[int][]Student) {
	queues = make(map[int][]Student)
	for _, s := range students {
		if _, seen := queues[s.ProgramCode]; !seen {
			order = append(order, s.ProgramCode)
		}
		queues[s.ProgramCode] = append(queues[s.ProgramCode], s)
	}
	for code, q := range queues {
		sort.SliceStable(q, func(i, j int) bool {
			if q[i].Semester != q[j].Semester {
				return q[i].Semester < q[j].Semester
			}
			return q[i].Roll < q[j].Roll
		})
		queues[code] = q
	}
	return order, queues
}

// roundRobin drains the queues one student at a time in the given program
// order.  When only one program remains its students run consecutively;
// everywhere else no two consecutive students share a program.
func roundRobin(order []int, queues map[int][]Student) []Student {
	total := 0
	for _, q := range queues {
		total += len(q)
	}
	seq := make([]Student, 0, total)
	heads := make(map[int]int, len(queues))
	for len(seq) < total {
		for _, code := range order {
			q := queues[code]
			if heads[code] >= len(q) {
				continue
			}
			seq = append(seq, q[heads[code]])
			heads[code]++
		}
	}
	return seq
}

// Sequence produces the strict round-robin student order: one student per
// program per pass, programs visited in first-appearance order, rolls
// ascending within each program.  Total and deterministic, no I/O.
func Sequence(students []Student) []Student {
	order, queues := programQueues(students)
	return roundRobin(order, queues)
}

// SequenceShuffled is Sequence with the program visitation order shuffled
// once using the supplied generator.  The randomness source is injected so
// tests can pin a seed; within each program the roll-ascending order is
// untouched.
func SequenceShuffled(students []Student, rng *rand.Rand) []Student {
	order, queues := programQueues(students)
	rng.Shuffle(len(order), func(i, j int) {
		order[i], order[j] = order[j], order[i]
	})
	return roundRobin(order, queues)
}
