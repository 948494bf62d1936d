package allocation

// Risk weights for a pair of students.  Same program dominates; sharing an
// enrollment year or sitting within two roll numbers of a programmate are
// weaker acquaintance signals.
const (
	riskSameProgram = 0.6
	riskSameYear    = 0.3
	riskCloseRoll   = 0.2

	// rollProximity is the roll-number distance treated as "probably
	// know each other" within the same program.
	rollProximity = 2
)

// DefaultLookahead is the candidate window size for RiskFill.
const DefaultLookahead = 5

// PairRisk estimates the collusion likelihood between two students as a
// weighted sum of shared traits.  Exported so the validator tests and any
// reporting layer can reuse the exact placement weights.
func PairRisk(a, b Student) float64 {
	risk := 0.0
	if a.ProgramCode == b.ProgramCode {
		risk += riskSameProgram
		d := a.Roll - b.Roll
		if d < 0 {
			d = -d
		}
		if d <= rollProximity {
			risk += riskCloseRoll
		}
	}
	if a.EnrolledYear != 0 && a.EnrolledYear == b.EnrolledYear {
		risk += riskSameYear
	}
	return risk
}

// RiskFill is the greedy placement strategy for allocations where adjacency
// quality matters more than raw speed.  Seats are visited in a row-snake
// order (even rows left to right, odd rows right to left) so geometrically
// adjacent seats stay close in traversal order.  For each seat the strategy
// examines the next Lookahead unplaced candidates from the round-robin
// sequence and places whichever scores the lowest mean risk against the
// already-seated 8-connected neighborhood.
//
// O(n * k) with k = Lookahead.  Greedy and local: it improves on naive
// ordering but does not promise a globally minimal-risk arrangement.
type RiskFill struct {
	// Lookahead overrides the candidate window size; zero or negative
	// means DefaultLookahead.
	Lookahead int
}

// Name implements Strategy.
func (RiskFill) Name() string { return StrategyRisk }

// Fill implements Strategy.
func (f RiskFill) Fill(grids []*Grid, students []Student) error {
	k := f.Lookahead
	if k <= 0 {
		k = DefaultLookahead
	}
	pending := Sequence(students)

	for _, g := range grids {
		if len(pending) == 0 {
			break
		}
		lanes := g.Room.LanesPerRow()
		for side := 0; side < g.Room.sides(); side++ {
			for row := 0; row < g.Room.NumRows; row++ {
				for i := 0; i < lanes; i++ {
					if len(pending) == 0 {
						return nil
					}
					lane := i
					if row%2 == 1 { // snake back on odd rows
						lane = lanes - 1 - i
					}

					window := k
					if window > len(pending) {
						window = len(pending)
					}
					best, bestRisk := 0, seatRisk(g, side, row, lane, pending[0])
					for c := 1; c < window; c++ {
						if r := seatRisk(g, side, row, lane, pending[c]); r < bestRisk {
							best, bestRisk = c, r
						}
					}

					g.Assign(g.Ref(side, row, lane), pending[best])
					pending = append(pending[:best], pending[best+1:]...)
				}
			}
		}
	}

	if len(pending) > 0 {
		return &ShortfallError{Strategy: "risk-fill", Unplaced: len(pending)}
	}
	return nil
}

// seatRisk is the mean pair risk between a candidate and every already
// placed student in the seat's 8-connected neighborhood (same room and
// side, row and lane offset by at most one).  Empty neighborhoods score 0,
// so the first seats of a room keep the sequence order.
func seatRisk(g *Grid, side, row, lane int, candidate Student) float64 {
	lanes := g.Room.LanesPerRow()
	sum, n := 0.0, 0
	for dr := -1; dr <= 1; dr++ {
		for dl := -1; dl <= 1; dl++ {
			if dr == 0 && dl == 0 {
				continue
			}
			r, l := row+dr, lane+dl
			if r < 0 || r >= g.Room.NumRows || l < 0 || l >= lanes {
				continue
			}
			if neighbor, ok := g.At(side, r, l); ok {
				sum += PairRisk(candidate, neighbor)
				n++
			}
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
