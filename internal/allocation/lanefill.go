package allocation

// LaneFill is the deterministic column-filling strategy.  Each lane
// (position within a bench) is given one program's queue as its supply, and
// seats are filled bench-column outer, row inner, so a lane drains a single
// program down the whole room before the traversal moves sideways.  Within
// any row, adjacent lanes therefore pull from different queues.
//
// When a lane's queue empties it adopts the next program nobody has claimed
// yet; once every remaining program is claimed, the lane falls back to
// whichever queue still has students.  A single pass over the seats, O(total
// seats), which makes it the default for large allocations.
type LaneFill struct{}

// Name implements Strategy.
func (LaneFill) Name() string { return StrategyLane }

// Fill implements Strategy.
func (LaneFill) Fill(grids []*Grid, students []Student) error {
	order, queues := programQueues(students)
	heads := make(map[int]int, len(queues))
	remaining := func(code int) int { return len(queues[code]) - heads[code] }
	pop := func(code int) Student {
		s := queues[code][heads[code]]
		heads[code]++
		return s
	}

	left := len(students)
	for _, g := range grids {
		if left == 0 {
			break
		}
		spb := g.Room.seatsPerBench()

		// Lane affinity is reset per room: each room starts by claiming
		// one still-populated program per lane, in program order.
		claimed := make(map[int]bool, spb)
		nextUnclaimed := func() (int, bool) {
			for _, code := range order {
				if !claimed[code] && remaining(code) > 0 {
					return code, true
				}
			}
			return 0, false
		}
		anyNonEmpty := func() (int, bool) {
			for _, code := range order {
				if remaining(code) > 0 {
					return code, true
				}
			}
			return 0, false
		}

		laneProgram := make([]int, spb)
		laneHasProgram := make([]bool, spb)
		for pos := 0; pos < spb; pos++ {
			if code, ok := nextUnclaimed(); ok {
				claimed[code] = true
				laneProgram[pos] = code
				laneHasProgram[pos] = true
			}
		}

	room:
		for side := 0; side < g.Room.sides(); side++ {
			for bench := 0; bench < g.Room.NumBenchCols; bench++ {
				for row := 0; row < g.Room.NumRows; row++ {
					for pos := 0; pos < spb; pos++ {
						if left == 0 {
							break room
						}
						if !laneHasProgram[pos] || remaining(laneProgram[pos]) == 0 {
							// Adopt a fresh program for this lane, or steal
							// from whatever queue is left when only claimed
							// programs remain.
							if code, ok := nextUnclaimed(); ok {
								claimed[code] = true
								laneProgram[pos] = code
								laneHasProgram[pos] = true
							} else if code, ok := anyNonEmpty(); ok {
								laneProgram[pos] = code
								laneHasProgram[pos] = true
							} else {
								break room
							}
						}
						lane := bench*spb + pos
						g.Assign(g.Ref(side, row, lane), pop(laneProgram[pos]))
						left--
					}
				}
			}
		}
	}

	if left > 0 {
		return &ShortfallError{Strategy: "lane-fill", Unplaced: left}
	}
	return nil
}
