package allocation

// Violation records two occupied, laterally consecutive seats in the same
// row and side holding students from the same program.  Lane identifies
// the left seat of the pair; the right seat is Lane+1.
type Violation struct {
	RoomNo      int `json:"room_no"`
	Side        int `json:"side"`
	Row         int `json:"row"`
	Lane        int `json:"lane"`
	ProgramCode int `json:"program_code"`
}

// Validate scans every room, side and row for consecutive-lane pairs that
// share a program.  It is an O(seats) pass over the arrangement and is the
// acceptance test for any filling strategy, independent of how the seats
// were filled.  A non-empty result is reported as data, never as an error:
// a tail of same-program seats is a normal outcome when only one program's
// queue remains.
func Validate(grids []*Grid) []Violation {
	var violations []Violation
	for _, g := range grids {
		lanes := g.Room.LanesPerRow()
		for side := 0; side < g.Room.sides(); side++ {
			for row := 0; row < g.Room.NumRows; row++ {
				for lane := 0; lane < lanes-1; lane++ {
					a, okA := g.At(side, row, lane)
					b, okB := g.At(side, row, lane+1)
					if okA && okB && a.ProgramCode == b.ProgramCode {
						violations = append(violations, Violation{
							RoomNo:      g.Room.RoomNo,
							Side:        side,
							Row:         row,
							Lane:        lane,
							ProgramCode: a.ProgramCode,
						})
					}
				}
			}
		}
	}
	return violations
}

// Statistics summarizes a finished arrangement.  Pure aggregation over the
// assignments and the room dimensions; no hidden state.
type Statistics struct {
	TotalRooms     int             `json:"total_rooms"`
	TotalSeats     int             `json:"total_seats"`
	OccupiedSeats  int             `json:"occupied_seats"`
	AvailableSeats int             `json:"available_seats"`
	OccupancyRate  float64         `json:"occupancy_rate"`
	ProgramCounts  map[int]int     `json:"program_counts"`
	ViolationCount int             `json:"violation_count"`
	Valid          bool            `json:"valid"`
}

// Summarize computes occupancy and distribution statistics plus the
// violation count for a set of grids.
func Summarize(grids []*Grid) Statistics {
	stats := Statistics{
		TotalRooms:    len(grids),
		ProgramCounts: make(map[int]int),
	}
	for _, g := range grids {
		stats.TotalSeats += g.Room.Capacity()
		for _, a := range g.Assignments() {
			stats.OccupiedSeats++
			stats.ProgramCounts[a.Student.ProgramCode]++
		}
	}
	stats.AvailableSeats = stats.TotalSeats - stats.OccupiedSeats
	if stats.TotalSeats > 0 {
		stats.OccupancyRate = float64(stats.OccupiedSeats) / float64(stats.TotalSeats)
	}
	violations := Validate(grids)
	stats.ViolationCount = len(violations)
	stats.Valid = len(violations) == 0
	return stats
}
