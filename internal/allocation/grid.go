package allocation

import "fmt"

// DefaultSeatsPerBench is the domain default when a room does not declare
// how many students share a bench.
const DefaultSeatsPerBench = 2

// Student is the engine's view of an examinee.  Only the fields the
// allocation and risk scoring logic need are carried; identity beyond
// (program, semester, roll) is a persistence concern.
type Student struct {
	ProgramCode  int
	Semester     Semester
	Roll         int
	EnrolledYear int
}

// Room describes the physical dimensions of an exam room.  NumSides is 1
// for a normal room and 3 for the sectioned variant where Left, Middle and
// Right blocks of the same hall are seated independently.
type Room struct {
	RoomNo        int
	NumRows       int
	NumBenchCols  int
	SeatsPerBench int // 0 means DefaultSeatsPerBench
	NumSides      int // 0 means 1
}

// seatsPerBench returns the effective seats-per-bench value.
func (r Room) seatsPerBench() int {
	if r.SeatsPerBench <= 0 {
		return DefaultSeatsPerBench
	}
	return r.SeatsPerBench
}

// sides returns the effective side count.
func (r Room) sides() int {
	if r.NumSides <= 0 {
		return 1
	}
	return r.NumSides
}

// LanesPerRow is the number of addressable seats in one row of one side:
// bench columns times seats per bench.
func (r Room) LanesPerRow() int { return r.NumBenchCols * r.seatsPerBench() }

// Capacity is the total number of addressable seats in the room.
func (r Room) Capacity() int { return r.NumRows * r.LanesPerRow() * r.sides() }

// SideNames labels the sections of a three-sided room.  Index by side.
var SideNames = [...]string{"Left", "Middle", "Right"}

// SideName returns a display name for a side index.
func SideName(side int) string {
	if side >= 0 && side < len(SideNames) {
		return SideNames[side]
	}
	return fmt.Sprintf("Side %d", side)
}

// SeatRef addresses one seat slot.  Lane is the 0-based column index
// within a row, combining bench number and position on the bench:
// lane = bench*seatsPerBench + position.
type SeatRef struct {
	RoomNo int
	Side   int
	Row    int
	Lane   int
}

// Assignment binds one student to one seat.
type Assignment struct {
	Seat    SeatRef
	Student Student
}

// Grid is the seat arena for a single room: every addressable slot plus a
// map of current occupants keyed by seat address.  Assignments are map
// updates, never shared pointer mutations, so a Grid can be rebuilt from
// persisted records at any time and compared against a fresh run.
type Grid struct {
	Room      Room
	occupants map[SeatRef]Student
}

// NewGrid builds an empty arena for the given room.
func NewGrid(room Room) *Grid {
	return &Grid{
		Room:      room,
		occupants: make(map[SeatRef]Student, room.Capacity()),
	}
}

// checkBounds panics when the address falls outside the room's declared
// dimensions.  Out-of-range indexing is a programming error in a filling
// strategy, never a user-facing condition.
func (g *Grid) checkBounds(side, row, lane int) {
	if side < 0 || side >= g.Room.sides() ||
		row < 0 || row >= g.Room.NumRows ||
		lane < 0 || lane >= g.Room.LanesPerRow() {
		panic(fmt.Sprintf("allocation: seat (side=%d,row=%d,lane=%d) out of bounds for room %d (%dx%dx%d)",
			side, row, lane, g.Room.RoomNo, g.Room.sides(), g.Room.NumRows, g.Room.LanesPerRow()))
	}
}

// Ref builds a bounds-checked SeatRef for this grid's room.
func (g *Grid) Ref(side, row, lane int) SeatRef {
	g.checkBounds(side, row, lane)
	return SeatRef{RoomNo: g.Room.RoomNo, Side: side, Row: row, Lane: lane}
}

// Assign seats a student at the given address.  Assigning an occupied seat
// panics: a seat holds at most one student, and double booking means a
// strategy is broken.
func (g *Grid) Assign(ref SeatRef, s Student) {
	g.checkBounds(ref.Side, ref.Row, ref.Lane)
	if _, taken := g.occupants[ref]; taken {
		panic(fmt.Sprintf("allocation: seat %+v already occupied", ref))
	}
	g.occupants[ref] = s
}

// At returns the occupant of a seat, if any.
func (g *Grid) At(side, row, lane int) (Student, bool) {
	g.checkBounds(side, row, lane)
	s, ok := g.occupants[SeatRef{RoomNo: g.Room.RoomNo, Side: side, Row: row, Lane: lane}]
	return s, ok
}

// Occupied returns the number of assigned seats in the grid.
func (g *Grid) Occupied() int { return len(g.occupants) }

// Refs enumerates every seat address in canonical traversal order:
// side outer, row middle, lane inner.  Strategies that need a different
// order (the lane filler, the snake traversal) build their own.
func (g *Grid) Refs() []SeatRef {
	out := make([]SeatRef, 0, g.Room.Capacity())
	for side := 0; side < g.Room.sides(); side++ {
		for row := 0; row < g.Room.NumRows; row++ {
			for lane := 0; lane < g.Room.LanesPerRow(); lane++ {
				out = append(out, SeatRef{RoomNo: g.Room.RoomNo, Side: side, Row: row, Lane: lane})
			}
		}
	}
	return out
}

// Assignments returns the current seat bindings in canonical order.
func (g *Grid) Assignments() []Assignment {
	out := make([]Assignment, 0, len(g.occupants))
	for _, ref := range g.Refs() {
		if s, ok := g.occupants[ref]; ok {
			out = append(out, Assignment{Seat: ref, Student: s})
		}
	}
	return out
}

// Bench returns the bench column a lane belongs to.
func (g *Grid) Bench(lane int) int { return lane / g.Room.seatsPerBench() }

// Position returns the seat position on the bench for a lane.
func (g *Grid) Position(lane int) int { return lane % g.Room.seatsPerBench() }

// BuildGrids creates one empty grid per room, preserving room order.
func BuildGrids(rooms []Room) []*Grid {
	grids := make([]*Grid, len(rooms))
	for i, r := range rooms {
		grids[i] = NewGrid(r)
	}
	return grids
}

// TotalCapacity sums the capacity of a set of rooms.
func TotalCapacity(rooms []Room) int {
	total := 0
	for _, r := range rooms {
		total += r.Capacity()
	}
	return total
}
