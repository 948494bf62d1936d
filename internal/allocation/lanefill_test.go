package allocation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// The reference scenario: one row, three benches, two seats per bench
// (six lanes), program 10 with rolls 1..4 and program 20 with rolls 1..2.
// Lanes fill as 10/1, 20/1, 10/2, 20/2, 10/3, 10/4: program 20 runs dry
// after lane 3 and the tail falls back to program 10, leaving exactly one
// same-program pair at lanes 4 and 5.
func TestLaneFillReferenceRoom(t *testing.T) {
	room := Room{RoomNo: 101, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2}
	var students []Student
	students = append(students, makeStudents(10, 1, 4)...)
	students = append(students, makeStudents(20, 1, 2)...)

	grids := BuildGrids([]Room{room})
	require.NoError(t, LaneFill{}.Fill(grids, students))

	wantByLane := []struct {
		program, roll int
	}{
		{10, 1}, {20, 1}, {10, 2}, {20, 2}, {10, 3}, {10, 4},
	}
	for lane, want := range wantByLane {
		s, ok := grids[0].At(0, 0, lane)
		require.True(t, ok, "lane %d empty", lane)
		require.Equal(t, want.program, s.ProgramCode, "lane %d program", lane)
		require.Equal(t, want.roll, s.Roll, "lane %d roll", lane)
	}

	violations := Validate(grids)
	require.Len(t, violations, 1)
	require.Equal(t, Violation{RoomNo: 101, Side: 0, Row: 0, Lane: 4, ProgramCode: 10}, violations[0])
}

func TestLaneFillNoViolationsWithEnoughPrograms(t *testing.T) {
	// As many programs as lanes and balanced queues: every lane keeps its
	// own program, so no row contains an adjacent same-program pair.
	room := Room{RoomNo: 201, NumRows: 4, NumBenchCols: 1, SeatsPerBench: 2}
	var students []Student
	students = append(students, makeStudents(10, 1, 4)...)
	students = append(students, makeStudents(20, 1, 4)...)

	grids := BuildGrids([]Room{room})
	require.NoError(t, LaneFill{}.Fill(grids, students))
	require.Empty(t, Validate(grids))
}

func TestLaneFillPlacesEveryoneOnce(t *testing.T) {
	rooms := []Room{
		{RoomNo: 1, NumRows: 2, NumBenchCols: 3, SeatsPerBench: 2},
		{RoomNo: 2, NumRows: 3, NumBenchCols: 2, SeatsPerBench: 2, NumSides: 3},
	}
	var students []Student
	students = append(students, makeStudents(10, 1, 17)...)
	students = append(students, makeStudents(20, 1, 13)...)
	students = append(students, makeStudents(30, 1, 11)...)

	grids := BuildGrids(rooms)
	require.NoError(t, LaneFill{}.Fill(grids, students))

	seen := make(map[Student]SeatRef)
	addresses := make(map[SeatRef]bool)
	placed := 0
	for _, g := range grids {
		for _, a := range g.Assignments() {
			placed++
			require.NotContains(t, seen, a.Student, "student seated twice")
			require.False(t, addresses[a.Seat], "seat %+v assigned twice", a.Seat)
			seen[a.Student] = a.Seat
			addresses[a.Seat] = true
		}
	}
	require.Equal(t, len(students), placed)
}

func TestLaneFillMoreProgramsThanLanes(t *testing.T) {
	// Four programs, two lanes: the extra programs wait until a lane's
	// queue empties and are adopted in order.  Everyone still gets a seat.
	room := Room{RoomNo: 5, NumRows: 4, NumBenchCols: 2, SeatsPerBench: 2}
	var students []Student
	for _, code := range []int{10, 20, 30, 40} {
		students = append(students, makeStudents(code, 1, 4)...)
	}
	grids := BuildGrids([]Room{room})
	require.NoError(t, LaneFill{}.Fill(grids, students))
	require.Equal(t, 16, grids[0].Occupied())
}

func TestLaneFillShortfall(t *testing.T) {
	// More students than seats must surface as an engine-level shortfall
	// when the capacity gate is bypassed.
	room := Room{RoomNo: 9, NumRows: 1, NumBenchCols: 1, SeatsPerBench: 2}
	students := makeStudents(10, 1, 5)

	err := LaneFill{}.Fill(BuildGrids([]Room{room}), students)
	var shortfall *ShortfallError
	require.ErrorAs(t, err, &shortfall)
	require.Equal(t, 3, shortfall.Unplaced)
}
