package allocation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateFindsSingleAdjacentPair(t *testing.T) {
	g := NewGrid(Room{RoomNo: 101, NumRows: 1, NumBenchCols: 2, SeatsPerBench: 2})
	g.Assign(g.Ref(0, 0, 0), Student{ProgramCode: 10, Roll: 1})
	g.Assign(g.Ref(0, 0, 1), Student{ProgramCode: 10, Roll: 2})
	g.Assign(g.Ref(0, 0, 2), Student{ProgramCode: 20, Roll: 1})

	violations := Validate([]*Grid{g})
	require.Len(t, violations, 1)
	require.Equal(t, Violation{RoomNo: 101, Side: 0, Row: 0, Lane: 0, ProgramCode: 10}, violations[0])
}

func TestValidateCleanGrid(t *testing.T) {
	g := NewGrid(Room{RoomNo: 101, NumRows: 2, NumBenchCols: 2, SeatsPerBench: 2})
	programs := []int{10, 20, 10, 20}
	for row := 0; row < 2; row++ {
		for lane := 0; lane < 4; lane++ {
			g.Assign(g.Ref(0, row, lane), Student{ProgramCode: programs[lane], Roll: row*4 + lane})
		}
	}
	require.Empty(t, Validate([]*Grid{g}))
}

func TestValidateIgnoresGaps(t *testing.T) {
	// same program with an empty seat between them is not adjacency
	g := NewGrid(Room{RoomNo: 101, NumRows: 1, NumBenchCols: 2, SeatsPerBench: 2})
	g.Assign(g.Ref(0, 0, 0), Student{ProgramCode: 10, Roll: 1})
	g.Assign(g.Ref(0, 0, 2), Student{ProgramCode: 10, Roll: 2})
	require.Empty(t, Validate([]*Grid{g}))
}

func TestValidateScansSidesIndependently(t *testing.T) {
	// the last lane of side 0 and the first lane of side 1 are not
	// physically adjacent
	g := NewGrid(Room{RoomNo: 101, NumRows: 1, NumBenchCols: 1, SeatsPerBench: 2, NumSides: 2})
	g.Assign(g.Ref(0, 0, 1), Student{ProgramCode: 10, Roll: 1})
	g.Assign(g.Ref(1, 0, 0), Student{ProgramCode: 10, Roll: 2})
	require.Empty(t, Validate([]*Grid{g}))
}

func TestSummarize(t *testing.T) {
	g := NewGrid(Room{RoomNo: 101, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2})
	g.Assign(g.Ref(0, 0, 0), Student{ProgramCode: 10, Roll: 1})
	g.Assign(g.Ref(0, 0, 1), Student{ProgramCode: 20, Roll: 1})
	g.Assign(g.Ref(0, 0, 2), Student{ProgramCode: 10, Roll: 2})

	stats := Summarize([]*Grid{g})
	require.Equal(t, 1, stats.TotalRooms)
	require.Equal(t, 6, stats.TotalSeats)
	require.Equal(t, 3, stats.OccupiedSeats)
	require.Equal(t, 3, stats.AvailableSeats)
	require.InDelta(t, 0.5, stats.OccupancyRate, 1e-9)
	require.Equal(t, map[int]int{10: 2, 20: 1}, stats.ProgramCounts)
	require.Equal(t, 0, stats.ViolationCount)
	require.True(t, stats.Valid)
}

func TestSummarizeEmptyPlan(t *testing.T) {
	// a cleared plan reports zero occupancy and stays valid
	g := NewGrid(Room{RoomNo: 101, NumRows: 2, NumBenchCols: 3, SeatsPerBench: 2})
	stats := Summarize([]*Grid{g})
	require.Equal(t, 0, stats.OccupiedSeats)
	require.Zero(t, stats.OccupancyRate)
	require.True(t, stats.Valid)
}
