package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/examplan/exam-seat-planner/internal/allocation"
	"github.com/examplan/exam-seat-planner/internal/model"
)

func TestClearedPlanSummarizesToZero(t *testing.T) {
	// After a plan is cleared the statistics path rebuilds empty grids
	// over the booked rooms and must report zero occupancy, not fail.
	rooms := []model.Room{
		{ID: 1, RoomNo: 101, NumRows: 2, NumBenchCols: 2, SeatsPerBench: 2},
		{ID: 2, RoomNo: 102, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2},
	}
	grids, err := planGrids(rooms, nil)
	require.NoError(t, err)
	require.Len(t, grids, 2)

	stats := allocation.Summarize(grids)
	require.Equal(t, 0, stats.OccupiedSeats)
	require.Zero(t, stats.OccupancyRate)
	require.Equal(t, 14, stats.TotalSeats)
	require.Equal(t, 14, stats.AvailableSeats)
	require.True(t, stats.Valid)
	require.Empty(t, allocation.Validate(grids))
}

func TestPlanGridsReplaysPersistedSeats(t *testing.T) {
	rooms := []model.Room{{ID: 1, RoomNo: 101, NumRows: 1, NumBenchCols: 2, SeatsPerBench: 2}}
	details := []model.SeatDetail{
		{ExamID: 9, RoomNo: 101, Side: 0, RowIndex: 0, Lane: 0, ProgramCode: 10, Semester: 3, RollNumber: 1},
		{ExamID: 9, RoomNo: 101, Side: 0, RowIndex: 0, Lane: 1, ProgramCode: 20, Semester: 3, RollNumber: 1},
	}
	grids, err := planGrids(rooms, details)
	require.NoError(t, err)

	stats := allocation.Summarize(grids)
	require.Equal(t, 2, stats.OccupiedSeats)
	require.Equal(t, map[int]int{10: 1, 20: 1}, stats.ProgramCounts)
	require.True(t, stats.Valid)
}

func TestPlanGridsRejectsUnknownRoom(t *testing.T) {
	rooms := []model.Room{{ID: 1, RoomNo: 101, NumRows: 1, NumBenchCols: 2, SeatsPerBench: 2}}
	details := []model.SeatDetail{
		{ExamID: 9, RoomNo: 999, Side: 0, RowIndex: 0, Lane: 0, ProgramCode: 10, Semester: 3, RollNumber: 1},
	}
	_, err := planGrids(rooms, details)
	require.Error(t, err)
}
