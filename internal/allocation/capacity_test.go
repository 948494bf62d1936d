package allocation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateCapacityOK(t *testing.T) {
	pairs := []PairCount{
		{ProgramCode: 10, Semester: SemesterFirst, Count: 3},
		{ProgramCode: 20, Semester: SemesterFirst, Count: 3},
	}
	rooms := []Room{{RoomNo: 101, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2}}
	require.NoError(t, ValidateCapacity(pairs, rooms))
}

func TestValidateCapacityExceeded(t *testing.T) {
	// 10 students against 6 seats: deficit of 4 with a full breakdown.
	pairs := []PairCount{
		{ProgramCode: 10, Semester: SemesterFirst, Count: 6},
		{ProgramCode: 20, Semester: SemesterThird, Count: 4},
	}
	rooms := []Room{{RoomNo: 101, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2}}

	err := ValidateCapacity(pairs, rooms)
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 10, capErr.Needed)
	require.Equal(t, 6, capErr.Available)
	require.Equal(t, 4, capErr.Deficit())
	require.Len(t, capErr.Breakdown, 2)
	require.Equal(t, 6, capErr.Breakdown[0].Count)
}

func TestValidateCapacityNoStudents(t *testing.T) {
	rooms := []Room{{RoomNo: 101, NumRows: 1, NumBenchCols: 3}}
	err := ValidateCapacity(nil, rooms)
	require.True(t, errors.Is(err, ErrNoEligibleStudents))

	err = ValidateCapacity([]PairCount{{ProgramCode: 10, Semester: SemesterFirst, Count: 0}}, rooms)
	require.True(t, errors.Is(err, ErrNoEligibleStudents))
}

func TestCountPairs(t *testing.T) {
	students := []Student{
		{ProgramCode: 10, Semester: SemesterFirst, Roll: 1},
		{ProgramCode: 20, Semester: SemesterFirst, Roll: 1},
		{ProgramCode: 10, Semester: SemesterFirst, Roll: 2},
		{ProgramCode: 10, Semester: SemesterSecond, Roll: 1},
	}
	pairs := CountPairs(students)
	require.Equal(t, []PairCount{
		{ProgramCode: 10, Semester: SemesterFirst, Count: 2},
		{ProgramCode: 20, Semester: SemesterFirst, Count: 1},
		{ProgramCode: 10, Semester: SemesterSecond, Count: 1},
	}, pairs)
}
