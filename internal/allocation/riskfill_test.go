package allocation

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPairRisk(t *testing.T) {
	cases := []struct {
		name string
		a, b Student
		want float64
	}{
		{
			"DifferentEverything",
			Student{ProgramCode: 10, Roll: 1, EnrolledYear: 2023},
			Student{ProgramCode: 20, Roll: 9, EnrolledYear: 2024},
			0,
		},
		{
			"SameProgramFarRolls",
			Student{ProgramCode: 10, Roll: 1, EnrolledYear: 2023},
			Student{ProgramCode: 10, Roll: 40, EnrolledYear: 2024},
			0.6,
		},
		{
			"SameProgramCloseRolls",
			Student{ProgramCode: 10, Roll: 5, EnrolledYear: 2023},
			Student{ProgramCode: 10, Roll: 7, EnrolledYear: 2024},
			0.8,
		},
		{
			"SameYearOnly",
			Student{ProgramCode: 10, Roll: 1, EnrolledYear: 2023},
			Student{ProgramCode: 20, Roll: 2, EnrolledYear: 2023},
			0.3,
		},
		{
			"Everything",
			Student{ProgramCode: 10, Roll: 5, EnrolledYear: 2023},
			Student{ProgramCode: 10, Roll: 6, EnrolledYear: 2023},
			1.1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, PairRisk(tc.a, tc.b), 1e-9)
		})
	}
}

func TestRiskFillAlternatesBalancedPrograms(t *testing.T) {
	room := Room{RoomNo: 301, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2}
	var students []Student
	students = append(students, makeStudents(10, 1, 3)...)
	students = append(students, makeStudents(20, 1, 3)...)

	grids := BuildGrids([]Room{room})
	require.NoError(t, RiskFill{}.Fill(grids, students))
	require.Empty(t, Validate(grids), "balanced programs should alternate cleanly")
}

func TestRiskFillSnakeTraversal(t *testing.T) {
	// Three mutually risk-free students in a 2x2 grid: placements follow
	// traversal order exactly, so the third student lands on the right
	// edge of row 1 where the snake doubles back.
	room := Room{RoomNo: 302, NumRows: 2, NumBenchCols: 1, SeatsPerBench: 2}
	students := []Student{
		{ProgramCode: 10, Semester: 1, Roll: 1},
		{ProgramCode: 20, Semester: 1, Roll: 1},
		{ProgramCode: 30, Semester: 1, Roll: 1},
	}

	grids := BuildGrids([]Room{room})
	require.NoError(t, RiskFill{}.Fill(grids, students))
	require.Equal(t, 3, grids[0].Occupied())

	s, ok := grids[0].At(0, 1, 1)
	require.True(t, ok, "row 1 should fill from the right edge")
	require.Equal(t, 30, s.ProgramCode)
	if _, occupied := grids[0].At(0, 1, 0); occupied {
		t.Error("row 1 lane 0 should stay empty with only three students")
	}
}

func TestRiskFillDeterministic(t *testing.T) {
	rooms := []Room{{RoomNo: 1, NumRows: 3, NumBenchCols: 3, SeatsPerBench: 2}}
	var students []Student
	students = append(students, makeStudents(10, 1, 7)...)
	students = append(students, makeStudents(20, 1, 6)...)
	students = append(students, makeStudents(30, 1, 5)...)

	run := func() []Assignment {
		grids := BuildGrids(rooms)
		require.NoError(t, RiskFill{}.Fill(grids, students))
		return grids[0].Assignments()
	}
	first := run()
	for i := 0; i < 3; i++ {
		if again := run(); !reflect.DeepEqual(first, again) {
			t.Fatal("repeated runs disagree")
		}
	}
}

func TestRiskFillAvoidsAdjacentProgrammates(t *testing.T) {
	// Lopsided cohorts: a naive pour of the round-robin sequence would
	// stack program 10 students side by side once program 20 runs out in
	// each pass.  The lookahead window should keep same-row violations
	// below the naive count.
	room := Room{RoomNo: 303, NumRows: 2, NumBenchCols: 3, SeatsPerBench: 2}
	var students []Student
	students = append(students, makeStudents(10, 1, 8)...)
	students = append(students, makeStudents(20, 1, 4)...)

	grids := BuildGrids([]Room{room})
	require.NoError(t, RiskFill{}.Fill(grids, students))

	naive := BuildGrids([]Room{room})
	seq := Sequence(students)
	for i, ref := range naive[0].Refs() {
		naive[0].Assign(ref, seq[i])
	}

	require.LessOrEqual(t, len(Validate(grids)), len(Validate(naive)))
}

func TestRiskFillShortfall(t *testing.T) {
	room := Room{RoomNo: 9, NumRows: 1, NumBenchCols: 1, SeatsPerBench: 2}
	err := RiskFill{}.Fill(BuildGrids([]Room{room}), makeStudents(10, 1, 4))
	var shortfall *ShortfallError
	require.ErrorAs(t, err, &shortfall)
	require.Equal(t, 2, shortfall.Unplaced)
}
