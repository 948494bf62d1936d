package allocation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	cases := []struct {
		in   string
		want string
		ok   bool
	}{
		{"", StrategyLane, true},
		{"lane", StrategyLane, true},
		{"Lane_Based", StrategyLane, true},
		{"risk", StrategyRisk, true},
		{"RISK_SCORED", StrategyRisk, true},
		{"quantum", "", false},
	}
	for _, tc := range cases {
		strat, err := ParseStrategy(tc.in)
		if !tc.ok {
			require.Error(t, err, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, strat.Name(), "input %q", tc.in)
	}
}

func TestAllocateRejectsOverCapacity(t *testing.T) {
	rooms := []Room{{RoomNo: 101, NumRows: 1, NumBenchCols: 3, SeatsPerBench: 2}}
	students := makeStudents(10, 1, 10)

	res, err := Allocate(rooms, students, LaneFill{})
	require.Nil(t, res, "no partial result on capacity failure")
	var capErr *CapacityError
	require.ErrorAs(t, err, &capErr)
	require.Equal(t, 4, capErr.Deficit())
}

func TestAllocateRejectsEmptyScope(t *testing.T) {
	rooms := []Room{{RoomNo: 101, NumRows: 1, NumBenchCols: 3}}
	_, err := Allocate(rooms, nil, LaneFill{})
	require.ErrorIs(t, err, ErrNoEligibleStudents)
}

func TestAllocateCoversEveryStudentExactlyOnce(t *testing.T) {
	rooms := []Room{
		{RoomNo: 101, NumRows: 2, NumBenchCols: 3, SeatsPerBench: 2},
		{RoomNo: 102, NumRows: 2, NumBenchCols: 2, SeatsPerBench: 2},
	}
	var students []Student
	students = append(students, makeStudents(10, 1, 8)...)
	students = append(students, makeStudents(20, 1, 6)...)
	students = append(students, makeStudents(30, 3, 4)...)

	for _, strat := range []Strategy{LaneFill{}, RiskFill{}} {
		t.Run(strat.Name(), func(t *testing.T) {
			res, err := Allocate(rooms, students, strat)
			require.NoError(t, err)
			require.Equal(t, len(students), res.TotalStudents)
			require.Equal(t, 20, res.TotalCapacity)
			require.Equal(t, 2, res.RemainingCapacity)
			require.Len(t, res.Assignments, len(students))

			seenStudent := make(map[Student]bool)
			seenSeat := make(map[SeatRef]bool)
			for _, a := range res.Assignments {
				require.False(t, seenStudent[a.Student], "student %+v assigned twice", a.Student)
				require.False(t, seenSeat[a.Seat], "seat %+v assigned twice", a.Seat)
				seenStudent[a.Student] = true
				seenSeat[a.Seat] = true
			}
			for _, s := range students {
				require.True(t, seenStudent[s], "student %+v never seated", s)
			}
		})
	}
}

func TestRenderShowsOccupants(t *testing.T) {
	g := NewGrid(Room{RoomNo: 101, NumRows: 1, NumBenchCols: 2, SeatsPerBench: 2})
	g.Assign(g.Ref(0, 0, 0), Student{ProgramCode: 10, Roll: 7})

	out := Render(g)
	require.True(t, strings.Contains(out, "Room 101"), "header missing: %s", out)
	require.True(t, strings.Contains(out, "P10-R7"), "occupant missing: %s", out)
	require.True(t, strings.Contains(out, "Empty"), "empty seats missing: %s", out)
}
