package allocation

import "testing"

func TestRoomCapacity(t *testing.T) {
	cases := []struct {
		name string
		room Room
		want int
	}{
		{"Defaults", Room{RoomNo: 101, NumRows: 2, NumBenchCols: 3}, 12},
		{"ExplicitBench", Room{RoomNo: 102, NumRows: 4, NumBenchCols: 5, SeatsPerBench: 2}, 40},
		{"ThreeSided", Room{RoomNo: 103, NumRows: 2, NumBenchCols: 3, SeatsPerBench: 2, NumSides: 3}, 36},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.room.Capacity(); got != tc.want {
				t.Errorf("Capacity() = %d; want %d", got, tc.want)
			}
		})
	}
}

func TestGridTraversalOrder(t *testing.T) {
	g := NewGrid(Room{RoomNo: 7, NumRows: 2, NumBenchCols: 1, SeatsPerBench: 2, NumSides: 2})
	refs := g.Refs()
	if len(refs) != 8 {
		t.Fatalf("len(Refs()) = %d; want 8", len(refs))
	}
	// side outer, row middle, lane inner
	want := []SeatRef{
		{7, 0, 0, 0}, {7, 0, 0, 1}, {7, 0, 1, 0}, {7, 0, 1, 1},
		{7, 1, 0, 0}, {7, 1, 0, 1}, {7, 1, 1, 0}, {7, 1, 1, 1},
	}
	for i, ref := range refs {
		if ref != want[i] {
			t.Errorf("Refs()[%d] = %+v; want %+v", i, ref, want[i])
		}
	}
}

func TestGridAssignAndLookup(t *testing.T) {
	g := NewGrid(Room{RoomNo: 1, NumRows: 1, NumBenchCols: 2, SeatsPerBench: 2})
	s := Student{ProgramCode: 11, Semester: SemesterFirst, Roll: 4}
	g.Assign(g.Ref(0, 0, 3), s)

	if got, ok := g.At(0, 0, 3); !ok || got != s {
		t.Fatalf("At(0,0,3) = %+v, %v; want %+v, true", got, ok, s)
	}
	if _, ok := g.At(0, 0, 2); ok {
		t.Error("At(0,0,2) reported an occupant for an empty seat")
	}
	if g.Bench(3) != 1 || g.Position(3) != 1 {
		t.Errorf("lane 3 decomposed to bench %d pos %d; want 1,1", g.Bench(3), g.Position(3))
	}
}

func TestGridOutOfBoundsPanics(t *testing.T) {
	g := NewGrid(Room{RoomNo: 1, NumRows: 1, NumBenchCols: 1, SeatsPerBench: 2})
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-bounds lane")
		}
	}()
	g.Ref(0, 0, 2)
}

func TestGridDoubleAssignPanics(t *testing.T) {
	g := NewGrid(Room{RoomNo: 1, NumRows: 1, NumBenchCols: 1, SeatsPerBench: 2})
	ref := g.Ref(0, 0, 0)
	g.Assign(ref, Student{ProgramCode: 1, Roll: 1})
	defer func() {
		if recover() == nil {
			t.Error("expected panic when assigning an occupied seat")
		}
	}()
	g.Assign(ref, Student{ProgramCode: 2, Roll: 1})
}
