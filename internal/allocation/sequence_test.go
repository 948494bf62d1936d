package allocation

import (
	"math/rand"
	"reflect"
	"testing"
)

func makeStudents(programCode, semester, count int) []Student {
	out := make([]Student, count)
	for i := range out {
		out[i] = Student{ProgramCode: programCode, Semester: Semester(semester), Roll: i + 1}
	}
	return out
}

func TestSequenceAlternatesPrograms(t *testing.T) {
	var students []Student
	students = append(students, makeStudents(10, 1, 3)...)
	students = append(students, makeStudents(20, 1, 3)...)

	seq := Sequence(students)
	if len(seq) != 6 {
		t.Fatalf("len(seq) = %d; want 6", len(seq))
	}
	for i := 1; i < len(seq); i++ {
		if seq[i].ProgramCode == seq[i-1].ProgramCode {
			t.Errorf("positions %d and %d share program %d", i-1, i, seq[i].ProgramCode)
		}
	}
	// rolls ascend within each program
	if seq[0].Roll != 1 || seq[2].Roll != 2 || seq[4].Roll != 3 {
		t.Errorf("program 10 rolls out of order: %v", seq)
	}
}

func TestSequenceSingleProgramTail(t *testing.T) {
	var students []Student
	students = append(students, makeStudents(10, 1, 4)...)
	students = append(students, makeStudents(20, 1, 2)...)

	seq := Sequence(students)
	want := []Student{
		{ProgramCode: 10, Semester: 1, Roll: 1},
		{ProgramCode: 20, Semester: 1, Roll: 1},
		{ProgramCode: 10, Semester: 1, Roll: 2},
		{ProgramCode: 20, Semester: 1, Roll: 2},
		{ProgramCode: 10, Semester: 1, Roll: 3},
		{ProgramCode: 10, Semester: 1, Roll: 4},
	}
	if !reflect.DeepEqual(seq, want) {
		t.Errorf("Sequence() = %v; want %v", seq, want)
	}
}

func TestSequenceDeterministic(t *testing.T) {
	var students []Student
	students = append(students, makeStudents(30, 2, 5)...)
	students = append(students, makeStudents(10, 2, 4)...)
	students = append(students, makeStudents(20, 2, 6)...)

	first := Sequence(students)
	for i := 0; i < 5; i++ {
		if again := Sequence(students); !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d produced a different sequence", i)
		}
	}
}

func TestSequenceShuffledReproducibleBySeed(t *testing.T) {
	var students []Student
	students = append(students, makeStudents(10, 1, 4)...)
	students = append(students, makeStudents(20, 1, 4)...)
	students = append(students, makeStudents(30, 1, 4)...)

	a := SequenceShuffled(students, rand.New(rand.NewSource(42)))
	b := SequenceShuffled(students, rand.New(rand.NewSource(42)))
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different sequences")
	}

	// rolls still ascend within each program regardless of shuffle
	last := map[int]int{}
	for _, s := range a {
		if s.Roll <= last[s.ProgramCode] {
			t.Errorf("program %d rolls not ascending: %v", s.ProgramCode, a)
		}
		last[s.ProgramCode] = s.Roll
	}
}
