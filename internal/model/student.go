package model

import "time"

// Student represents a row in the `students` table. A student is
// uniquely identified within a program and semester by their roll
// number; the triple (program, semester, roll) is enforced unique by
// the schema.
//
// Fields:
//  ID           – primary key identifier.
//  ProgramID    – foreign key into the programs table.
//  ProgramCode  – denormalized program code, populated on joined reads.
//  Name         – full name of the student.
//  Semester     – current semester, 1 through 8.
//  RollNumber   – roll number within the program and semester.
//  EnrolledYear – year of enrolment, used by the risk scoring.
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Student struct {
	ID           uint64    // students.id
	ProgramID    uint64    // students.program_id
	ProgramCode  int       // programs.code (joined)
	Name         string    // students.name
	Semester     int       // students.semester
	RollNumber   int       // students.roll_number
	EnrolledYear int       // students.enrolled_year
	CreatedAt    time.Time // students.created_at
	UpdatedAt    time.Time // students.updated_at
}
