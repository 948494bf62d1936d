package model

import "time"

// Exam statuses as stored in exams.status. An exam starts out
// SCHEDULED, becomes PLANNED once a seating plan has been generated
// and COMPLETED after the exam date has passed.
const (
	ExamStatusScheduled = "SCHEDULED"
	ExamStatusPlanned   = "PLANNED"
	ExamStatusCompleted = "COMPLETED"
)

// Exam represents a scheduled examination session as stored in the
// `exams` table. An exam books one or more rooms for a date range and
// covers one or more (program, semester) cohorts whose students are
// seated together.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – descriptive exam name (e.g. "Midterm 2026 Spring").
//  StartDate – first day of the exam window.
//  EndDate   – last day of the exam window (inclusive).
//  Status    – lifecycle status, one of the ExamStatus constants.
//  CreatedAt – timestamp of creation.
//  UpdatedAt – timestamp of last update.
type Exam struct {
	ID        uint64    // exams.id
	Name      string    // exams.name
	StartDate time.Time // exams.start_date
	EndDate   time.Time // exams.end_date
	Status    string    // exams.status
	CreatedAt time.Time // exams.created_at
	UpdatedAt time.Time // exams.updated_at
}

// ExamProgram links an exam to one (program, semester) cohort via the
// `exam_programs` join table. All students of the program in the given
// semester sit the exam.
//
// Fields:
//  ExamID      – foreign key into the exams table.
//  ProgramID   – foreign key into the programs table.
//  ProgramCode – denormalized program code, populated on joined reads.
//  Semester    – semester of the cohort, 1 through 8.
type ExamProgram struct {
	ExamID      uint64 // exam_programs.exam_id
	ProgramID   uint64 // exam_programs.program_id
	ProgramCode int    // programs.code (joined)
	Semester    int    // exam_programs.semester
}

// ExamRoom links an exam to a booked room via the `exam_rooms` join
// table. A room may not be double booked for overlapping exam windows.
//
// Fields:
//  ExamID – foreign key into the exams table.
//  RoomID – foreign key into the rooms table.
type ExamRoom struct {
	ExamID uint64 // exam_rooms.exam_id
	RoomID uint64 // exam_rooms.room_id
}
