package model

import "time"

// SeatAssignment represents one persisted seat of a generated plan as
// stored in the `seat_assignments` table. A plan for an exam is the
// full set of its assignments; regeneration replaces them atomically.
//
// Fields:
//  ID          – primary key identifier.
//  ExamID      – exam the assignment belongs to.
//  RoomID      – room the seat is in.
//  RoomNo      – denormalized room number, populated on joined reads.
//  Side        – side index of the room, 0 based.
//  RowIndex    – bench row within the side, 0 based.
//  Lane        – seat column within the row, 0 based.
//  StudentID   – seated student.
//  Strategy    – name of the filling strategy that produced the plan.
//  CreatedAt   – timestamp the plan was generated.
type SeatAssignment struct {
	ID        uint64    // seat_assignments.id
	ExamID    uint64    // seat_assignments.exam_id
	RoomID    uint64    // seat_assignments.room_id
	RoomNo    int       // rooms.room_no (joined)
	Side      int       // seat_assignments.side
	RowIndex  int       // seat_assignments.row_index
	Lane      int       // seat_assignments.lane
	StudentID uint64    // seat_assignments.student_id
	Strategy  string    // seat_assignments.strategy
	CreatedAt time.Time // seat_assignments.created_at
}

// SeatDetail is a joined read model for seat search responses: one
// assignment enriched with the student and room attributes needed to
// answer "where does roll N of program P sit".
//
// Fields mirror SeatAssignment plus the joined student columns.
type SeatDetail struct {
	ExamID       uint64 // seat_assignments.exam_id
	ExamName     string // exams.name
	RoomNo       int    // rooms.room_no
	Side         int    // seat_assignments.side
	RowIndex     int    // seat_assignments.row_index
	Lane         int    // seat_assignments.lane
	StudentID    uint64 // students.id
	StudentName  string // students.name
	ProgramCode  int    // programs.code
	Semester     int    // students.semester
	RollNumber   int    // students.roll_number
	EnrolledYear int    // students.enrolled_year
}
