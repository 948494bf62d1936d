package model

import "time"

// Room represents a physical examination room as stored in the
// `rooms` table. The seating geometry is rows of benches, each bench
// split into a fixed number of seats, optionally mirrored across
// several sides of the room.
//
// Fields:
//  ID            – primary key identifier.
//  RoomNo        – unique room number shown on notices.
//  NumRows       – number of bench rows per side.
//  NumBenchCols  – number of bench columns per row.
//  SeatsPerBench – seats on each bench (defaults to 2 when zero).
//  NumSides      – mirrored sides of the room (defaults to 1 when zero).
//  IsActive      – whether the room may be booked for exams.
//  CreatedAt     – timestamp of creation.
//  UpdatedAt     – timestamp of last update.
type Room struct {
	ID            uint64    // rooms.id
	RoomNo        int       // rooms.room_no
	NumRows       int       // rooms.num_rows
	NumBenchCols  int       // rooms.num_bench_cols
	SeatsPerBench int       // rooms.seats_per_bench
	NumSides      int       // rooms.num_sides
	IsActive      bool      // rooms.is_active
	CreatedAt     time.Time // rooms.created_at
	UpdatedAt     time.Time // rooms.updated_at
}
