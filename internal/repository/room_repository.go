package repository // repository defines data access for exam rooms

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/examplan/exam-seat-planner/internal/model"
)

// ErrRoomNotFound is returned when a room lookup yields no rows.
var ErrRoomNotFound = errors.New("room not found")

// RoomRepo provides methods to work with rooms in the database.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo {
	return &RoomRepo{db: db}
}

// Create inserts a new room. RoomNo must be unique; a duplicate
// surfaces as ErrDuplicate. After insert the ID and timestamp fields
// are populated from the stored row.
func (r *RoomRepo) Create(ctx context.Context, room *model.Room) error {
	const qInsert = `INSERT INTO rooms (room_no, num_rows, num_bench_cols, seats_per_bench, num_sides)
	                 VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, room.RoomNo, room.NumRows, room.NumBenchCols, room.SeatsPerBench, room.NumSides)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	room.ID = uint64(id)

	const qSelect = `SELECT id, room_no, num_rows, num_bench_cols, seats_per_bench, num_sides, is_active, created_at, updated_at
	                 FROM rooms WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, room.ID).Scan(
		&room.ID, &room.RoomNo, &room.NumRows, &room.NumBenchCols,
		&room.SeatsPerBench, &room.NumSides, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
	)
}

// GetByID retrieves a room by its ID. It returns ErrRoomNotFound when
// no row is found.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, room_no, num_rows, num_bench_cols, seats_per_bench, num_sides, is_active, created_at, updated_at
	           FROM rooms WHERE id = ?`
	var room model.Room
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&room.ID, &room.RoomNo, &room.NumRows, &room.NumBenchCols,
		&room.SeatsPerBench, &room.NumSides, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

// List returns all rooms ordered by room number. When activeOnly is
// set, inactive rooms are filtered out; exam bookings only accept
// active rooms.
func (r *RoomRepo) List(ctx context.Context, activeOnly bool) ([]model.Room, error) {
	q := `SELECT id, room_no, num_rows, num_bench_cols, seats_per_bench, num_sides, is_active, created_at, updated_at
	      FROM rooms`
	if activeOnly {
		q += ` WHERE is_active = 1`
	}
	q += ` ORDER BY room_no`

	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(
			&room.ID, &room.RoomNo, &room.NumRows, &room.NumBenchCols,
			&room.SeatsPerBench, &room.NumSides, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListByExam returns the rooms booked for the given exam ordered by
// room number. The seating plan is generated over exactly these rooms.
func (r *RoomRepo) ListByExam(ctx context.Context, examID uint64) ([]model.Room, error) {
	const q = `SELECT r.id, r.room_no, r.num_rows, r.num_bench_cols, r.seats_per_bench, r.num_sides, r.is_active, r.created_at, r.updated_at
	           FROM rooms r
	           JOIN exam_rooms er ON er.room_id = r.id
	           WHERE er.exam_id = ?
	           ORDER BY r.room_no`
	rows, err := r.db.QueryContext(ctx, q, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Room
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(
			&room.ID, &room.RoomNo, &room.NumRows, &room.NumBenchCols,
			&room.SeatsPerBench, &room.NumSides, &room.IsActive, &room.CreatedAt, &room.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update changes a room's geometry and active flag. Returns
// ErrRoomNotFound when the ID does not exist. Geometry changes do not
// touch existing plans; regenerating a plan picks them up.
func (r *RoomRepo) Update(ctx context.Context, room *model.Room) error {
	const q = `UPDATE rooms
	           SET num_rows = ?, num_bench_cols = ?, seats_per_bench = ?, num_sides = ?, is_active = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q,
		room.NumRows, room.NumBenchCols, room.SeatsPerBench, room.NumSides, room.IsActive, room.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrRoomNotFound
	}
	return nil
}

// Delete removes a room. Deletion is refused with ErrConflict while
// the room is booked for any exam.
func (r *RoomRepo) Delete(ctx context.Context, id uint64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		} else {
			_ = tx.Commit()
		}
	}()

	var bookings int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM exam_rooms WHERE room_id = ?`, id).Scan(&bookings); err != nil {
		return err
	}
	if bookings > 0 {
		err = ErrConflict
		return err
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrRoomNotFound
		return err
	}
	return nil
}
