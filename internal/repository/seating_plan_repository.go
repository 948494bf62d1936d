package repository // repository defines data access for seating plans

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives

	"github.com/examplan/exam-seat-planner/internal/model"
)

// SeatingPlanRepo persists generated seat assignments. A plan is the
// set of seat_assignments rows for one exam; regeneration deletes and
// re-inserts them inside the caller's transaction so readers never see
// a half-written plan.
type SeatingPlanRepo struct {
	db *sql.DB
}

// NewSeatingPlanRepo constructs a SeatingPlanRepo with the given DB handle.
func NewSeatingPlanRepo(db *sql.DB) *SeatingPlanRepo {
	return &SeatingPlanRepo{db: db}
}

// DB exposes the underlying sql.DB for callers that need to begin
// transactions spanning multiple repositories.
func (r *SeatingPlanRepo) DB() *sql.DB {
	return r.db
}

// ReplaceForExamTx deletes the exam's current assignments and bulk
// inserts the new ones using the provided transaction. The caller must
// commit or roll back.
func (r *SeatingPlanRepo) ReplaceForExamTx(ctx context.Context, tx *sql.Tx, examID uint64, assignments []model.SeatAssignment) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM seat_assignments WHERE exam_id = ?`, examID); err != nil {
		return err
	}
	if len(assignments) == 0 {
		return nil
	}
	query := `INSERT INTO seat_assignments (exam_id, room_id, side, row_index, lane, student_id, strategy) VALUES `
	args := make([]interface{}, 0, len(assignments)*7)
	for i, a := range assignments {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?, ?, ?)"
		args = append(args, examID, a.RoomID, a.Side, a.RowIndex, a.Lane, a.StudentID, a.Strategy)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	return err
}

// DeleteForExamTx clears the exam's assignments within the caller's
// transaction. Used when a plan is explicitly discarded.
func (r *SeatingPlanRepo) DeleteForExamTx(ctx context.Context, tx *sql.Tx, examID uint64) error {
	_, err := tx.ExecContext(ctx, `DELETE FROM seat_assignments WHERE exam_id = ?`, examID)
	return err
}

// ListByExam retrieves the exam's assignments joined with the room
// number, in canonical seat order (room, side, row, lane).
func (r *SeatingPlanRepo) ListByExam(ctx context.Context, examID uint64) ([]model.SeatAssignment, error) {
	const q = `SELECT sa.id, sa.exam_id, sa.room_id, rm.room_no, sa.side, sa.row_index, sa.lane, sa.student_id, sa.strategy, sa.created_at
	           FROM seat_assignments sa
	           JOIN rooms rm ON rm.id = sa.room_id
	           WHERE sa.exam_id = ?
	           ORDER BY rm.room_no, sa.side, sa.row_index, sa.lane`
	rows, err := r.db.QueryContext(ctx, q, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatAssignment
	for rows.Next() {
		var a model.SeatAssignment
		if err := rows.Scan(
			&a.ID, &a.ExamID, &a.RoomID, &a.RoomNo, &a.Side, &a.RowIndex,
			&a.Lane, &a.StudentID, &a.Strategy, &a.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListDetailsByExam retrieves the exam's assignments joined with the
// seated student and room attributes. Validation and statistics
// rebuild the in-memory grids from these rows.
func (r *SeatingPlanRepo) ListDetailsByExam(ctx context.Context, examID uint64) ([]model.SeatDetail, error) {
	const q = `SELECT sa.exam_id, e.name, rm.room_no, sa.side, sa.row_index, sa.lane,
	                  s.id, s.name, p.code, s.semester, s.roll_number, s.enrolled_year
	           FROM seat_assignments sa
	           JOIN exams e ON e.id = sa.exam_id
	           JOIN rooms rm ON rm.id = sa.room_id
	           JOIN students s ON s.id = sa.student_id
	           JOIN programs p ON p.id = s.program_id
	           WHERE sa.exam_id = ?
	           ORDER BY rm.room_no, sa.side, sa.row_index, sa.lane`
	rows, err := r.db.QueryContext(ctx, q, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.SeatDetail
	for rows.Next() {
		var d model.SeatDetail
		if err := rows.Scan(
			&d.ExamID, &d.ExamName, &d.RoomNo, &d.Side, &d.RowIndex, &d.Lane,
			&d.StudentID, &d.StudentName, &d.ProgramCode, &d.Semester, &d.RollNumber, &d.EnrolledYear,
		); err != nil {
			return nil, err
		}
		result = append(result, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByExam returns the number of persisted assignments for an exam.
func (r *SeatingPlanRepo) CountByExam(ctx context.Context, examID uint64) (int, error) {
	const q = `SELECT COUNT(*) FROM seat_assignments WHERE exam_id = ?`
	var n int
	err := r.db.QueryRowContext(ctx, q, examID).Scan(&n)
	return n, err
}
