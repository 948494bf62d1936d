// This file defines repository methods for exams. An Exam books rooms
// for a date window and names the (program, semester) cohorts sitting
// it; both relations live in join tables written together with the
// exam row inside one transaction.

package repository

import (
	"context"      // context for controlling query lifetime
	"database/sql" // sql provides DB abstraction
	"errors"       // errors for sentinel definitions
	"time"

	"github.com/examplan/exam-seat-planner/internal/model"
)

// ErrExamNotFound indicates that an exam was not located in the DB.
var ErrExamNotFound = errors.New("exam not found")

// ExamRepo manages persistence for exams and their join tables.
type ExamRepo struct {
	db *sql.DB
}

// NewExamRepo constructs an ExamRepo with the given DB handle.
func NewExamRepo(db *sql.DB) *ExamRepo {
	return &ExamRepo{db: db}
}

// DB exposes the underlying sql.DB. It allows callers to begin
// transactions spanning multiple repositories. Use this method to
// obtain a *sql.DB when you need fine-grained transaction control.
func (r *ExamRepo) DB() *sql.DB {
	return r.db
}

// CreateTx inserts a new exam together with its cohort and room join
// rows using the provided transaction. The caller must commit or roll
// back. On success the generated ID and DB-default fields (status,
// timestamps) are populated on the given Exam.
func (r *ExamRepo) CreateTx(ctx context.Context, tx *sql.Tx, e *model.Exam, cohorts []model.ExamProgram, roomIDs []uint64) error {
	const q = `INSERT INTO exams (name, start_date, end_date) VALUES (?, ?, ?)`
	res, err := tx.ExecContext(ctx, q, e.Name, e.StartDate, e.EndDate)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	e.ID = uint64(id)

	if len(cohorts) > 0 {
		query := `INSERT INTO exam_programs (exam_id, program_id, semester) VALUES `
		args := make([]interface{}, 0, len(cohorts)*3)
		for i, c := range cohorts {
			if i > 0 {
				query += ","
			}
			query += "(?, ?, ?)"
			args = append(args, e.ID, c.ProgramID, c.Semester)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}
	if len(roomIDs) > 0 {
		query := `INSERT INTO exam_rooms (exam_id, room_id) VALUES `
		args := make([]interface{}, 0, len(roomIDs)*2)
		for i, roomID := range roomIDs {
			if i > 0 {
				query += ","
			}
			query += "(?, ?)"
			args = append(args, e.ID, roomID)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return err
		}
	}

	const sel = `SELECT id, name, start_date, end_date, status, created_at, updated_at
	             FROM exams WHERE id = ?`
	return tx.QueryRowContext(ctx, sel, e.ID).Scan(
		&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
}

// GetByID retrieves an exam by its ID. It returns ErrExamNotFound if
// there is no matching row.
func (r *ExamRepo) GetByID(ctx context.Context, id uint64) (*model.Exam, error) {
	const q = `SELECT id, name, start_date, end_date, status, created_at, updated_at FROM exams WHERE id = ?`
	var e model.Exam
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrExamNotFound
		}
		return nil, err
	}
	return &e, nil
}

// List returns all exams ordered by start date ascending. When no
// exams exist it returns an empty slice and nil error.
func (r *ExamRepo) List(ctx context.Context) ([]model.Exam, error) {
	const q = `SELECT id, name, start_date, end_date, status, created_at, updated_at
	           FROM exams
	           ORDER BY start_date ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := rows.Scan(
			&e.ID, &e.Name, &e.StartDate, &e.EndDate, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ListCohorts returns the (program, semester) cohorts attached to an
// exam, joined with the program code, ordered by code then semester.
func (r *ExamRepo) ListCohorts(ctx context.Context, examID uint64) ([]model.ExamProgram, error) {
	const q = `SELECT ep.exam_id, ep.program_id, p.code, ep.semester
	           FROM exam_programs ep
	           JOIN programs p ON p.id = ep.program_id
	           WHERE ep.exam_id = ?
	           ORDER BY p.code, ep.semester`
	rows, err := r.db.QueryContext(ctx, q, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ExamProgram
	for rows.Next() {
		var c model.ExamProgram
		if err := rows.Scan(&c.ExamID, &c.ProgramID, &c.ProgramCode, &c.Semester); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// FindBookedRooms returns the IDs of the candidate rooms that are
// already booked by another exam whose date window overlaps
// [start, end]. Two inclusive windows overlap when each starts no
// later than the other ends.
func (r *ExamRepo) FindBookedRooms(ctx context.Context, roomIDs []uint64, start, end time.Time) ([]uint64, error) {
	if len(roomIDs) == 0 {
		return nil, nil
	}
	query := `SELECT DISTINCT er.room_id
	          FROM exam_rooms er
	          JOIN exams e ON e.id = er.exam_id
	          WHERE e.start_date <= ? AND e.end_date >= ? AND er.room_id IN (`
	args := []any{end, start}
	for i, id := range roomIDs {
		if i > 0 {
			query += ","
		}
		query += "?"
		args = append(args, id)
	}
	query += ")"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var booked []uint64
	for rows.Next() {
		var id uint64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		booked = append(booked, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return booked, nil
}

// CohortHasExam reports whether the given (program, semester) cohort
// is already attached to an exam overlapping [start, end]. Used to
// keep a cohort out of two exams at once.
func (r *ExamRepo) CohortHasExam(ctx context.Context, programID uint64, semester int, start, end time.Time) (bool, error) {
	const q = `SELECT COUNT(*)
	           FROM exam_programs ep
	           JOIN exams e ON e.id = ep.exam_id
	           WHERE ep.program_id = ? AND ep.semester = ?
	             AND e.start_date <= ? AND e.end_date >= ?`
	var n int
	if err := r.db.QueryRowContext(ctx, q, programID, semester, end, start).Scan(&n); err != nil {
		return false, err
	}
	return n > 0, nil
}

// UpdateStatusTx moves an exam to the given lifecycle status within
// the caller's transaction. Returns ErrExamNotFound when the ID does
// not exist.
func (r *ExamRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, examID uint64, status string) error {
	const q = `UPDATE exams SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := tx.ExecContext(ctx, q, status, examID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrExamNotFound
	}
	return nil
}

// Delete removes an exam and all of its dependent records. The
// deletion occurs within a transaction so no partial cleanup occurs.
// If the exam does not exist, ErrExamNotFound is returned.
func (r *ExamRepo) Delete(ctx context.Context, id uint64) error {
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

	var exists int
	err = tx.QueryRowContext(ctx, `SELECT 1 FROM exams WHERE id = ? LIMIT 1`, id).Scan(&exists)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			err = ErrExamNotFound
		}
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM seat_assignments WHERE exam_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM exam_programs WHERE exam_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM exam_rooms WHERE exam_id = ?`, id); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `DELETE FROM exams WHERE id = ?`, id); err != nil {
		return err
	}
	return nil
}
