package repository // repository defines data access for students

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"errors"       // errors for sentinel definitions

	"github.com/examplan/exam-seat-planner/internal/model"
)

// ErrStudentNotFound is returned when a student lookup yields no rows.
var ErrStudentNotFound = errors.New("student not found")

// StudentRepo provides methods to work with students in the database.
type StudentRepo struct {
	db *sql.DB
}

// NewStudentRepo constructs a StudentRepo with the given DB handle.
func NewStudentRepo(db *sql.DB) *StudentRepo {
	return &StudentRepo{db: db}
}

// studentColumns is the joined select list shared by the read methods.
const studentColumns = `s.id, s.program_id, p.code, s.name, s.semester, s.roll_number, s.enrolled_year, s.created_at, s.updated_at`

func scanStudent(row interface{ Scan(...any) error }, s *model.Student) error {
	return row.Scan(&s.ID, &s.ProgramID, &s.ProgramCode, &s.Name, &s.Semester,
		&s.RollNumber, &s.EnrolledYear, &s.CreatedAt, &s.UpdatedAt)
}

// Create inserts a single student record. On success the student's ID
// is populated. A duplicate (program, semester, roll) triple surfaces
// as ErrDuplicate.
func (r *StudentRepo) Create(ctx context.Context, s *model.Student) error {
	const q = `INSERT INTO students (program_id, name, semester, roll_number, enrolled_year)
	           VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, s.ProgramID, s.Name, s.Semester, s.RollNumber, s.EnrolledYear)
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
	s.ID = uint64(id)
	return nil
}

// CreateBulk inserts multiple students in a single statement. Used by
// the bulk-create and CSV import endpoints. IDs are not populated on
// the passed slice.
func (r *StudentRepo) CreateBulk(ctx context.Context, students []model.Student) error {
	if len(students) == 0 {
		return nil
	}
	query := `INSERT INTO students (program_id, name, semester, roll_number, enrolled_year) VALUES `
	args := make([]interface{}, 0, len(students)*5)
	for i, s := range students {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?, ?)"
		args = append(args, s.ProgramID, s.Name, s.Semester, s.RollNumber, s.EnrolledYear)
	}
	_, err := r.db.ExecContext(ctx, query, args...)
	if isDuplicateKey(err) {
		return ErrDuplicate
	}
	return err
}

// GetByID retrieves a student by id including the joined program code.
func (r *StudentRepo) GetByID(ctx context.Context, id uint64) (*model.Student, error) {
	const q = `SELECT ` + studentColumns + `
	           FROM students s
	           JOIN programs p ON p.id = s.program_id
	           WHERE s.id = ?`
	var s model.Student
	if err := scanStudent(r.db.QueryRowContext(ctx, q, id), &s); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return &s, nil
}

// ListByProgramAndSemester retrieves all students of one cohort
// ordered by roll number ascending.
func (r *StudentRepo) ListByProgramAndSemester(ctx context.Context, programID uint64, semester int) ([]model.Student, error) {
	const q = `SELECT ` + studentColumns + `
	           FROM students s
	           JOIN programs p ON p.id = s.program_id
	           WHERE s.program_id = ? AND s.semester = ?
	           ORDER BY s.roll_number`
	return r.list(ctx, q, programID, semester)
}

// ListByProgram retrieves all students of a program across semesters,
// ordered by semester then roll number.
func (r *StudentRepo) ListByProgram(ctx context.Context, programID uint64) ([]model.Student, error) {
	const q = `SELECT ` + studentColumns + `
	           FROM students s
	           JOIN programs p ON p.id = s.program_id
	           WHERE s.program_id = ?
	           ORDER BY s.semester, s.roll_number`
	return r.list(ctx, q, programID)
}

func (r *StudentRepo) list(ctx context.Context, q string, args ...any) ([]model.Student, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Student
	for rows.Next() {
		var s model.Student
		if err := scanStudent(rows, &s); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// CountByProgramAndSemester returns the number of students in one
// cohort. The capacity gate uses these counts before any student rows
// are loaded.
func (r *StudentRepo) CountByProgramAndSemester(ctx context.Context, programID uint64, semester int) (int, error) {
	const q = `SELECT COUNT(*) FROM students WHERE program_id = ? AND semester = ?`
	var n int
	err := r.db.QueryRowContext(ctx, q, programID, semester).Scan(&n)
	return n, err
}

// Update changes a student's mutable fields. Returns
// ErrStudentNotFound when the ID does not exist.
func (r *StudentRepo) Update(ctx context.Context, s *model.Student) error {
	const q = `UPDATE students
	           SET name = ?, semester = ?, roll_number = ?, enrolled_year = ?, updated_at = CURRENT_TIMESTAMP
	           WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, s.Name, s.Semester, s.RollNumber, s.EnrolledYear, s.ID)
	if err != nil {
		if isDuplicateKey(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrStudentNotFound
	}
	return nil
}

// Delete removes a student. Deletion is refused with ErrConflict while
// the student holds a seat in any plan, so generated plans never point
// at missing rows.
func (r *StudentRepo) Delete(ctx context.Context, id uint64) error {
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

	var seatCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM seat_assignments WHERE student_id = ?`, id).Scan(&seatCount); err != nil {
		return err
	}
	if seatCount > 0 {
		err = ErrConflict
		return err
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM students WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrStudentNotFound
		return err
	}
	return nil
}
