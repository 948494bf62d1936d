package repository // repository holds data access logic for domain entities

import (
	"context"      // context is used to manage deadlines and cancellation
	"database/sql" // sql provides DB primitives
	"errors"       // errors package allows sentinel error definitions

	"github.com/examplan/exam-seat-planner/internal/model"
)

// ErrProgramNotFound is returned when a program lookup fails.
var ErrProgramNotFound = errors.New("program not found")

// ProgramRepo provides methods to create and retrieve academic
// programs. It embeds a database handle to perform queries and
// commands.
type ProgramRepo struct {
	db *sql.DB // db is the underlying database connection
}

// NewProgramRepo constructs a ProgramRepo with the given DB handle.
func NewProgramRepo(db *sql.DB) *ProgramRepo {
	return &ProgramRepo{db: db}
}

// Create inserts a new program. The program must have Code and Name
// set. After insert the ID and timestamp fields are populated from the
// stored row. A duplicate code surfaces as ErrDuplicate.
func (r *ProgramRepo) Create(ctx context.Context, p *model.Program) error {
	const qInsert = `INSERT INTO programs (code, name) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, qInsert, p.Code, p.Name)
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
	p.ID = uint64(id)

	const qSelect = `SELECT id, code, name, created_at, updated_at FROM programs WHERE id = ?`
	return r.db.QueryRowContext(ctx, qSelect, p.ID).
		Scan(&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt)
}

// GetByID retrieves a program by its ID. It returns ErrProgramNotFound
// when no row is found.
func (r *ProgramRepo) GetByID(ctx context.Context, id uint64) (*model.Program, error) {
	const q = `SELECT id, code, name, created_at, updated_at FROM programs WHERE id = ?`
	var p model.Program
	err := r.db.QueryRowContext(ctx, q, id).Scan(&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &p, nil
}

// GetByCode retrieves a program by its numeric code. It returns
// ErrProgramNotFound when no row is found.
func (r *ProgramRepo) GetByCode(ctx context.Context, code int) (*model.Program, error) {
	const q = `SELECT id, code, name, created_at, updated_at FROM programs WHERE code = ?`
	var p model.Program
	err := r.db.QueryRowContext(ctx, q, code).Scan(&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgramNotFound
		}
		return nil, err
	}
	return &p, nil
}

// List returns all programs ordered by code ascending. When no
// programs exist it returns an empty slice and nil error.
func (r *ProgramRepo) List(ctx context.Context) ([]model.Program, error) {
	const q = `SELECT id, code, name, created_at, updated_at FROM programs ORDER BY code`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Program
	for rows.Next() {
		var p model.Program
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Update changes the name of a program. Returns ErrProgramNotFound
// when the ID does not exist.
func (r *ProgramRepo) Update(ctx context.Context, id uint64, name string) error {
	const q = `UPDATE programs SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, name, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrProgramNotFound
	}
	return nil
}

// Delete removes a program. Deletion is refused with ErrConflict while
// the program still has students or is attached to an exam; the checks
// and the delete run in one transaction so no dependent row can appear
// in between.
func (r *ProgramRepo) Delete(ctx context.Context, id uint64) error {
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

	var studentCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM students WHERE program_id = ?`, id).Scan(&studentCount); err != nil {
		return err
	}
	if studentCount > 0 {
		err = ErrConflict
		return err
	}
	var examCount int
	if err = tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM exam_programs WHERE program_id = ?`, id).Scan(&examCount); err != nil {
		return err
	}
	if examCount > 0 {
		err = ErrConflict
		return err
	}

	var res sql.Result
	res, err = tx.ExecContext(ctx, `DELETE FROM programs WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		err = ErrProgramNotFound
		return err
	}
	return nil
}
