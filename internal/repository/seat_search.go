package repository

import (
	"context"

	"github.com/examplan/exam-seat-planner/internal/model"
)

// SeatSearchQuery defines filters & pagination for searching seat
// assignments across exams. DateFrom/DateTo restrict to exams whose
// window overlaps the range; zero filters are skipped.
type SeatSearchQuery struct {
	DateFrom    string // inclusive lower bound on the exam window, "2006-01-02"
	DateTo      string // inclusive upper bound on the exam window
	ProgramCode int
	Semester    int
	RollNumber  int
	Page        int
	PageSize    int
}

// Search returns seat details matching the query plus the total row
// count for pagination. Results are ordered by exam start date, room
// number and seat position.
func (r *SeatingPlanRepo) Search(ctx context.Context, q SeatSearchQuery) ([]model.SeatDetail, int64, error) {
	where := []string{}
	args := []any{}

	if q.DateFrom != "" {
		where = append(where, "e.end_date >= ?")
		args = append(args, q.DateFrom)
	}
	if q.DateTo != "" {
		where = append(where, "e.start_date <= ?")
		args = append(args, q.DateTo)
	}
	if q.ProgramCode != 0 {
		where = append(where, "p.code = ?")
		args = append(args, q.ProgramCode)
	}
	if q.Semester != 0 {
		where = append(where, "s.semester = ?")
		args = append(args, q.Semester)
	}
	if q.RollNumber != 0 {
		where = append(where, "s.roll_number = ?")
		args = append(args, q.RollNumber)
	}

	cond := "1=1"
	if len(where) > 0 {
		cond = where[0]
		for _, w := range where[1:] {
			cond += " AND " + w
		}
	}

	var total int64
	countSQL := `SELECT COUNT(*)
		FROM seat_assignments sa
		JOIN exams e    ON e.id = sa.exam_id
		JOIN rooms rm   ON rm.id = sa.room_id
		JOIN students s ON s.id = sa.student_id
		JOIN programs p ON p.id = s.program_id
		WHERE ` + cond
	if err := r.db.QueryRowContext(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	limit := q.PageSize
	offset := (q.Page - 1) * q.PageSize

	dataSQL := `SELECT
			sa.exam_id,
			e.name,
			rm.room_no,
			sa.side,
			sa.row_index,
			sa.lane,
			s.id,
			s.name,
			p.code,
			s.semester,
			s.roll_number,
			s.enrolled_year
		FROM seat_assignments sa
		JOIN exams e    ON e.id = sa.exam_id
		JOIN rooms rm   ON rm.id = sa.room_id
		JOIN students s ON s.id = sa.student_id
		JOIN programs p ON p.id = s.program_id
		WHERE ` + cond + `
		ORDER BY e.start_date ASC, rm.room_no, sa.side, sa.row_index, sa.lane
		LIMIT ? OFFSET ?`

	argsData := append(append([]any{}, args...), limit, offset)

	rows, err := r.db.QueryContext(ctx, dataSQL, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.SeatDetail, 0, limit)
	for rows.Next() {
		var d model.SeatDetail
		if err := rows.Scan(
			&d.ExamID,
			&d.ExamName,
			&d.RoomNo,
			&d.Side,
			&d.RowIndex,
			&d.Lane,
			&d.StudentID,
			&d.StudentName,
			&d.ProgramCode,
			&d.Semester,
			&d.RollNumber,
			&d.EnrolledYear,
		); err != nil {
			return nil, 0, err
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}
