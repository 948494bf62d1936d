package handler // handler package contains admin student endpoints

import (
	"encoding/csv" // csv parses uploaded rosters
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/examplan/exam-seat-planner/internal/allocation"
	"github.com/examplan/exam-seat-planner/internal/model"
	"github.com/examplan/exam-seat-planner/internal/repository"
)

type studentBody struct {
	ProgramCode  int    `json:"program_code"`
	Name         string `json:"name"`
	Semester     int    `json:"semester"`
	RollNumber   int    `json:"roll_number"`
	EnrolledYear int    `json:"enrolled_year"`
}

func (b *studentBody) validate() error {
	b.Name = strings.TrimSpace(b.Name)
	if b.ProgramCode <= 0 || b.Name == "" || b.RollNumber <= 0 {
		return errors.New("program_code, name and roll_number are required and must be positive")
	}
	if _, err := allocation.ParseSemester(b.Semester); err != nil {
		return err
	}
	return nil
}

// CreateStudent handles POST /v1/students.
func (h *AdminHandler) CreateStudent(c echo.Context) error {
	var body studentBody
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := body.validate(); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	program, err := h.ProgramRepo.GetByCode(c.Request().Context(), body.ProgramCode)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "program not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	s := &model.Student{
		ProgramID:    program.ID,
		ProgramCode:  program.Code,
		Name:         body.Name,
		Semester:     body.Semester,
		RollNumber:   body.RollNumber,
		EnrolledYear: body.EnrolledYear,
	}
	if err := h.StudentRepo.Create(c.Request().Context(), s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "roll number already taken in this cohort"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create student"})
	}
	return c.JSON(http.StatusCreated, s)
}

// CreateStudentsBulk handles POST /v1/students/bulk and inserts a
// whole roster in one statement.
func (h *AdminHandler) CreateStudentsBulk(c echo.Context) error {
	var body struct {
		Students []studentBody `json:"students"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if len(body.Students) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "students list is empty"})
	}

	ctx := c.Request().Context()
	programIDs := map[int]uint64{} // program code -> id, resolved once per code
	rows := make([]model.Student, 0, len(body.Students))
	for i := range body.Students {
		b := &body.Students[i]
		if err := b.validate(); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("student %d: %v", i, err)})
		}
		pid, ok := programIDs[b.ProgramCode]
		if !ok {
			program, err := h.ProgramRepo.GetByCode(ctx, b.ProgramCode)
			if err != nil {
				if errors.Is(err, repository.ErrProgramNotFound) {
					return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("student %d: program %d not found", i, b.ProgramCode)})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
			}
			pid = program.ID
			programIDs[b.ProgramCode] = pid
		}
		rows = append(rows, model.Student{
			ProgramID:    pid,
			Name:         b.Name,
			Semester:     b.Semester,
			RollNumber:   b.RollNumber,
			EnrolledYear: b.EnrolledYear,
		})
	}

	if err := h.StudentRepo.CreateBulk(ctx, rows); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate roll number in a cohort"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk insert failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"inserted": len(rows)})
}

// ImportStudentsCSV handles POST /v1/students/import. It accepts a
// multipart file field "file" with the header
// program_code,name,semester,roll_number,enrolled_year and inserts all
// rows in one statement.
func (h *AdminHandler) ImportStudentsCSV(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file field is required"})
	}
	f, err := fileHeader.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "cannot open upload"})
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "empty csv"})
	}
	if len(header) < 5 || strings.ToLower(strings.TrimSpace(header[0])) != "program_code" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "expected header program_code,name,semester,roll_number,enrolled_year"})
	}

	ctx := c.Request().Context()
	programIDs := map[int]uint64{}
	var rows []model.Student
	line := 1
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: malformed csv", line)})
		}
		b := studentBody{Name: record[1]}
		if b.ProgramCode, err = strconv.Atoi(strings.TrimSpace(record[0])); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: bad program_code", line)})
		}
		if b.Semester, err = strconv.Atoi(strings.TrimSpace(record[2])); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: bad semester", line)})
		}
		if b.RollNumber, err = strconv.Atoi(strings.TrimSpace(record[3])); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: bad roll_number", line)})
		}
		if b.EnrolledYear, err = strconv.Atoi(strings.TrimSpace(record[4])); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: bad enrolled_year", line)})
		}
		if err := b.validate(); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("line %d: %v", line, err)})
		}
		pid, ok := programIDs[b.ProgramCode]
		if !ok {
			program, err := h.ProgramRepo.GetByCode(ctx, b.ProgramCode)
			if err != nil {
				if errors.Is(err, repository.ErrProgramNotFound) {
					return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("line %d: program %d not found", line, b.ProgramCode)})
				}
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
			}
			pid = program.ID
			programIDs[b.ProgramCode] = pid
		}
		rows = append(rows, model.Student{
			ProgramID:    pid,
			Name:         b.Name,
			Semester:     b.Semester,
			RollNumber:   b.RollNumber,
			EnrolledYear: b.EnrolledYear,
		})
	}
	if len(rows) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "no data rows in csv"})
	}

	if err := h.StudentRepo.CreateBulk(ctx, rows); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "duplicate roll number in a cohort"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "bulk insert failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"inserted": len(rows)})
}

// ListStudents handles GET /v1/programs/:id/students with an optional
// ?semester= filter.
func (h *AdminHandler) ListStudents(c echo.Context) error {
	programID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if _, err := h.ProgramRepo.GetByID(c.Request().Context(), programID); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "program not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var items []model.Student
	if raw := c.QueryParam("semester"); raw != "" {
		semester, err := strconv.Atoi(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid semester"})
		}
		if _, err := allocation.ParseSemester(semester); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		items, err = h.StudentRepo.ListByProgramAndSemester(c.Request().Context(), programID, semester)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	} else {
		items, err = h.StudentRepo.ListByProgram(c.Request().Context(), programID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// UpdateStudent handles PUT /v1/students/:id.
func (h *AdminHandler) UpdateStudent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.StudentRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrStudentNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var body struct {
		Name         *string `json:"name"`
		Semester     *int    `json:"semester"`
		RollNumber   *int    `json:"roll_number"`
		EnrolledYear *int    `json:"enrolled_year"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.Name != nil && strings.TrimSpace(*body.Name) != "" {
		cur.Name = strings.TrimSpace(*body.Name)
	}
	if body.Semester != nil {
		if _, err := allocation.ParseSemester(*body.Semester); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		cur.Semester = *body.Semester
	}
	if body.RollNumber != nil {
		if *body.RollNumber <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "roll_number must be positive"})
		}
		cur.RollNumber = *body.RollNumber
	}
	if body.EnrolledYear != nil {
		cur.EnrolledYear = *body.EnrolledYear
	}

	if err := h.StudentRepo.Update(c.Request().Context(), cur); err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		case errors.Is(err, repository.ErrDuplicate):
			return c.JSON(http.StatusConflict, echo.Map{"error": "roll number already taken in this cohort"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
		}
	}
	return c.JSON(http.StatusOK, cur)
}

// DeleteStudent handles DELETE /v1/students/:id. Students holding a
// seat in a generated plan cannot be deleted.
func (h *AdminHandler) DeleteStudent(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.StudentRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrStudentNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "student not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "student is seated in a generated plan"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
