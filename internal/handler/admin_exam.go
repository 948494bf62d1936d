package handler // handler package contains admin exam endpoints

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/examplan/exam-seat-planner/internal/allocation"
	"github.com/examplan/exam-seat-planner/internal/model"
	"github.com/examplan/exam-seat-planner/internal/repository"
	"github.com/examplan/exam-seat-planner/internal/service"
)

const dateLayout = "2006-01-02"

// CreateExam handles POST /v1/exams. An exam names its cohorts by
// program code and books rooms by ID; both must be free of conflicts
// in the exam window.
func (h *AdminHandler) CreateExam(c echo.Context) error {
	var body struct {
		Name    string `json:"name"`
		Start   string `json:"start_date"`
		End     string `json:"end_date"`
		Cohorts []struct {
			ProgramCode int `json:"program_code"`
			Semester    int `json:"semester"`
		} `json:"cohorts"`
		RoomIDs []uint64 `json:"room_ids"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" || len(body.Cohorts) == 0 || len(body.RoomIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, cohorts and room_ids are required"})
	}
	start, err := time.Parse(dateLayout, body.Start)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_date must be YYYY-MM-DD"})
	}
	end, err := time.Parse(dateLayout, body.End)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must be YYYY-MM-DD"})
	}
	if end.Before(start) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "end_date must not be before start_date"})
	}

	ctx := c.Request().Context()

	cohorts := make([]model.ExamProgram, 0, len(body.Cohorts))
	seen := map[[2]int]bool{}
	for i, raw := range body.Cohorts {
		if _, err := allocation.ParseSemester(raw.Semester); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("cohort %d: %v", i, err)})
		}
		key := [2]int{raw.ProgramCode, raw.Semester}
		if seen[key] {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": fmt.Sprintf("cohort %d: duplicate program/semester", i)})
		}
		seen[key] = true
		program, err := h.ProgramRepo.GetByCode(ctx, raw.ProgramCode)
		if err != nil {
			if errors.Is(err, repository.ErrProgramNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("program %d not found", raw.ProgramCode)})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		cohorts = append(cohorts, model.ExamProgram{
			ProgramID:   program.ID,
			ProgramCode: program.Code,
			Semester:    raw.Semester,
		})
	}

	for _, roomID := range body.RoomIDs {
		room, err := h.RoomRepo.GetByID(ctx, roomID)
		if err != nil {
			if errors.Is(err, repository.ErrRoomNotFound) {
				return c.JSON(http.StatusNotFound, echo.Map{"error": fmt.Sprintf("room %d not found", roomID)})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
		if !room.IsActive {
			return c.JSON(http.StatusConflict, echo.Map{"error": fmt.Sprintf("room %d is not active", room.RoomNo)})
		}
	}

	exam := &model.Exam{Name: body.Name, StartDate: start, EndDate: end}
	if err := h.Planner.CreateExam(ctx, exam, cohorts, body.RoomIDs); err != nil {
		var capErr *allocation.CapacityError
		switch {
		case errors.Is(err, service.ErrRoomBooked):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.Is(err, service.ErrCohortBusy):
			return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
		case errors.As(err, &capErr):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":     "students exceed room capacity",
				"needed":    capErr.Needed,
				"available": capErr.Available,
				"deficit":   capErr.Deficit(),
				"breakdown": capErr.Breakdown,
			})
		case errors.Is(err, allocation.ErrNoEligibleStudents):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no students in the exam's cohorts"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create exam"})
		}
	}
	return c.JSON(http.StatusCreated, exam)
}

// ListExams handles GET /v1/exams.
func (h *AdminHandler) ListExams(c echo.Context) error {
	items, err := h.ExamRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetExam handles GET /v1/exams/:id and includes cohorts and booked rooms.
func (h *AdminHandler) GetExam(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	exam, err := h.ExamRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	cohorts, err := h.ExamRepo.ListCohorts(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	rooms, err := h.RoomRepo.ListByExam(ctx, id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"exam":    exam,
		"cohorts": cohorts,
		"rooms":   rooms,
	})
}

// DeleteExam handles DELETE /v1/exams/:id. The exam's plan and join
// rows go with it.
func (h *AdminHandler) DeleteExam(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ExamRepo.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, repository.ErrExamNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
