package handler // handler defines http handlers

import (
	"strconv" // strconv converts strings to numeric types

	"github.com/labstack/echo/v4" // echo defines request context types

	"github.com/examplan/exam-seat-planner/internal/repository" // repository holds data access layer
	"github.com/examplan/exam-seat-planner/internal/service"    // service orchestrates plan generation
)

// AdminHandler bundles the repositories and the planner service behind
// the admin endpoints for master data and plan management.
type AdminHandler struct {
	ProgramRepo *repository.ProgramRepo     // ProgramRepo provides program persistence
	StudentRepo *repository.StudentRepo     // StudentRepo provides student persistence
	RoomRepo    *repository.RoomRepo        // RoomRepo provides room persistence
	ExamRepo    *repository.ExamRepo        // ExamRepo provides exam persistence
	PlanRepo    *repository.SeatingPlanRepo // PlanRepo provides seating plan persistence
	Planner     *service.Planner            // Planner runs allocation and owns the plan lifecycle
}

// NewAdminHandler constructs a new AdminHandler and panics if any dependency is nil.
func NewAdminHandler(programs *repository.ProgramRepo, students *repository.StudentRepo, rooms *repository.RoomRepo, exams *repository.ExamRepo, plans *repository.SeatingPlanRepo, planner *service.Planner) *AdminHandler {
	if programs == nil || students == nil || rooms == nil || exams == nil || plans == nil || planner == nil {
		panic("nil dependency passed to NewAdminHandler")
	}
	return &AdminHandler{
		ProgramRepo: programs,
		StudentRepo: students,
		RoomRepo:    rooms,
		ExamRepo:    exams,
		PlanRepo:    plans,
		Planner:     planner,
	}
}

// pathID parses the named path parameter as a uint64 ID.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
