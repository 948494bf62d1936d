package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/examplan/exam-seat-planner/internal/handler"    // admin handlers
	"github.com/examplan/exam-seat-planner/internal/middleware" // JWT + role middlewares
	"github.com/examplan/exam-seat-planner/internal/model"
)

// RegisterAdmin registers the master data and planning endpoints under
// /v1. Mutations require a valid JWT with the ADMIN role; plan reads
// are also open to STAFF.
func RegisterAdmin(e *echo.Echo, h *handler.AdminHandler, jwtSecret string) {
	// Attach middlewares at group construction time for clarity.
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Programs ----
	g.POST("/programs", h.CreateProgram)
	g.GET("/programs", h.ListPrograms)
	g.GET("/programs/:id", h.GetProgram)
	g.PUT("/programs/:id", h.UpdateProgram)
	g.PATCH("/programs/:id", h.UpdateProgram)
	g.DELETE("/programs/:id", h.DeleteProgram)

	// ---- Students ----
	g.POST("/students", h.CreateStudent)
	g.POST("/students/bulk", h.CreateStudentsBulk)
	g.POST("/students/import", h.ImportStudentsCSV)
	g.GET("/programs/:id/students", h.ListStudents)
	g.PUT("/students/:id", h.UpdateStudent)
	g.PATCH("/students/:id", h.UpdateStudent)
	g.DELETE("/students/:id", h.DeleteStudent)

	// ---- Rooms ----
	g.POST("/rooms", h.CreateRoom)
	g.GET("/rooms", h.ListRooms)
	g.GET("/rooms/:id", h.GetRoom)
	g.PUT("/rooms/:id", h.UpdateRoom)
	g.PATCH("/rooms/:id", h.UpdateRoom)
	g.DELETE("/rooms/:id", h.DeleteRoom)

	// ---- Exams ----
	g.POST("/exams", h.CreateExam)
	g.GET("/exams", h.ListExams)
	g.GET("/exams/:id", h.GetExam)
	g.DELETE("/exams/:id", h.DeleteExam)

	// ---- Seating plans (mutations) ----
	g.POST("/exams/:id/plan", h.GeneratePlan)
	g.DELETE("/exams/:id/plan", h.ClearPlan)

	// Plan reads are shared with staff so invigilators can pull the
	// charts without an admin account.
	r := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleAdmin, model.RoleStaff),
	)
	r.GET("/exams/:id/plan", h.GetPlan)
	r.GET("/exams/:id/plan/statistics", h.PlanStatistics)
	r.GET("/exams/:id/plan/render", h.RenderPlan)
}
