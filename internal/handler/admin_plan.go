package handler // handler package contains seating plan endpoints

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/examplan/exam-seat-planner/internal/allocation"
	"github.com/examplan/exam-seat-planner/internal/service"
)

// GeneratePlan handles POST /v1/exams/:id/plan. The body selects the
// strategy ("lane" by default, "risk" for the scored fill) and may
// carry a shuffle seed for a reproducible randomized program rotation.
// Regenerating replaces the previous plan atomically.
func (h *AdminHandler) GeneratePlan(c echo.Context) error {
	examID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Strategy string `json:"strategy"`
		Seed     *int64 `json:"seed"`
	}
	// Body is optional; an empty body means default strategy, no shuffle.
	_ = c.Bind(&body)

	res, err := h.Planner.GeneratePlan(c.Request().Context(), examID, body.Strategy, body.Seed)
	if err != nil {
		var capErr *allocation.CapacityError
		switch {
		case errors.As(err, &capErr):
			return c.JSON(http.StatusConflict, echo.Map{
				"error":     "students exceed room capacity",
				"needed":    capErr.Needed,
				"available": capErr.Available,
				"deficit":   capErr.Deficit(),
				"breakdown": capErr.Breakdown,
			})
		case errors.Is(err, allocation.ErrUnknownStrategy):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		case errors.Is(err, allocation.ErrNoEligibleStudents):
			return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": "no students in the exam's cohorts"})
		case service.IsNotFound(err):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "plan generation failed"})
		}
	}
	return c.JSON(http.StatusCreated, res)
}

// GetPlan handles GET /v1/exams/:id/plan and returns the persisted
// seat details in canonical order.
func (h *AdminHandler) GetPlan(c echo.Context) error {
	examID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	details, err := h.Planner.Plan(c.Request().Context(), examID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPlan):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no plan generated"})
		case service.IsNotFound(err):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return c.JSON(http.StatusOK, echo.Map{"items": details})
}

// ClearPlan handles DELETE /v1/exams/:id/plan.
func (h *AdminHandler) ClearPlan(c echo.Context) error {
	examID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Planner.ClearPlan(c.Request().Context(), examID); err != nil {
		if service.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "clear failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// PlanStatistics handles GET /v1/exams/:id/plan/statistics. The
// summary and violation list are recomputed from the persisted plan;
// an exam without a plan reports zero occupancy rather than 404.
func (h *AdminHandler) PlanStatistics(c echo.Context) error {
	examID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	stats, violations, err := h.Planner.Statistics(c.Request().Context(), examID)
	if err != nil {
		if service.IsNotFound(err) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"statistics": stats,
		"violations": violations,
	})
}

// RenderPlan handles GET /v1/exams/:id/plan/render and returns the
// plain-text seating charts, one per room.
func (h *AdminHandler) RenderPlan(c echo.Context) error {
	examID, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	out, err := h.Planner.RenderPlan(c.Request().Context(), examID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoPlan):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "no plan generated"})
		case service.IsNotFound(err):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "exam not found"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
		}
	}
	return c.String(http.StatusOK, out)
}
