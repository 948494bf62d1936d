package handler // handler package contains the public seat search endpoint

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/examplan/exam-seat-planner/internal/repository"
)

// SearchHandler serves the public seat lookup so students can find
// their seat without an account.
type SearchHandler struct {
	Plans *repository.SeatingPlanRepo
}

func NewSearchHandler(plans *repository.SeatingPlanRepo) *SearchHandler {
	return &SearchHandler{Plans: plans}
}

// SearchSeats handles GET /v1/seats/search. Filters: date_from,
// date_to (YYYY-MM-DD, matched against the exam window), program,
// semester, roll. Paginated with page/page_size.
func (h *SearchHandler) SearchSeats(c echo.Context) error {
	q := repository.SeatSearchQuery{
		DateFrom: c.QueryParam("date_from"),
		DateTo:   c.QueryParam("date_to"),
		Page:     1,
		PageSize: 50,
	}
	var err error
	if raw := c.QueryParam("program"); raw != "" {
		if q.ProgramCode, err = strconv.Atoi(raw); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid program"})
		}
	}
	if raw := c.QueryParam("semester"); raw != "" {
		if q.Semester, err = strconv.Atoi(raw); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid semester"})
		}
	}
	if raw := c.QueryParam("roll"); raw != "" {
		if q.RollNumber, err = strconv.Atoi(raw); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid roll"})
		}
	}
	if raw := c.QueryParam("page"); raw != "" {
		if q.Page, err = strconv.Atoi(raw); err != nil || q.Page < 1 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid page"})
		}
	}
	if raw := c.QueryParam("page_size"); raw != "" {
		if q.PageSize, err = strconv.Atoi(raw); err != nil || q.PageSize < 1 || q.PageSize > 200 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid page_size"})
		}
	}

	items, total, err := h.Plans.Search(c.Request().Context(), q)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"items":     items,
		"total":     total,
		"page":      q.Page,
		"page_size": q.PageSize,
	})
}
