package handler // handler package contains admin program endpoints

import (
	"errors"   // errors package for comparing sentinels
	"net/http" // http defines status code constants
	"strings"  // strings manipulates and trims text

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/examplan/exam-seat-planner/internal/model"
	"github.com/examplan/exam-seat-planner/internal/repository"
)

// CreateProgram handles POST /v1/programs.
func (h *AdminHandler) CreateProgram(c echo.Context) error {
	var body struct {
		Code int    `json:"code"`
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Code <= 0 || body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "code and name are required; code must be positive"})
	}

	p := &model.Program{Code: body.Code, Name: body.Name}
	if err := h.ProgramRepo.Create(c.Request().Context(), p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "program code already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create program"})
	}
	return c.JSON(http.StatusCreated, p)
}

// ListPrograms handles GET /v1/programs.
func (h *AdminHandler) ListPrograms(c echo.Context) error {
	items, err := h.ProgramRepo.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetProgram handles GET /v1/programs/:id.
func (h *AdminHandler) GetProgram(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	p, err := h.ProgramRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "program not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, p)
}

// UpdateProgram handles PUT /v1/programs/:id. Only the name may change;
// the code is referenced from seat labels and stays fixed.
func (h *AdminHandler) UpdateProgram(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	body.Name = strings.TrimSpace(body.Name)
	if body.Name == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name is required"})
	}
	if err := h.ProgramRepo.Update(c.Request().Context(), id, body.Name); err != nil {
		if errors.Is(err, repository.ErrProgramNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "program not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	fresh, _ := h.ProgramRepo.GetByID(c.Request().Context(), id)
	return c.JSON(http.StatusOK, fresh)
}

// DeleteProgram handles DELETE /v1/programs/:id. Programs with
// students or exam bookings cannot be deleted.
func (h *AdminHandler) DeleteProgram(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.ProgramRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrProgramNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "program not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "program still has students or exams"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
