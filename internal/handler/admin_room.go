package handler // handler package contains admin room endpoints

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/examplan/exam-seat-planner/internal/model"
	"github.com/examplan/exam-seat-planner/internal/repository"
)

// CreateRoom handles POST /v1/rooms. SeatsPerBench and NumSides are
// optional; zero values fall back to the engine defaults (2 seats per
// bench, single side).
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var body struct {
		RoomNo        int `json:"room_no"`
		NumRows       int `json:"num_rows"`
		NumBenchCols  int `json:"num_bench_cols"`
		SeatsPerBench int `json:"seats_per_bench"`
		NumSides      int `json:"num_sides"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.RoomNo <= 0 || body.NumRows <= 0 || body.NumBenchCols <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "room_no, num_rows and num_bench_cols are required and must be positive"})
	}
	if body.SeatsPerBench < 0 || body.NumSides < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_per_bench and num_sides must not be negative"})
	}

	room := &model.Room{
		RoomNo:        body.RoomNo,
		NumRows:       body.NumRows,
		NumBenchCols:  body.NumBenchCols,
		SeatsPerBench: body.SeatsPerBench,
		NumSides:      body.NumSides,
	}
	if err := h.RoomRepo.Create(c.Request().Context(), room); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "room number already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "could not create room"})
	}
	return c.JSON(http.StatusCreated, room)
}

// ListRooms handles GET /v1/rooms. ?active=true filters to bookable rooms.
func (h *AdminHandler) ListRooms(c echo.Context) error {
	activeOnly := c.QueryParam("active") == "true"
	items, err := h.RoomRepo.List(c.Request().Context(), activeOnly)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

// GetRoom handles GET /v1/rooms/:id.
func (h *AdminHandler) GetRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	room, err := h.RoomRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}
	return c.JSON(http.StatusOK, room)
}

// UpdateRoom handles PUT /v1/rooms/:id. Geometry changes only affect
// future plan generations; existing plans keep the layout they were
// generated with until regenerated.
func (h *AdminHandler) UpdateRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	cur, err := h.RoomRepo.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "db error"})
	}

	var body struct {
		NumRows       *int  `json:"num_rows"`
		NumBenchCols  *int  `json:"num_bench_cols"`
		SeatsPerBench *int  `json:"seats_per_bench"`
		NumSides      *int  `json:"num_sides"`
		IsActive      *bool `json:"is_active"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if body.NumRows != nil {
		if *body.NumRows <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "num_rows must be greater than zero"})
		}
		cur.NumRows = *body.NumRows
	}
	if body.NumBenchCols != nil {
		if *body.NumBenchCols <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "num_bench_cols must be greater than zero"})
		}
		cur.NumBenchCols = *body.NumBenchCols
	}
	if body.SeatsPerBench != nil {
		if *body.SeatsPerBench < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seats_per_bench must not be negative"})
		}
		cur.SeatsPerBench = *body.SeatsPerBench
	}
	if body.NumSides != nil {
		if *body.NumSides < 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "num_sides must not be negative"})
		}
		cur.NumSides = *body.NumSides
	}
	if body.IsActive != nil {
		cur.IsActive = *body.IsActive
	}

	if err := h.RoomRepo.Update(c.Request().Context(), cur); err != nil {
		if errors.Is(err, repository.ErrRoomNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update failed"})
	}
	return c.JSON(http.StatusOK, cur)
}

// DeleteRoom handles DELETE /v1/rooms/:id. Rooms booked for an exam
// cannot be deleted.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.RoomRepo.Delete(c.Request().Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrRoomNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": "room not found"})
		case errors.Is(err, repository.ErrConflict):
			return c.JSON(http.StatusConflict, echo.Map{"error": "room is booked for an exam"})
		default:
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "delete failed"})
		}
	}
	return c.NoContent(http.StatusNoContent)
}
