package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/examplan/exam-seat-planner/internal/config"
	"github.com/examplan/exam-seat-planner/internal/model"
)

type stubUserStore struct {
	createdEmail string
	createdRole  string
}

func (s *stubUserStore) Create(_ context.Context, email, _, role string, _ int) (uint64, error) {
	s.createdEmail = email
	s.createdRole = role
	return 7, nil
}

func (s *stubUserStore) GetByEmail(context.Context, string) (model.User, error) {
	return model.User{}, sql.ErrNoRows
}

func (s *stubUserStore) GetByID(context.Context, uint64) (model.User, error) {
	return model.User{}, sql.ErrNoRows
}

type stubTokenStore struct{}

func (stubTokenStore) StoreRefresh(context.Context, uint64, string, time.Time) error {
	return nil
}

func (stubTokenStore) ValidateRefresh(context.Context, string) (uint64, error) {
	return 0, sql.ErrNoRows
}

func (stubTokenStore) RevokeByHash(context.Context, string) error { return nil }

func newTestAuthHandler(users userStore) *AuthHandler {
	return &AuthHandler{
		Cfg: config.Config{
			JWTSecret:      "test-secret",
			AccessTTLMin:   5,
			RefreshTTLDays: 1,
			BcryptCost:     4,
		},
		Users:  users,
		Tokens: stubTokenStore{},
	}
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRegisterAlwaysCreatesStaff(t *testing.T) {
	users := &stubUserStore{}
	h := newTestAuthHandler(users)
	e := echo.New()

	// A role in the body must not be honored, ADMIN least of all.
	c, rec := postJSON(e, "/v1/auth/register",
		`{"email":"Eve@Example.com","password":"pw","role":"ADMIN"}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusCreated, rec.Code)

	require.Equal(t, model.RoleStaff, users.createdRole)
	require.Equal(t, "eve@example.com", users.createdEmail)

	var resp authResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, model.RoleStaff, resp.User.Role)
	require.NotEmpty(t, resp.Access.Token)
	require.NotEmpty(t, resp.Refresh.Token)
}

func TestRegisterRequiresEmailAndPassword(t *testing.T) {
	users := &stubUserStore{}
	h := newTestAuthHandler(users)
	e := echo.New()

	c, rec := postJSON(e, "/v1/auth/register", `{"email":"","password":""}`)
	require.NoError(t, h.Register(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, users.createdRole)
}
