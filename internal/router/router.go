package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // import the Echo web framework to handle routing

	"github.com/examplan/exam-seat-planner/internal/handler"    // import the handlers that implement business logic
	"github.com/examplan/exam-seat-planner/internal/middleware" // import middleware for JWT authentication and role enforcement
	"github.com/examplan/exam-seat-planner/internal/model"
)

// RegisterRoutes registers routes that do not require authentication on
// the provided Echo instance. Currently it exposes only a health check
// used by load balancers and monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers all authentication-related routes and applies
// the necessary middleware. Unauthenticated operations live under
// /v1/auth, while protected endpoints live under /v1.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	// Operations that do not require an existing session: register,
	// login, refresh, logout by refresh token.
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/logout", a.Logout)

	// Any authenticated user may inspect their own session.
	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.Use(middleware.RequireRole(model.RoleAdmin, model.RoleStaff))
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated seat search endpoint.
// Students look up their own seat here, so the route carries no JWT or
// role middleware. Extra middlewares (response cache, rate limiting)
// are attached when provided.
func RegisterPublic(e *echo.Echo, s *handler.SearchHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/v1/seats/search", s.SearchSeats, mw...)
}
