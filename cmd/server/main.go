package main // Entry point package

import (
	"log" // Logging library

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/examplan/exam-seat-planner/internal/config"
	"github.com/examplan/exam-seat-planner/internal/database"
	"github.com/examplan/exam-seat-planner/internal/handler"
	"github.com/examplan/exam-seat-planner/internal/middleware"
	"github.com/examplan/exam-seat-planner/internal/queue"
	"github.com/examplan/exam-seat-planner/internal/repository"
	"github.com/examplan/exam-seat-planner/internal/router"
	"github.com/examplan/exam-seat-planner/internal/service"
)

func main() {
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	// Redis backs the response cache and rate limiting. A nil client
	// disables both and the API keeps working without them.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, cache and rate limiting disabled")
	}

	// Repositories
	programRepo := repository.NewProgramRepo(db)
	studentRepo := repository.NewStudentRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	examRepo := repository.NewExamRepo(db)
	planRepo := repository.NewSeatingPlanRepo(db)
	userRepo := repository.NewUserRepo(db)
	tokenRepo := repository.NewTokenRepo(db)

	// Services and handlers
	planner := service.NewPlanner(examRepo, roomRepo, studentRepo, planRepo)
	authHandler := handler.NewAuthHandler(cfg, userRepo, tokenRepo)
	adminHandler := handler.NewAdminHandler(programRepo, studentRepo, roomRepo, examRepo, planRepo, planner)
	searchHandler := handler.NewSearchHandler(planRepo)

	// Consume plan.generated events in the background; the consumer
	// reconnects on its own when the broker drops.
	go func() {
		if err := queue.StartPlanConsumer(); err != nil {
			log.Printf("plan consumer stopped: %v", err)
		}
	}()

	e := echo.New()
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	router.RegisterRoutes(e)
	router.RegisterAuth(e, authHandler, cfg.JWTSecret)
	router.RegisterAdmin(e, adminHandler, cfg.JWTSecret)
	// The public seat search is the hottest read path; serve it through
	// the Redis response cache.
	router.RegisterPublic(e, searchHandler, middleware.NewRedisCache(config.LoadCacheConfig(), rdb))

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
