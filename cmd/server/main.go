package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rdharshinir/student-app/internal/config"
	"github.com/rdharshinir/student-app/internal/database"
	"github.com/rdharshinir/student-app/internal/handler"
	"github.com/rdharshinir/student-app/internal/ingest"
	appmw "github.com/rdharshinir/student-app/internal/middleware"
	"github.com/rdharshinir/student-app/internal/queue"
	"github.com/rdharshinir/student-app/internal/repository"
	"github.com/rdharshinir/student-app/internal/router"
	queue_publisher "github.com/rdharshinir/student-app/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	admins := repository.NewAdminRepo(db)
	if err := admins.Upsert(ctx, cfg.AdminUser, cfg.AdminPass); err != nil {
		log.Fatalf("admin upsert: %v", err)
	}
	log.Printf("default admin ensured: username=%s", cfg.AdminUser)

	seating := repository.NewSeatingRepo(db)

	var worker *ingest.Worker
	if cfg.WorkerCmd != "" {
		worker = &ingest.Worker{
			Command: cfg.WorkerCmd,
			DSN:     database.DSN(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName),
		}
	}
	ingestSvc := ingest.NewService(seating, ingest.CSVParser{}, worker, cfg.UploadDir)

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Printf("redis unavailable; rate limiting disabled")
	}
	limit := appmw.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	// Audit consumer for ingest events; reconnects on its own.
	go func() {
		if err := queue.StartIngestConsumer(); err != nil {
			log.Printf("ingest consumer stopped: %v", err)
		}
	}()

	studentH := &handler.StudentHandler{Seating: seating}
	adminH := &handler.AdminHandler{
		Admins:  admins,
		Seating: seating,
		Ingest:  ingestSvc,
		Publish: queue_publisher.PublishSeatingIngested,
	}

	e := echo.New()
	router.RegisterRoutes(e, cfg, studentH, adminH, limit)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
