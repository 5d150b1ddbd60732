package main // Entry point package

import (
	"log/slog" // Structured logging
	"os"       // Process exit and stdout

	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/hotel-reservation/internal/booking"    // Booking core (validation + commit)
	"github.com/iliyamo/hotel-reservation/internal/config"     // Internal config loader
	"github.com/iliyamo/hotel-reservation/internal/handler"    // HTTP handlers
	"github.com/iliyamo/hotel-reservation/internal/middleware" // Rate limiting middleware
	"github.com/iliyamo/hotel-reservation/internal/queue"      // Booking event consumer
	"github.com/iliyamo/hotel-reservation/internal/router"     // Internal router setup
	"github.com/iliyamo/hotel-reservation/internal/store"      // In-memory ledger store
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil)) // JSON logs on stdout
	slog.SetDefault(logger)                                 // Legacy log.Printf output routes here too

	cfg := config.Load() // Load environment config

	st := store.New()                     // Fresh in-memory ledger
	svc := booking.NewService(st, logger) // Booking core around the store

	rdb := config.NewRedisClient() // May be nil; the limiter degrades to pass-through
	if rdb == nil {
		logger.Warn("redis unavailable, rate limiting disabled")
	}
	limiter := middleware.NewRateLimiter(config.LoadRateLimitConfig(), rdb)

	e := echo.New() // Create Echo instance
	router.RegisterRoutes(e,
		handler.NewAdminHandler(svc),
		handler.NewBookingHandler(svc, cfg.AMQPURL),
		handler.NewPublicHandler(svc),
		limiter) // Register application routes; /v1 sits behind the limiter

	if cfg.AMQPURL != "" { // Audit-log consumer runs only when a broker is configured
		go func() {
			if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
				logger.Error("booking consumer stopped", "error", err)
			}
		}()
	} else {
		logger.Info("no broker configured, eventing disabled")
	}

	addr := ":" + cfg.Port
	logger.Info("listening", "addr", addr, "env", cfg.Env) // Startup info

	if err := e.Start(addr); err != nil { // Start HTTP server
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
