package main

import (
	"context"
	"fmt"
	"kucukaslan/timeapp/api"
	"kucukaslan/timeapp/domain"
	"kucukaslan/timeapp/healthcheck"
	"kucukaslan/timeapp/services"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kucukaslan/timeapp/buildinfo"
	"kucukaslan/timeapp/config"
	"kucukaslan/timeapp/database"

	_ "kucukaslan/timeapp/docs" // Import generated docs
)

// @title Time App API
// @version 1.0
// @description World clock, accounts and visit counting service backed by PostgreSQL, Redis and ClickHouse
// @BasePath /
// @schemes http

const startupTimeout = 10 * time.Second

func main() {
	// Load configuration
	cfg := config.Load()

	// Container liveness probe: `server healthcheck`
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		os.Exit(healthcheck.Run(cfg, os.Stderr))
	}

	// Set application start time for accurate uptime tracking
	buildinfo.SetStartTime(time.Now())

	// Log build information
	info := buildinfo.GetInfo()
	log.Printf("Starting application\nVersion: %s, Commit: %s, BuildDate: %s, GoVersion: %s, Hostname: %s, UID: %d",
		info.Version, info.Commit, info.BuildDate, info.GoVersion, info.Hostname, info.UID)
	if buildinfo.RunningAsRoot() {
		log.Println("WARNING: running as root, the container image is meant to run as an unprivileged user")
	}

	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.JWTSecret == "change_me" {
		log.Println("WARNING: JWT_SECRET is the default value, set it in production")
	}

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	// PostgreSQL and Redis are optional: the service runs without them and
	// PostgreSQL is reconnected on demand
	if err := database.InitPostgres(ctx, &cfg.Postgres); err != nil {
		log.Printf("PostgreSQL unavailable at startup: %v", err)
	}
	if err := database.InitRedis(ctx, &cfg.Redis); err != nil {
		log.Printf("Redis unavailable, counting visits in memory: %v", err)
	}
	if err := database.InitClickHouse(ctx, &cfg.ClickHouse); err != nil {
		log.Printf("ClickHouse unavailable, visit analytics disabled: %v", err)
	}
	cancel()

	var (
		batcher   *services.VisitBatcher
		recorder  domain.VisitRecorder
		analytics domain.VisitAnalytics
	)
	if clickHouseDB := database.GetClickHouseDB(); clickHouseDB.Connected() {
		batcher = services.NewVisitBatcher(
			cfg.ClickHouse.BufferChannelCapacity,
			cfg.ClickHouse.BatchSize,
			time.Duration(cfg.ClickHouse.FlushIntervalSeconds)*time.Second,
			clickHouseDB,
		)
		batcher.Start()
		recorder, analytics = batcher, clickHouseDB
	}

	timeService, err := services.NewTimeService()
	if err != nil {
		log.Fatalf("Failed to initialize TimeService: %v", err)
	}

	authService, err := services.NewAuthService(database.GetPostgres(), cfg.JWTSecret)
	if err != nil {
		log.Fatalf("Failed to initialize AuthService: %v", err)
	}

	visitService := services.NewVisitService(database.GetRedisCache(), database.GetPostgres(), recorder, analytics)

	healthHandler := &api.HealthHandler{
		Postgres:   api.Dependency{Enabled: cfg.Postgres.DSN != "", Checker: database.GetPostgres()},
		Redis:      api.Dependency{Enabled: cfg.Redis.URL != "", Checker: database.GetRedisCache()},
		ClickHouse: api.Dependency{Enabled: cfg.ClickHouse.Enabled, Checker: database.GetClickHouseDB()},
	}
	if batcher != nil {
		healthHandler.Pipeline = batcher
	}

	app := api.NewApp(api.Handlers{
		Health: healthHandler,
		Auth:   api.NewAuthHandler(authService, cfg.SecureCookies),
		Visit:  api.NewVisitHandler(visitService),
		Time:   api.NewTimeHandler(timeService),
	})

	// Listen from a different goroutine
	go func() {
		log.Printf("Listening on %s", cfg.ListenAddr())
		if err := app.Listen(cfg.ListenAddr()); err != nil {
			log.Panic(err)
		}
	}()

	c := make(chan os.Signal, 1)                    // Create channel to signify a signal being sent
	signal.Notify(c, os.Interrupt, syscall.SIGTERM) // When an interrupt or termination signal is sent, notify the channel

	<-c // This blocks the main thread until an interrupt is received
	fmt.Println("Gracefully shutting down...")
	_ = app.Shutdown()

	fmt.Println("Running cleanup tasks...")

	// Flush visits still waiting for ClickHouse
	if batcher != nil {
		if err := batcher.Shutdown(); err != nil {
			log.Printf("Error shutting down visit batcher: %v", err)
		}
	}

	// Close database connections
	if err := database.CloseClickHouse(); err != nil {
		log.Printf("Error closing ClickHouse: %v", err)
	}

	if err := database.CloseRedis(); err != nil {
		log.Printf("Error closing Redis: %v", err)
	}

	if err := database.ClosePostgres(); err != nil {
		log.Printf("Error closing PostgreSQL: %v", err)
	}

	fmt.Println("Fiber was successful shutdown.")
}
