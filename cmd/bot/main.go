package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	appService "countdown/internal/application/service"
	"countdown/internal/config"
	"countdown/internal/infrastructure/database/sqlite"
	lineClient "countdown/internal/infrastructure/line"
	"countdown/internal/infrastructure/scheduler"
	"countdown/internal/interfaces/api/handler"
	"countdown/internal/interfaces/api/router"
	"countdown/internal/interfaces/bot"
	appLogger "countdown/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
	"gorm.io/gorm"
)

func gracefulShutdown(apiServer *http.Server, schedulerSvc appService.SchedulerService, db *gorm.DB, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Listen for the interrupt signal.
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the scheduler first so no batch starts mid-shutdown
	log.Println("Stopping scheduler...")
	schedulerSvc.Stop()
	log.Println("Scheduler stopped.")

	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	// The context gives the server 5 seconds to finish in-flight requests
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")

	// Notify the main goroutine that the shutdown is complete
	done <- true
}

func main() {
	// --- Initialization ---
	appLog := appLogger.New()
	appLog.Info("Logger initialized.")

	// Invalid TIMEZONE or DAILY_REMINDER_TIME prevents startup.
	cfg, err := config.Load()
	if err != nil {
		appLog.Error("Invalid configuration", err)
		os.Exit(1)
	}
	appLog.Info(fmt.Sprintf("Configuration loaded: timezone=%s, daily reminder at %02d:%02d",
		cfg.Timezone, cfg.ReminderHour, cfg.ReminderMinute))

	// --- Infrastructure ---
	db, err := sqlite.NewDB(cfg.DatabaseURL)
	if err != nil {
		appLog.Error("Failed to initialize database", err)
		os.Exit(1)
	}
	countdownRepo := sqlite.NewCountdownRepository(db)
	ownerRepo := sqlite.NewOwnerRepository(db)
	appLog.Info("Database and repositories initialized.")

	line, err := lineClient.NewClient(appLog)
	if err != nil {
		appLog.Error("Failed to initialize LINE client", err)
		os.Exit(1)
	}
	cronScheduler := scheduler.NewScheduler(cfg.Location, appLog)

	// --- Application Services ---
	ownerSvc := appService.NewOwnerService(ownerRepo, countdownRepo, cfg.Location, appLog)
	countdownSvc := appService.NewCountdownService(countdownRepo, ownerSvc, appLog)
	schedulerSvc := appService.NewSchedulerService(cronScheduler, countdownRepo, ownerSvc, line,
		cfg.ReminderHour, cfg.ReminderMinute, appLog)
	appLog.Info("Application services initialized.")

	// --- Daily Reminder Job ---
	if err := schedulerSvc.Start(context.Background()); err != nil {
		appLog.Error("Failed to schedule daily reminders", err)
		os.Exit(1)
	}

	// --- Dispatcher, Handler & Router ---
	dispatcher := bot.NewDispatcher(countdownSvc, ownerSvc, appLog)
	lineHandler := handler.NewLineHandler(line, dispatcher, ownerSvc, appLog)
	echoRouter := router.NewRouter(&router.Config{
		LineHandler: lineHandler,
		Logger:      appLog,
	})

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	// --- Start Server & Shutdown Handling ---
	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, db, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	// Wait for graceful shutdown signal
	<-done
	appLog.Info("Graceful shutdown complete.")
}
