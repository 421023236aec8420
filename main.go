package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-admin-backend/config"
	"hotel-admin-backend/controllers"
	"hotel-admin-backend/routes"
	"hotel-admin-backend/services"
)

func envDuration(key string) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return 0
	}
	ms, err := strconv.Atoi(raw)
	if err != nil || ms < 0 {
		log.Printf("⚠️  Ignoring invalid %s=%q", key, raw)
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	if err := config.ConnectStorage(); err != nil {
		log.Fatalf("❌ Storage connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectStorage()")
	}

	// Initialize services
	mockStore := services.NewMockStore(envDuration("SIMULATED_DELAY_MS"))
	roomStore := services.NewRoomStore(db)
	activityLog := services.NewActivityLog(db)
	wizard := services.NewWizardService(roomStore, activityLog, envDuration("SUBMIT_DELAY_MS"))
	reports := services.NewReportService()

	// Initialize controllers
	wizardController := controllers.NewWizardController(wizard)
	roomController := controllers.NewRoomController(mockStore, roomStore)
	bookingController := controllers.NewBookingController(mockStore)
	customerController := controllers.NewCustomerController(mockStore)
	staffController := controllers.NewStaffController(mockStore)
	dashboardController := controllers.NewDashboardController(mockStore, activityLog)
	reportController := controllers.NewReportController(reports)

	router := routes.SetupRouter(
		wizardController,
		roomController,
		bookingController,
		customerController,
		staffController,
		dashboardController,
		reportController,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
