package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dom/recipe-share/internal/api"
	"github.com/dom/recipe-share/internal/config"
	"github.com/dom/recipe-share/internal/repository/postgres"
	"github.com/dom/recipe-share/internal/service"
	"github.com/dom/recipe-share/internal/websocket"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Initialize database
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to access database handle: %v", err)
	}
	defer sqlDB.Close()

	// Initialize repositories
	repos := postgres.NewRepositories(db)

	// Initialize recipe feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Initialize services
	services, err := service.NewServices(repos, cfg, hub)
	if err != nil {
		log.Fatalf("failed to initialize services: %v", err)
	}

	// Initialize router
	router := api.NewRouter(services, hub, postgres.NewHealthChecker(sqlDB), cfg)

	// Create server
	srv := &http.Server{
		Addr:         "0.0.0.0:" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}
	hub.Stop()

	log.Println("Server stopped")
}
