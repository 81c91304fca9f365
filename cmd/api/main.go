package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/auth"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/db"
	httpserver "github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/http"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/messaging"
	"github.com/Vaidyula-Sanjana/Hospital-Management-System/internal/telemetry"
)

func main() {
	ctx := context.Background()

	// Initialize OpenTelemetry (degrades gracefully when no collector is reachable)
	telemetryCfg := telemetry.LoadConfig()
	provider, err := telemetry.InitProvider(ctx, telemetryCfg)
	if err != nil {
		log.Printf("[WARN] Telemetry initialization failed, continuing without it: %v", err)
	}
	if provider != nil {
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				log.Printf("[WARN] Telemetry shutdown error: %v", err)
			}
		}()
	}

	// Connect to Postgres and run migrations
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("[ERROR] Failed to connect to database: %v", err)
	}
	defer database.Close()

	if err := db.Migrate(ctx, database); err != nil {
		log.Fatalf("[ERROR] Failed to run migrations: %v", err)
	}

	if os.Getenv("SEED_BEDS") != "false" {
		if err := db.SeedBeds(ctx, database); err != nil {
			log.Fatalf("[ERROR] Failed to seed beds: %v", err)
		}
	}

	// Metrics (includes the vacant-beds gauge backed by the database)
	metrics, err := telemetry.InitMetrics(database)
	if err != nil {
		log.Printf("[WARN] Metrics initialization failed, continuing without them: %v", err)
	}

	// RabbitMQ publisher; the service stays usable without a broker
	publisher, err := messaging.NewPublisher()
	if err != nil {
		log.Printf("[WARN] RabbitMQ unavailable, events will not be published: %v", err)
		publisher = nil
	}
	if publisher != nil {
		defer publisher.Close()
	}

	// Auth: session signing config and role permissions
	verifier := auth.NewVerifier(auth.LoadConfig())

	permsPath := os.Getenv("PERMISSIONS_FILE")
	if permsPath == "" {
		permsPath = "permissions.yml"
	}
	perms, err := auth.LoadPermissions(permsPath)
	if err != nil {
		log.Printf("[WARN] Could not load %s, using built-in permissions: %v", permsPath, err)
		perms = auth.DefaultPermissions()
	}

	router := httpserver.SetupRouter(database, verifier, perms, publisher, metrics)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:         ":" + port,
		Handler:      httpserver.CORSMiddleware(router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("hospital-frontdesk listening on :%s", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[ERROR] Server failed: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] Server shutdown error: %v", err)
	}
}
