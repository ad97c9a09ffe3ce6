package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/rohits-web03/voxdesk/internal/api"
	"github.com/rohits-web03/voxdesk/internal/api/handlers"
	"github.com/rohits-web03/voxdesk/internal/config"
	"github.com/rohits-web03/voxdesk/internal/repositories"
)

// @title Voxdesk API
// @version 1.0
// @description Agent configuration and attachment catalog for the Voxdesk console.
// @BasePath /
func main() {
	cfg := config.Envs

	// Connect to database
	db := repositories.ConnectDatabase()

	if cfg.SeedFile != "" {
		seed, err := repositories.LoadSeed(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Could not load seed file: %v", err)
		}
		if err := repositories.SeedCatalog(db, seed); err != nil {
			log.Fatalf("Could not seed catalog: %v", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	storage, err := repositories.NewObjectStorage(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatalf("Could not initialize object storage: %v", err)
	}

	h := handlers.NewHandler(repositories.NewGormCatalog(db), storage, cfg.UploadURLTTL)
	mux := api.SetupRouter(h, cfg.CorsConfig)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: mux,
		// Timeouts prevent resource exhaustion from slow clients
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	log.Printf("Starting Voxdesk server on port: %s", cfg.Port)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on port %s: %v", cfg.Port, err)
	}
}
