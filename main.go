package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arunvm123/eventbooking-demo/config"
	"github.com/arunvm123/eventbooking-demo/store"
)

func main() {
	// Try to load from config.yaml first, fallback to environment variables
	cfg, err := config.Initialise("config.yaml", false)
	if err != nil {
		log.Printf("Config file not found or invalid, using environment variables: %v", err)
		cfg, err = config.Initialise("", true)
		if err != nil {
			log.Fatal("Failed to load configuration:", err)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	repo, err := NewRepository(cfg)
	if err != nil {
		log.Fatal("Failed to initialize storage:", err)
	}

	st, err := store.New(ctx, repo,
		store.WithJournal(NewJournal(cfg)),
		store.WithSeedDefaults(cfg.Storage.SeedDefaults),
	)
	if err != nil {
		log.Fatal("Failed to load store:", err)
	}
	defer st.Close()

	router := SetupRouter(cfg, st)
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Handle shutdown signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("Received shutdown signal, stopping server...")
		shutdownCtx, stop := context.WithTimeout(ctx, 10*time.Second)
		defer stop()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Server shutdown error: %v", err)
		}
	}()

	fmt.Printf("Starting Event Booking API on port %s (storage: %s)\n", cfg.Port, cfg.Storage.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal("Failed to start server:", err)
	}

	fmt.Println("Server stopped gracefully")
}
