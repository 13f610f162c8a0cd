package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"factguard/analysis"
	"factguard/api"
	"factguard/client"
	"factguard/config"
	"factguard/events"
	"factguard/factcheck"
)

func main() {
	cfg := config.Load()

	httpClient := &http.Client{Timeout: config.HTTPTimeout}
	backend := client.NewClient(cfg.BackendURL, httpClient)
	checker := factcheck.NewClient(cfg.FactCheckURL, cfg.FactCheckKey, httpClient)

	deps := api.Dependencies{
		Analyzer: analysis.NewService(backend, checker),
		History:  backend,
	}

	// Optional analysis events (skipped if no brokers are configured)
	var publisher *events.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		p, err := events.NewPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Printf("⚠️ Analysis events disabled: %v", err)
		} else {
			publisher = p
			deps.Events = p
			log.Printf("✓ Publishing analysis events to %s", cfg.KafkaTopic)
		}
	}

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:    addr,
		Handler: api.NewRouter(deps),
	}

	go func() {
		log.Printf("Starting API server on %s", addr)
		log.Println("API endpoints available:")
		log.Println("  GET  /api/health")
		log.Println("  POST /api/analyze")
		log.Println("  GET  /api/history?q=")
		log.Printf("Analysis backend: %s", cfg.BackendURL)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown error: %v", err)
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Printf("Kafka producer close error: %v", err)
		}
	}
	log.Println("Server stopped")
}
