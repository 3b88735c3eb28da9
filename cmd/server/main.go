package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"aeromaint/opsdesk/internal/config"
	"aeromaint/opsdesk/internal/db"
	"aeromaint/opsdesk/internal/logging"
	"aeromaint/opsdesk/internal/routes"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	if err := logging.Init(cfg.App.Env); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logging.Close()

	logging.Info("OpsDesk starting up",
		"environment", cfg.App.Env,
		"timestamp", time.Now().Format(time.RFC3339),
	)

	// The store is in-memory SQLite; every start is a fresh dataset.
	database, err := db.Init(db.DefaultDSN)
	if err != nil {
		logging.Error("Failed to open store", "error", err.Error())
		log.Fatalf("❌ Failed to open store: %v", err)
	}
	logging.Info("Connected to SQLite (GORM)")

	if err := db.Seed(database); err != nil {
		logging.Error("Failed to seed demo data", "error", err.Error())
		log.Fatalf("❌ Failed to seed demo data: %v", err)
	}
	logging.Info("Demo dataset seeded")

	upSince := time.Now()

	router, _, err := routes.RegisterRoutes(cfg, upSince)
	if err != nil {
		logging.Error("Failed to initialize router", "error", err.Error())
		log.Fatalf("❌ Failed to initialize router: %v", err)
	}

	// Setup metrics endpoint outside of Chi router
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/", router)
	logging.Info("Prometheus metrics endpoint registered at /metrics")

	addr := cfg.Server.GetAddress()
	logging.Info("Server starting",
		"address", addr,
		"environment", cfg.App.Env,
	)

	log.Printf("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, mux))
}
