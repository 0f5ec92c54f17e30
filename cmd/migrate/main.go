package main

import (
	"context"
	"database/sql"
	"log"

	"clickmart/internal/config"
	"clickmart/internal/storage"

	_ "github.com/lib/pq"
)

// Prepares the kv_slots table for deployments that keep storefront slots
// in Postgres instead of on the device.
func main() {
	cfg := config.LoadConfig()
	if cfg.PostgresDSN == "" {
		log.Fatal("POSTGRES_DSN is required")
	}

	db, err := sql.Open("postgres", cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	if err := storage.EnsureSchema(context.Background(), db); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}
	log.Println("kv_slots schema ready")
}
