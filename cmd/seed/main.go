package main

import (
	"context"
	"log"
	"time"

	"skillmatch/internal/config"
	"skillmatch/internal/database/postgres"
	"skillmatch/internal/database/seeder"
)

// Applies the schema and demo fixtures against the configured database,
// then exits. The server does the same on boot; this binary exists for
// CI and local resets.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	defer db.Close()

	if err := (seeder.Runner{Seeders: seeder.Defaults()}).Run(ctx, db); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Println("seed complete")
}
