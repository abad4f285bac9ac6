package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"sort"

	"github.com/jackc/pgx/v5"

	"github.com/pawhub/pet-care-backend/internal/config"
)

// Applies every .sql file under migrations/ in name order, tracking
// progress in schema_migrations so reruns are safe.
func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	conn, err := pgx.Connect(ctx, cfg.DBDSN)
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer conn.Close(ctx)

	_, err = conn.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		name text PRIMARY KEY,
		applied_at timestamptz NOT NULL DEFAULT now()
	)`)
	if err != nil {
		log.Fatalf("failed to create schema_migrations: %v", err)
	}

	files, err := filepath.Glob("migrations/*.sql")
	if err != nil {
		log.Fatalf("failed to list migrations: %v", err)
	}
	sort.Strings(files)

	for _, file := range files {
		name := filepath.Base(file)

		var exists bool
		err := conn.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)", name,
		).Scan(&exists)
		if err != nil {
			log.Fatalf("failed to check migration %s: %v", name, err)
		}
		if exists {
			continue
		}

		sql, err := os.ReadFile(file)
		if err != nil {
			log.Fatalf("failed to read migration %s: %v", name, err)
		}

		tx, err := conn.Begin(ctx)
		if err != nil {
			log.Fatalf("failed to begin tx for %s: %v", name, err)
		}
		if _, err := tx.Exec(ctx, string(sql)); err != nil {
			tx.Rollback(ctx)
			log.Fatalf("migration %s failed: %v", name, err)
		}
		if _, err := tx.Exec(ctx, "INSERT INTO schema_migrations (name) VALUES ($1)", name); err != nil {
			tx.Rollback(ctx)
			log.Fatalf("failed to record migration %s: %v", name, err)
		}
		if err := tx.Commit(ctx); err != nil {
			log.Fatalf("failed to commit migration %s: %v", name, err)
		}

		log.Printf("applied %s", name)
	}

	log.Println("migrations up to date")
}
