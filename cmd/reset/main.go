package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/database"
)

func main() {
	force := flag.Bool("force", false, "Required: confirms the database and every player balance will be destroyed")
	flag.Parse()

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatalf("Refusing to reset a %s database", cfg.Environment)
	}
	if !*force {
		log.Fatalf("Refusing to drop %s without -force", cfg.DBName)
	}

	serverPool, err := database.NewPool(cfg.GetServerConnString(), 2, 30*time.Minute, time.Hour)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL server: %v", err)
	}
	defer serverPool.Close()

	ctx := context.Background()
	ident := pgx.Identifier{cfg.DBName}.Sanitize()

	log.Printf("Terminating existing connections to database %s...\n", cfg.DBName)
	_, err = serverPool.Exec(ctx, `
		SELECT pg_terminate_backend(pg_stat_activity.pid)
		FROM pg_stat_activity
		WHERE pg_stat_activity.datname = $1
		AND pid <> pg_backend_pid()
	`, cfg.DBName)
	if err != nil {
		log.Printf("Warning: Failed to terminate connections: %v\n", err)
	}

	log.Printf("Dropping database %s if it exists...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "DROP DATABASE IF EXISTS "+ident); err != nil {
		log.Fatalf("Failed to drop database: %v", err)
	}

	log.Printf("Creating database %s...\n", cfg.DBName)
	if _, err := serverPool.Exec(ctx, "CREATE DATABASE "+ident); err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}

	log.Println("✓ Database reset complete. Run cmd/setup to apply migrations.")
}
