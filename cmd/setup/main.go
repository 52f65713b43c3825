package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5"

	"github.com/xapes/xma-slots/internal/config"
	"github.com/xapes/xma-slots/internal/database"
)

func main() {
	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to read configuration: %v", err)
	}
	ctx := context.Background()

	// 1. Connect to the maintenance database to create the application database
	conn, err := pgx.Connect(ctx, cfg.GetServerConnString())
	if err != nil {
		log.Fatalf("Unable to connect to postgres database: %v", err)
	}

	var exists bool
	err = conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", cfg.DBName).Scan(&exists)
	if err != nil {
		conn.Close(ctx)
		log.Fatalf("Failed to check if database exists: %v", err)
	}

	if !exists {
		fmt.Printf("Creating database %s...\n", cfg.DBName)
		if _, err := conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{cfg.DBName}.Sanitize()); err != nil {
			conn.Close(ctx)
			log.Fatalf("Failed to create database: %v", err)
		}
		fmt.Println("Database created successfully.")
	} else {
		fmt.Printf("Database %s already exists.\n", cfg.DBName)
	}
	conn.Close(ctx)

	// 2. Apply the embedded migrations
	pool, err := database.NewPool(cfg.GetDBConnString(), 2, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		log.Fatalf("Unable to connect to %s database: %v", cfg.DBName, err)
	}
	defer pool.Close()

	version, err := database.Migrate(ctx, pool)
	if err != nil {
		log.Fatalf("Failed to apply migrations: %v", err)
	}
	fmt.Printf("Schema at version %d.\n", version)
}
