package main

import (
	"fmt"
	"log"

	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/config"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/database"
	"github.com/Dikshitreddy4/suchis-restaurant-backend/internal/migrations"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Recreate schema and seed default data
	if err := migrations.RunMigrations(db); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	fmt.Println("Database initialization complete!")
}
