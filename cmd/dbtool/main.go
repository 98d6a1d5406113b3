package main

import (
	"eld-trip-planner/internal/adapters/repositories"
	"eld-trip-planner/internal/config"
	"eld-trip-planner/internal/platform/db"
	"log"
	"strings"

	"github.com/joho/godotenv"
)

// dbtool creates the trip history schema ahead of the first server start.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	driver := config.Get("HISTORY_DRIVER", "sqlite")
	dsn := config.Get("HISTORY_DSN", "data/history.db")
	if strings.TrimSpace(dsn) == "" {
		log.Fatal("HISTORY_DSN is required")
	}

	historyDB, err := db.Open(driver, dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer historyDB.Close()

	log.Printf("Initializing trip history schema driver=%s...", driver)
	if err := repositories.InitSchema(historyDB, driver); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")
}
