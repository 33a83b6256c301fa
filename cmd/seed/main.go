package main

import (
	"log"
	"os"

	"stackoverfaux/internal/db"
	"stackoverfaux/internal/seed"

	"github.com/joho/godotenv"
)

// One-off fixture import. Safe to re-run: a populated database is left
// alone, and individual rows that already exist are skipped.
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	path := os.Getenv("SEED_FILE")
	if path == "" {
		path = "stackoverfaux.json"
	}
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	gdb, err := db.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close(gdb)

	if err := seed.NewImporter(gdb).Run(path); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
