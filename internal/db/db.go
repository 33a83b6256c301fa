package db

import (
	"log"
	"os"
	"stackoverfaux/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to the Postgres instance named by DATABASE_URL and runs
// the schema migration. TranslateError is on so unique violations surface
// as gorm.ErrDuplicatedKey regardless of driver.
func Open() (*gorm.DB, error) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=stackoverfaux port=5432 sslmode=disable"
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}
	log.Println("Database connection established")

	if err := Migrate(gdb); err != nil {
		return nil, err
	}
	return gdb, nil
}

// Migrate creates or updates the schema. Split out from Open so tests can
// run it against their own handle.
func Migrate(gdb *gorm.DB) error {
	return gdb.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Answer{},
		&models.Comment{},
	)
}

// Close releases the underlying connection pool.
func Close(gdb *gorm.DB) {
	sqlDB, err := gdb.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		log.Printf("Failed to close database: %v", err)
	}
}
