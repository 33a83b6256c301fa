package main

import (
	"log"
	"os"

	"stackoverfaux/internal/db"
	"stackoverfaux/internal/handlers"
	"stackoverfaux/internal/middleware"
	"stackoverfaux/internal/router"
	"stackoverfaux/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}

	gdb, err := db.Open()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close(gdb)

	r := gin.Default()
	r.Use(middleware.ErrorHandler())

	questionHandler := handlers.NewQuestionHandler(services.NewQuestionService(gdb))
	userHandler := handlers.NewUserHandler(services.NewUserService(gdb))
	router.RegisterRoutes(r, questionHandler, userHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Stackoverfaux API starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}
