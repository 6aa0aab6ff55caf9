// package main provides the entry point for the inclusion-search microservice,
// serving the REST and GraphQL API over the search indexes.
package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/internal/api"
	"github.com/datainclusion/search-backend/search"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.Load()

	eng, err := search.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to search engine: %v", err)
	}

	app := api.NewFiberApp(cfg, eng)

	port := config.GetEnvDefault("PORT", "3000")
	log.Printf("Starting server on port %s", port)
	log.Printf("GraphQL endpoint available at /api/v1/graphql")
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
