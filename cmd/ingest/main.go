// package main runs one full ingestion: resolve the corpus source, normalize
// the collections, generate the user population, and reload the indexes.
package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/internal/ingest"
	"github.com/datainclusion/search-backend/search"
)

func main() {
	totalUsers := flag.Int("users", 10000, "size of the generated user population")
	flag.Parse()

	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.Load()

	eng, err := search.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to search engine: %v", err)
	}

	if err := ingest.Run(context.Background(), cfg, eng, *totalUsers); err != nil {
		log.Fatalf("Ingestion failed: %v", err)
	}
}
