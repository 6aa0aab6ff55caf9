// Package api assembles the Fiber application serving the search backend.
package api

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	fiberrecover "github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/graphql"
	"github.com/datainclusion/search-backend/restapi"
	"github.com/datainclusion/search-backend/search"
)

// NewFiberApp creates and configures a Fiber app with REST and GraphQL routes
func NewFiberApp(cfg *config.Config, eng search.Engine) *fiber.App {
	// Initialize GraphQL schema
	agg := search.NewAggregator(eng, cfg)
	schema, err := graphql.CreateSchema(agg)
	if err != nil {
		log.Fatalf("Failed to create GraphQL schema: %v", err)
	}

	app := fiber.New(fiber.Config{
		AppName:     "inclusion-search API v1.0",
		BodyLimit:   10 * 1024 * 1024, // 10MB
		ReadTimeout: 60 * time.Second, // seconds
	})

	// Middleware
	app.Use(fiberrecover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestSpeed}))

	// Consolidated CORS Configuration
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:3000,http://localhost:4000,http://127.0.0.1:3000,http://127.0.0.1:4000",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Requested-With",
		AllowCredentials: true,
		AllowMethods:     "GET, POST, HEAD, PUT, DELETE, PATCH, OPTIONS",
	}))

	app.Use(logger.New())

	// Health check endpoint
	app.Get("/", func(c *fiber.Ctx) error {
		if err := eng.Health(c.Context()); err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "degraded"})
		}
		return c.JSON(fiber.Map{"status": "healthy"})
	})

	// Setup REST and GraphQL routes (Pass the schema here)
	restapi.SetupRoutes(app, cfg, eng, schema)

	return app
}
