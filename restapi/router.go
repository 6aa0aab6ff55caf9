// Package restapi provides the main router and initialization for REST API endpoints.
package restapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/restapi/modules/admin"
	"github.com/datainclusion/search-backend/restapi/modules/lookup"
	"github.com/datainclusion/search-backend/search"
)

// SetupRoutes configures all REST API routes and the GraphQL endpoint.
func SetupRoutes(app *fiber.App, cfg *config.Config, eng search.Engine, schema graphql.Schema) {
	agg := search.NewAggregator(eng, cfg)

	// API Group /api/v1
	api := app.Group("/api/v1")

	// GraphQL Route - Mounted within the api group to inherit path prefixes
	api.Post("/graphql", GraphQLHandler(schema))

	// Search Routes
	api.Get("/search", lookup.GetSearch(agg))
	api.Get("/results", lookup.GetResults(agg))

	// Entity Detail Routes
	api.Get("/structures/:id", lookup.GetStructure(agg))
	api.Get("/services/:id", lookup.GetService(agg))
	api.Get("/users/:id", lookup.GetUser(agg))

	// Context Selector Route
	api.Get("/context/structures", lookup.GetContextStructures(agg))

	// Admin Routes
	adminGroup := api.Group("/admin")
	adminGroup.Post("/reindex", admin.PostReindex(cfg, eng))
	adminGroup.Get("/reindex-status", admin.GetReindexStatus())

	log.Println("API routes initialized successfully")
}
