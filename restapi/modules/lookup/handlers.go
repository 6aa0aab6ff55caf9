// Package lookup provides the REST handlers for search and entity lookup.
package lookup

import (
	"context"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/datainclusion/search-backend/model"
	"github.com/datainclusion/search-backend/search"
)

// Searcher is the slice of the aggregator the handlers depend on.
type Searcher interface {
	Autocomplete(ctx context.Context, term, kindSelector string, tenant model.TenantContext) (search.Envelope, error)
	FullResults(ctx context.Context, term, kindSelector string, page int64, tenant model.TenantContext) (search.ResultsPage, error)
	GetStructure(ctx context.Context, id string) (*model.Structure, error)
	GetService(ctx context.Context, id string) (*model.Service, error)
	GetUser(ctx context.Context, id string) (*model.User, error)
	ListContextStructures(ctx context.Context) ([]any, error)
}

// tenantFromRequest derives the caller's structure scope from query
// parameters. The scope is per request; nothing is stored server side.
func tenantFromRequest(c *fiber.Ctx) model.TenantContext {
	return model.TenantContext{
		StructureID:   c.Query("structure_id"),
		StructureName: c.Query("structure_name"),
		UserName:      c.Query("user_name"),
	}
}

// GetSearch handles the autocomplete query across one or all kinds.
func GetSearch(s Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		env, err := s.Autocomplete(c.Context(), c.Query("q"), c.Query("type"), tenantFromRequest(c))
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(env)
	}
}

// GetResults handles the paginated single-kind results query. An empty term
// redirects to the entry surface instead of erroring.
func GetResults(s Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		page, err := s.FullResults(c.Context(), c.Query("q"), c.Query("type"),
			int64(c.QueryInt("page", 1)), tenantFromRequest(c))
		if errors.Is(err, search.ErrEmptyTerm) {
			return c.Redirect("/")
		}
		if err != nil {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(page)
	}
}

// GetStructure handles the structure detail lookup.
func GetStructure(s Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		structure, err := s.GetStructure(c.Context(), c.Params("id"))
		return detailResponse(c, structure, err)
	}
}

// GetService handles the service detail lookup.
func GetService(s Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		service, err := s.GetService(c.Context(), c.Params("id"))
		return detailResponse(c, service, err)
	}
}

// GetUser handles the user detail lookup.
func GetUser(s Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, err := s.GetUser(c.Context(), c.Params("id"))
		return detailResponse(c, user, err)
	}
}

func detailResponse(c *fiber.Ctx, v any, err error) error {
	if errors.Is(err, search.ErrEntityNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(v)
}

// GetContextStructures lists the structures offered by the scope selector.
// A lookup failure degrades to an empty list so the selector still renders.
func GetContextStructures(s Searcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		structures, err := s.ListContextStructures(c.Context())
		if err != nil {
			log.Printf("WARNING: context structures lookup failed: %v", err)
			structures = []any{}
		}
		return c.JSON(fiber.Map{"structures": structures})
	}
}
