// Package admin implements the REST API handlers for admin operations.
// It provides endpoints for triggering a full reindex and watching its status.
package admin

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/internal/ingest"
	"github.com/datainclusion/search-backend/search"
)

// The background goroutine and the handlers share these; every access goes
// through the mutex.
var (
	reindexMu       sync.Mutex
	reindexRunning  = false
	reindexProgress = ""
)

func setReindexState(running bool, progress string) {
	reindexMu.Lock()
	reindexRunning = running
	reindexProgress = progress
	reindexMu.Unlock()
}

func reindexState() (bool, string) {
	reindexMu.Lock()
	defer reindexMu.Unlock()
	return reindexRunning, reindexProgress
}

// ReindexRequest is the optional body of a reindex trigger.
type ReindexRequest struct {
	TotalUsers int `json:"total_users"`
}

// ReindexStatusResponse reports whether a reindex is in flight.
type ReindexStatusResponse struct {
	Running bool   `json:"running"`
	Status  string `json:"status"`
}

// PostReindex triggers a full ingestion run in the background. Only one run
// may be in flight at a time; a second trigger is rejected with a conflict.
func PostReindex(cfg *config.Config, eng search.Engine) fiber.Handler {
	return func(c *fiber.Ctx) error {
		reindexMu.Lock()
		if reindexRunning {
			status := reindexProgress
			reindexMu.Unlock()
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"success": false,
				"message": "Reindex already in progress",
				"status":  status,
			})
		}
		// Claim the run before releasing the lock so two concurrent triggers
		// cannot both start.
		reindexRunning = true
		reindexProgress = "Starting reindex..."
		reindexMu.Unlock()

		var req ReindexRequest
		if err := c.BodyParser(&req); err != nil {
			req.TotalUsers = 0
		}

		go runReindex(cfg, eng, req.TotalUsers)

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Reindex started",
			"status":  "processing",
		})
	}
}

// GetReindexStatus returns the current status of any running reindex
func GetReindexStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		running, status := reindexState()
		return c.JSON(ReindexStatusResponse{
			Running: running,
			Status:  status,
		})
	}
}

func runReindex(cfg *config.Config, eng search.Engine, totalUsers int) {
	started := time.Now()
	log.Println("Starting full reindex...")

	if err := ingest.Run(context.Background(), cfg, eng, totalUsers); err != nil {
		setReindexState(false, fmt.Sprintf("Failed: %v", err))
		log.Printf("Reindex failed: %v", err)
		return
	}

	setReindexState(false, fmt.Sprintf("Complete! Took %s", time.Since(started).Round(time.Second)))
	log.Printf("Reindex complete in %s", time.Since(started).Round(time.Second))
}
