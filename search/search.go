// Package search - Handles all interaction with the Meilisearch engine
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"github.com/meilisearch/meilisearch-go"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/datainclusion/search-backend/config"
)

var logger = InitLogger() // setup the logger

// Search-layer error taxonomy. Ingestion errors abort the whole run; query
// errors are scoped to the single request.
var (
	// ErrIndexWriteFailed is returned when the engine reports a document
	// write task as failed. Indexing does not proceed past a failed batch.
	ErrIndexWriteFailed = errors.New("index write failed")
	// ErrSearchUnavailable is returned when the engine is unreachable or
	// erroring at query time. Never retried; the caller reissues the request.
	ErrSearchUnavailable = errors.New("search unavailable")
	// ErrEntityNotFound is returned when an identifier is absent from the
	// target index. A caller-visible outcome, not a system fault.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrEmptyTerm is returned by the full-results path, which never accepts
	// an empty search term.
	ErrEmptyTerm = errors.New("empty search term")
)

// taskWaitInterval is the polling interval while blocking on an engine task.
const taskWaitInterval = 50 * time.Millisecond

// InitLogger sets up the Zap Logger to log to the console in a human readable format
func InitLogger() *zap.Logger {
	prodConfig := zap.NewProductionConfig()
	prodConfig.Encoding = "console"
	prodConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	prodConfig.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	logger, _ := prodConfig.Build()
	return logger
}

// Connection is the live engine connection. It implements Engine.
type Connection struct {
	client meilisearch.ServiceManager
}

// Connect builds the engine client and probes its health with exponential
// backoff, mirroring how we wait for the engine to come up in compose/CI
// environments. Everything past this point is retry-free.
func Connect(cfg *config.Config) (*Connection, error) {
	const initialInterval = 2 * time.Second
	const maxInterval = 30 * time.Second
	const maxElapsed = 2 * time.Minute

	client := meilisearch.New(cfg.MeilisearchURL, meilisearch.WithAPIKey(cfg.MeilisearchKey))

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = initialInterval
	bo.MaxInterval = maxInterval
	bo.MaxElapsedTime = maxElapsed

	err := backoff.RetryNotify(func() error {
		health, err := client.Health()
		if err != nil {
			return err
		}
		logger.Sugar().Infof("Search engine at %s is '%s'", cfg.MeilisearchURL, health.Status)
		return nil
	}, bo, func(err error, _ time.Duration) {
		logger.Sugar().Infof("Retrying connection to Meilisearch: %v", err)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	return &Connection{client: client}, nil
}

// Health probes the engine.
func (c *Connection) Health(ctx context.Context) error {
	_, err := c.client.HealthWithContext(ctx)
	return err
}

// UpdateSettings applies the searchable/filterable/sortable attribute lists
// of one index. Reapplying identical settings is a no-op on the engine side.
func (c *Connection) UpdateSettings(ctx context.Context, indexUID string, settings *meilisearch.Settings) error {
	_, err := c.client.Index(indexUID).UpdateSettingsWithContext(ctx, settings)
	return err
}

// AddDocuments submits one batch of documents and returns the engine task UID.
// An empty primaryKey lets the engine infer it.
func (c *Connection) AddDocuments(ctx context.Context, indexUID string, documents any, primaryKey string) (int64, error) {
	index := c.client.Index(indexUID)
	var task *meilisearch.TaskInfo
	var err error
	if primaryKey != "" {
		task, err = index.AddDocumentsWithContext(ctx, documents, primaryKey)
	} else {
		task, err = index.AddDocumentsWithContext(ctx, documents)
	}
	if err != nil {
		return 0, err
	}
	return task.TaskUID, nil
}

// WaitForTask blocks until the engine reports the task as finished.
func (c *Connection) WaitForTask(ctx context.Context, taskUID int64) (*meilisearch.Task, error) {
	return c.client.WaitForTaskWithContext(ctx, taskUID, taskWaitInterval)
}

// DeleteIndex drops one index.
func (c *Connection) DeleteIndex(ctx context.Context, indexUID string) error {
	_, err := c.client.DeleteIndexWithContext(ctx, indexUID)
	return err
}

// Search runs a single-index query.
func (c *Connection) Search(ctx context.Context, indexUID, term string, req *meilisearch.SearchRequest) (*meilisearch.SearchResponse, error) {
	return c.client.Index(indexUID).SearchWithContext(ctx, term, req)
}

// MultiSearch runs a batched multi-index query and returns the per-index
// results tagged by index name.
func (c *Connection) MultiSearch(ctx context.Context, queries []*meilisearch.SearchRequest) ([]meilisearch.SearchResponse, error) {
	resp, err := c.client.MultiSearchWithContext(ctx, &meilisearch.MultiSearchRequest{Queries: queries})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// GetDocument fetches one document by identifier into v.
func (c *Connection) GetDocument(ctx context.Context, indexUID, documentID string, v any) error {
	return c.client.Index(indexUID).GetDocumentWithContext(ctx, documentID, nil, v)
}
