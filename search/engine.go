package search

import (
	"context"

	"github.com/meilisearch/meilisearch-go"
)

// Engine is the slice of the search-engine API the indexer and the query
// aggregator depend on. *Connection implements it; tests substitute fakes.
type Engine interface {
	Health(ctx context.Context) error
	UpdateSettings(ctx context.Context, indexUID string, settings *meilisearch.Settings) error
	AddDocuments(ctx context.Context, indexUID string, documents any, primaryKey string) (int64, error)
	WaitForTask(ctx context.Context, taskUID int64) (*meilisearch.Task, error)
	DeleteIndex(ctx context.Context, indexUID string) error
	Search(ctx context.Context, indexUID, term string, req *meilisearch.SearchRequest) (*meilisearch.SearchResponse, error)
	MultiSearch(ctx context.Context, queries []*meilisearch.SearchRequest) ([]meilisearch.SearchResponse, error)
	GetDocument(ctx context.Context, indexUID, documentID string, v any) error
}
