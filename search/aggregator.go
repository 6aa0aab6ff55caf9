package search

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/meilisearch/meilisearch-go"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/model"
)

// contextSelectorLimit caps the structure list backing the tenant picker.
const contextSelectorLimit = 100

// siaeSourceFilter selects the structures eligible as tenant scopes.
const siaeSourceFilter = `source = "emplois-de-linclusion"`

// highlightAttrs lists the attributes highlighted per kind on the
// autocomplete path. The full-results path highlights everything.
var highlightAttrs = map[model.Kind][]string{
	model.KindUsers:      {"first_name", "last_name"},
	model.KindStructures: {"name"},
	model.KindServices:   {"name"},
}

// Aggregator turns a single free-text term into one or more per-index
// queries, issues them as one batched request, and reshapes the response.
// It holds no mutable state; concurrent requests are independent.
type Aggregator struct {
	eng               Engine
	autocompleteLimit int64
	filteredLimit     int64
	pageSize          int64
}

// NewAggregator builds an Aggregator reading through the given engine.
func NewAggregator(eng Engine, cfg *config.Config) *Aggregator {
	return &Aggregator{
		eng:               eng,
		autocompleteLimit: cfg.AutocompleteLimit,
		filteredLimit:     cfg.FilteredLimit,
		pageSize:          cfg.ResultsPageLimit,
	}
}

// KindResult is the per-kind slice of an autocomplete response.
type KindResult struct {
	Hits               []any `json:"hits"`
	EstimatedTotalHits int64 `json:"estimatedTotalHits"`
}

// Envelope is the fixed three-key autocomplete response. Kinds that were not
// queried stay empty with a zero estimated total.
type Envelope struct {
	Users      KindResult `json:"users"`
	Structures KindResult `json:"structures"`
	Services   KindResult `json:"services"`
}

func emptyEnvelope() Envelope {
	return Envelope{
		Users:      KindResult{Hits: []any{}},
		Structures: KindResult{Hits: []any{}},
		Services:   KindResult{Hits: []any{}},
	}
}

// ResultsPage is the offset-paginated response of the full-results path.
type ResultsPage struct {
	Kind               model.Kind `json:"kind"`
	Query              string     `json:"query"`
	Page               int64      `json:"page"`
	Hits               []any      `json:"hits"`
	EstimatedTotalHits int64      `json:"estimatedTotalHits"`
	TotalPages         int64      `json:"totalPages"`
}

// Autocomplete fans term out across the selected kinds (all three when
// kindSelector is empty) as one multi-index request. An empty term, or a
// non-empty selector outside the three kinds, short-circuits to an empty
// envelope without contacting the engine.
// When a tenant context is active the users query carries an equality filter
// on its structure; results are never post-filtered in process.
func (a *Aggregator) Autocomplete(ctx context.Context, term, kindSelector string, tenant model.TenantContext) (Envelope, error) {
	env := emptyEnvelope()
	term = strings.TrimSpace(term)
	if term == "" {
		return env, nil
	}

	kind, ok := model.ParseKind(kindSelector)
	if kindSelector != "" && !ok {
		return env, nil
	}
	queries := a.buildAutocompleteQueries(term, kind, tenant)

	results, err := a.eng.MultiSearch(ctx, queries)
	if err != nil {
		return env, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	for _, r := range results {
		kr := KindResult{Hits: r.Hits, EstimatedTotalHits: r.EstimatedTotalHits}
		if kr.Hits == nil {
			kr.Hits = []any{}
		}
		switch model.Kind(r.IndexUID) {
		case model.KindUsers:
			env.Users = kr
		case model.KindStructures:
			env.Structures = kr
		case model.KindServices:
			env.Services = kr
		}
	}
	return env, nil
}

// buildAutocompleteQueries constructs one query per selected kind, in the
// fixed users/structures/services order. The per-kind limit is larger when
// the caller narrowed to a single kind.
func (a *Aggregator) buildAutocompleteQueries(term string, kind model.Kind, tenant model.TenantContext) []*meilisearch.SearchRequest {
	limit := a.autocompleteLimit
	if kind != "" {
		limit = a.filteredLimit
	}

	var queries []*meilisearch.SearchRequest
	if kind == "" || kind == model.KindUsers {
		q := &meilisearch.SearchRequest{
			IndexUID:              string(model.KindUsers),
			Query:                 term,
			Limit:                 limit,
			AttributesToHighlight: highlightAttrs[model.KindUsers],
		}
		if f := tenant.Filter(); f != "" {
			q.Filter = f
		}
		queries = append(queries, q)
	}
	if kind == "" || kind == model.KindStructures {
		queries = append(queries, &meilisearch.SearchRequest{
			IndexUID:              string(model.KindStructures),
			Query:                 term,
			Limit:                 limit,
			AttributesToHighlight: highlightAttrs[model.KindStructures],
		})
	}
	if kind == "" || kind == model.KindServices {
		queries = append(queries, &meilisearch.SearchRequest{
			IndexUID:              string(model.KindServices),
			Query:                 term,
			Limit:                 limit,
			AttributesToHighlight: highlightAttrs[model.KindServices],
		})
	}
	return queries
}

// FullResults runs the single-index, offset-paginated query. Unrecognized
// kinds default to structures; page numbers are 1-based. The term must not be
// empty: callers redirect to the entry surface instead of querying.
func (a *Aggregator) FullResults(ctx context.Context, term, kindSelector string, page int64, tenant model.TenantContext) (ResultsPage, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return ResultsPage{}, ErrEmptyTerm
	}

	kind, ok := model.ParseKind(kindSelector)
	if !ok {
		kind = model.KindStructures
	}
	if page < 1 {
		page = 1
	}

	req := &meilisearch.SearchRequest{
		Limit:                 a.pageSize,
		Offset:                offsetFor(page, a.pageSize),
		AttributesToHighlight: []string{"*"},
	}
	if kind == model.KindUsers {
		if f := tenant.Filter(); f != "" {
			req.Filter = f
		}
	}

	res, err := a.eng.Search(ctx, string(kind), term, req)
	if err != nil {
		return ResultsPage{}, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}

	hits := res.Hits
	if hits == nil {
		hits = []any{}
	}
	return ResultsPage{
		Kind:               kind,
		Query:              term,
		Page:               page,
		Hits:               hits,
		EstimatedTotalHits: res.EstimatedTotalHits,
		TotalPages:         pageCount(res.EstimatedTotalHits, a.pageSize),
	}, nil
}

// offsetFor converts a 1-based page number into a zero-based offset.
func offsetFor(page, pageSize int64) int64 {
	return (page - 1) * pageSize
}

// pageCount is ceil(total / pageSize).
func pageCount(total, pageSize int64) int64 {
	return (total + pageSize - 1) / pageSize
}

// ListContextStructures returns the structures eligible as tenant scopes for
// the context selector (an empty-term, filter-only query).
func (a *Aggregator) ListContextStructures(ctx context.Context) ([]any, error) {
	req := &meilisearch.SearchRequest{
		Limit:  contextSelectorLimit,
		Filter: siaeSourceFilter,
	}
	res, err := a.eng.Search(ctx, string(model.KindStructures), "", req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
	}
	if res.Hits == nil {
		return []any{}, nil
	}
	return res.Hits, nil
}

// GetStructure fetches one structure by identifier.
func (a *Aggregator) GetStructure(ctx context.Context, id string) (*model.Structure, error) {
	var s model.Structure
	if err := a.getDocument(ctx, model.KindStructures, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetService fetches one service by identifier.
func (a *Aggregator) GetService(ctx context.Context, id string) (*model.Service, error) {
	var s model.Service
	if err := a.getDocument(ctx, model.KindServices, id, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

// GetUser fetches one user by identifier.
func (a *Aggregator) GetUser(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	if err := a.getDocument(ctx, model.KindUsers, id, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (a *Aggregator) getDocument(ctx context.Context, kind model.Kind, id string, v any) error {
	err := a.eng.GetDocument(ctx, string(kind), id, v)
	if err == nil {
		return nil
	}
	var apiErr *meilisearch.Error
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s %q", ErrEntityNotFound, kind, id)
	}
	return fmt.Errorf("%w: %v", ErrSearchUnavailable, err)
}
