package search

import (
	"context"
	"fmt"

	"github.com/meilisearch/meilisearch-go"

	"github.com/datainclusion/search-backend/model"
)

// IndexSpec declares the engine-side schema of one index: which fields are
// free-text searchable, usable as equality/range filters, and usable as sort
// keys, plus the write batch size and the explicit primary-key field.
type IndexSpec struct {
	Kind       model.Kind
	PrimaryKey string
	BatchSize  int
	Searchable []string
	Filterable []string
	Sortable   []string
}

// indexSpecs drives every per-kind indexing operation. Users get a larger
// batch size because the generated population dwarfs the corpus collections.
// The users and services primary key is declared explicitly to avoid
// ambiguity with structure_id.
var indexSpecs = []IndexSpec{
	{
		Kind:       model.KindUsers,
		PrimaryKey: "id",
		BatchSize:  10000,
		Searchable: []string{"first_name", "last_name"},
		Filterable: []string{"structure_id", "is_professional"},
		Sortable:   []string{"creation_date", "start_date"},
	},
	{
		Kind:       model.KindStructures,
		BatchSize:  1000,
		Searchable: []string{"name", "description", "commune"},
		Filterable: []string{"type", "source", "code_postal"},
		Sortable:   []string{"name"},
	},
	{
		Kind:       model.KindServices,
		PrimaryKey: "id",
		BatchSize:  1000,
		Searchable: []string{"name", "description"},
		Filterable: []string{"type", "theme", "structure_id"},
		Sortable:   []string{"name"},
	},
}

// SpecFor returns the index spec of a kind.
func SpecFor(kind model.Kind) (IndexSpec, bool) {
	for _, spec := range indexSpecs {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return IndexSpec{}, false
}

// Indexer loads transformed collections into the engine in bounded batches.
type Indexer struct {
	eng Engine
}

// NewIndexer returns an Indexer writing through the given engine.
func NewIndexer(eng Engine) *Indexer {
	return &Indexer{eng: eng}
}

// DropAll deletes every known index before a full reload. A missing index is
// not an error; teardown is idempotent.
func (ix *Indexer) DropAll(ctx context.Context) {
	for _, spec := range indexSpecs {
		if err := ix.eng.DeleteIndex(ctx, string(spec.Kind)); err != nil {
			logger.Sugar().Debugf("Delete index %s: %v", spec.Kind, err)
			continue
		}
		logger.Sugar().Infof("Deleted index %s", spec.Kind)
	}
}

// LoadDocuments configures the index per spec and writes docs in fixed-size
// batches, blocking after each submission until the engine reports the write
// task as finished. A failed task halts the load: ingestion never proceeds
// past a failed batch.
func LoadDocuments[T any](ctx context.Context, ix *Indexer, spec IndexSpec, docs []T) error {
	settings := &meilisearch.Settings{
		SearchableAttributes: spec.Searchable,
		FilterableAttributes: spec.Filterable,
		SortableAttributes:   spec.Sortable,
	}
	if err := ix.eng.UpdateSettings(ctx, string(spec.Kind), settings); err != nil {
		return fmt.Errorf("%w: configure %s: %v", ErrIndexWriteFailed, spec.Kind, err)
	}

	for i := 0; i < len(docs); i += spec.BatchSize {
		end := i + spec.BatchSize
		if end > len(docs) {
			end = len(docs)
		}
		taskUID, err := ix.eng.AddDocuments(ctx, string(spec.Kind), docs[i:end], spec.PrimaryKey)
		if err != nil {
			return fmt.Errorf("%w: %s batch %d..%d: %v", ErrIndexWriteFailed, spec.Kind, i, end, err)
		}
		task, err := ix.eng.WaitForTask(ctx, taskUID)
		if err != nil {
			return fmt.Errorf("%w: %s batch %d..%d: %v", ErrIndexWriteFailed, spec.Kind, i, end, err)
		}
		if task.Status != meilisearch.TaskStatusSucceeded {
			return fmt.Errorf("%w: %s batch %d..%d: %s", ErrIndexWriteFailed, spec.Kind, i, end, task.Error.Message)
		}
		logger.Sugar().Infof("Indexed %d/%d %s", end, len(docs), spec.Kind)
	}

	logger.Sugar().Infof("Total: %d %s indexed", len(docs), spec.Kind)
	return nil
}
