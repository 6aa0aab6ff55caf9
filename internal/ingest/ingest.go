// Package ingest rebuilds the search indexes from the open-data corpus. A run
// resolves where to read the raw collections from, normalizes them, fabricates
// the user population, and reloads every index from scratch.
package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/datainclusion/search-backend/config"
	"github.com/datainclusion/search-backend/internal/usergen"
	"github.com/datainclusion/search-backend/model"
	"github.com/datainclusion/search-backend/search"
)

// Ingestion error taxonomy. Both abort the run; indexes keep their previous
// contents since teardown only happens after the corpus is fully loaded.
var (
	// ErrResourceNotFound means the dataset manifest no longer advertises a
	// collection file we depend on.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrSourceUnavailable means the raw corpus could not be fetched or
	// decoded from the resolved source.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// Run executes one full ingestion. totalUsers sizes the generated population;
// zero or less takes the generator default.
func Run(ctx context.Context, cfg *config.Config, eng search.Engine, totalUsers int) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	r := NewResolver(cfg)
	src, err := r.Resolve(ctx)
	if err != nil {
		return err
	}
	log.Printf("Reading corpus from %s", src.describe())

	rawStructures, err := loadRaw[model.RawStructure](ctx, r, src, src.StructuresURL)
	if err != nil {
		return err
	}
	rawServices, err := loadRaw[model.RawService](ctx, r, src, src.ServicesURL)
	if err != nil {
		return err
	}
	log.Printf("Loaded %d raw structures, %d raw services", len(rawStructures), len(rawServices))

	structures := make([]model.Structure, len(rawStructures))
	for i, raw := range rawStructures {
		structures[i] = TransformStructure(raw)
	}
	services := make([]model.Service, len(rawServices))
	for i, raw := range rawServices {
		services[i] = TransformService(raw)
	}

	siaes := SelectSIAE(structures, defaultSIAEBound)
	users := usergen.Generate(usergen.Options{TotalUsers: totalUsers}, siaes, structures)
	log.Printf("Selected %d insertion enterprises, generated %d users", len(siaes), len(users))

	artifacts := map[string]any{
		"structures.json": structures,
		"services.json":   services,
		"siaes.json":      siaes,
		"users.json":      users,
	}
	for name, v := range artifacts {
		if err := writeJSON(filepath.Join(cfg.DataDir, name), v); err != nil {
			return err
		}
	}

	ix := search.NewIndexer(eng)
	ix.DropAll(ctx)

	usersSpec, _ := search.SpecFor(model.KindUsers)
	if err := search.LoadDocuments(ctx, ix, usersSpec, users); err != nil {
		return err
	}
	structuresSpec, _ := search.SpecFor(model.KindStructures)
	if err := search.LoadDocuments(ctx, ix, structuresSpec, structures); err != nil {
		return err
	}
	servicesSpec, _ := search.SpecFor(model.KindServices)
	if err := search.LoadDocuments(ctx, ix, servicesSpec, services); err != nil {
		return err
	}

	log.Println("Ingestion complete")
	return nil
}

// loadRaw reads one raw collection according to the resolved source mode.
func loadRaw[T any](ctx context.Context, r *Resolver, src Source, location string) ([]T, error) {
	switch src.Mode {
	case SourceCache, SourceSnapshot:
		return readLocal[T](location)
	case SourceRemote:
		return downloadAndCache[T](ctx, r.client, location, r.cacheDir())
	}
	return nil, fmt.Errorf("%w: unknown source mode %d", ErrSourceUnavailable, src.Mode)
}

// writeJSON stores one normalized collection in the data dir. The artifacts
// double as fixtures for local inspection and debugging.
func writeJSON(path string, v any) error {
	body, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
