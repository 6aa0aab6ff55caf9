package ingest

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/datainclusion/search-backend/config"
)

// SourceMode says where the raw corpus comes from for this run.
type SourceMode int

// Resolution order is fixed: a fresh local cache beats the snapshot, the
// snapshot beats the network.
const (
	SourceCache SourceMode = iota
	SourceSnapshot
	SourceRemote
)

func (m SourceMode) String() string {
	switch m {
	case SourceCache:
		return "cache"
	case SourceSnapshot:
		return "snapshot"
	case SourceRemote:
		return "remote"
	}
	return "unknown"
}

// Source is a resolved pair of raw corpus locations. The locations are file
// paths for cache and snapshot modes and HTTP URLs for remote mode.
type Source struct {
	Mode          SourceMode
	StructuresURL string
	ServicesURL   string
}

// Resolver decides where this run reads the raw corpus from.
type Resolver struct {
	DataDir     string
	SnapshotDir string
	MaxAge      time.Duration
	DatasetURL  string

	client         *http.Client
	manifestClient *http.Client
}

// NewResolver builds a Resolver from the runtime configuration.
func NewResolver(cfg *config.Config) *Resolver {
	return &Resolver{
		DataDir:        cfg.DataDir,
		SnapshotDir:    cfg.SnapshotDir,
		MaxAge:         cfg.CacheMaxAge,
		DatasetURL:     cfg.DatasetURL,
		client:         newHTTPClient(),
		manifestClient: newManifestClient(),
	}
}

// cacheDir is where raw downloads are stored under their upstream file names.
func (r *Resolver) cacheDir() string {
	return filepath.Join(r.DataDir, "cache")
}

// Resolve walks the source cascade. A mode is only selected when it can serve
// both collections; a cache holding one fresh file and one stale file falls
// through to the snapshot. Remote resolution failures surface as errors since
// there is nothing left to fall back to.
func (r *Resolver) Resolve(ctx context.Context) (Source, error) {
	now := time.Now()

	if s, ok := r.resolveLocal(r.cacheDir(), now, true); ok {
		s.Mode = SourceCache
		return s, nil
	}
	if s, ok := r.resolveLocal(r.SnapshotDir, now, false); ok {
		s.Mode = SourceSnapshot
		return s, nil
	}

	m, err := FetchManifest(ctx, r.manifestClient, r.DatasetURL)
	if err != nil {
		return Source{}, err
	}
	structuresURL, err := m.FindResourceURL(structuresPattern)
	if err != nil {
		return Source{}, err
	}
	servicesURL, err := m.FindResourceURL(servicesPattern)
	if err != nil {
		return Source{}, err
	}
	return Source{Mode: SourceRemote, StructuresURL: structuresURL, ServicesURL: servicesURL}, nil
}

// resolveLocal looks for both collection files in dir. With checkAge set,
// stale files are ignored.
func (r *Resolver) resolveLocal(dir string, now time.Time, checkAge bool) (Source, bool) {
	structures, ok := r.findLocal(dir, structuresPattern, now, checkAge)
	if !ok {
		return Source{}, false
	}
	services, ok := r.findLocal(dir, servicesPattern, now, checkAge)
	if !ok {
		return Source{}, false
	}
	return Source{StructuresURL: structures, ServicesURL: services}, true
}

func (r *Resolver) findLocal(dir string, pattern *regexp.Regexp, now time.Time, checkAge bool) (string, bool) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		loc := pattern.FindStringIndex(e.Name())
		if loc == nil || loc[0] != 0 {
			continue
		}
		if checkAge {
			info, err := e.Info()
			if err != nil || !fresh(info.ModTime(), now, r.MaxAge) {
				continue
			}
		}
		return filepath.Join(dir, e.Name()), true
	}
	return "", false
}

// fresh reports whether a file modified at mtime is still inside the
// freshness window. A file exactly maxAge old is stale.
func fresh(mtime, now time.Time, maxAge time.Duration) bool {
	return now.Sub(mtime) < maxAge
}

// describe renders a source for log lines.
func (s Source) describe() string {
	return fmt.Sprintf("%s (%s, %s)", s.Mode, s.StructuresURL, s.ServicesURL)
}
