package ingest

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFresh(t *testing.T) {
	now := time.Now()
	maxAge := 5 * 24 * time.Hour

	assert.True(t, fresh(now.Add(-time.Hour), now, maxAge))
	assert.True(t, fresh(now.Add(-maxAge+time.Second), now, maxAge))
	// Exactly at the window boundary counts as stale.
	assert.False(t, fresh(now.Add(-maxAge), now, maxAge))
	assert.False(t, fresh(now.Add(-maxAge-time.Hour), now, maxAge))
}

func writeCorpusFiles(t *testing.T, dir string, mtime time.Time) {
	t.Helper()
	for _, name := range []string{"structures-inclusion-2024.json", "services-inclusion-2024.json"} {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))
		require.NoError(t, os.Chtimes(path, mtime, mtime))
	}
}

func TestResolvePrefersFreshCache(t *testing.T) {
	dataDir := t.TempDir()
	cacheDir := filepath.Join(dataDir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	writeCorpusFiles(t, cacheDir, time.Now())

	snapshotDir := t.TempDir()
	writeCorpusFiles(t, snapshotDir, time.Now().AddDate(-1, 0, 0))

	r := &Resolver{DataDir: dataDir, SnapshotDir: snapshotDir, MaxAge: 5 * 24 * time.Hour}
	src, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceCache, src.Mode)
	assert.Equal(t, filepath.Join(cacheDir, "structures-inclusion-2024.json"), src.StructuresURL)
	assert.Equal(t, filepath.Join(cacheDir, "services-inclusion-2024.json"), src.ServicesURL)
}

func TestResolveStaleCacheFallsToSnapshot(t *testing.T) {
	dataDir := t.TempDir()
	cacheDir := filepath.Join(dataDir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	writeCorpusFiles(t, cacheDir, time.Now().AddDate(0, 0, -10))

	// Snapshot files may be arbitrarily old; no freshness check applies.
	snapshotDir := t.TempDir()
	writeCorpusFiles(t, snapshotDir, time.Now().AddDate(-2, 0, 0))

	r := &Resolver{DataDir: dataDir, SnapshotDir: snapshotDir, MaxAge: 5 * 24 * time.Hour}
	src, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSnapshot, src.Mode)
}

func TestResolvePartialCacheFallsThrough(t *testing.T) {
	dataDir := t.TempDir()
	cacheDir := filepath.Join(dataDir, "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0o755))
	// Only one of the two collections is cached.
	path := filepath.Join(cacheDir, "structures-inclusion-2024.json")
	require.NoError(t, os.WriteFile(path, []byte("[]"), 0o644))

	snapshotDir := t.TempDir()
	writeCorpusFiles(t, snapshotDir, time.Now())

	r := &Resolver{DataDir: dataDir, SnapshotDir: snapshotDir, MaxAge: 5 * 24 * time.Hour}
	src, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceSnapshot, src.Mode)
}

func TestResolveRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"resources":[
			{"title":"structures-inclusion-2024.json","url":"https://example.org/structures.json"},
			{"title":"services-inclusion-2024.json","url":"https://example.org/services.json"}
		]}`))
	}))
	defer srv.Close()

	r := &Resolver{
		DataDir:        t.TempDir(),
		SnapshotDir:    filepath.Join(t.TempDir(), "missing"),
		MaxAge:         5 * 24 * time.Hour,
		DatasetURL:     srv.URL,
		manifestClient: srv.Client(),
	}
	src, err := r.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, src.Mode)
	assert.Equal(t, "https://example.org/structures.json", src.StructuresURL)
	assert.Equal(t, "https://example.org/services.json", src.ServicesURL)
}

func TestResolveRemoteMissingResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"resources":[{"title":"structures-inclusion-2024.json","url":"https://example.org/structures.json"}]}`))
	}))
	defer srv.Close()

	r := &Resolver{
		DataDir:        t.TempDir(),
		SnapshotDir:    filepath.Join(t.TempDir(), "missing"),
		MaxAge:         5 * 24 * time.Hour,
		DatasetURL:     srv.URL,
		manifestClient: srv.Client(),
	}
	_, err := r.Resolve(context.Background())
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
