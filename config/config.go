// Package config loads the runtime configuration from the environment.
package config

import (
	"os"
	"strconv"
	"time"
)

// data.gouv.fr dataset ID for data-inclusion.
const datasetID = "6233723c2c1e4a54af2f6b2d"

// Config holds every tunable of the service. All values are overridable via
// environment variables and fall back to the stated defaults.
type Config struct {
	MeilisearchURL string
	MeilisearchKey string

	// Per-kind result limit when the autocomplete is unscoped (results are
	// merged from up to three kinds).
	AutocompleteLimit int64
	// Per-kind result limit when the caller narrowed to one kind.
	FilteredLimit int64
	// Page size of the full-results path.
	ResultsPageLimit int64

	// DataDir holds cached raw downloads and the normalized JSON artifacts.
	DataDir string
	// SnapshotDir is a pre-staged copy of the raw corpus for offline seeding.
	SnapshotDir string
	// CacheMaxAge is the freshness window for cached raw downloads.
	CacheMaxAge time.Duration

	// DatasetURL is the manifest endpoint of the data-inclusion dataset.
	DatasetURL string
}

// Load reads the configuration from the environment, applying defaults.
func Load() *Config {
	return &Config{
		MeilisearchURL:    GetEnvDefault("MEILISEARCH_URL", "http://localhost:7700"),
		MeilisearchKey:    GetEnvDefault("MEILISEARCH_KEY", "masterKey"),
		AutocompleteLimit: getEnvInt64("AUTOCOMPLETE_LIMIT", 3),
		FilteredLimit:     getEnvInt64("FILTERED_LIMIT", 10),
		ResultsPageLimit:  getEnvInt64("RESULTS_PAGE_LIMIT", 20),
		DataDir:           GetEnvDefault("DATA_DIR", "data"),
		SnapshotDir:       GetEnvDefault("SNAPSHOT_DIR", "snapshot"),
		CacheMaxAge:       time.Duration(getEnvInt64("CACHE_MAX_AGE_DAYS", 5)) * 24 * time.Hour,
		DatasetURL:        GetEnvDefault("DATASET_URL", "https://www.data.gouv.fr/api/1/datasets/"+datasetID+"/"),
	}
}

// GetEnvDefault is a convenience function for handling env vars
func GetEnvDefault(key, defVal string) string {
	val, ex := os.LookupEnv(key) // get the env var
	if !ex {                     // not found return default
		return defVal
	}
	return val // return value for env var
}

func getEnvInt64(key string, defVal int64) int64 {
	val, ex := os.LookupEnv(key)
	if !ex {
		return defVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return defVal
	}
	return n
}
