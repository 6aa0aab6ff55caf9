package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"
)

// newManifestClient builds the short-deadline client for the manifest fetch.
func newManifestClient() *http.Client {
	return &http.Client{Timeout: 10 * time.Second}
}

// newHTTPClient builds the client used for corpus downloads. The corpus files
// run to tens of megabytes, hence the generous overall timeout with a tighter
// dial timeout.
func newHTTPClient() *http.Client {
	return &http.Client{
		Timeout: 5 * time.Minute,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
		},
	}
}

// downloadAndCache fetches one raw collection, stores the bytes in cacheDir
// under the upstream file name, and decodes them. A cache write failure is
// logged and ignored; the download already succeeded.
func downloadAndCache[T any](ctx context.Context, client *http.Client, url, cacheDir string) ([]T, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrSourceUnavailable, url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: download %s: %s", ErrSourceUnavailable, url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", ErrSourceUnavailable, url, err)
	}
	log.Printf("Downloaded %s (%.1f MB)", path.Base(url), float64(len(body))/(1<<20))

	if err := os.MkdirAll(cacheDir, 0o755); err == nil {
		if err := os.WriteFile(filepath.Join(cacheDir, path.Base(url)), body, 0o644); err != nil {
			log.Printf("Cache write failed for %s: %v", path.Base(url), err)
		}
	} else {
		log.Printf("Cache dir unavailable: %v", err)
	}

	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrSourceUnavailable, path.Base(url), err)
	}
	return out, nil
}

// readLocal decodes one raw collection from a cache or snapshot file.
func readLocal[T any](path string) ([]T, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrSourceUnavailable, path, err)
	}
	var out []T
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrSourceUnavailable, path, err)
	}
	return out, nil
}
