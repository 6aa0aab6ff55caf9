package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
)

// Upstream resource titles carry a variable date suffix; matching is anchored
// to the start of the title only.
var (
	structuresPattern = regexp.MustCompile(`structures-inclusion.*\.json`)
	servicesPattern   = regexp.MustCompile(`services-inclusion.*\.json`)
)

// Manifest is the dataset descriptor returned by the open-data catalog API.
// Only the resource listing is read; everything else is ignored.
type Manifest struct {
	Resources []Resource `json:"resources"`
}

// Resource is one downloadable file advertised by the dataset manifest.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// FetchManifest downloads and decodes the dataset manifest.
func FetchManifest(ctx context.Context, client *http.Client, url string) (*Manifest, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: manifest %s: %s", ErrSourceUnavailable, url, resp.Status)
	}
	var m Manifest
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: decode manifest: %v", ErrSourceUnavailable, err)
	}
	return &m, nil
}

// FindResourceURL returns the URL of the first resource whose title matches
// the pattern at position zero. Manifest order decides ties.
func (m *Manifest) FindResourceURL(pattern *regexp.Regexp) (string, error) {
	for _, r := range m.Resources {
		loc := pattern.FindStringIndex(r.Title)
		if loc != nil && loc[0] == 0 {
			return r.URL, nil
		}
	}
	return "", fmt.Errorf("%w: no resource matching %q", ErrResourceNotFound, pattern.String())
}
