package lookup

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datainclusion/search-backend/model"
	"github.com/datainclusion/search-backend/search"
)

// fakeSearcher records the last call and replays configured results.
type fakeSearcher struct {
	lastTerm   string
	lastKind   string
	lastPage   int64
	lastTenant model.TenantContext

	envelope   search.Envelope
	resultsErr error
	structure  *model.Structure
	detailErr  error
	contexts   []any
	contextErr error
}

func (f *fakeSearcher) Autocomplete(_ context.Context, term, kindSelector string, tenant model.TenantContext) (search.Envelope, error) {
	f.lastTerm, f.lastKind, f.lastTenant = term, kindSelector, tenant
	return f.envelope, nil
}

func (f *fakeSearcher) FullResults(_ context.Context, term, kindSelector string, page int64, tenant model.TenantContext) (search.ResultsPage, error) {
	f.lastTerm, f.lastKind, f.lastPage, f.lastTenant = term, kindSelector, page, tenant
	if f.resultsErr != nil {
		return search.ResultsPage{}, f.resultsErr
	}
	return search.ResultsPage{Query: term, Page: page, Hits: []any{}}, nil
}

func (f *fakeSearcher) GetStructure(context.Context, string) (*model.Structure, error) {
	return f.structure, f.detailErr
}

func (f *fakeSearcher) GetService(context.Context, string) (*model.Service, error) {
	return nil, f.detailErr
}

func (f *fakeSearcher) GetUser(context.Context, string) (*model.User, error) {
	return nil, f.detailErr
}

func (f *fakeSearcher) ListContextStructures(context.Context) ([]any, error) {
	return f.contexts, f.contextErr
}

func testApp(s Searcher) *fiber.App {
	app := fiber.New()
	app.Get("/search", GetSearch(s))
	app.Get("/results", GetResults(s))
	app.Get("/structures/:id", GetStructure(s))
	app.Get("/context/structures", GetContextStructures(s))
	return app
}

func TestGetSearch(t *testing.T) {
	fake := &fakeSearcher{envelope: search.Envelope{
		Users:      search.KindResult{Hits: []any{}},
		Structures: search.KindResult{Hits: []any{}, EstimatedTotalHits: 4},
		Services:   search.KindResult{Hits: []any{}},
	}}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/search?q=mission&type=structures&structure_id=S1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	assert.Equal(t, "mission", fake.lastTerm)
	assert.Equal(t, "structures", fake.lastKind)
	assert.Equal(t, "S1", fake.lastTenant.StructureID)

	body, _ := io.ReadAll(resp.Body)
	var env search.Envelope
	require.NoError(t, json.Unmarshal(body, &env))
	assert.Equal(t, int64(4), env.Structures.EstimatedTotalHits)
}

func TestGetResultsEmptyTermRedirects(t *testing.T) {
	fake := &fakeSearcher{resultsErr: search.ErrEmptyTerm}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/results?q=", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusFound, resp.StatusCode)
	assert.Equal(t, "/", resp.Header.Get("Location"))
}

func TestGetResultsPageParam(t *testing.T) {
	fake := &fakeSearcher{}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/results?q=emploi&type=users&page=3", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, int64(3), fake.lastPage)
	assert.Equal(t, "users", fake.lastKind)
}

func TestGetResultsUnavailable(t *testing.T) {
	fake := &fakeSearcher{resultsErr: search.ErrSearchUnavailable}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/results?q=emploi", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
}

func TestGetStructureNotFound(t *testing.T) {
	fake := &fakeSearcher{detailErr: search.ErrEntityNotFound}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/structures/missing", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestGetStructureOK(t *testing.T) {
	fake := &fakeSearcher{structure: &model.Structure{ID: "s1", Name: "Mission locale"}}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/structures/s1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var s model.Structure
	require.NoError(t, json.Unmarshal(body, &s))
	assert.Equal(t, "Mission locale", s.Name)
}

func TestGetContextStructuresDegrades(t *testing.T) {
	fake := &fakeSearcher{contextErr: search.ErrSearchUnavailable}
	app := testApp(fake)

	resp, err := app.Test(httptest.NewRequest("GET", "/context/structures", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var out struct {
		Structures []any `json:"structures"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.Empty(t, out.Structures)
}
