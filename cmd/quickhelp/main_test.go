package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickhelp/internal/api"
	"quickhelp/internal/config"
)

// hitCounter counts backend requests per path.
type hitCounter struct {
	mu   sync.Mutex
	hits map[string]int
}

func (h *hitCounter) add(path string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hits[path]++
}

func (h *hitCounter) get(path string) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.hits[path]
}

// backend serves canned bodies per path and counts hits.
func backend(t *testing.T, bodies map[string]string) (*httptest.Server, *hitCounter) {
	t.Helper()
	hits := &hitCounter{hits: make(map[string]int)}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.add(r.URL.Path)
		body, ok := bodies[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, hits
}

// run executes the CLI in an empty directory so no config file or .env
// leaks in.
func run(t *testing.T, backendURL string, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, k := range []string{config.EnvBackendURL, config.EnvAddr, config.EnvLogLevel, config.EnvEnv, "OTEL_EXPORTER_OTLP_ENDPOINT"} {
		t.Setenv(k, "")
	}

	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	app.ErrWriter = io.Discard
	err := app.Run(append([]string{"quickhelp", "--backend", backendURL}, args...))
	return out.String(), err
}

func TestSearchCommand(t *testing.T) {
	srv, hits := backend(t, map[string]string{
		api.PathSearch: `{"success":true,"results":[{"title":"Install","content":"Run make install","path":"docs/install.md","score":0.8421,"tags":["setup"]}]}`,
	})

	out, err := run(t, srv.URL, "search", "-m", "keyword", "install", "steps")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 1 results:")
	assert.Contains(t, out, "0.842")
	assert.Contains(t, out, "#setup")
	assert.Equal(t, 1, hits.get(api.PathSearch))
}

func TestSearchCommand_EmptyQuery(t *testing.T) {
	srv, hits := backend(t, nil)

	out, err := run(t, srv.URL, "search")
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, out, "Please enter a search query")
	assert.Zero(t, hits.get(api.PathSearch))
}

func TestIndexCommand_PrintsCounters(t *testing.T) {
	srv, hits := backend(t, map[string]string{
		api.PathIndex: `{"success":true,"message":"Indexed 3 documents","stats":{"total_documents":3,"total_words":1500,"avg_words_per_doc":500,"unique_tags":2,"formats":["md"]}}`,
		api.PathStats: `{"success":true,"stats":{"total_documents":3,"total_words":1500,"unique_tags":2}}`,
	})

	out, err := run(t, srv.URL, "index", "-p", "./docs")
	require.NoError(t, err)
	assert.Contains(t, out, "Indexed 3 documents")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "documents")
	assert.Equal(t, 1, hits.get(api.PathStats))
}

func TestIndexCommand_Rejected(t *testing.T) {
	srv, hits := backend(t, map[string]string{
		api.PathIndex: `{"success":false,"error":"path not found"}`,
	})

	out, err := run(t, srv.URL, "index", "--path", "/missing")
	require.True(t, errors.Is(err, errOperationFailed))
	assert.Contains(t, out, "path not found")
	assert.Zero(t, hits.get(api.PathStats))
}

func TestClustersCommand_Empty(t *testing.T) {
	srv, _ := backend(t, map[string]string{
		api.PathClusters: `{"success":true,"clusters":[]}`,
	})

	out, err := run(t, srv.URL, "clusters")
	require.NoError(t, err)
	assert.Contains(t, out, "No clusters available.")
}

func TestClustersCommand_BackendError(t *testing.T) {
	srv, _ := backend(t, nil)

	out, err := run(t, srv.URL, "clusters")
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, out, "Could not load saved clusters")
}

func TestStatsCommand(t *testing.T) {
	srv, _ := backend(t, map[string]string{
		api.PathStats: `{"success":true,"stats":{"total_documents":12,"total_words":1234567,"unique_tags":7}}`,
	})

	out, err := run(t, srv.URL, "stats")
	require.NoError(t, err)
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "tags")
}

func TestStatsCommand_Unavailable(t *testing.T) {
	srv, _ := backend(t, nil)

	out, err := run(t, srv.URL, "stats")
	require.ErrorIs(t, err, errOperationFailed)
	assert.Contains(t, out, "Could not load statistics")
}

func TestInvalidBackendFlag(t *testing.T) {
	_, err := run(t, "ftp://nowhere", "stats")
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "backend.url"), err.Error())
}
