// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nro337/docparse/internal/convert"
	"github.com/nro337/docparse/internal/ingest"
	"github.com/nro337/docparse/internal/store"
	"github.com/nro337/docparse/pkg/types"
)

const paperPage = `<html><body>
<h1>Test Paper</h1>
<h2>Abstract</h2>
<p>A test abstract.</p>
</body></html>`

// testServer wires a Server against a temp store and an httptest
// document host. The returned base URL serves paperPage.
func testServer(t *testing.T) (*Server, *store.Store, string) {
	t.Helper()

	docs := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "missing") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(paperPage))
	}))
	t.Cleanup(docs.Close)

	dir := t.TempDir()
	s, err := store.Open(types.StoreConfig{Path: filepath.Join(dir, "papers_data.json")})
	require.NoError(t, err)

	in := ingest.New(docs.Client(), convert.NewAuto(), s, types.HTTPConfig{UserAgent: "docparse/test"})
	srv := New(s, in, types.ExportConfig{Dir: dir})
	return srv, s, docs.URL
}

func doJSON(t *testing.T, srv *Server, method, target, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()

	var decoded map[string]any
	if len(data) > 0 && data[0] == '{' {
		require.NoError(t, json.Unmarshal(data, &decoded))
	}
	return resp, decoded
}

func TestIndexRoute(t *testing.T) {
	srv, _, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "Paper Collection")
}

func TestListPapers_Empty(t *testing.T) {
	srv, _, _ := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestAddPaper_Success(t *testing.T) {
	srv, s, docURL := testServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/papers", `{"url": "`+docURL+`"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Test Paper", body["title"])
	assert.Equal(t, "A test abstract.", body["abstract"])
	assert.Equal(t, float64(1), body["id"])
	// API responses never carry the converted markdown body.
	assert.NotContains(t, body, "markdown")
	assert.Equal(t, 1, s.Len())
}

func TestAddPaper_BlankURL(t *testing.T) {
	srv, _, _ := testServer(t)

	for _, body := range []string{`{}`, `{"url": ""}`, `{"url": "   "}`} {
		resp, decoded := doJSON(t, srv, http.MethodPost, "/api/papers", body)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body %s", body)
		assert.Equal(t, "URL is required", decoded["error"], "body %s", body)
	}
}

func TestAddPaper_FetchFailure(t *testing.T) {
	srv, s, docURL := testServer(t)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/papers", `{"url": "`+docURL+`/missing"}`)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Contains(t, body["error"], "404")
	assert.Equal(t, 0, s.Len())
}

func TestListPapers_WithData(t *testing.T) {
	srv, _, docURL := testServer(t)
	doJSON(t, srv, http.MethodPost, "/api/papers", `{"url": "`+docURL+`"}`)

	req := httptest.NewRequest(http.MethodGet, "/api/papers", nil)
	resp, err := srv.App().Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var papers []types.PaperSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&papers))
	require.Len(t, papers, 1)
	assert.Equal(t, "Test Paper", papers[0].Title)
}

func TestDeletePaper(t *testing.T) {
	srv, s, docURL := testServer(t)
	doJSON(t, srv, http.MethodPost, "/api/papers", `{"url": "`+docURL+`"}`)

	resp, body := doJSON(t, srv, http.MethodDelete, "/api/papers/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, 0, s.Len())
}

func TestDeletePaper_NotFound(t *testing.T) {
	srv, _, _ := testServer(t)

	resp, body := doJSON(t, srv, http.MethodDelete, "/api/papers/99", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Paper not found", body["error"])
}

func TestDeletePaper_InvalidID(t *testing.T) {
	srv, _, _ := testServer(t)

	resp, _ := doJSON(t, srv, http.MethodDelete, "/api/papers/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestExport(t *testing.T) {
	srv, _, docURL := testServer(t)
	doJSON(t, srv, http.MethodPost, "/api/papers", `{"url": "`+docURL+`"}`)

	resp, body := doJSON(t, srv, http.MethodPost, "/api/export", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["success"])

	filename, ok := body["filename"].(string)
	require.True(t, ok)
	assert.True(t, strings.HasSuffix(filename, ".md"))
}
