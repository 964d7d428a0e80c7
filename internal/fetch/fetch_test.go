// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/nro337/docparse/internal/httputil"
	"github.com/nro337/docparse/pkg/types"
)

func init() {
	httputil.RetryBaseDelay = 1 * time.Millisecond
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantType IdentifierType
		wantNorm string
	}{
		{"arxiv bare", "2301.07041", TypeArxiv, "2301.07041"},
		{"arxiv prefixed", "arXiv:2301.07041", TypeArxiv, "2301.07041"},
		{"arxiv versioned", "2301.07041v2", TypeArxiv, "2301.07041v2"},
		{"doi simple", "10.1145/1234567.1234568", TypeDOI, "10.1145/1234567.1234568"},
		{"doi nature", "10.1038/s41746-025-02022-1", TypeDOI, "10.1038/s41746-025-02022-1"},
		{"url https", "https://example.com/paper", TypeURL, "https://example.com/paper"},
		{"url http", "http://example.com/paper.pdf", TypeURL, "http://example.com/paper.pdf"},
		{"unknown bare word", "not-an-id", TypeUnknown, "not-an-id"},
		{"unknown empty", "", TypeUnknown, ""},
		{"whitespace trimmed", "  2301.07041  ", TypeArxiv, "2301.07041"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotType, gotNorm := Classify(tt.input)
			if gotType != tt.wantType {
				t.Errorf("Classify(%q) type = %v, want %v", tt.input, gotType, tt.wantType)
			}
			if gotNorm != tt.wantNorm {
				t.Errorf("Classify(%q) norm = %q, want %q", tt.input, gotNorm, tt.wantNorm)
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	tests := []struct {
		name    string
		idType  IdentifierType
		norm    string
		wantURL string
	}{
		{"arxiv", TypeArxiv, "2301.07041", arxivAbsBase + "2301.07041"},
		{"doi", TypeDOI, "10.1145/1234567", doiBase + "10.1145/1234567"},
		{"url passthrough", TypeURL, "https://example.com/paper", "https://example.com/paper"},
		{"unknown empty", TypeUnknown, "foo", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveURL(tt.idType, tt.norm)
			if got != tt.wantURL {
				t.Errorf("ResolveURL(%v, %q) = %q, want %q", tt.idType, tt.norm, got, tt.wantURL)
			}
		})
	}
}

func TestDetectKind(t *testing.T) {
	tests := []struct {
		name        string
		contentType string
		body        string
		want        Kind
	}{
		{"pdf header", "application/pdf", "%PDF-1.7 ...", KindPDF},
		{"html header", "text/html; charset=utf-8", "<html></html>", KindHTML},
		{"magic bytes only", "application/octet-stream", "%PDF-1.4 ...", KindPDF},
		{"no header html", "", "<!doctype html>", KindHTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectKind(tt.contentType, []byte(tt.body))
			if got != tt.want {
				t.Errorf("DetectKind(%q) = %v, want %v", tt.contentType, got, tt.want)
			}
		})
	}
}

func TestFetch_HTML(t *testing.T) {
	const page = "<html><head><title>t</title></head><body><h1>Paper</h1></body></html>"
	var gotUA string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	}))
	defer ts.Close()

	cfg := types.HTTPConfig{Timeout: 5 * time.Second, UserAgent: "docparse/test"}
	doc, err := Fetch(context.Background(), ts.Client(), ts.URL, cfg)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if doc.Kind != KindHTML {
		t.Errorf("Kind = %v, want KindHTML", doc.Kind)
	}
	if string(doc.Body) != page {
		t.Errorf("Body = %q, want page content", doc.Body)
	}
	if gotUA != "docparse/test" {
		t.Errorf("User-Agent = %q, want docparse/test", gotUA)
	}
}

func TestFetch_PDF(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.7 fake"))
	}))
	defer ts.Close()

	doc, err := Fetch(context.Background(), ts.Client(), ts.URL, types.HTTPConfig{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if doc.Kind != KindPDF {
		t.Errorf("Kind = %v, want KindPDF", doc.Kind)
	}
}

func TestFetch_NotFound(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	}))
	defer ts.Close()

	_, err := Fetch(context.Background(), ts.Client(), ts.URL, types.HTTPConfig{})
	if err == nil {
		t.Fatal("Fetch() error = nil, want status error")
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("error = %v, want it to mention the status", err)
	}
}

func TestFetch_UnknownIdentifier(t *testing.T) {
	_, err := Fetch(context.Background(), http.DefaultClient, "not-an-id", types.HTTPConfig{})
	if err == nil {
		t.Fatal("Fetch() error = nil, want classification error")
	}
}

func TestFetch_FollowsRedirect(t *testing.T) {
	target := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte("<html>final</html>"))
	}))
	defer target.Close()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target.URL, http.StatusFound)
	}))
	defer ts.Close()

	doc, err := Fetch(context.Background(), ts.Client(), ts.URL, types.HTTPConfig{})
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if doc.URL != target.URL {
		t.Errorf("URL = %q, want redirect target %q", doc.URL, target.URL)
	}
}
