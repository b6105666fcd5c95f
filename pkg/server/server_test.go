package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/solprov/tankdesign/pkg/cache"
	"github.com/solprov/tankdesign/pkg/design"
)

func testServer(t *testing.T, c cache.Cache) *Server {
	t.Helper()
	spec, err := design.New(9000)
	if err != nil {
		t.Fatal(err)
	}
	s, err := New(Options{
		Spec:   spec,
		Cache:  c,
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestDashboard(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("content type = %q", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{
		"9000 L",
		"1870 mm",
		"Tank Technical Specifications",
		"Tank Design Analysis Report",
		"Tank Safety Compliance Checklist",
		"Comprehensive Tank Design Deliverable",
		"/model/tank.stp",
		"SANS 10131:2004",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("dashboard missing %q", want)
		}
	}
}

func TestDocumentRoute(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/documents/technical_specification")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<table>") {
		t.Error("rendered document should contain HTML tables")
	}
	if !strings.Contains(body, "Back to dashboard") {
		t.Error("rendered document should carry the page chrome")
	}
	if strings.Contains(body, "| Parameter |") {
		t.Error("markdown should have been converted to HTML")
	}
}

func TestDocumentRouteByFilename(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/documents/Tank_Technical_Specifications.md")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestDocumentNotFound(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/documents/blueprints")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestDocumentTraversalRejected(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/documents/..%2f..%2fetc%2fpasswd")
	if rec.Code == http.StatusOK {
		t.Fatalf("traversal path should not be served, got %d", rec.Code)
	}
}

func TestDocumentCaching(t *testing.T) {
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	h := testServer(t, fc).Router()

	first := get(t, h, "/documents/analysis_report")
	if first.Code != http.StatusOK {
		t.Fatalf("status = %d", first.Code)
	}
	second := get(t, h, "/documents/analysis_report")
	if second.Body.String() != first.Body.String() {
		t.Error("cached page should match the rendered page")
	}
}

func TestModelDownload(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/model/tank.stp")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/step" {
		t.Errorf("content type = %q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "tank.stp") {
		t.Errorf("content disposition = %q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "ISO-10303-21;") {
		t.Error("model download should be a STEP file")
	}
}

func TestHealth(t *testing.T) {
	h := testServer(t, cache.NewNullCache()).Router()
	rec := get(t, h, "/healthz")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthz = %d %q", rec.Code, rec.Body.String())
	}
}

func TestNewRequiresSpec(t *testing.T) {
	if _, err := New(Options{}); err == nil {
		t.Fatal("New should reject a nil spec")
	}
}

func TestNewDefaults(t *testing.T) {
	spec, err := design.New(9000)
	if err != nil {
		t.Fatal(err)
	}

	// Only the spec is required; cache, keyer, and logger all default.
	s, err := New(Options{Spec: spec})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.opts.Addr != "127.0.0.1:8080" {
		t.Errorf("default addr = %q", s.opts.Addr)
	}
	if s.opts.Cache == nil || s.opts.Keyer == nil || s.opts.Logger == nil {
		t.Fatal("defaults should populate cache, keyer, and logger")
	}

	// The defaulted keyer must serve document lookups.
	rec := get(t, s.Router(), "/documents/analysis_report")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
}
