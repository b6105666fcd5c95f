package pdf

import (
	"encoding/base64"
	"strings"
	"testing"
	"time"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/docgen"
	"github.com/solprov/tankdesign/pkg/errors"
)

func TestNewExporter(t *testing.T) {
	if _, err := NewExporter(Options{}); errors.GetCode(err) != errors.ErrCodeInvalidConfig {
		t.Errorf("empty options should fail with INVALID_CONFIG, got %v", err)
	}

	e, err := NewExporter(Options{BaseURL: "http://127.0.0.1:8080"})
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	if e.opts.OutputDir != "." || e.opts.Timeout != 60*time.Second {
		t.Errorf("defaults not applied: %+v", e.opts)
	}
}

func TestPDFName(t *testing.T) {
	for _, doc := range docgen.All() {
		name := PDFName(doc)
		if !strings.HasSuffix(name, ".pdf") || strings.Contains(name, ".md") {
			t.Errorf("PDFName(%s) = %q", doc.Name, name)
		}
	}
}

func TestPageTarget(t *testing.T) {
	spec, err := design.New(9000)
	if err != nil {
		t.Fatal(err)
	}

	served, err := NewExporter(Options{BaseURL: "http://127.0.0.1:8080/"})
	if err != nil {
		t.Fatal(err)
	}
	url, err := served.pageTarget(docgen.All()[0])
	if err != nil {
		t.Fatalf("pageTarget: %v", err)
	}
	if url != "http://127.0.0.1:8080/documents/deliverable" {
		t.Errorf("url = %q", url)
	}

	local, err := NewExporter(Options{Spec: spec})
	if err != nil {
		t.Fatal(err)
	}
	url, err = local.pageTarget(docgen.All()[1])
	if err != nil {
		t.Fatalf("pageTarget: %v", err)
	}
	if !strings.HasPrefix(url, "data:text/html;base64,") {
		t.Fatalf("self-contained target should be a data URL, got %.40q", url)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(url, "data:text/html;base64,"))
	if err != nil {
		t.Fatalf("decode data URL: %v", err)
	}
	if !strings.Contains(string(decoded), "<table>") {
		t.Error("data URL should carry the rendered page")
	}
}
