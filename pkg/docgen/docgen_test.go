package docgen

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/errors"
)

func testGenerator(t *testing.T) *Generator {
	t.Helper()
	spec, err := design.New(9000)
	if err != nil {
		t.Fatalf("design.New: %v", err)
	}
	g := NewGenerator(spec)
	g.Date = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	return g
}

func TestAll(t *testing.T) {
	docs := All()
	if len(docs) != 4 {
		t.Fatalf("All returned %d documents, want 4", len(docs))
	}
	seen := make(map[string]bool)
	for _, d := range docs {
		if d.Name == "" || d.Filename == "" || d.Title == "" {
			t.Errorf("document %+v has empty fields", d)
		}
		if !strings.HasSuffix(d.Filename, ".md") {
			t.Errorf("filename %q should end in .md", d.Filename)
		}
		if seen[d.Name] {
			t.Errorf("duplicate document name %q", d.Name)
		}
		seen[d.Name] = true
	}
}

func TestGet(t *testing.T) {
	// Lookup by name and by filename.
	if _, err := Get(NameAnalysisReport); err != nil {
		t.Errorf("Get by name: %v", err)
	}
	if _, err := Get("Tank_Design_Analysis_Report.md"); err != nil {
		t.Errorf("Get by filename: %v", err)
	}

	_, err := Get("nonexistent")
	if errors.GetCode(err) != errors.ErrCodeDocumentNotFound {
		t.Errorf("Get unknown code = %s, want DOCUMENT_NOT_FOUND", errors.GetCode(err))
	}

	// Traversal attempts are rejected as invalid, not merely unknown.
	_, err = Get("../etc/passwd")
	if errors.GetCode(err) != errors.ErrCodeInvalidDocument {
		t.Errorf("Get traversal code = %s, want INVALID_DOCUMENT", errors.GetCode(err))
	}
}

func TestAnalysisReport(t *testing.T) {
	g := testGenerator(t)
	md, err := g.AnalysisReport()
	if err != nil {
		t.Fatalf("AnalysisReport: %v", err)
	}
	out := string(md)

	for _, want := range []string{
		"# COMPREHENSIVE TANK DESIGN ANALYSIS REPORT",
		"Capacity: 9,000 L (9.0 m³)",
		"Diameter: 1870 mm",
		"Length: 3680 mm",
		"Shell Thickness: 6.0 mm",
		"### CYLINDRICAL SHELL",
		"### NOZZLE N4",
		"### SANS 10131:2004",
		"| 4.1 | Bund wall construction and capacity | Yes |",
		"Total Safety Requirements: 17",
		"Standards Coverage: 6 standards",
		"Allowable Stress: 120 MPa (40% of yield)",
		"2026-03-14",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestSafetyChecklist(t *testing.T) {
	g := testGenerator(t)
	md, err := g.SafetyChecklist()
	if err != nil {
		t.Fatalf("SafetyChecklist: %v", err)
	}
	out := string(md)

	for _, want := range []string{
		"# TANK DESIGN SAFETY CHECKLIST",
		"## 9,000L Above-Ground Petroleum Storage Tank",
		"- [ ] Welding procedures qualified per SANS 9956-3",
		"- [ ] N1 (fill, NB 80) located and oriented per drawing",
		"Test pressure = 1.5 x design pressure (3.75 psig)",
		"Saddle position per specification (1070 mm from center)",
		"## SIGNATURE SECTION",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("checklist missing %q", want)
		}
	}
}

func TestTechnicalSpec(t *testing.T) {
	g := testGenerator(t)
	md, err := g.TechnicalSpec()
	if err != nil {
		t.Fatalf("TechnicalSpec: %v", err)
	}
	out := string(md)

	for _, want := range []string{
		"# TANK TECHNICAL SPECIFICATIONS",
		"| Shell Inside Diameter | 1870 mm |",
		"| Grade | 300WA (SANS 1431) |",
		"| Elastic Modulus | 200,000 MPa |",
		"| N1 | fill | 80 | 5.49 | 150 | 144 | top |",
		"| N4 | drain | 25 | 2.87 | 150 | 45 | bottom |",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("spec sheet missing %q", want)
		}
	}
}

func TestDeliverable(t *testing.T) {
	g := testGenerator(t)
	md, err := g.Deliverable()
	if err != nil {
		t.Fatalf("Deliverable: %v", err)
	}
	out := string(md)

	// Cover plus all three sections in order.
	idx := []int{
		strings.Index(out, "# COMPREHENSIVE TANK DESIGN DELIVERABLE"),
		strings.Index(out, "# TANK TECHNICAL SPECIFICATIONS"),
		strings.Index(out, "# COMPREHENSIVE TANK DESIGN ANALYSIS REPORT"),
		strings.Index(out, "# TANK DESIGN SAFETY CHECKLIST"),
	}
	for i, pos := range idx {
		if pos < 0 {
			t.Fatalf("deliverable missing section %d", i)
		}
		if i > 0 && pos < idx[i-1] {
			t.Errorf("section %d out of order", i)
		}
	}
}

func TestGenerateAll(t *testing.T) {
	g := testGenerator(t)
	docs, err := g.GenerateAll()
	if err != nil {
		t.Fatalf("GenerateAll: %v", err)
	}
	if len(docs) != 4 {
		t.Fatalf("GenerateAll returned %d documents, want 4", len(docs))
	}
	for _, d := range All() {
		if len(docs[d.Filename]) == 0 {
			t.Errorf("missing or empty document %s", d.Filename)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	g := testGenerator(t)
	a, err := g.Generate(NameDeliverable)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _ := g.Generate(NameDeliverable)
	if !bytes.Equal(a, b) {
		t.Error("generation with a fixed date should be deterministic")
	}
}

func TestToHTML(t *testing.T) {
	g := testGenerator(t)
	md, err := g.TechnicalSpec()
	if err != nil {
		t.Fatalf("TechnicalSpec: %v", err)
	}
	out, err := ToHTML(md)
	if err != nil {
		t.Fatalf("ToHTML: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "<h1") {
		t.Error("HTML should contain headings")
	}
	if !strings.Contains(html, "<table") {
		t.Error("HTML should render markdown tables")
	}
}

func TestDimLabel(t *testing.T) {
	cases := map[string]string{
		"bore_mm":         "Bore (mm)",
		"flange_od_mm":    "Flange Od (mm)",
		"angle_deg":       "Angle (deg)",
		"contact":         "Contact",
		"reinf_pad_od_mm": "Reinf Pad Od (mm)",
	}
	for in, want := range cases {
		if got := dimLabel(in); got != want {
			t.Errorf("dimLabel(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSortDims(t *testing.T) {
	rows := sortDims(map[string]float64{
		"length_mm": 150,
		"bore_mm":   80,
		"wall_mm":   5.49,
	})
	if len(rows) != 3 {
		t.Fatalf("sortDims returned %d rows", len(rows))
	}
	if rows[0].Label != "Bore (mm)" || rows[1].Label != "Length (mm)" || rows[2].Label != "Wall (mm)" {
		t.Errorf("rows not sorted: %+v", rows)
	}
}
