// Package docgen renders the engineering document package for a sized tank
// design: the component analysis report, the safety compliance checklist,
// the technical specification sheet, and the combined deliverable.
//
// Documents are generated as markdown from text templates executed against a
// design.Spec and the standards tables, then optionally converted to HTML
// for serving. Generation is deterministic for a given spec and date.
package docgen

import (
	"bytes"
	"fmt"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/standards"
)

// Document names used in CLI arguments and server routes.
const (
	NameAnalysisReport  = "analysis_report"
	NameSafetyChecklist = "safety_checklist"
	NameTechnicalSpec   = "technical_specification"
	NameDeliverable     = "deliverable"
)

// Document describes one generated document in the package.
type Document struct {
	Name     string // route and CLI identifier
	Filename string // on-disk markdown filename
	Title    string
	Category string // dashboard grouping
	Summary  string
}

// All lists the documents in the package, in dashboard order.
func All() []Document {
	return []Document{
		{
			Name:     NameDeliverable,
			Filename: "Comprehensive_Tank_Design_Deliverable.md",
			Title:    "Comprehensive Tank Design Deliverable",
			Category: "Package",
			Summary:  "Complete design package: specification, analysis, and compliance checklist in one document",
		},
		{
			Name:     NameTechnicalSpec,
			Filename: "Tank_Technical_Specifications.md",
			Title:    "Tank Technical Specifications",
			Category: "Engineering",
			Summary:  "Governing standards, principal dimensions, materials, and nozzle schedule",
		},
		{
			Name:     NameAnalysisReport,
			Filename: "Tank_Design_Analysis_Report.md",
			Title:    "Tank Design Analysis Report",
			Category: "Engineering",
			Summary:  "Per-component analysis, compliance matrix, and engineering calculations",
		},
		{
			Name:     NameSafetyChecklist,
			Filename: "Tank_Safety_Compliance_Checklist.md",
			Title:    "Tank Safety Compliance Checklist",
			Category: "Compliance",
			Summary:  "Fabrication, inspection, installation, and commissioning checklists with signature block",
		},
	}
}

// Get returns the document descriptor for a name.
func Get(name string) (Document, error) {
	if err := errors.ValidateDocumentName(name); err != nil {
		return Document{}, err
	}
	for _, d := range All() {
		if d.Name == name || d.Filename == name {
			return d, nil
		}
	}
	return Document{}, errors.New(errors.ErrCodeDocumentNotFound, "unknown document %q", name)
}

// Generator renders the document package for one design.
type Generator struct {
	Spec *design.Spec
	Date time.Time // report date; zero value means time.Now at Generate time
}

// NewGenerator returns a Generator for the given spec.
func NewGenerator(spec *design.Spec) *Generator {
	return &Generator{Spec: spec}
}

func (g *Generator) date() time.Time {
	if g.Date.IsZero() {
		return time.Now()
	}
	return g.Date
}

// Generate renders a single document by name.
func (g *Generator) Generate(name string) ([]byte, error) {
	doc, err := Get(name)
	if err != nil {
		return nil, err
	}
	switch doc.Name {
	case NameAnalysisReport:
		return g.AnalysisReport()
	case NameSafetyChecklist:
		return g.SafetyChecklist()
	case NameTechnicalSpec:
		return g.TechnicalSpec()
	case NameDeliverable:
		return g.Deliverable()
	}
	return nil, errors.New(errors.ErrCodeDocumentNotFound, "unknown document %q", name)
}

// GenerateAll renders every document, keyed by filename.
func (g *Generator) GenerateAll() (map[string][]byte, error) {
	out := make(map[string][]byte, len(All()))
	for _, doc := range All() {
		data, err := g.Generate(doc.Name)
		if err != nil {
			return nil, err
		}
		out[doc.Filename] = data
	}
	return out, nil
}

// templateData is the single context every document template executes
// against.
type templateData struct {
	Spec       *design.Spec
	Components []design.Component
	Nozzles    []design.Nozzle
	Standards  []standards.Standard
	Checklist  []standards.Requirement
	Date       time.Time
}

func (g *Generator) data() templateData {
	return templateData{
		Spec:       g.Spec,
		Components: g.Spec.Components(),
		Nozzles:    g.Spec.Nozzles(),
		Standards:  standards.All(),
		Checklist:  standards.Checklist(),
		Date:       g.date(),
	}
}

// funcs are the helpers shared by the document templates.
var funcs = template.FuncMap{
	"f0": func(v float64) string { return fmt.Sprintf("%.0f", v) },
	"f1": func(v float64) string { return fmt.Sprintf("%.1f", v) },
	"f2": func(v float64) string { return fmt.Sprintf("%.2f", v) },
	"f4": func(v float64) string { return fmt.Sprintf("%.4f", v) },
	"comma": func(v float64) string {
		s := fmt.Sprintf("%.0f", v)
		if len(s) <= 3 {
			return s
		}
		var b strings.Builder
		lead := len(s) % 3
		if lead > 0 {
			b.WriteString(s[:lead])
		}
		for i := lead; i < len(s); i += 3 {
			if b.Len() > 0 {
				b.WriteByte(',')
			}
			b.WriteString(s[i : i+3])
		}
		return b.String()
	},
	"dimlabel": dimLabel,
	"sortdims": sortDims,
	"upper":    strings.ToUpper,
	"bystd":    standards.ByStandard,
	"covered":  standards.Covered,
	"yesno": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
	"passfail": func(b bool) string {
		if b {
			return "PASS"
		}
		return "FAIL"
	},
}

// dim is one labelled dimension row for template iteration.
type dim struct {
	Label string
	Value float64
}

// sortDims flattens a dimension map into sorted rows for stable output.
func sortDims(m map[string]float64) []dim {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]dim, 0, len(keys))
	for _, k := range keys {
		out = append(out, dim{Label: dimLabel(k), Value: m[k]})
	}
	return out
}

// dimLabel turns a snake_case dimension key into a display label, keeping
// the unit suffix readable ("bore_mm" becomes "Bore (mm)").
func dimLabel(key string) string {
	unit := ""
	switch {
	case strings.HasSuffix(key, "_mm"):
		key, unit = strings.TrimSuffix(key, "_mm"), "mm"
	case strings.HasSuffix(key, "_deg"):
		key, unit = strings.TrimSuffix(key, "_deg"), "deg"
	}
	words := strings.Split(key, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	label := strings.Join(words, " ")
	if unit != "" {
		label += " (" + unit + ")"
	}
	return label
}

// render parses and executes a document template. A failure here is a
// programming error in the template, reported as an internal error.
func render(name, text string, data templateData) ([]byte, error) {
	tmpl, err := template.New(name).Funcs(funcs).Parse(text)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "parse %s template", name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", name)
	}
	return buf.Bytes(), nil
}
