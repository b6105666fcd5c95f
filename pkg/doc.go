// Package pkg provides the core libraries for Tankdesign, an engineering
// design generator for above-ground petroleum storage tanks.
//
// # Overview
//
// Tankdesign sizes a horizontal cylindrical storage tank to SANS 10131:2004
// and API 650, then produces the complete deliverable set: engineering
// documents, a 3D CAD model, assembly diagrams, and printable PDFs. The pkg
// directory is organized into four main areas:
//
//  1. [design] - Tank sizing and parameter derivation
//  2. [docgen] / [geometry] / [step] - Document and CAD model generation
//  3. [server] / [pdf] - Local documentation server and PDF printing
//  4. [pipeline] / [cache] - Orchestration and content-addressed caching
//
// # Architecture
//
// The typical data flow through Tankdesign:
//
//	Capacity (litres)
//	         ↓
//	    [design] package (size tank per SANS 10131 / API 650)
//	         ↓
//	    [docgen] package (markdown engineering documents)
//	    [geometry] package (CSG assembly tree)
//	         ↓
//	    [step] package (ISO 10303-21 CAD export)
//	    [server] package (HTML dashboard + document pages)
//	         ↓
//	    Markdown/HTML/STEP/SVG/PDF output
//
// # Quick Start
//
// Size a tank and generate the full deliverable set:
//
//	import (
//	    "context"
//	    "github.com/solprov/tankdesign/pkg/cache"
//	    "github.com/solprov/tankdesign/pkg/pipeline"
//	)
//
//	// 1. Build a runner with a filesystem cache
//	fc, _ := cache.NewFileCache("/tmp/tankdesign")
//	runner := pipeline.NewRunner(fc, cache.NewDefaultKeyer(), nil)
//
//	// 2. Execute the full pipeline
//	result, _ := runner.Execute(context.Background(), pipeline.Options{
//	    CapacityLiters: 9000,
//	    Formats:        []string{pipeline.FormatMarkdown, pipeline.FormatSTEP},
//	})
//
//	// 3. Inspect artifacts
//	for name, data := range result.Artifacts {
//	    os.WriteFile(name, data, 0o644)
//	}
//
// # Main Packages
//
// ## Domain Logic
//
// [design] - Tank sizing. Selects a standard SANS 10131 size when the
// requested capacity falls in a standard band, otherwise derives dimensions
// from the L = 2D rule, and computes shell thickness, weights, and nozzle
// schedule per API 650.
//
// [standards] - Standard size tables, material grades, and design pressures
// from SANS 10131:2004 and API 650.
//
// [docgen] - Engineering document generation. Renders the deliverable
// description, technical specification, analysis report, and safety
// checklist as markdown, with goldmark-based HTML conversion.
//
// [geometry] - Constructive solid geometry for the tank assembly. Builds the
// 17-part tree (shell, dished ends, nozzles, saddles, manway) and serializes
// it to JSON and Graphviz DOT; diagram rendering uses go-graphviz.
//
// [step] - ISO 10303-21 (STEP AP214) writer for the assembly tree.
//
// ## Delivery
//
// [server] - Local documentation server built on chi. Serves the dashboard,
// HTML-rendered documents, and the STEP model download.
//
// [pdf] - PDF printing via headless Chrome (go-rod). Prints either against a
// running server or self-contained from rendered pages.
//
// ## Infrastructure
//
// [pipeline] - Orchestration of design → documents → model with per-stage
// caching, used by both the CLI and the server.
//
// [cache] - Content-addressed caching keyed on input hashes. FileCache for
// the CLI, RedisCache for shared setups, NullCache for testing.
//
// [project] - TOML project configuration (tankdesign.toml) discovery,
// loading, and validation.
//
// [observability] - Pluggable hooks for pipeline stages, cache activity, and
// served pages. Defaults are no-ops.
//
// [errors] - Coded errors with user-facing messages shared across packages.
//
// # Common Workflows
//
// Size a tank without running the pipeline:
//
//	spec, _ := design.New(9000)
//	fmt.Printf("D=%.0fmm L=%.0fmm t=%.1fmm\n",
//	    spec.DiameterMM, spec.LengthMM, spec.ShellThicknessMM)
//
// Render one document:
//
//	gen := docgen.NewGenerator(spec)
//	md, _ := gen.Generate(docgen.NameTechnicalSpec)
//
// Serve the deliverables locally:
//
//	srv, _ := server.New(server.Options{Spec: spec, Addr: "127.0.0.1:8080"})
//	srv.Start(ctx)
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/design/...   # Specific package
//
// [design]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/design
// [standards]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/standards
// [docgen]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/docgen
// [geometry]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/geometry
// [step]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/step
// [server]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/server
// [pdf]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/pdf
// [pipeline]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/cache
// [project]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/project
// [observability]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/observability
// [errors]: https://pkg.go.dev/github.com/solprov/tankdesign/pkg/errors
package pkg
