// Package pdf exports the documentation package to PDF through a headless
// Chromium instance. Pages are printed A4 with 1.5 cm margins and
// backgrounds enabled, matching the server's print stylesheet.
package pdf

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/docgen"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/server"
)

// A4 paper and margins in inches, the unit Chromium prints in.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 0.59 // 1.5 cm
)

// Options configures an Exporter.
type Options struct {
	// BaseURL points at a running documentation server. When empty the
	// exporter renders each page itself and prints it from a data URL.
	BaseURL string

	// Spec is required when BaseURL is empty.
	Spec *design.Spec

	// OutputDir receives the PDF files. Defaults to the working directory.
	OutputDir string

	// BrowserBin overrides browser discovery.
	BrowserBin string

	// Timeout bounds each page print. Defaults to 60s.
	Timeout time.Duration

	// Logger receives progress logs. Defaults to the package default.
	Logger *log.Logger
}

// Exporter prints documentation pages to PDF.
type Exporter struct {
	opts Options
}

// NewExporter validates the options and returns an Exporter.
func NewExporter(opts Options) (*Exporter, error) {
	if opts.BaseURL == "" && opts.Spec == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "pdf export requires a server URL or a design spec")
	}
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if opts.Timeout == 0 {
		opts.Timeout = 60 * time.Second
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	return &Exporter{opts: opts}, nil
}

// ExportAll prints every registered document and returns the written
// paths. Per-document failures are collected; ExportAll keeps going and
// returns the paths that succeeded alongside the joined error.
func (e *Exporter) ExportAll(ctx context.Context) ([]string, error) {
	return e.Export(ctx, docgen.All())
}

// Export prints the given documents to PDF.
func (e *Exporter) Export(ctx context.Context, docs []docgen.Document) ([]string, error) {
	browser, cleanup, err := e.connect(ctx)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := os.MkdirAll(e.opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create output dir %s", e.opts.OutputDir)
	}

	var (
		paths []string
		errs  []error
	)
	for _, doc := range docs {
		path := filepath.Join(e.opts.OutputDir, PDFName(doc))
		if err := e.exportDocument(ctx, browser, doc, path); err != nil {
			e.opts.Logger.Error("pdf export failed", "document", doc.Name, "err", err)
			errs = append(errs, errors.Wrap(errors.ErrCodePrintFailed, err, "export %s", doc.Name))
			continue
		}
		e.opts.Logger.Info("pdf written", "path", path)
		paths = append(paths, path)
	}
	return paths, joinErrors(errs)
}

// PDFName maps a document to its PDF file name.
func PDFName(doc docgen.Document) string {
	return strings.TrimSuffix(doc.Filename, ".md") + ".pdf"
}

// connect finds a browser, launches it headless, and connects. A missing
// browser binary yields ErrCodeBrowserUnavailable.
func (e *Exporter) connect(ctx context.Context) (*rod.Browser, func(), error) {
	bin := e.opts.BrowserBin
	if bin == "" {
		found, ok := launcher.LookPath()
		if !ok {
			return nil, nil, errors.New(errors.ErrCodeBrowserUnavailable,
				"no Chrome or Chromium binary found; install one or set --browser")
		}
		bin = found
	}

	l := launcher.New().Bin(bin).Headless(true)
	controlURL, err := l.Launch()
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeBrowserUnavailable, err, "launch %s", bin)
	}

	browser := rod.New().ControlURL(controlURL).Context(ctx)
	if err := browser.Connect(); err != nil {
		l.Cleanup()
		return nil, nil, errors.Wrap(errors.ErrCodeBrowserUnavailable, err, "connect to browser")
	}

	cleanup := func() {
		_ = browser.Close()
		l.Cleanup()
	}
	return browser, cleanup, nil
}

func (e *Exporter) exportDocument(ctx context.Context, browser *rod.Browser, doc docgen.Document, path string) error {
	target, err := e.pageTarget(doc)
	if err != nil {
		return err
	}

	printCtx, cancel := context.WithTimeout(ctx, e.opts.Timeout)
	defer cancel()

	page, err := browser.Page(proto.TargetCreateTarget{URL: target})
	if err != nil {
		return fmt.Errorf("open page: %w", err)
	}
	defer func() { _ = page.Close() }()
	page = page.Context(printCtx)

	if err := page.WaitLoad(); err != nil {
		return fmt.Errorf("wait for load: %w", err)
	}

	stream, err := page.PDF(&proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      f64(paperWidthIn),
		PaperHeight:     f64(paperHeightIn),
		MarginTop:       f64(marginIn),
		MarginBottom:    f64(marginIn),
		MarginLeft:      f64(marginIn),
		MarginRight:     f64(marginIn),
	})
	if err != nil {
		return fmt.Errorf("print: %w", err)
	}
	data, err := io.ReadAll(stream)
	if err != nil {
		return fmt.Errorf("read pdf stream: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// pageTarget returns the URL to print: a server route when a BaseURL is
// configured, otherwise a data URL of the self-rendered page.
func (e *Exporter) pageTarget(doc docgen.Document) (string, error) {
	if e.opts.BaseURL != "" {
		return strings.TrimSuffix(e.opts.BaseURL, "/") + "/documents/" + doc.Name, nil
	}
	page, err := server.RenderPage(e.opts.Spec, doc.Name)
	if err != nil {
		return "", err
	}
	return DataURL(page), nil
}

// DataURL encodes an HTML page as a base64 data URL.
func DataURL(html []byte) string {
	return "data:text/html;base64," + base64.StdEncoding.EncodeToString(html)
}

func f64(v float64) *float64 { return &v }

func joinErrors(errs []error) error {
	switch len(errs) {
	case 0:
		return nil
	case 1:
		return errs[0]
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return errors.New(errors.ErrCodePrintFailed, "%d documents failed: %s", len(errs), strings.Join(msgs, "; "))
}
