// Package server serves the generated documentation package over local
// HTTP. The dashboard lists every registered document with view and print
// links, individual documents render through goldmark into a print-ready
// page, and the STEP model is offered as a download. Rendered pages are
// cached through pkg/cache keyed on the design fingerprint.
package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/solprov/tankdesign/pkg/cache"
	"github.com/solprov/tankdesign/pkg/design"
	"github.com/solprov/tankdesign/pkg/docgen"
	"github.com/solprov/tankdesign/pkg/errors"
	"github.com/solprov/tankdesign/pkg/geometry"
	"github.com/solprov/tankdesign/pkg/observability"
	"github.com/solprov/tankdesign/pkg/step"
)

// Options configures a documentation server.
type Options struct {
	// Addr is the listen address, e.g. "127.0.0.1:8080". Use port 0 to
	// let the kernel pick a free port.
	Addr string

	// Spec is the tank design served. Required.
	Spec *design.Spec

	// STEP holds the serialized model. When nil the server builds it
	// from the spec on startup.
	STEP []byte

	// Cache stores rendered pages. Defaults to NullCache.
	Cache cache.Cache

	// Keyer derives page cache keys. Defaults to cache.DefaultKeyer.
	Keyer cache.Keyer

	// Logger receives request logs. Defaults to the package default.
	Logger *log.Logger

	// Title overrides the dashboard title.
	Title string
}

// Server serves the documentation package over HTTP.
type Server struct {
	opts     Options
	gen      *docgen.Generator
	stepData []byte
	specHash string
	httpSrv  *http.Server
	listener net.Listener
}

// New prepares a server. It builds the STEP model if one was not
// supplied, so startup fails early on a bad spec.
func New(opts Options) (*Server, error) {
	if opts.Spec == nil {
		return nil, errors.New(errors.ErrCodeInvalidConfig, "server requires a design spec")
	}
	if opts.Addr == "" {
		opts.Addr = "127.0.0.1:8080"
	}
	if opts.Cache == nil {
		opts.Cache = cache.NewNullCache()
	}
	if opts.Keyer == nil {
		opts.Keyer = cache.NewDefaultKeyer()
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if opts.Title == "" {
		opts.Title = fmt.Sprintf("%.0fL Above-Ground Petroleum Storage Tank", opts.Spec.ActualLiters)
	}

	stepData := opts.STEP
	if stepData == nil {
		var buf bytes.Buffer
		stepOpts := step.DefaultOptions()
		stepOpts.Timestamp = time.Unix(0, 0).UTC()
		if err := step.Write(&buf, geometry.BuildTank(opts.Spec), stepOpts); err != nil {
			return nil, err
		}
		stepData = buf.Bytes()
	}

	specJSON, err := json.Marshal(opts.Spec)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fingerprint spec")
	}

	s := &Server{
		opts:     opts,
		gen:      docgen.NewGenerator(opts.Spec),
		stepData: stepData,
		specHash: cache.Hash(specJSON),
	}
	s.httpSrv = &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	return s, nil
}

// Router builds the chi router with the standard middleware stack.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleDashboard)
	r.Get("/documents/{name}", s.handleDocument)
	r.Get("/model/tank.stp", s.handleModel)
	r.Get("/healthz", s.handleHealth)
	return r
}

// Start listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", s.opts.Addr)
	}
	s.listener = ln
	s.opts.Logger.Info("documentation server listening", "url", "http://"+ln.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpSrv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.httpSrv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Addr returns the actual listen address once Start has bound the
// listener. Empty before Start.
func (s *Server) Addr() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// requestLogger logs one line per request through the charm logger.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		observability.Server().OnPageServed(r.Context(), r.URL.Path, ww.Status(), time.Since(start))
		s.opts.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start))
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{
		Title:     s.opts.Title,
		Spec:      s.opts.Spec,
		Documents: docgen.All(),
		STEPSize:  len(s.stepData),
	}
	var buf bytes.Buffer
	if err := dashboardTemplate.Execute(&buf, data); err != nil {
		s.serveError(w, errors.Wrap(errors.ErrCodeInternal, err, "render dashboard"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleDocument(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	doc, err := docgen.Get(name)
	if err != nil {
		s.serveError(w, err)
		return
	}

	cacheKey := s.opts.Keyer.PageKey(s.specHash, "/documents/"+doc.Name)
	if page, hit, err := s.opts.Cache.Get(r.Context(), cacheKey); err == nil && hit {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write(page)
		return
	}

	page, err := s.renderDocument(doc)
	if err != nil {
		s.serveError(w, err)
		return
	}
	_ = s.opts.Cache.Set(r.Context(), cacheKey, page, cache.TTLPage)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(page)
}

func (s *Server) renderDocument(doc docgen.Document) ([]byte, error) {
	return renderPage(s.gen, doc)
}

// RenderPage renders one document as a standalone print-ready HTML page,
// without a running server. Used for self-contained PDF export.
func RenderPage(spec *design.Spec, name string) ([]byte, error) {
	doc, err := docgen.Get(name)
	if err != nil {
		return nil, err
	}
	return renderPage(docgen.NewGenerator(spec), doc)
}

func renderPage(gen *docgen.Generator, doc docgen.Document) ([]byte, error) {
	md, err := gen.Generate(doc.Name)
	if err != nil {
		return nil, err
	}
	body, err := docgen.ToHTML(md)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = pageTemplate.Execute(&buf, pageData{
		Title: doc.Title,
		Body:  template.HTML(body),
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render page %s", doc.Name)
	}
	return buf.Bytes(), nil
}

func (s *Server) handleModel(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/step")
	w.Header().Set("Content-Disposition", `attachment; filename="tank.stp"`)
	_, _ = w.Write(s.stepData)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// serveError maps coded errors to HTTP statuses.
func (s *Server) serveError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch errors.GetCode(err) {
	case errors.ErrCodeDocumentNotFound, errors.ErrCodeNotFound:
		status = http.StatusNotFound
	case errors.ErrCodeInvalidDocument, errors.ErrCodeInvalidPath:
		status = http.StatusBadRequest
	}
	http.Error(w, errors.UserMessage(err), status)
}
