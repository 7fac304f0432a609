// internal/web/web.go
//
// HTTP surface for the site engine.
//
// Context
// -------
// The engine serves a JSON content API that the page frontend renders:
//
//	GET  /{city}/{service}   – resolved landing page, did-you-mean, or 404
//	GET  /services/{service} – service hub: curated entry + covered cities
//	POST /lead               – quote-request intake
//	GET  /healthz            – liveness probe
//	GET  /metrics            – Prometheus scrape endpoint
//
// Workflow
// --------
//  1. cmd/web builds the collaborators (index, store, resolver, lead
//     service) and hands them to NewServer.
//  2. Router() assembles the chi router with the shared middleware
//     chain: request-ID, real-IP, zap request log, recoverer, security
//     headers, request-info enrichment, and optional HTTPS redirect.
//
// Notes
// -----
// • Handlers never write HTML.  Layout and styling live in the frontend.
package web

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/wasatchbuilt/siteengine/internal/catalog"
	"github.com/wasatchbuilt/siteengine/internal/content"
	"github.com/wasatchbuilt/siteengine/internal/lead"
	"github.com/wasatchbuilt/siteengine/internal/middleware"
	"github.com/wasatchbuilt/siteengine/internal/requestinfo"
	"github.com/wasatchbuilt/siteengine/internal/resolve"
)

// Options tunes router assembly.
type Options struct {
	BaseURL    string // canonical origin, e.g. "https://wasatchbuilt.com"
	ForceHTTPS bool
}

// Server bundles the handler collaborators.  Construct with NewServer;
// fields are read-only afterwards.
type Server struct {
	idx      *catalog.Index
	store    *content.Store
	resolver *resolve.Resolver
	leads    *lead.Service
	opts     Options
	log      *zap.SugaredLogger
}

// NewServer wires the HTTP layer.  leads may be nil (intake disabled),
// log may be nil (global logger).
func NewServer(idx *catalog.Index, store *content.Store, resolver *resolve.Resolver, leads *lead.Service, opts Options, log *zap.SugaredLogger) *Server {
	if log == nil {
		log = zap.S()
	}
	return &Server{idx: idx, store: store, resolver: resolver, leads: leads, opts: opts, log: log}
}

// Router assembles the full middleware chain and route table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(s.requestLog)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(middleware.Security)
	r.Use(requestinfo.Enrich)

	r.Get("/healthz", s.handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/lead", s.handleLead)
	r.Get("/services/{service}", s.handleServiceHub)
	r.Get("/{city}/{service}", s.handlePage)

	if s.opts.ForceHTTPS {
		return middleware.ForceHTTPS(r)
	}
	return r
}

// requestLog emits one structured line per request.
func (s *Server) requestLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Infow("http request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"dur_ms", time.Since(start).Milliseconds(),
			"request_id", chimw.GetReqID(r.Context()),
		)
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok\n"))
}
