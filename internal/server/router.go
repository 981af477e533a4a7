// Package server implements the HTTP API the dashboard talks to.
package server

import (
	"log/slog"
	"net/http"

	"github.com/gameforge/studio/internal/blobstore"
	"github.com/gameforge/studio/internal/recordstore"
	"github.com/gameforge/studio/internal/studio"
)

// Server holds the stores and configuration behind the API handlers.
type Server struct {
	records *recordstore.Store
	files   *blobstore.Store
	cfg     *studio.ServerConfig
	log     *slog.Logger
	version string

	readLimiter  *rateLimiter
	writeLimiter *rateLimiter
}

// New creates a Server around the given stores.
func New(records *recordstore.Store, files *blobstore.Store, cfg *studio.ServerConfig, log *slog.Logger, version string) *Server {
	return &Server{
		records:      records,
		files:        files,
		cfg:          cfg,
		log:          log,
		version:      version,
		readLimiter:  newRateLimiter(cfg.RateLimits.ReadRatePerMin),
		writeLimiter: newRateLimiter(cfg.RateLimits.WriteRatePerMin),
	}
}

// Close stops the rate limiter goroutines.
func (s *Server) Close() {
	s.readLimiter.close()
	s.writeLimiter.close()
}

// Handler builds the routing table. Literal routes (export, schema, assets)
// take precedence over the {namespace} wildcards per ServeMux specificity.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("POST /api/auth/login", s.handleLogin)

	// Snapshot operations
	mux.HandleFunc("GET /api/export", s.handleExport)
	mux.HandleFunc("POST /api/import", s.handleImport)
	mux.HandleFunc("POST /api/reset", s.handleReset)
	mux.HandleFunc("GET /api/schema", s.handleSchema)

	// Asset files
	mux.HandleFunc("POST /api/assets/{id}/file", s.handleUpload)
	mux.HandleFunc("GET /api/assets/{id}/file", s.handleDownload)
	mux.HandleFunc("GET /api/assets/{id}/thumbnail", s.handleThumbnail)
	mux.HandleFunc("DELETE /api/assets/{id}/file", s.handleDeleteFile)
	mux.HandleFunc("POST /api/maintenance/sweep", s.handleSweep)

	// Record collections
	mux.HandleFunc("GET /api/{namespace}", s.handleList)
	mux.HandleFunc("POST /api/{namespace}", s.handleAdd)
	mux.HandleFunc("PUT /api/{namespace}/{id}", s.handleUpdate)
	mux.HandleFunc("DELETE /api/{namespace}/{id}", s.handleDelete)

	return logRequests(s.requireAuth(s.rateLimit(mux)))
}
