// Package server exposes the Rawser core over HTTP: event ingestion
// from a browser collaborator, candidate queries, and download control.
package server

import (
	"fmt"
	"net/http"

	"rawser/internal/app"
	"rawser/internal/utils/logging"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

var orc *app.Orchestrator

// DefaultPort is the port served when none is configured.
const DefaultPort = "8841"

// NewRouter returns an http.Handler over the orchestrator.
func NewRouter(o *app.Orchestrator) http.Handler {
	orc = o

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		// Browser event ingestion.
		r.Post("/events", handleNetworkEvent)
		r.Post("/cookies", handleCookieEvent)

		// Candidates API.
		r.Route("/candidates", func(r chi.Router) {
			r.Get("/", handleListCandidates)
			r.Delete("/", handleClearCandidates)
		})

		// Downloads API.
		r.Route("/downloads", func(r chi.Router) {
			r.Get("/", handleListDownloads)
			r.Post("/", handleRequestDownload)
			r.Get("/{id}", handleGetDownload)
		})
	})

	return r
}

// StartServer starts the HTTP server on the specified port.
func StartServer(o *app.Orchestrator, port string) error {
	if port == "" {
		port = DefaultPort
	}
	addr := ":" + port

	logging.S("Rawser server running on http://localhost%s", addr)
	if err := http.ListenAndServe(addr, NewRouter(o)); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}
	return nil
}
