package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rawser/internal/models"

	"github.com/araddon/dateparse"
	"github.com/go-chi/chi/v5"
)

// handleNetworkEvent ingests one observed browser request. Responds
// 201 with the candidate when classification produced one, 204 when
// the event was noise or a duplicate.
func handleNetworkEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.NetworkEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, fmt.Sprintf("invalid event payload: %v", err), http.StatusBadRequest)
		return
	}
	if ev.URL == "" {
		http.Error(w, "event url is required", http.StatusBadRequest)
		return
	}

	candidate := orc.HandleNetworkEvent(ev)
	if candidate == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusCreated, candidate)
}

// handleCookieEvent applies a cookie added/removed mutation.
func handleCookieEvent(w http.ResponseWriter, r *http.Request) {
	var ev models.CookieEvent
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		http.Error(w, fmt.Sprintf("invalid cookie payload: %v", err), http.StatusBadRequest)
		return
	}
	if ev.Domain == "" || ev.Name == "" {
		http.Error(w, "cookie domain and name are required", http.StatusBadRequest)
		return
	}

	orc.HandleCookieEvent(ev)
	w.WriteHeader(http.StatusNoContent)
}

// handleListCandidates lists discovered candidates, optionally
// filtered with ?kind=.
func handleListCandidates(w http.ResponseWriter, r *http.Request) {
	var candidates []*models.MediaCandidate
	if kind := r.URL.Query().Get("kind"); kind != "" {
		candidates = orc.Registry.ByKind(models.ParseMediaKind(kind))
	} else {
		candidates = orc.Registry.All()
	}

	if candidates == nil {
		candidates = []*models.MediaCandidate{}
	}
	writeJSON(w, http.StatusOK, candidates)
}

// handleClearCandidates empties the registry for a fresh session.
func handleClearCandidates(w http.ResponseWriter, _ *http.Request) {
	orc.ClearSession()
	w.WriteHeader(http.StatusNoContent)
}

// downloadRequest is the POST /downloads payload.
type downloadRequest struct {
	URL      string `json:"url"`
	Filename string `json:"filename,omitempty"`

	// Wait blocks the request until the download finishes and returns
	// the terminal task. Otherwise the download runs in the background
	// and 202 is returned immediately.
	Wait bool `json:"wait,omitempty"`
}

// handleRequestDownload kicks off a download for a URL. Unknown URLs
// are accepted and downloaded as direct video.
func handleRequestDownload(w http.ResponseWriter, r *http.Request) {
	var req downloadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("invalid download payload: %v", err), http.StatusBadRequest)
		return
	}
	if req.URL == "" {
		http.Error(w, "download url is required", http.StatusBadRequest)
		return
	}

	if !req.Wait {
		// The request context dies when this handler returns, so the
		// background download runs on a detached context.
		orc.RequestDownloadAsync(context.WithoutCancel(r.Context()), req.URL, req.Filename)
		writeJSON(w, http.StatusAccepted, map[string]string{
			"url":    req.URL,
			"status": string(models.DLStatusPending),
		})
		return
	}

	task := <-orc.RequestDownloadAsync(r.Context(), req.URL, req.Filename)
	writeJSON(w, http.StatusOK, task)
}

// handleGetDownload returns one download record by task ID.
func handleGetDownload(w http.ResponseWriter, r *http.Request) {
	if orc.History == nil {
		http.Error(w, "history store not configured", http.StatusNotFound)
		return
	}

	id := chi.URLParam(r, "id")
	rec, found, err := orc.History.GetDownload(r.Context(), id)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "download not found", http.StatusNotFound)
		return
	}

	writeJSON(w, http.StatusOK, rec)
}

// handleListDownloads lists download history, optionally bounded with a
// free-form ?since= date.
func handleListDownloads(w http.ResponseWriter, r *http.Request) {
	if orc.History == nil {
		writeJSON(w, http.StatusOK, []*models.DownloadRecord{})
		return
	}

	var since time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := dateparse.ParseAny(raw)
		if err != nil {
			http.Error(w, fmt.Sprintf("could not parse since date %q: %v", raw, err), http.StatusBadRequest)
			return
		}
		since = parsed
	}

	records, err := orc.History.ListDownloads(r.Context(), since)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if records == nil {
		records = []*models.DownloadRecord{}
	}
	writeJSON(w, http.StatusOK, records)
}
