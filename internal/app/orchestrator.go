// Package app wires browser events through classification into the
// candidate registry, and candidate selections into the download
// engine, relaying notifications outward.
package app

import (
	"context"
	"fmt"
	"time"

	"rawser/internal/contracts"
	"rawser/internal/cookies"
	"rawser/internal/downloads"
	"rawser/internal/hls"
	"rawser/internal/models"
	"rawser/internal/registry"
	"rawser/internal/utils/logging"
)

// Orchestrator owns the session-scoped state: cookie store, candidate
// registry, download engine, and the optional history store.
type Orchestrator struct {
	Cookies  *cookies.Store
	Registry *registry.Registry
	Engine   *downloads.Engine
	History  contracts.HistoryStore

	maxRetries int

	// workers bounds concurrent downloads.
	workers chan struct{}

	onCandidate func(url string, kind models.MediaKind)
}

// New assembles an orchestrator. history may be nil to run without
// persistence; concurrency < 1 defaults to 3.
func New(opts *downloads.Options, history contracts.HistoryStore, concurrency int) *Orchestrator {
	if concurrency < 1 {
		concurrency = 3
	}

	cookieStore := cookies.NewStore()
	engine := downloads.NewEngine(opts, cookieStore)
	engine.SetHLSResolver(hls.ResolveBest)

	maxRetries := downloads.DefaultOptions.MaxRetries
	if opts != nil && opts.MaxRetries > 0 {
		maxRetries = opts.MaxRetries
	}

	o := &Orchestrator{
		Cookies:    cookieStore,
		Registry:   registry.New(),
		Engine:     engine,
		History:    history,
		maxRetries: maxRetries,
		workers:    make(chan struct{}, concurrency),
	}

	o.Registry.OnCandidate(o.candidateFound)
	o.Engine.OnStart(o.taskStarted)
	return o
}

// OnCandidateFound registers the outward candidate notification.
func (o *Orchestrator) OnCandidateFound(fn func(url string, kind models.MediaKind)) {
	o.onCandidate = fn
}

// HandleNetworkEvent classifies one observed request. Non-media and
// duplicate URLs yield no candidate and no notification.
func (o *Orchestrator) HandleNetworkEvent(ev models.NetworkEvent) *models.MediaCandidate {
	return o.Registry.Offer(ev)
}

// HandleCookieEvent applies one cookie-store mutation.
func (o *Orchestrator) HandleCookieEvent(ev models.CookieEvent) {
	switch ev.Action {
	case models.CookieAdded:
		o.Cookies.Add(ev.Domain, ev.Name, ev.Value)
	case models.CookieRemoved:
		o.Cookies.Remove(ev.Domain, ev.Name)
	default:
		logging.W("Unknown cookie event action %q for %s/%s", ev.Action, ev.Domain, ev.Name)
	}
}

// ClearSession empties the candidate registry for a fresh page or
// browsing session. Cookies persist for the process lifetime.
func (o *Orchestrator) ClearSession() {
	o.Registry.Clear()
}

// RequestDownload downloads the media at url, retrying per the engine
// options, and persists the outcome. Unknown URLs get a minimal direct
// video candidate rather than a rejection, so user-pasted links work.
func (o *Orchestrator) RequestDownload(ctx context.Context, url, filename string) *models.DownloadTask {
	candidate, known := o.Registry.Lookup(url)
	if !known {
		logging.D(1, "URL %q not in registry, synthesizing direct video candidate", url)
		candidate = &models.MediaCandidate{
			URL:        url,
			Kind:       models.KindDirectVideo,
			Headers:    map[string]string{},
			Method:     "GET",
			ObservedAt: time.Now(),
		}
	}

	select {
	case o.workers <- struct{}{}:
	case <-ctx.Done():
		return &models.DownloadTask{
			SourceURL: url,
			Status:    models.DLStatusFailed,
			Error:     fmt.Sprintf("cancelled while waiting for a download slot: %v", ctx.Err()),
		}
	}
	defer func() { <-o.workers }()

	task := o.Engine.DownloadWithRetry(ctx, candidate, filename, o.maxRetries)
	o.persistTask(ctx, task)
	return task
}

// RequestDownloadAsync schedules a download and returns a channel that
// delivers the final task (success or aggregated failure).
func (o *Orchestrator) RequestDownloadAsync(ctx context.Context, url, filename string) <-chan *models.DownloadTask {
	result := make(chan *models.DownloadTask, 1)
	go func() {
		result <- o.RequestDownload(ctx, url, filename)
	}()
	return result
}

// candidateFound persists and relays one newly discovered candidate.
func (o *Orchestrator) candidateFound(c *models.MediaCandidate) {
	if o.History != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := o.History.RecordCandidate(ctx, c); err != nil {
			logging.E("Failed to persist candidate %q: %v", c.URL, err)
		}
	}

	if o.onCandidate != nil {
		o.onCandidate(c.URL, c.Kind)
	}
}

// taskStarted records the task as running before the first attempt, so
// history lookups see in-flight downloads.
func (o *Orchestrator) taskStarted(task *models.DownloadTask) {
	if o.History == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := o.History.RecordDownload(ctx, task); err != nil {
		logging.E("Failed to record download task %q: %v", task.ID, err)
	}
}

// persistTask updates the task's row with the terminal state, best
// effort. The row exists since taskStarted ran before the attempts.
func (o *Orchestrator) persistTask(ctx context.Context, task *models.DownloadTask) {
	if o.History == nil {
		return
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	if err := o.History.UpdateDownload(writeCtx, task); err != nil {
		logging.E("Failed to persist download task %q: %v", task.ID, err)
	}
}
