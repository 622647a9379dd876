package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/feedvault/feedvault/pkg/domain"
	"github.com/feedvault/feedvault/pkg/store"
)

// feedInfo is the JSON view of a configured feed merged with its cached state
type feedInfo struct {
	ID           string     `json:"id"`
	URL          string     `json:"url"`
	Title        string     `json:"title"`
	ETag         *string    `json:"etag,omitempty"`
	LastModified *string    `json:"last_modified,omitempty"`
	LastSyncedAt *time.Time `json:"last_synced_at,omitempty"`
	Articles     int        `json:"articles"`
}

// syncResultInfo is the JSON view of a refresh outcome
type syncResultInfo struct {
	FeedID      string `json:"feed_id"`
	NewArticles int    `json:"new_articles"`
	UsedNetwork bool   `json:"used_network"`
	Status      string `json:"status"`
	Error       string `json:"error,omitempty"`
}

func toSyncResultInfo(res domain.SyncResult) syncResultInfo {
	info := syncResultInfo{
		FeedID:      res.FeedID,
		NewArticles: res.NewArticles,
		UsedNetwork: res.UsedNetwork,
		Status:      string(res.Status),
	}
	if res.Err != nil {
		info.Error = res.Err.Error()
	}
	return info
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]interface{}{
		"status":  "ok",
		"version": s.version,
		"feeds":   len(s.feeds),
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// feedsHandler lists configured feeds with their cached metadata
func (s *Server) feedsHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	infos := make([]feedInfo, 0, len(s.feeds))
	for _, f := range s.feeds {
		info := feedInfo{ID: f.ID, URL: f.URL, Title: f.Title}

		meta, err := s.store.GetFeedMeta(ctx, f.ID)
		switch {
		case err == nil:
			info.ETag = meta.ETag
			info.LastModified = meta.LastModified
			info.LastSyncedAt = meta.LastSyncedAt
		case errors.Is(err, store.ErrFeedNotFound):
			// never synced, configured identity only
		default:
			log.Printf("[WARN] failed to read meta for feed %s: %v", f.ID, err)
		}

		if count, err := s.store.CountArticles(ctx, f.ID); err == nil {
			info.Articles = count
		}

		infos = append(infos, info)
	}

	renderJSON(w, r, http.StatusOK, infos)
}

// articlesHandler renders the cached article list for one feed, never
// triggering a network fetch
func (s *Server) articlesHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	if _, ok := s.feedByID[id]; !ok {
		renderError(w, r, fmt.Errorf("unknown feed %q", id), http.StatusNotFound)
		return
	}

	limit := 0
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if n, err := strconv.Atoi(limitStr); err == nil {
			limit = n
		}
	}

	articles, err := s.store.ListArticles(ctx, id, limit)
	if err != nil {
		log.Printf("[ERROR] failed to list articles for feed %s: %v", id, err)
		renderError(w, r, err, http.StatusInternalServerError)
		return
	}

	renderJSON(w, r, http.StatusOK, articles)
}

// refreshFeedHandler refreshes a single feed and reports the outcome. On
// failure the cached articles stay intact and the result says "stale".
func (s *Server) refreshFeedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.PathValue("id")
	src, ok := s.feedByID[id]
	if !ok {
		renderError(w, r, fmt.Errorf("unknown feed %q", id), http.StatusNotFound)
		return
	}

	res := s.syncer.Sync(ctx, src)
	renderJSON(w, r, http.StatusOK, toSyncResultInfo(res))
}

// refreshAllHandler refreshes every configured feed and reports one outcome
// per feed
func (s *Server) refreshAllHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	results := s.coordinator.SyncAll(ctx, s.feeds)

	infos := make(map[string]syncResultInfo, len(results))
	for id, res := range results {
		infos[id] = toSyncResultInfo(res)
	}

	renderJSON(w, r, http.StatusOK, infos)
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError sends error response as JSON
func renderError(w http.ResponseWriter, r *http.Request, err error, code int) {
	errMsg := "unknown error"
	if err != nil {
		errMsg = err.Error()
	}
	renderJSON(w, r, code, map[string]string{"error": errMsg})
}
