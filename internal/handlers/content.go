package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"nvlaw-backend/internal/catalog"
	"nvlaw-backend/internal/transport"
)

// GetContentPages serves one catalog family in its defined order.
func (s *Server) GetContentPages(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	family := catalog.Family(strings.TrimSpace(chi.URLParam(r, "family")))

	items, ok := s.Catalog.Pages(family)
	if !ok {
		log.Warn("content list: unknown family", slog.String("family", string(family)))
		transport.WriteError(w, http.StatusNotFound, "unknown content family", nil)
		return
	}

	cacheKey := "content:" + string(family)
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("content list: cache hit", slog.String("family", string(family)))
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	if payload, err := encodeJSON(items); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("content list: ok", slog.String("family", string(family)), slog.Int("count", len(items)))
	transport.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) GetContentPage(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	family := catalog.Family(strings.TrimSpace(chi.URLParam(r, "family")))
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))

	page, ok := s.Catalog.Lookup(family, slug)
	if !ok {
		log.Warn("content get: not found",
			slog.String("family", string(family)),
			slog.String("slug", slug),
		)
		transport.WriteError(w, http.StatusNotFound, "content page not found", nil)
		return
	}

	log.Info("content get: ok", slog.String("family", string(family)), slog.String("slug", slug))
	transport.WriteJSON(w, http.StatusOK, page)
}
