package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"nvlaw-backend/internal/store"
	"nvlaw-backend/internal/transport"
)

func (s *Server) ListBlogPosts(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	cacheKey := "blog:list"
	if s.Cache != nil {
		if cached, ok, err := s.Cache.Get(r.Context(), cacheKey); err == nil && ok {
			log.Info("blog list: cache hit")
			writeCachedJSON(w, http.StatusOK, cached)
			return
		}
	}

	posts := s.Store.BlogPosts(r.Context())

	if payload, err := encodeJSON(posts); err == nil && s.Cache != nil {
		_ = s.Cache.Set(r.Context(), cacheKey, payload, time.Duration(s.Cfg.CacheTTLSeconds)*time.Second)
	}

	log.Info("blog list: ok", slog.Int("count", len(posts)))
	transport.WriteJSON(w, http.StatusOK, posts)
}

func (s *Server) GetBlogPostBySlug(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	slug := strings.TrimSpace(chi.URLParam(r, "slug"))
	if slug == "" {
		log.Warn("blog get: missing slug")
		transport.WriteError(w, http.StatusBadRequest, "missing slug", nil)
		return
	}

	post, err := s.Store.BlogPostBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("blog get: not found", slog.String("slug", slug))
			transport.WriteError(w, http.StatusNotFound, "blog post not found", nil)
			return
		}
		log.Error("blog get: storage error", slog.String("error", err.Error()))
		transport.WriteError(w, http.StatusInternalServerError, "internal error", nil)
		return
	}

	log.Info("blog get: ok", slog.String("slug", slug))
	transport.WriteJSON(w, http.StatusOK, post)
}
