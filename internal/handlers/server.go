package handlers

import (
	"log/slog"
	"net/http"

	"nvlaw-backend/internal/analytics"
	"nvlaw-backend/internal/cache"
	"nvlaw-backend/internal/catalog"
	"nvlaw-backend/internal/config"
	"nvlaw-backend/internal/middleware"
	"nvlaw-backend/internal/notifications"
	"nvlaw-backend/internal/pages"
	"nvlaw-backend/internal/store"
	"nvlaw-backend/internal/validation"
)

type Server struct {
	Cfg      *config.Config
	Store    *store.Store
	Catalog  *catalog.Catalog
	Resolver *pages.Resolver
	Val      *validation.Validator
	Log      *slog.Logger
	Cache    cache.Cache
	Mailer   notifications.Mailer
	Tracker  analytics.Tracker
}

func (s *Server) logWithRequest(r *http.Request) *slog.Logger {
	if r == nil {
		return s.Log
	}
	if id := middleware.RequestIDFromContext(r.Context()); id != "" {
		return s.Log.With(slog.String("request_id", id))
	}
	return s.Log
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) track(r *http.Request, event string, props map[string]string) {
	if s.Tracker == nil {
		return
	}
	s.Tracker.Track(r.Context(), event, props)
}
