package handlers

import (
	"log/slog"
	"net/http"

	"nvlaw-backend/internal/pages"
	"nvlaw-backend/internal/transport"
)

// ResolvePage answers the renderer's "what do I mount for this path"
// question. Not-found resolutions get a 404 status but still carry the
// full resolution body, including the hub link the view renders.
func (s *Server) ResolvePage(w http.ResponseWriter, r *http.Request) {
	log := s.logWithRequest(r)
	path := r.URL.Query().Get("path")
	if path == "" {
		log.Warn("page resolve: missing path")
		transport.WriteError(w, http.StatusBadRequest, "missing path", nil)
		return
	}

	resolution := s.Resolver.Resolve(path)

	status := http.StatusOK
	if resolution.Kind == pages.KindNotFound {
		status = http.StatusNotFound
	}

	log.Info("page resolve: ok",
		slog.String("path", path),
		slog.String("kind", string(resolution.Kind)),
	)
	transport.WriteJSON(w, status, resolution)
}
