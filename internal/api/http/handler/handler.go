package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/autmail/maillist-server/internal/dispatcher"
	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
)

// Pinger reports storage reachability for health checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler translates HTTP requests into dispatcher events and renders the
// results as JSON.
type Handler struct {
	dispatcher     *dispatcher.Dispatcher
	contextManager model.ContextManager
	pinger         Pinger
	logger         *logger.Logger
}

func New(
	dispatcher *dispatcher.Dispatcher,
	contextManager model.ContextManager,
	pinger Pinger,
	logger *logger.Logger,
) *Handler {
	return &Handler{
		dispatcher:     dispatcher,
		contextManager: contextManager,
		pinger:         pinger,
		logger:         logger,
	}
}

// Health responds 200 when storage is reachable, 503 otherwise.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.pinger.Ping(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
