package handler

import (
	"errors"
	"net/http"

	"github.com/autmail/maillist-server/internal/dispatcher"
	"github.com/autmail/maillist-server/internal/logger"
	"github.com/autmail/maillist-server/internal/model"
)

func handleError(logger *logger.Logger, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrNotRegistered):
		writeError(w, http.StatusPreconditionFailed, "email not registered")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "list not found")
	case errors.Is(err, model.ErrInvalidEmail):
		writeError(w, http.StatusBadRequest, "invalid email address")
	case errors.Is(err, dispatcher.ErrUnknownKind):
		writeError(w, http.StatusBadRequest, "unknown event kind")
	default:
		logger.Error("request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
