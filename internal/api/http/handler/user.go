package handler

import (
	"encoding/json"
	"net/http"

	"github.com/autmail/maillist-server/internal/dispatcher"
)

type registerEmailRequest struct {
	Email string `json:"email"`
}

type emailResponse struct {
	Email string `json:"email"`
}

// RegisterEmail stores the caller's email, overwriting any previous one.
func (h *Handler) RegisterEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	var req registerEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.dispatcher.Dispatch(r.Context(), dispatcher.Event{
		Kind:   dispatcher.KindRegister,
		UserID: userID,
		Email:  req.Email,
	})
	if err != nil {
		handleError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, emailResponse{Email: res.Email})
}

// LookupEmail returns the caller's registered email.
func (h *Handler) LookupEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	res, err := h.dispatcher.Dispatch(r.Context(), dispatcher.Event{
		Kind:   dispatcher.KindGetEmail,
		UserID: userID,
	})
	if err != nil {
		handleError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, emailResponse{Email: res.Email})
}
