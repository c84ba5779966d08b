package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/autmail/maillist-server/internal/dispatcher"
)

type createListRequest struct {
	Title string `json:"title"`
}

type createListResponse struct {
	ListID int64  `json:"list_id"`
	Title  string `json:"title"`
}

type listResponse struct {
	ListID         int64    `json:"list_id"`
	Entries        []string `json:"entries"`
	AlreadyPresent bool     `json:"already_present,omitempty"`
}

// CreateList allocates a new named list and returns its id for rendering
// the share button.
func (h *Handler) CreateList(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}

	res, err := h.dispatcher.Dispatch(r.Context(), dispatcher.Event{
		Kind:  dispatcher.KindCreateList,
		Title: req.Title,
	})
	if err != nil {
		handleError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createListResponse{ListID: res.ListID, Title: req.Title})
}

// GetList returns the list's current entries.
func (h *Handler) GetList(w http.ResponseWriter, r *http.Request) {
	listID, err := listIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	res, err := h.dispatcher.Dispatch(r.Context(), dispatcher.Event{
		Kind:   dispatcher.KindGetList,
		ListID: listID,
	})
	if err != nil {
		handleError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{ListID: res.ListID, Entries: res.Entries})
}

// AppendToList appends the caller's registered email to the list and
// returns the updated entries. A repeated press is a no-op reported via
// already_present.
func (h *Handler) AppendToList(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.contextManager.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing user identity")
		return
	}

	listID, err := listIDParam(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid list id")
		return
	}

	res, err := h.dispatcher.Dispatch(r.Context(), dispatcher.Event{
		Kind:   dispatcher.KindAddToList,
		UserID: userID,
		ListID: listID,
	})
	if err != nil {
		handleError(h.logger, w, err)
		return
	}

	writeJSON(w, http.StatusOK, listResponse{
		ListID:         res.ListID,
		Entries:        res.Entries,
		AlreadyPresent: res.AlreadyPresent,
	})
}

func listIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "listID"), 10, 64)
}
