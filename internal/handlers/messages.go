package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/oleg-messenger/backend/internal/middleware"
	"github.com/oleg-messenger/backend/internal/models"
)

// GetMessages returns the full log for one chat in insertion order. A chat
// with no messages yet yields an empty array, not an error.
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	chatID := chi.URLParam(r, "chatID")
	writeJSON(w, http.StatusOK, h.Store.Messages(claims.UserID, chatID))
}

type SendMessageRequest struct {
	ChatID string                 `json:"chatId"`
	Text   string                 `json:"text"`
	Type   string                 `json:"type"`
	File   *models.FileAttachment `json:"file"`
}

// SendMessage appends a message to the caller's chat log. Sending into a
// regular contact's chat schedules a simulated reply.
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.ChatID == "" || (req.Text == "" && req.File == nil) {
		writeError(w, http.StatusBadRequest, "chatId and text or file are required")
		return
	}

	msg := h.Store.SendMessage(claims.UserID, req.ChatID, req.Text, req.Type, req.File)
	writeJSON(w, http.StatusCreated, msg)
}

// DeleteMessage removes a message from the caller's chat log. Deletion is
// acknowledged even when the message id does not exist.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	chatID := chi.URLParam(r, "chatID")
	messageID := chi.URLParam(r, "messageID")
	h.Store.DeleteMessage(claims.UserID, chatID, messageID)

	writeJSON(w, http.StatusOK, map[string]string{"message": "Message deleted"})
}
