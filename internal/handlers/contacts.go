package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/oleg-messenger/backend/internal/middleware"
	"github.com/oleg-messenger/backend/internal/store"
)

// GetContacts returns the caller's contact list in insertion order.
func (h *Handler) GetContacts(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	writeJSON(w, http.StatusOK, h.Store.ContactsFor(claims.UserID))
}

type AddContactRequest struct {
	Email string `json:"email"`
}

// AddContact adds another registered user to the caller's contact list by
// email. The relationship is one-directional: the peer gets no contact row.
func (h *Handler) AddContact(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.ClaimsFrom(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "Access token missing")
		return
	}

	var req AddContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "Email is required")
		return
	}

	contact, err := h.Store.AddContact(claims.UserID, req.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrPeerNotFound):
			writeError(w, http.StatusNotFound, "No user found with this email")
		case errors.Is(err, store.ErrDuplicateContact):
			writeError(w, http.StatusBadRequest, "This user is already in your contacts")
		default:
			log.Printf("add contact: %v", err)
			writeError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	writeJSON(w, http.StatusCreated, contact)
}
